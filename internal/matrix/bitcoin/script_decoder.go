package bitcoin

import (
	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
)

// addressSources is ordered by precedence: newer nodes report a single
// address, older ones a list.
var addressSources = []func(btcjson.ScriptPubKeyResult) (string, bool){
	func(spk btcjson.ScriptPubKeyResult) (string, bool) {
		return spk.Address, spk.Address != ""
	},
	func(spk btcjson.ScriptPubKeyResult) (string, bool) {
		if len(spk.Addresses) == 0 {
			return "", false
		}
		return spk.Addresses[0], true
	},
}

// OutputAddress returns the first address exposed by a locking script or
// model.UnknownAddress.
func OutputAddress(spk btcjson.ScriptPubKeyResult) string {
	for _, lookup := range addressSources {
		if addr, ok := lookup(spk); ok {
			return addr
		}
	}
	return model.UnknownAddress
}
