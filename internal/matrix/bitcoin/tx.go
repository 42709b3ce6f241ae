package bitcoin

import (
	"encoding/json"

	"github.com/btcsuite/btcd/btcjson"
)

// TxResult is the part of a verbose getrawtransaction response the fetcher reads.
type TxResult struct {
	Txid string         `json:"txid"`
	Hash string         `json:"hash"`
	Vin  []Input        `json:"vin"`
	Vout []btcjson.Vout `json:"vout"`
}

// Input is a transaction input that also records whether the node sent a
// coinbase key, since a coinbase payload may legitimately be empty.
type Input struct {
	btcjson.Vin
	HasCoinbase bool `json:"-"`
}

// UnmarshalJSON decodes the input and notes the presence of its coinbase key.
func (in *Input) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, in.HasCoinbase = keys["coinbase"]
	return json.Unmarshal(data, &in.Vin)
}
