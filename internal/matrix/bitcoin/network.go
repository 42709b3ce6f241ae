package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
)

// ChainParams resolves a configured network name.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "test", "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// NetworkFromChain maps the chain field of getblockchaininfo to a model.Network.
func NetworkFromChain(chain string) (model.Network, error) {
	params, err := ChainParams(model.Network(chain))
	if err != nil {
		return "", err
	}
	switch params.Net {
	case chaincfg.MainNetParams.Net:
		return model.Mainnet, nil
	case chaincfg.TestNet3Params.Net:
		return model.Testnet, nil
	case chaincfg.RegressionNetParams.Net:
		return model.Regtest, nil
	default:
		return model.Signet, nil
	}
}

// VerifyChain checks that the node's reported chain matches the expected network.
func VerifyChain(expected model.Network, chain string) error {
	want, err := ChainParams(expected)
	if err != nil {
		return err
	}
	got, err := ChainParams(model.Network(chain))
	if err != nil {
		return fmt.Errorf("node chain: %w", err)
	}
	if want.Net != got.Net {
		return fmt.Errorf("node serves %s, expected %s", got.Name, want.Name)
	}
	return nil
}
