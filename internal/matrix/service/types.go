package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/bitcoin"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource serves block and transaction lookups to the transformer.
	BlockSource interface {
		GetBlockVerboseTx(ctx context.Context, hash *chainhash.Hash) (*bitcoin.BlockResult, error)
		GetRawTransactionVerbose(ctx context.Context, txid string, blockHash *chainhash.Hash) (*bitcoin.TxResult, error)
	}
	// ChainTip serves the poller's connectivity check and tip lookups.
	ChainTip interface {
		GetBlockChainInfo(ctx context.Context) (*bitcoin.ChainInfo, error)
		GetBestBlockHash(ctx context.Context) (*chainhash.Hash, error)
	}
	Transformer interface {
		Transform(ctx context.Context, hash *chainhash.Hash) (*model.BlockDocument, error)
	}
	DocumentWriter interface {
		Write(ctx context.Context, doc *model.BlockDocument) error
	}
	PollerMetrics interface {
		ObserveCheckTip(err error, started time.Time)
		ObserveProcessBlock(err error, height int64, transactions int, started time.Time)
	}
)
