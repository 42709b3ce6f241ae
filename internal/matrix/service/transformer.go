package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/clock"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/bitcoin"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
)

// TransformerConfig bounds how much of a block is expanded into chunks.
type TransformerConfig struct {
	ChunkSize       int
	MaxTransactions int
}

// DefaultTransformerConfig returns the stock chunking settings.
func DefaultTransformerConfig() TransformerConfig {
	return TransformerConfig{
		ChunkSize:       defaultChunkSize,
		MaxTransactions: defaultMaxTransactions,
	}
}

// BlockTransformer turns a block id into a model.BlockDocument.
type BlockTransformer struct {
	node   BlockSource
	cfg    TransformerConfig
	clock  clock.Clock
	logger *zap.Logger
}

// NewBlockTransformer validates cfg and builds a BlockTransformer.
func NewBlockTransformer(node BlockSource, cfg TransformerConfig, clk clock.Clock, logger *zap.Logger) (*BlockTransformer, error) {
	if node == nil {
		return nil, errors.New("block source is required")
	}
	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", cfg.ChunkSize)
	}
	if cfg.MaxTransactions < 0 {
		return nil, fmt.Errorf("max transactions must not be negative, got %d", cfg.MaxTransactions)
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &BlockTransformer{
		node:   node,
		cfg:    cfg,
		clock:  clk,
		logger: logger,
	}, nil
}

// Transform fetches the block at verbosity 2 and builds its document. Only a
// failed block fetch is returned as an error; transaction lookups degrade.
func (t *BlockTransformer) Transform(ctx context.Context, hash *chainhash.Hash) (*model.BlockDocument, error) {
	logger := t.logger.With(zap.String("hash", hash.String()))
	logger.Info("processing block")

	block, err := t.node.GetBlockVerboseTx(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("fetch block %s: %w", hash, err)
	}
	summary := block.Summary()
	txids := block.TxIDs()

	coinbaseText := ""
	if len(txids) > 0 {
		coinbaseText = t.coinbaseText(ctx, logger, hash, txids[0])
	}

	limit := min(t.cfg.MaxTransactions, len(txids))
	starts := ChunkStarts(limit, t.cfg.ChunkSize)
	chunks := make([]model.TransactionChunk, 0, len(starts))
	for num, start := range starts {
		end := min(start+t.cfg.ChunkSize, len(txids))
		chunk, err := t.processChunk(ctx, logger, hash, num, txids[start:end])
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}

	return &model.BlockDocument{
		Block:                 summary,
		CoinbaseASCII:         coinbaseText,
		HeaderData:            bitcoin.HeaderString(summary, coinbaseText),
		TransactionChunks:     chunks,
		TotalTransactions:     len(txids),
		ProcessedTransactions: limit,
		UpdatedAt:             clock.Format(t.clock.Now()),
	}, nil
}

// ChunkStarts returns the first index of every chunk. Index 0 is the coinbase
// and is never chunked; the last chunk may extend past limit.
func ChunkStarts(limit, chunkSize int) []int {
	var starts []int
	for i := 1; i < limit; i += chunkSize {
		starts = append(starts, i)
	}
	return starts
}

func (t *BlockTransformer) coinbaseText(ctx context.Context, logger *zap.Logger, blockHash *chainhash.Hash, txid string) string {
	tx, err := t.node.GetRawTransactionVerbose(ctx, txid, blockHash)
	if err != nil {
		logger.Warn("failed to process coinbase transaction", zap.String("txid", txid), zap.Error(err))
		return ""
	}
	if len(tx.Vin) == 0 {
		return ""
	}
	payload, source, ok := bitcoin.CoinbasePayload(tx.Vin[0])
	if !ok {
		logger.Debug("coinbase input carries no payload", zap.String("txid", txid))
		return ""
	}
	text := bitcoin.PrintableASCII(payload)
	logger.Debug("decoded coinbase", zap.String("source", source), zap.Int("chars", len(text)))
	return text
}

// processChunk looks transactions up one at a time, in block order.
func (t *BlockTransformer) processChunk(
	ctx context.Context,
	logger *zap.Logger,
	blockHash *chainhash.Hash,
	num int,
	txids []string,
) (model.TransactionChunk, error) {
	utxos := make([]model.UTXOEntry, 0, len(txids))
	for _, txid := range txids {
		if err := ctx.Err(); err != nil {
			return model.TransactionChunk{}, err
		}
		tx, err := t.node.GetRawTransactionVerbose(ctx, txid, blockHash)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return model.TransactionChunk{}, ctxErr
			}
			logger.Warn("failed to process transaction", zap.String("txid", txid), zap.Int("chunk", num), zap.Error(err))
			continue
		}
		// Spent inputs would need a previous-output lookup per vin and are not reported.
		utxos = append(utxos, OutputEntries(txid, tx.Vout)...)
	}

	return model.TransactionChunk{
		ChunkNum:         num,
		TransactionCount: len(txids),
		UTXOs:            utxos,
		ProcessedAt:      clock.Format(t.clock.Now()),
	}, nil
}

// OutputEntries converts every output of txid into a UTXO entry.
func OutputEntries(txid string, vouts []btcjson.Vout) []model.UTXOEntry {
	entries := make([]model.UTXOEntry, 0, len(vouts))
	for _, vout := range vouts {
		entries = append(entries, model.UTXOEntry{
			Address:   bitcoin.OutputAddress(vout.ScriptPubKey),
			AmountBTC: amountBTC(vout.Value),
			TxID:      txid,
			Type:      model.UTXOOutput,
		})
	}
	return entries
}

func amountBTC(value float64) float64 {
	amount, err := btcutil.NewAmount(value)
	if err != nil {
		return value
	}
	return amount.ToBTC()
}
