package bitcoin

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
)

// ErrMissingBlockField is returned when a getblock result lacks a header field.
var ErrMissingBlockField = errors.New("block result missing required field")

// requiredBlockFields must be present and non-null. mediantime, the neighbour
// hashes and tx may be absent.
var requiredBlockFields = []string{
	"hash", "height", "version", "merkleroot", "time", "nonce",
	"bits", "difficulty", "size", "weight", "nTx",
}

// BlockResult is a getblock response at verbosity 1 or 2.
type BlockResult struct {
	Hash         string  `json:"hash"`
	Height       int64   `json:"height"`
	Version      int32   `json:"version"`
	MerkleRoot   string  `json:"merkleroot"`
	Time         int64   `json:"time"`
	MedianTime   *int64  `json:"mediantime"`
	Nonce        uint32  `json:"nonce"`
	Bits         string  `json:"bits"`
	Difficulty   float64 `json:"difficulty"`
	Size         int32   `json:"size"`
	Weight       int32   `json:"weight"`
	NTx          int     `json:"nTx"`
	PreviousHash string  `json:"previousblockhash"`
	NextHash     string  `json:"nextblockhash"`
	Tx           []TxRef `json:"tx"`
}

// DecodeBlock decodes a getblock result at verbosity 1 or 2.
func DecodeBlock(raw json.RawMessage) (*BlockResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	var missing []string
	for _, name := range requiredBlockFields {
		if v, ok := fields[name]; !ok || string(v) == "null" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingBlockField, strings.Join(missing, ", "))
	}

	var block BlockResult
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// TxRef is an entry of a block's tx list. Verbosity 1 lists bare txids,
// verbosity 2 embeds transaction objects; both reduce to the txid.
type TxRef struct {
	TxID string
}

// UnmarshalJSON accepts a txid string or an object carrying a txid field.
func (r *TxRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.TxID = id
		return nil
	}
	var obj struct {
		Txid string `json:"txid"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("tx entry is neither a txid nor an object: %w", err)
	}
	r.TxID = obj.Txid
	return nil
}

// TxIDs returns transaction ids in block order.
func (b *BlockResult) TxIDs() []string {
	ids := make([]string, 0, len(b.Tx))
	for _, tx := range b.Tx {
		ids = append(ids, tx.TxID)
	}
	return ids
}

// Summary copies header fields into a model.BlockSummary.
func (b *BlockResult) Summary() model.BlockSummary {
	return model.BlockSummary{
		Hash:         b.Hash,
		Height:       b.Height,
		Version:      b.Version,
		MerkleRoot:   b.MerkleRoot,
		Timestamp:    b.Time,
		MedianTime:   b.MedianTime,
		Nonce:        b.Nonce,
		Bits:         b.Bits,
		Difficulty:   b.Difficulty,
		Size:         b.Size,
		Weight:       b.Weight,
		TXCount:      b.NTx,
		PreviousHash: b.PreviousHash,
		NextHash:     b.NextHash,
	}
}
