// Package model defines the documents produced for the block matrix visualizer.
package model

// BlockSummary holds header fields copied verbatim from a verbose getblock response.
type BlockSummary struct {
	Hash         string  `json:"hash"`
	Height       int64   `json:"height"`
	Version      int32   `json:"version"`
	MerkleRoot   string  `json:"merkle_root"`
	Timestamp    int64   `json:"timestamp"`
	MedianTime   *int64  `json:"mediantime"`
	Nonce        uint32  `json:"nonce"`
	Bits         string  `json:"bits"`
	Difficulty   float64 `json:"difficulty"`
	Size         int32   `json:"size"`
	Weight       int32   `json:"weight"`
	TXCount      int     `json:"tx_count"`
	PreviousHash string  `json:"previousblockhash"`
	NextHash     string  `json:"nextblockhash"`
}
