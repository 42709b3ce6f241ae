package model

// UTXODirection tags whether an entry was created or spent by a transaction.
type UTXODirection string

// UTXOOutput is the only direction produced; spent inputs are not correlated.
var UTXOOutput UTXODirection = "output"

// UnknownAddress is reported when a locking script exposes no address.
const UnknownAddress = "unknown"

// UTXOEntry describes one transaction output.
type UTXOEntry struct {
	Address   string        `json:"address"`
	AmountBTC float64       `json:"amount_btc"`
	TxID      string        `json:"txid"`
	Type      UTXODirection `json:"type"`
}

// TransactionChunk groups the outputs of a contiguous slice of block transactions.
type TransactionChunk struct {
	ChunkNum         int         `json:"chunk_num"`
	TransactionCount int         `json:"transaction_count"`
	UTXOs            []UTXOEntry `json:"utxos"`
	ProcessedAt      string      `json:"processed_at"`
}

// BlockDocument is the denormalized snapshot persisted for each new tip.
type BlockDocument struct {
	Block                 BlockSummary       `json:"block"`
	CoinbaseASCII         string             `json:"coinbase_ascii"`
	HeaderData            string             `json:"header_data"`
	TransactionChunks     []TransactionChunk `json:"transaction_chunks"`
	TotalTransactions     int                `json:"total_transactions"`
	ProcessedTransactions int                `json:"processed_transactions"`
	UpdatedAt             string             `json:"updated_at"`
}
