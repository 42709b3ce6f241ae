package bitcoin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"
)

// getblock verbosity levels.
const (
	VerbosityHex     = 0
	VerbositySummary = 1
	VerbosityTx      = 2
)

// DefaultRPCTimeout bounds the wait for a single node response.
const DefaultRPCTimeout = 30 * time.Second

var (
	// ErrRPCTimeout is returned when the node does not answer within the call timeout.
	ErrRPCTimeout = errors.New("rpc call timed out")
	// ErrRPCProtocol is returned when the node answers with a JSON-RPC error object.
	ErrRPCProtocol = errors.New("rpc protocol error")
)

// ChainInfo is the subset of getblockchaininfo used for the startup check.
type ChainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
}

// NodeClient issues instrumented, time-bounded calls against a bitcoind-compatible node.
// It never retries; callers decide what a failure means.
type NodeClient struct {
	client     Requester
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
	timeout    time.Duration
}

// NewNodeClient constructs a NodeClient. A nil limiter means unlimited and a
// non-positive timeout falls back to DefaultRPCTimeout.
func NewNodeClient(client Requester, rpcMetrics RPCMetrics, limiter ratelimit.Limiter, timeout time.Duration) *NodeClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	if timeout <= 0 {
		timeout = DefaultRPCTimeout
	}
	return &NodeClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
		timeout:    timeout,
	}
}

// Call sends method with positional params and returns the raw result. The
// request is canceled once the call timeout elapses.
func (c *NodeClient) Call(ctx context.Context, method string, params ...any) (res json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(method, err, started)
	}()

	rawParams := make([]json.RawMessage, 0, len(params))
	for i, p := range params {
		encoded, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal param %d: %w", method, i, err)
		}
		rawParams = append(rawParams, encoded)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.limiter.Take()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Request(callCtx, method, rawParams)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s: %w after %s", method, ErrRPCTimeout, c.timeout)
		}
		var rpcErr *btcjson.RPCError
		if errors.As(err, &rpcErr) {
			return nil, fmt.Errorf("%s: %w: %w", method, ErrRPCProtocol, rpcErr)
		}
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return result, nil
}

func (c *NodeClient) callInto(ctx context.Context, out any, method string, params ...any) error {
	raw, err := c.Call(ctx, method, params...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}
	return nil
}

// GetBlockChainInfo returns chain metadata.
func (c *NodeClient) GetBlockChainInfo(ctx context.Context) (*ChainInfo, error) {
	var info ChainInfo
	if err := c.callInto(ctx, &info, "getblockchaininfo"); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetBestBlockHash returns the hash of the current chain tip.
func (c *NodeClient) GetBestBlockHash(ctx context.Context) (*chainhash.Hash, error) {
	var hash string
	if err := c.callInto(ctx, &hash, "getbestblockhash"); err != nil {
		return nil, err
	}
	parsed, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return nil, fmt.Errorf("getbestblockhash: parse %q: %w", hash, err)
	}
	return parsed, nil
}

// GetBlock returns the raw getblock result at the given verbosity.
func (c *NodeClient) GetBlock(ctx context.Context, hash *chainhash.Hash, verbosity int) (json.RawMessage, error) {
	return c.Call(ctx, "getblock", hash.String(), verbosity)
}

// GetBlockVerboseTx returns a block with embedded transaction detail.
func (c *NodeClient) GetBlockVerboseTx(ctx context.Context, hash *chainhash.Hash) (*BlockResult, error) {
	raw, err := c.GetBlock(ctx, hash, VerbosityTx)
	if err != nil {
		return nil, err
	}
	block, err := DecodeBlock(raw)
	if err != nil {
		return nil, fmt.Errorf("getblock %s: decode result: %w", hash, err)
	}
	return block, nil
}

// GetRawTransaction returns the raw getrawtransaction result. blockHash is an
// optional hint that lets nodes without a transaction index find the transaction.
func (c *NodeClient) GetRawTransaction(ctx context.Context, txid string, verbose bool, blockHash *chainhash.Hash) (json.RawMessage, error) {
	if blockHash == nil {
		return c.Call(ctx, "getrawtransaction", txid, verbose)
	}
	return c.Call(ctx, "getrawtransaction", txid, verbose, blockHash.String())
}

// GetRawTransactionVerbose returns a decoded transaction.
func (c *NodeClient) GetRawTransactionVerbose(ctx context.Context, txid string, blockHash *chainhash.Hash) (*TxResult, error) {
	raw, err := c.GetRawTransaction(ctx, txid, true, blockHash)
	if err != nil {
		return nil, err
	}
	var tx TxResult
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil, fmt.Errorf("getrawtransaction %s: decode result: %w", txid, err)
	}
	return &tx, nil
}
