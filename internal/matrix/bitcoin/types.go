package bitcoin

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Requester issues a single JSON-RPC request and gives up when ctx is done.
	// *HTTPTransport satisfies it.
	Requester interface {
		Request(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
