package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-zeromq/zmq4"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/clock"
)

const hashBlockTopic = "hashblock"

// startBlockSignal subscribes to the node's hashblock feed and returns a channel
// that receives a token per notification. Pending tokens coalesce. An empty
// addr disables the feed and returns a nil channel.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	sub := zmq4.NewSub(ctx, zmq4.WithID(zmq4.SocketIdentity("matrix-fetcher")))
	if err := sub.Dial(addr); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("connect zmq %s: %w", addr, err)
	}
	if err := sub.SetOption(zmq4.OptionSubscribe, hashBlockTopic); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe zmq %s: %w", hashBlockTopic, err)
	}
	logger.Info("subscribed to block notifications", zap.String("addr", addr))

	notify := make(chan struct{}, 1)
	go func() {
		defer func() {
			_ = sub.Close()
		}()
		for {
			msg, err := sub.Recv()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warn("zmq recv failed", zap.Error(err))
				if clock.SleepWithContext(ctx, time.Second) != nil {
					return
				}
				continue
			}
			if len(msg.Frames) < 2 {
				logger.Warn("skip malformed zmq message", zap.Int("parts", len(msg.Frames)))
				continue
			}

			logger.Debug("block notification", zap.String("topic", string(msg.Frames[0])))
			select {
			case notify <- struct{}{}:
			default:
			}
		}
	}()

	return notify, nil
}
