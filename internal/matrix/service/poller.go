package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/clock"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/bitcoin"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
	"github.com/goodnatureofminers/blockmatrix-fetcher/pkg/safe"
)

// State is the poller's position in its check cycle.
type State string

const (
	StateIdle     State = "idle"
	StateChecking State = "checking"
	StateNoChange State = "no_change"
	StateNewBlock State = "new_block"
)

// PollerConfig holds loop timings. Network, when set, must match the node's chain.
type PollerConfig struct {
	PollInterval  time.Duration
	ErrorCooldown time.Duration
	Network       model.Network
}

// DefaultPollerConfig returns the stock loop timings.
func DefaultPollerConfig() PollerConfig {
	return PollerConfig{
		PollInterval:  defaultPollInterval,
		ErrorCooldown: defaultErrorCooldown,
	}
}

// Poller watches the chain tip and emits a document for every new block.
type Poller struct {
	node        ChainTip
	transformer Transformer
	writer      DocumentWriter
	metrics     PollerMetrics
	cfg         PollerConfig
	logger      *zap.Logger
	wait        func(context.Context, time.Duration) error

	state    atomic.Value
	lastHash *chainhash.Hash
}

// NewPoller wires a Poller. A non-nil blockSignal shortens waits when a block
// notification arrives.
func NewPoller(
	node ChainTip,
	transformer Transformer,
	writer DocumentWriter,
	metrics PollerMetrics,
	cfg PollerConfig,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Poller, error) {
	if node == nil || transformer == nil || writer == nil {
		return nil, errors.New("poller dependencies are required")
	}
	if metrics == nil {
		return nil, errors.New("poller metrics is required")
	}
	if cfg.PollInterval < 0 || cfg.ErrorCooldown < 0 {
		return nil, errors.New("poller intervals must not be negative")
	}

	p := &Poller{
		node:        node,
		transformer: transformer,
		writer:      writer,
		metrics:     metrics,
		cfg:         cfg,
		logger:      logger,
		wait: func(ctx context.Context, d time.Duration) error {
			return clock.WaitOrSignal(ctx, d, blockSignal)
		},
	}
	p.state.Store(StateIdle)
	return p, nil
}

// State reports the current cycle state.
func (p *Poller) State() State {
	return p.state.Load().(State)
}

// Run checks node connectivity and then polls until ctx is canceled. A failed
// connectivity check is returned; cancellation is a clean stop.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.checkConnection(ctx); err != nil {
		return err
	}
	p.logger.Info("checking for new blocks", zap.Duration("poll_interval", p.cfg.PollInterval))

	for {
		if ctx.Err() != nil {
			p.logger.Info("shutting down")
			return nil
		}

		delay := p.cfg.PollInterval
		err := safe.Call(func() error {
			_, err := p.cycle(ctx)
			return err
		})
		if err != nil && ctx.Err() == nil {
			p.logger.Error("error in poll cycle", zap.Error(err), zap.Duration("cooldown", p.cfg.ErrorCooldown))
			delay = p.cfg.ErrorCooldown
		}
		p.setState(StateIdle)

		if err := p.wait(ctx, delay); err != nil {
			p.logger.Info("shutting down")
			return nil
		}
	}
}

func (p *Poller) checkConnection(ctx context.Context) error {
	info, err := p.node.GetBlockChainInfo(ctx)
	if err != nil {
		return fmt.Errorf("connect to node: %w", err)
	}
	p.logger.Info("connected to node",
		zap.String("chain", info.Chain),
		zap.Int64("blocks", info.Blocks),
		zap.Int64("headers", info.Headers),
	)
	if info.InitialBlockDownload {
		p.logger.Warn("node is still in initial block download", zap.Float64("progress", info.VerificationProgress))
	}
	if p.cfg.Network != "" {
		if err := bitcoin.VerifyChain(p.cfg.Network, info.Chain); err != nil {
			return fmt.Errorf("verify network: %w", err)
		}
	}
	return nil
}

// cycle performs one tip check and, on a new tip, builds and stores its
// document. A failed tip lookup counts as no change.
func (p *Poller) cycle(ctx context.Context) (State, error) {
	p.setState(StateChecking)

	started := time.Now()
	tip, err := p.node.GetBestBlockHash(ctx)
	p.metrics.ObserveCheckTip(err, started)
	if err != nil {
		p.logger.Error("failed to check for new block", zap.Error(err))
		return p.setState(StateNoChange), nil
	}
	if p.lastHash != nil && tip.IsEqual(p.lastHash) {
		p.logger.Debug("no new block", zap.String("hash", tip.String()))
		return p.setState(StateNoChange), nil
	}

	p.logger.Info("new block detected", zap.String("hash", tip.String()))
	p.setState(StateNewBlock)

	started = time.Now()
	doc, err := p.processBlock(ctx, tip)
	if err != nil {
		p.metrics.ObserveProcessBlock(err, 0, 0, started)
		return StateNewBlock, err
	}
	p.metrics.ObserveProcessBlock(nil, doc.Block.Height, doc.ProcessedTransactions, started)

	p.lastHash = tip
	p.logger.Info("block processed successfully",
		zap.Int64("height", doc.Block.Height),
		zap.Int("chunks", len(doc.TransactionChunks)),
	)
	return StateNewBlock, nil
}

func (p *Poller) processBlock(ctx context.Context, hash *chainhash.Hash) (*model.BlockDocument, error) {
	doc, err := p.transformer.Transform(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("transform block: %w", err)
	}
	if err := p.writer.Write(ctx, doc); err != nil {
		return nil, fmt.Errorf("save block %d: %w", doc.Block.Height, err)
	}
	return doc, nil
}

func (p *Poller) setState(s State) State {
	prev := p.State()
	if prev != s {
		p.logger.Debug("poller state", zap.String("from", string(prev)), zap.String("to", string(s)))
	}
	p.state.Store(s)
	return s
}
