// Package main runs the block matrix fetcher.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/clock"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/config"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/bitcoin"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/service"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/storage"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/metrics"
)

type options struct {
	Config      string `long:"config" env:"MATRIX_FETCHER_CONFIG" description:"path to the configuration document" default:"bitcoin_config.json"`
	MetricsAddr string `long:"metrics-addr" env:"MATRIX_FETCHER_METRICS_ADDR" description:"address for metrics server, empty disables it"`
	Args        struct {
		Config string `positional-arg-name:"config-file" description:"configuration document, overrides --config"`
	} `positional-args:"yes"`
}

func (o options) configPath() string {
	if o.Args.Config != "" {
		return o.Args.Config
	}
	return o.Config
}

func main() {
	opts := options{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&opts, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, opts, logger); err != nil {
		logger.Fatal("block fetcher failed", zap.Error(err))
	}
}

func run(ctx context.Context, opts options, logger *zap.Logger) error {
	fs := afero.NewOsFs()

	cfg, err := config.Load(fs, opts.configPath())
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			logger.Error("configuration file not found", zap.String("path", opts.configPath()))
		}
		return fmt.Errorf("load config: %w", err)
	}
	network := model.Network(cfg.Network)
	logger.Info("bitcoin block fetcher started", zap.String("config", opts.configPath()))

	if opts.MetricsAddr != "" {
		startMetricsServer(ctx, opts.MetricsAddr, logger)
	}

	transport, err := bitcoin.NewHTTPTransport(cfg.Endpoint())
	if err != nil {
		return fmt.Errorf("init rpc transport: %w", err)
	}
	if proxy := transport.Proxy(); proxy != "" {
		logger.Info("routing node calls through proxy", zap.String("proxy", proxy))
	}

	node := bitcoin.NewNodeClient(
		transport,
		metrics.NewRPCClient(network),
		newLimiter(cfg.RPCRequestsPerSecond),
		cfg.RPCTimeoutDuration(),
	)

	transformer, err := service.NewBlockTransformer(node, service.TransformerConfig{
		ChunkSize:       cfg.TransactionChunkSize,
		MaxTransactions: cfg.MaxTransactionsPerBlock,
	}, clock.System{}, logger.Named("transformer"))
	if err != nil {
		return fmt.Errorf("init transformer: %w", err)
	}

	writer, err := storage.NewDocumentWriter(fs, cfg.OutputDir, metrics.NewDocumentWriter(), logger.Named("writer"))
	if err != nil {
		return fmt.Errorf("init document writer: %w", err)
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddress, logger.Named("zmq"))
	if err != nil {
		return err
	}

	poller, err := service.NewPoller(
		node,
		transformer,
		writer,
		metrics.NewPoller(network),
		service.PollerConfig{
			PollInterval:  cfg.PollIntervalDuration(),
			ErrorCooldown: cfg.ErrorCooldownDuration(),
			Network:       network,
		},
		logger.Named("poller"),
		blockSignal,
	)
	if err != nil {
		return fmt.Errorf("init poller: %w", err)
	}
	return poller.Run(ctx)
}

func newLimiter(rps int) ratelimit.Limiter {
	if rps <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(rps)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
