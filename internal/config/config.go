// Package config loads the fetcher configuration document.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/bitcoin"
	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
)

// EnvPrefix prefixes environment overrides, e.g. MATRIX_FETCHER_RPC_URL.
const EnvPrefix = "MATRIX_FETCHER"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Config mirrors bitcoin_config.json. Intervals are expressed in seconds.
type Config struct {
	RPCURL                  string  `mapstructure:"rpc_url"`
	RPCUser                 string  `mapstructure:"rpc_user"`
	RPCPassword             string  `mapstructure:"rpc_password"`
	UseTor                  bool    `mapstructure:"use_tor"`
	TorProxy                string  `mapstructure:"tor_proxy"`
	Network                 string  `mapstructure:"network"`
	OutputDir               string  `mapstructure:"output_dir"`
	PollInterval            float64 `mapstructure:"poll_interval"`
	ErrorCooldown           float64 `mapstructure:"error_cooldown"`
	RPCTimeout              float64 `mapstructure:"rpc_timeout"`
	RPCRequestsPerSecond    int     `mapstructure:"rpc_requests_per_second"`
	TransactionChunkSize    int     `mapstructure:"transaction_chunk_size"`
	MaxTransactionsPerBlock int     `mapstructure:"max_transactions_per_block"`
	ZMQAddress              string  `mapstructure:"zmq_address"`
}

func defaultConfig() *Config {
	return &Config{
		TorProxy:                "socks5h://127.0.0.1:9050",
		OutputDir:               "./data",
		PollInterval:            30,
		ErrorCooldown:           10,
		RPCTimeout:              bitcoin.DefaultRPCTimeout.Seconds(),
		TransactionChunkSize:    10,
		MaxTransactionsPerBlock: 100,
	}
}

// Load reads the document at path from fs, applies defaults and environment
// overrides, and validates the result.
func Load(fs afero.Fs, path string) (*Config, error) {
	if _, err := fs.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	v := viper.New()
	v.SetFs(fs)
	if err := setDefaults(v, defaultConfig()); err != nil {
		return nil, err
	}

	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, defaults *Config) error {
	defaultsMap := make(map[string]interface{})
	if err := mapstructure.Decode(defaults, &defaultsMap); err != nil {
		return fmt.Errorf("failed to set config defaults: %w", err)
	}
	for key, value := range defaultsMap {
		v.SetDefault(key, value)
	}
	return nil
}

// Validate reports the first invalid setting wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("%w: rpc_url is required", ErrInvalidConfig)
	}
	if _, err := url.Parse(c.RPCURL); err != nil {
		return fmt.Errorf("%w: rpc_url: %w", ErrInvalidConfig, err)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is required", ErrInvalidConfig)
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("%w: poll_interval must not be negative", ErrInvalidConfig)
	}
	if c.ErrorCooldown < 0 {
		return fmt.Errorf("%w: error_cooldown must not be negative", ErrInvalidConfig)
	}
	if c.RPCTimeout <= 0 {
		return fmt.Errorf("%w: rpc_timeout must be positive", ErrInvalidConfig)
	}
	if c.RPCRequestsPerSecond < 0 {
		return fmt.Errorf("%w: rpc_requests_per_second must not be negative", ErrInvalidConfig)
	}
	if c.TransactionChunkSize <= 0 {
		return fmt.Errorf("%w: transaction_chunk_size must be positive", ErrInvalidConfig)
	}
	if c.MaxTransactionsPerBlock < 0 {
		return fmt.Errorf("%w: max_transactions_per_block must not be negative", ErrInvalidConfig)
	}
	if c.Network != "" {
		if _, err := bitcoin.ChainParams(model.Network(c.Network)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Endpoint returns the node connection settings.
func (c *Config) Endpoint() bitcoin.RPCEndpoint {
	return bitcoin.RPCEndpoint{
		URL:      c.RPCURL,
		User:     c.RPCUser,
		Password: c.RPCPassword,
		UseProxy: c.UseTor,
		ProxyURL: c.TorProxy,
	}
}

func (c *Config) PollIntervalDuration() time.Duration {
	return seconds(c.PollInterval)
}

func (c *Config) ErrorCooldownDuration() time.Duration {
	return seconds(c.ErrorCooldown)
}

func (c *Config) RPCTimeoutDuration() time.Duration {
	return seconds(c.RPCTimeout)
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
