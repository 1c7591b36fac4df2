// Package config binds ironsyncd's on-disk and flag-provided
// configuration onto a typed Config value using spf13/viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full set of tunables ironsyncd reads at startup.
type Config struct {
	Sync  SyncConfig  `mapstructure:"sync"`
	Store StoreConfig `mapstructure:"store"`
	Comms CommsConfig `mapstructure:"comms"`
}

type SyncConfig struct {
	MaxHeaderRequestRetryAttempts int `mapstructure:"max_header_request_retry_attempts"`
	MaxBlockRequestRetryAttempts  int `mapstructure:"max_block_request_retry_attempts"`
}

type StoreConfig struct {
	DataDir    string `mapstructure:"data_dir"`
	NumWorkers int    `mapstructure:"num_workers"`
}

type CommsConfig struct {
	MinPeers        int      `mapstructure:"min_peers"`
	ListenAddresses []string `mapstructure:"listen_addresses"`
}

// Default returns the configuration ironsyncd starts from before any
// file or flag overrides are applied.
func Default() Config {
	return Config{
		Sync: SyncConfig{
			MaxHeaderRequestRetryAttempts: 5,
			MaxBlockRequestRetryAttempts:  5,
		},
		Store: StoreConfig{
			DataDir:    "./data",
			NumWorkers: 4,
		},
		Comms: CommsConfig{
			MinPeers:        3,
			ListenAddresses: []string{"/ip4/0.0.0.0/tcp/0"},
		},
	}
}

// Load reads configuration from the compiled-in defaults, path (if
// non-empty), and environment variables prefixed IRONSYNC_, in
// increasing order of precedence for whichever source sets a key.
func Load(path string) (Config, error) {
	v := viper.New()
	cfg := Default()

	v.SetEnvPrefix("ironsync")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var out Config
	if err := v.Unmarshal(&out); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return out, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("sync.max_header_request_retry_attempts", cfg.Sync.MaxHeaderRequestRetryAttempts)
	v.SetDefault("sync.max_block_request_retry_attempts", cfg.Sync.MaxBlockRequestRetryAttempts)
	v.SetDefault("store.data_dir", cfg.Store.DataDir)
	v.SetDefault("store.num_workers", cfg.Store.NumWorkers)
	v.SetDefault("comms.min_peers", cfg.Comms.MinPeers)
	v.SetDefault("comms.listen_addresses", cfg.Comms.ListenAddresses)
}
