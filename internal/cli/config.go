package cli

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds user-level settings read from ~/.config/graphio/config.toml.
// Every field has a working default; the file is optional.
type Config struct {
	Cache   CacheConfig   `toml:"cache"`
	Serve   ServeConfig   `toml:"serve"`
	Convert ConvertConfig `toml:"convert"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Dir overrides the file cache directory (default ~/.cache/graphio/).
	Dir string `toml:"dir"`

	// Redis enables the Redis backend when set to a host:port address.
	Redis string `toml:"redis"`

	// TTLHours bounds artifact lifetime; 0 keeps entries forever.
	TTLHours int `toml:"ttl_hours"`
}

// ServeConfig configures the HTTP service.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `toml:"addr"`
}

// ConvertConfig configures conversion defaults.
type ConvertConfig struct {
	// Format is the fallback target format when --to is not given and
	// the interactive picker is dismissed or unavailable.
	Format string `toml:"format"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Serve:   ServeConfig{Addr: ":8080"},
		Convert: ConvertConfig{Format: "dot"},
	}
}

// LoadConfig reads a TOML config file, layering it over the defaults.
// A missing file returns os.ErrNotExist; other failures mean the file
// exists but cannot be used.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, os.ErrNotExist
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}
