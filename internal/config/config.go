// Package config loads the jyotish server and cache configuration from
// a TOML file, layered over built-in defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rsharan/jyotish/pkg/errors"
)

// appName names the XDG cache subdirectory.
const appName = "jyotish"

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     duration `toml:"read_timeout"`
	WriteTimeout    duration `toml:"write_timeout"`
	ShutdownTimeout duration `toml:"shutdown_timeout"`
}

// CacheConfig selects the chart cache backend. Backend is "file",
// "redis" or "none".
type CacheConfig struct {
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"` // file backend; empty means the XDG default
	TTL     duration `toml:"ttl"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreConfig configures chart persistence. An empty URI disables the
// Mongo store; the API then keeps saved charts in memory only.
type StoreConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// duration lets TTLs be written as "24h" in the TOML file.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     duration{10 * time.Second},
			WriteTimeout:    duration{30 * time.Second},
			ShutdownTimeout: duration{10 * time.Second},
		},
		Cache: CacheConfig{
			Backend: "file",
			TTL:     duration{24 * time.Hour},
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
	}
}

// Load reads a TOML configuration file over the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	switch cfg.Cache.Backend {
	case "file", "redis", "none":
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", cfg.Cache.Backend)
	}
	return cfg, nil
}

// CacheDir resolves the file-cache directory: the configured one, or
// the XDG standard (~/.cache/jyotish/).
func (c CacheConfig) CacheDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
