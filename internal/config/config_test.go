package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rsharan/jyotish/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jyotish.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL.Duration != 24*time.Hour {
		t.Errorf("ttl = %v", cfg.Cache.TTL.Duration)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9000"

[cache]
backend = "redis"
ttl = "1h"

[cache.redis]
addr = "redis.internal:6379"
db = 2

[store]
uri = "mongodb://localhost:27017"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	// Untouched keys keep their defaults.
	if cfg.Server.ReadTimeout.Duration != 10*time.Second {
		t.Errorf("read timeout = %v", cfg.Server.ReadTimeout.Duration)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("ttl = %v", cfg.Cache.TTL.Duration)
	}
	if cfg.Store.URI != "mongodb://localhost:27017" {
		t.Errorf("store uri = %q", cfg.Store.URI)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "[cache]\nbackend = \"memcached\"\n")
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "server = [broken")
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestCacheDirConfigured(t *testing.T) {
	c := CacheConfig{Dir: "/tmp/jyotish-cache"}
	dir, err := c.CacheDir()
	if err != nil || dir != "/tmp/jyotish-cache" {
		t.Errorf("dir = %q, err = %v", dir, err)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := CacheConfig{}.CacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "jyotish") {
		t.Errorf("dir = %q", dir)
	}
}
