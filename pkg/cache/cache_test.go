package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store values")
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	key := "chart:abc123"
	value := []byte(`{"varga":[]}`)

	if err := c.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if string(data) != string(value) {
		t.Errorf("Get = %q, want %q", data, value)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("expected miss after Delete")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expected expired entry to miss")
	}
}

func TestFileCacheDeleteMissing(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.ChartKey("abc123"); got != "chart:abc123" {
		t.Errorf("ChartKey = %q", got)
	}

	// Different formats must produce different artifact keys.
	svg := k.ArtifactKey("abc123", "svg")
	png := k.ArtifactKey("abc123", "png")
	if svg == png {
		t.Error("ArtifactKey must include the format")
	}
	if !strings.HasPrefix(svg, "artifact:") {
		t.Errorf("ArtifactKey = %q, want artifact: prefix", svg)
	}
}

func TestScopedKeyer(t *testing.T) {
	k := NewScopedKeyer(NewDefaultKeyer(), "staging:")

	if got := k.ChartKey("abc"); got != "staging:chart:abc" {
		t.Errorf("ChartKey = %q", got)
	}
	if !strings.HasPrefix(k.ArtifactKey("abc", "svg"), "staging:artifact:") {
		t.Errorf("ArtifactKey = %q", k.ArtifactKey("abc", "svg"))
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	k := NewScopedKeyer(nil, "p:")
	if got := k.ChartKey("x"); got != "p:chart:x" {
		t.Errorf("ChartKey = %q", got)
	}
}

func TestHashDeterminism(t *testing.T) {
	a := Hash([]byte("same input"))
	b := Hash([]byte("same input"))
	if a != b {
		t.Error("Hash must be deterministic")
	}
	if len(a) != 64 {
		t.Errorf("Hash length = %d, want 64 hex chars", len(a))
	}
	if Hash([]byte("other")) == a {
		t.Error("different inputs must hash differently")
	}
}
