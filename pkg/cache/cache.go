// Package cache provides byte-level caching for computed charts and
// rendered artifacts.
//
// Keys are produced by a [Keyer] from the sha256 hash of a chart's
// canonical input, so identical inputs always hit the same entry. Three
// backends implement [Cache]:
//   - [FileCache] for the CLI (entries on the local filesystem)
//   - [RedisCache] for the API server (shared across instances)
//   - [NullCache] to disable caching entirely
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the engine's cacheable outputs.
type Keyer interface {
	// ChartKey is the key for a computed chart, from the input hash.
	ChartKey(inputHash string) string

	// ArtifactKey is the key for a rendered artifact (e.g. the aspect
	// graph SVG) derived from a chart.
	ArtifactKey(inputHash, format string) string
}

// DefaultKeyer produces globally scoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ChartKey generates a key for a computed chart.
func (k *DefaultKeyer) ChartKey(inputHash string) string {
	return "chart:" + inputHash
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(inputHash, format string) string {
	return hashKey("artifact", inputHash, format)
}
