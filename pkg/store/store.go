// Package store persists computed charts so they can be fetched again
// by ID. Two backends implement [Store]: [MongoStore] for the API
// server and [MemoryStore] for tests.
//
// Records carry the chart input and output as opaque JSON blobs: the
// engine's serialization is the source of truth and the store never
// reinterprets it.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rsharan/jyotish/pkg/chart"
	"github.com/rsharan/jyotish/pkg/errors"
)

// Record is one persisted chart computation.
type Record struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	InputHash string    `bson:"input_hash" json:"input_hash"`
	Input     []byte    `bson:"input" json:"-"`
	Chart     []byte    `bson:"chart" json:"-"`
}

// NewRecord assembles a record from a computed chart, assigning a fresh
// UUID and capturing the input hash used for cache keys.
func NewRecord(in chart.Input, c *chart.Chart) (Record, error) {
	inputData, err := json.Marshal(in)
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeInternal, err, "serialize chart input")
	}
	chartData, err := json.Marshal(c)
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeInternal, err, "serialize chart")
	}
	hash, err := chart.InputHash(in)
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeInternal, err, "hash chart input")
	}
	return Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		InputHash: hash,
		Input:     inputData,
		Chart:     chartData,
	}, nil
}

// Store persists chart records.
type Store interface {
	// Save inserts or replaces a record by ID.
	Save(ctx context.Context, rec Record) error

	// Get fetches a record by ID. A missing record yields an error with
	// code [errors.ErrCodeChartNotFound].
	Get(ctx context.Context, id string) (Record, error)

	// List returns the most recent records, newest first, up to limit.
	List(ctx context.Context, limit int) ([]Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
