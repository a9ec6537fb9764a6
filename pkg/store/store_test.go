package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rsharan/jyotish/pkg/chart"
	"github.com/rsharan/jyotish/pkg/errors"
	"github.com/rsharan/jyotish/pkg/zodiac"
)

func testRecord(t *testing.T) Record {
	t.Helper()
	asc := 215.4
	in := chart.Input{
		Ascendant: &asc,
		Bodies: map[zodiac.Body]float64{
			zodiac.Sun:  340.2,
			zodiac.Moon: 95.5,
		},
		Instant:  time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC),
		Timezone: "UTC",
	}
	c, err := chart.Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	rec, err := NewRecord(in, c)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	return rec
}

func TestNewRecord(t *testing.T) {
	rec := testRecord(t)
	if rec.ID == "" {
		t.Error("record must get an ID")
	}
	if rec.InputHash == "" {
		t.Error("record must carry the input hash")
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(rec.Chart, &decoded); err != nil {
		t.Fatalf("chart blob is not valid JSON: %v", err)
	}
	if _, ok := decoded["varga"]; !ok {
		t.Error("chart blob missing varga table")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	rec := testRecord(t)
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.InputHash != rec.InputHash {
		t.Errorf("InputHash = %q, want %q", got.InputHash, rec.InputHash)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, errors.ErrCodeChartNotFound) {
		t.Errorf("err = %v, want CHART_NOT_FOUND", err)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	older := testRecord(t)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := testRecord(t)

	if err := s.Save(ctx, older); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, newer); err != nil {
		t.Fatal(err)
	}

	recs, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("List returned %d records, want 2", len(recs))
	}
	if recs[0].ID != newer.ID {
		t.Error("List must return newest first")
	}

	limited, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("List limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("List(1) returned %d records", len(limited))
	}
}
