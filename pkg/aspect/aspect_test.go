package aspect

import (
	"math"
	"testing"

	"github.com/rsharan/jyotish/pkg/zodiac"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		dist     float64
		wantType Type
		wantOK   bool
	}{
		{"ExactConjunction", 0, Conjunction, true},
		{"ConjunctionEdge", 6, Conjunction, true},
		{"NoAspect", 6.01, 0, false},
		{"ExactOpposition", 180, Opposition, true},
		{"OppositionLow", 174, Opposition, true},
		{"ExactTrine", 120, Trine, true},
		{"TrineEdge", 125, Trine, true},
		{"ExactSquare", 90, Square, true},
		{"ExactSextile", 60, Sextile, true},
		{"SextileEdge", 56, Sextile, true},
		{"SextileOut", 55.9, 0, false},
		{"Midway", 150, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := Match(tt.dist)
			if ok != tt.wantOK {
				t.Fatalf("Match(%v) ok = %v, want %v", tt.dist, ok, tt.wantOK)
			}
			if ok && def.Type != tt.wantType {
				t.Errorf("Match(%v) = %v, want %v", tt.dist, def.Type, tt.wantType)
			}
		})
	}
}

func TestBetween(t *testing.T) {
	// Ascendant at 100°, body at 280°: distance 180, exact opposition.
	rec, ok := Between(zodiac.Ascendant, zodiac.Saturn, 100, 280)
	if !ok {
		t.Fatal("expected an aspect")
	}
	if rec.Type != Opposition {
		t.Errorf("Type = %v, want Opposition", rec.Type)
	}
	if rec.Delta != 0 {
		t.Errorf("Delta = %v, want 0.00", rec.Delta)
	}
}

func TestBetweenDeltaSignAndRounding(t *testing.T) {
	tests := []struct {
		name      string
		lonA      float64
		lonB      float64
		wantType  Type
		wantDelta float64
	}{
		{"UnderExact", 0, 117.5, Trine, -2.5},
		{"OverExact", 0, 122.125, Trine, 2.13},
		{"NearConjunction", 10, 13.333, Conjunction, 3.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := Between(zodiac.Sun, zodiac.Moon, tt.lonA, tt.lonB)
			if !ok {
				t.Fatal("expected an aspect")
			}
			if rec.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", rec.Type, tt.wantType)
			}
			if math.Abs(rec.Delta-tt.wantDelta) > 1e-9 {
				t.Errorf("Delta = %v, want %v", rec.Delta, tt.wantDelta)
			}
		})
	}
}

func TestDetectAscendant(t *testing.T) {
	lons := map[zodiac.Body]float64{
		zodiac.Sun:    280, // opposition
		zodiac.Moon:   103, // conjunction
		zodiac.Mars:   250, // no aspect (150°)
		zodiac.Saturn: math.NaN(),
	}
	records := DetectAscendant(100, lons)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}
	// Canonical order: Sun before Moon.
	if records[0].BodyB != zodiac.Sun || records[0].Type != Opposition {
		t.Errorf("records[0] = %+v, want Sun opposition", records[0])
	}
	if records[1].BodyB != zodiac.Moon || records[1].Type != Conjunction {
		t.Errorf("records[1] = %+v, want Moon conjunction", records[1])
	}
	for _, r := range records {
		if r.BodyA != zodiac.Ascendant {
			t.Errorf("BodyA = %v, want Ascendant", r.BodyA)
		}
	}
}

func TestDetectPairs(t *testing.T) {
	lons := map[zodiac.Body]float64{
		zodiac.Sun:     0,
		zodiac.Moon:    120, // trine to Sun
		zodiac.Mercury: 90,  // square to Sun, no aspect to Moon (30°)
	}
	records := DetectPairs(lons)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}
	if records[0].BodyA != zodiac.Sun || records[0].BodyB != zodiac.Moon || records[0].Type != Trine {
		t.Errorf("records[0] = %+v, want Sun-Moon trine", records[0])
	}
	if records[1].BodyA != zodiac.Sun || records[1].BodyB != zodiac.Mercury || records[1].Type != Square {
		t.Errorf("records[1] = %+v, want Sun-Mercury square", records[1])
	}
}

func TestMergeUnorderedKeyLastWriteWins(t *testing.T) {
	a := []Record{
		{BodyA: zodiac.Sun, BodyB: zodiac.Moon, Type: Trine, Delta: 1.5},
		{BodyA: zodiac.Ascendant, BodyB: zodiac.Mars, Type: Square, Delta: 0.25},
	}
	b := []Record{
		// Same pair reversed: must collide with the first record.
		{BodyA: zodiac.Moon, BodyB: zodiac.Sun, Type: Trine, Delta: -2},
		{BodyA: zodiac.Venus, BodyB: zodiac.Jupiter, Type: Sextile, Delta: 0},
	}
	merged := Merge(a, b)
	if len(merged) != 3 {
		t.Fatalf("got %d records, want 3: %+v", len(merged), merged)
	}
	// The collision keeps the first record's position with the later value.
	if merged[0].Delta != -2 || merged[0].BodyA != zodiac.Moon {
		t.Errorf("merged[0] = %+v, want overwritten Moon-Sun trine", merged[0])
	}
	if merged[1].BodyB != zodiac.Mars {
		t.Errorf("merged[1] = %+v, want Ascendant-Mars square", merged[1])
	}
	if merged[2].BodyA != zodiac.Venus {
		t.Errorf("merged[2] = %+v, want Venus-Jupiter sextile", merged[2])
	}
}

func TestMergeDistinctTypesDoNotCollide(t *testing.T) {
	a := []Record{{BodyA: zodiac.Sun, BodyB: zodiac.Moon, Type: Trine}}
	b := []Record{{BodyA: zodiac.Sun, BodyB: zodiac.Moon, Type: Square}}
	if got := Merge(a, b); len(got) != 2 {
		t.Errorf("got %d records, want 2", len(got))
	}
}
