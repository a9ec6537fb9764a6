package chart

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/rsharan/jyotish/pkg/aspect"
	"github.com/rsharan/jyotish/pkg/errors"
	"github.com/rsharan/jyotish/pkg/varga"
	"github.com/rsharan/jyotish/pkg/zodiac"
)

var testInstant = time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

// tenBodies is a fixed reference input used across tests.
func tenBodies() map[zodiac.Body]float64 {
	return map[zodiac.Body]float64{
		zodiac.Sun:     340.21,
		zodiac.Moon:    95.5,
		zodiac.Mercury: 325.8,
		zodiac.Venus:   312.4,
		zodiac.Mars:    290.15,
		zodiac.Jupiter: 42.3,
		zodiac.Saturn:  316.9,
		zodiac.Rahu:    20.75,
		zodiac.Ketu:    200.75,
		zodiac.Pluto:   277.0,
	}
}

func testInput() Input {
	asc := 215.42
	return Input{
		Ascendant: &asc,
		Bodies:    tenBodies(),
		Instant:   testInstant,
		Timezone:  "Asia/Kolkata",
	}
}

func TestComputeTables(t *testing.T) {
	c, err := Compute(testInput())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Ascendant plus ten bodies, in canonical order with Ascendant first.
	if len(c.Varga) != 11 {
		t.Fatalf("varga table has %d rows, want 11", len(c.Varga))
	}
	if c.Varga[0].Body != zodiac.Ascendant {
		t.Errorf("first varga row = %v, want Ascendant", c.Varga[0].Body)
	}
	if len(c.Nakshatras) != 11 {
		t.Fatalf("nakshatra table has %d rows, want 11", len(c.Nakshatras))
	}

	// D1 column is the rasi itself.
	for _, row := range c.Varga {
		if got := row.Sign(varga.D1); got != zodiac.SignOf(row.Longitude) {
			t.Errorf("%v D1 = %v, want %v", row.Body, got, zodiac.SignOf(row.Longitude))
		}
	}

	// Spot-check: Moon 95.5° is Cancer in rasi, Pushya pada 1.
	moon := c.Nakshatras[2]
	if moon.Body != zodiac.Moon || moon.Sign != zodiac.Cancer {
		t.Errorf("moon row = %+v", moon)
	}
	if moon.Nakshatra.Name != "Pushya" || moon.Nakshatra.Pada != 1 {
		t.Errorf("moon nakshatra = %+v", moon.Nakshatra)
	}
}

func TestComputePanchanga(t *testing.T) {
	c, err := Compute(testInput())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if c.Panchanga == nil {
		t.Fatal("panchanga must be present when Sun, Moon and timezone are usable")
	}
	if c.Panchanga.Vara != "Wednesday" {
		t.Errorf("vara = %q, want Wednesday", c.Panchanga.Vara)
	}
	if c.Panchanga.Nakshatra.Name != "Pushya" {
		t.Errorf("panchanga nakshatra = %q, want Pushya", c.Panchanga.Nakshatra.Name)
	}
}

func TestComputeMissingBodiesDropRows(t *testing.T) {
	in := testInput()
	delete(in.Bodies, zodiac.Pluto)
	delete(in.Bodies, zodiac.Rahu)

	c, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(c.Varga) != 9 {
		t.Errorf("varga table has %d rows, want 9", len(c.Varga))
	}
	for _, row := range c.Varga {
		if row.Body == zodiac.Pluto || row.Body == zodiac.Rahu {
			t.Errorf("dropped body %v still present", row.Body)
		}
	}
}

func TestComputeNoAscendant(t *testing.T) {
	in := testInput()
	in.Ascendant = nil

	c, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for _, row := range c.Varga {
		if row.Body == zodiac.Ascendant {
			t.Error("ascendant row present without an ascendant input")
		}
	}
	for _, rec := range c.Aspects {
		if rec.BodyA == zodiac.Ascendant || rec.BodyB == zodiac.Ascendant {
			t.Error("ascendant aspect present without an ascendant input")
		}
	}
}

func TestComputeMissingLuminaryDropsPanchanga(t *testing.T) {
	in := testInput()
	delete(in.Bodies, zodiac.Moon)

	c, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if c.Panchanga != nil {
		t.Error("panchanga must be absent without the Moon")
	}
}

func TestComputeBadTimezoneDropsPanchanga(t *testing.T) {
	in := testInput()
	in.Timezone = "Mars/Olympus"

	c, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute must not fail on an unresolvable timezone: %v", err)
	}
	if c.Panchanga != nil {
		t.Error("panchanga must be reported absent as a unit")
	}
	if len(c.Varga) == 0 {
		t.Error("tables must survive a timezone failure")
	}
}

func TestComputeRejectsNonFinite(t *testing.T) {
	in := testInput()
	in.Bodies[zodiac.Mars] = math.NaN()
	if _, err := Compute(in); !errors.Is(err, errors.ErrCodeInvalidLongitude) {
		t.Errorf("NaN body: err = %v, want INVALID_LONGITUDE", err)
	}

	in = testInput()
	bad := math.Inf(1)
	in.Ascendant = &bad
	if _, err := Compute(in); !errors.Is(err, errors.ErrCodeInvalidLongitude) {
		t.Errorf("Inf ascendant: err = %v, want INVALID_LONGITUDE", err)
	}
}

func TestComputeRejectsAscendantInBodyMap(t *testing.T) {
	in := testInput()
	in.Bodies[zodiac.Ascendant] = 100
	if _, err := Compute(in); !errors.Is(err, errors.ErrCodeInvalidBody) {
		t.Errorf("err = %v, want INVALID_BODY", err)
	}
}

func TestComputeMergesExternalAspects(t *testing.T) {
	in := testInput()
	// Upstream already reported Sun-Moon; the derived record for the
	// same unordered key must overwrite it in place.
	in.Aspects = []aspect.Record{
		{BodyA: zodiac.Moon, BodyB: zodiac.Sun, Type: aspect.Square, Delta: 99},
	}

	c, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Sun 340.21, Moon 95.5: distance 115.29, trine with delta -4.71.
	// Distinct type, so both records survive.
	var square, trine bool
	for _, rec := range c.Aspects {
		pair := (rec.BodyA == zodiac.Sun && rec.BodyB == zodiac.Moon) ||
			(rec.BodyA == zodiac.Moon && rec.BodyB == zodiac.Sun)
		if !pair {
			continue
		}
		switch rec.Type {
		case aspect.Square:
			square = true
		case aspect.Trine:
			trine = true
			if math.Abs(rec.Delta-(-4.71)) > 1e-9 {
				t.Errorf("trine delta = %v, want -4.71", rec.Delta)
			}
		}
	}
	if !square || !trine {
		t.Errorf("expected external square and derived trine, got %+v", c.Aspects)
	}
}

func TestComputeDeterminism(t *testing.T) {
	// Identical inputs must produce byte-identical serialized charts.
	var first bytes.Buffer
	c1, err := Compute(testInput())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if err := WriteJSON(c1, &first); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	for i := 0; i < 5; i++ {
		var again bytes.Buffer
		c2, err := Compute(testInput())
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}
		if err := WriteJSON(c2, &again); err != nil {
			t.Fatalf("WriteJSON: %v", err)
		}
		if !bytes.Equal(first.Bytes(), again.Bytes()) {
			t.Fatal("repeated computation produced different bytes")
		}
	}
}

func TestInputHashStable(t *testing.T) {
	h1, err := InputHash(testInput())
	if err != nil {
		t.Fatalf("InputHash: %v", err)
	}
	h2, err := InputHash(testInput())
	if err != nil {
		t.Fatalf("InputHash: %v", err)
	}
	if h1 != h2 {
		t.Error("equal inputs must hash equally")
	}

	in := testInput()
	in.Bodies[zodiac.Sun] = 12.0
	h3, err := InputHash(in)
	if err != nil {
		t.Fatalf("InputHash: %v", err)
	}
	if h3 == h1 {
		t.Error("different inputs must hash differently")
	}
}

func TestDashaPassThrough(t *testing.T) {
	in := testInput()
	in.Dashas = []DashaPeriod{
		{Lord: "Ketu", Start: testInstant, End: testInstant.AddDate(7, 0, 0)},
	}
	c, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(c.Dashas) != 1 || c.Dashas[0].Lord != "Ketu" {
		t.Errorf("dashas not passed through: %+v", c.Dashas)
	}
}
