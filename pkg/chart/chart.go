// Package chart orchestrates the jyotish engine. It turns one set of
// ephemeris outputs (an ascendant degree plus per-body ecliptic
// longitudes) into the derived report data: the eight-column divisional
// table, the nakshatra table, the panchanga and the aspect list.
//
// Compute is a pure function of its input: no I/O, no shared state, and
// identical inputs always produce identical charts. Concurrent chart
// computations need no locking.
package chart

import (
	"time"

	"github.com/rsharan/jyotish/pkg/aspect"
	"github.com/rsharan/jyotish/pkg/errors"
	"github.com/rsharan/jyotish/pkg/nakshatra"
	"github.com/rsharan/jyotish/pkg/panchanga"
	"github.com/rsharan/jyotish/pkg/varga"
	"github.com/rsharan/jyotish/pkg/zodiac"
)

// DashaPeriod is one entry of an externally generated Vimshottari dasha
// list. The engine never computes these; they pass through to the
// output record untouched.
type DashaPeriod struct {
	Lord  string    `json:"lord"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Input is the ephemeris-boundary contract. Bodies missing from the map
// are simply absent (their table rows are dropped); a nil Ascendant
// means no ascendant was supplied. Non-finite values are rejected by
// Compute, never coerced.
type Input struct {
	Ascendant *float64
	Bodies    map[zodiac.Body]float64
	Instant   time.Time
	Timezone  string

	// Aspects optionally carries an upstream aspect list to merge with
	// the ones derived here (later records win on key collision).
	Aspects []aspect.Record

	// Dashas is the pass-through dasha period list.
	Dashas []DashaPeriod
}

// VargaRow is one body's divisional placements, one sign per system in
// [varga.Systems] order.
type VargaRow struct {
	Body      zodiac.Body
	Longitude float64
	Signs     [8]zodiac.Sign
}

// Sign returns the row's placement under the given system.
func (r VargaRow) Sign(sys varga.System) zodiac.Sign { return r.Signs[sys] }

// NakshatraRow is one body's lunar-mansion placement.
type NakshatraRow struct {
	Body      zodiac.Body
	Longitude float64
	Sign      zodiac.Sign
	Nakshatra nakshatra.Info
}

// Chart is the full derived report for one input. It is immutable once
// returned and safe to share between goroutines.
type Chart struct {
	Varga      []VargaRow
	Nakshatras []NakshatraRow

	// Panchanga is nil when the Sun or Moon longitude is absent or the
	// timezone cannot be resolved; the five limbs are presented as a
	// unit, never partially.
	Panchanga *panchanga.Result

	Aspects []aspect.Record
	Dashas  []DashaPeriod
}

// Compute derives the chart from the input. It returns an error only
// for input-contract violations (a NaN or infinite longitude, or an
// unknown body in the map); missing bodies and an unresolvable timezone
// degrade the affected tables instead of failing the whole computation.
func Compute(in Input) (*Chart, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	lons := make(map[zodiac.Body]float64, len(in.Bodies)+1)
	for b, lon := range in.Bodies {
		lons[b] = zodiac.Normalize(lon)
	}
	if in.Ascendant != nil {
		lons[zodiac.Ascendant] = zodiac.Normalize(*in.Ascendant)
	}

	c := &Chart{
		Varga:      vargaTable(lons),
		Nakshatras: nakshatraTable(lons),
		Dashas:     in.Dashas,
	}

	if sun, ok := lons[zodiac.Sun]; ok {
		if moon, okMoon := lons[zodiac.Moon]; okMoon {
			// A timezone failure leaves the panchanga absent as a whole:
			// the vara depends on it and the limbs are never split up.
			if res, err := panchanga.Compute(sun, moon, in.Instant, in.Timezone); err == nil {
				c.Panchanga = &res
			}
		}
	}

	pairs := aspect.DetectPairs(in.Bodies)
	var asc []aspect.Record
	if in.Ascendant != nil {
		asc = aspect.DetectAscendant(*in.Ascendant, in.Bodies)
	}
	c.Aspects = aspect.Merge(in.Aspects, pairs, asc)

	return c, nil
}

// validate rejects input-contract violations before any classification
// runs: NaN/Inf longitudes and unknown bodies.
func validate(in Input) error {
	if in.Ascendant != nil {
		if err := errors.ValidateLongitude(zodiac.Ascendant.String(), *in.Ascendant); err != nil {
			return err
		}
	}
	for b, lon := range in.Bodies {
		if !b.Valid() || b == zodiac.Ascendant {
			return errors.New(errors.ErrCodeInvalidBody, "unexpected body %d in longitude map", int(b))
		}
		if err := errors.ValidateLongitude(b.String(), lon); err != nil {
			return err
		}
	}
	return nil
}

// vargaTable builds one divisional row per present body, in canonical
// body order.
func vargaTable(lons map[zodiac.Body]float64) []VargaRow {
	var rows []VargaRow
	for _, b := range zodiac.Bodies {
		lon, ok := lons[b]
		if !ok {
			continue
		}
		row := VargaRow{Body: b, Longitude: lon}
		sign, within := zodiac.Split(lon)
		for i, sys := range varga.Systems {
			row.Signs[i] = varga.Map(sys, sign, within)
		}
		rows = append(rows, row)
	}
	return rows
}

// nakshatraTable builds one mansion row per present body, in canonical
// body order.
func nakshatraTable(lons map[zodiac.Body]float64) []NakshatraRow {
	var rows []NakshatraRow
	for _, b := range zodiac.Bodies {
		lon, ok := lons[b]
		if !ok {
			continue
		}
		rows = append(rows, NakshatraRow{
			Body:      b,
			Longitude: lon,
			Sign:      zodiac.SignOf(lon),
			Nakshatra: nakshatra.Resolve(lon),
		})
	}
	return rows
}
