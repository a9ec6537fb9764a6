// Package aspect detects angular relationships between chart bodies.
// An aspect is declared when the shorter-arc distance between two
// longitudes falls within the orb of one of the classical aspect
// angles. Definitions are checked in a fixed priority order and the
// first match wins, so a pair can never carry two aspect types.
package aspect

import (
	"math"

	"github.com/rsharan/jyotish/pkg/zodiac"
)

// Type identifies an aspect relationship.
type Type int

// Aspect types in detection priority order.
const (
	Conjunction Type = iota
	Opposition
	Trine
	Square
	Sextile
)

var typeNames = [...]string{"Conjunction", "Opposition", "Trine", "Square", "Sextile"}

// String returns the aspect name.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Definition ties an aspect type to its exact angle and allowed orb.
type Definition struct {
	Type  Type
	Angle float64 // exact aspect angle in degrees
	Orb   float64 // maximum deviation from the exact angle
}

// Definitions is the ordered aspect table. Detection walks it top to
// bottom and stops at the first definition whose orb contains the
// angular distance. The order is part of the convention: a 3° distance
// is a conjunction even though it also sits 57° from a sextile's edge.
var Definitions = []Definition{
	{Conjunction, 0, 6},
	{Opposition, 180, 6},
	{Trine, 120, 5},
	{Square, 90, 5},
	{Sextile, 60, 4},
}

// Record is one detected aspect between two bodies. Delta is the signed
// deviation of the angular distance from the exact aspect angle,
// rounded to two decimal places.
type Record struct {
	BodyA zodiac.Body `json:"body_a"`
	BodyB zodiac.Body `json:"body_b"`
	Type  Type        `json:"type"`
	Delta float64     `json:"delta"`
}

// Match returns the first definition whose orb contains the angular
// distance, which must already be folded to [0,180].
func Match(dist float64) (Definition, bool) {
	for _, def := range Definitions {
		if math.Abs(dist-def.Angle) <= def.Orb {
			return def, true
		}
	}
	return Definition{}, false
}

// Between detects the aspect, if any, between two bodies at the given
// longitudes. The second return value reports whether an aspect was
// found.
func Between(a, b zodiac.Body, lonA, lonB float64) (Record, bool) {
	dist := zodiac.Distance(lonA, lonB)
	def, ok := Match(dist)
	if !ok {
		return Record{}, false
	}
	delta := math.Round((dist-def.Angle)*100) / 100
	return Record{BodyA: a, BodyB: b, Type: def.Type, Delta: delta}, true
}

// DetectAscendant finds aspects between the ascendant and every body in
// lons. Bodies are visited in canonical order so the output is
// deterministic. Bodies with non-finite longitudes are skipped.
func DetectAscendant(asc float64, lons map[zodiac.Body]float64) []Record {
	var records []Record
	for _, b := range zodiac.Planets {
		lon, ok := lons[b]
		if !ok || !zodiac.Finite(lon) {
			continue
		}
		if rec, found := Between(zodiac.Ascendant, b, asc, lon); found {
			records = append(records, rec)
		}
	}
	return records
}

// DetectPairs finds aspects between every unordered pair of bodies in
// lons, visiting pairs in canonical order. Bodies with non-finite
// longitudes are skipped.
func DetectPairs(lons map[zodiac.Body]float64) []Record {
	var records []Record
	for i, a := range zodiac.Planets {
		lonA, okA := lons[a]
		if !okA || !zodiac.Finite(lonA) {
			continue
		}
		for _, b := range zodiac.Planets[i+1:] {
			lonB, okB := lons[b]
			if !okB || !zodiac.Finite(lonB) {
				continue
			}
			if rec, found := Between(a, b, lonA, lonB); found {
				records = append(records, rec)
			}
		}
	}
	return records
}

// mergeKey is the unordered identity of a record: the body pair is
// direction-insensitive, so (Sun, Trine, Moon) and (Moon, Trine, Sun)
// collide.
type mergeKey struct {
	lo, hi zodiac.Body
	typ    Type
}

func keyOf(r Record) mergeKey {
	lo, hi := r.BodyA, r.BodyB
	if lo > hi {
		lo, hi = hi, lo
	}
	return mergeKey{lo: lo, hi: hi, typ: r.Type}
}

// Merge combines aspect lists, deduplicating by the unordered
// (bodyA, type, bodyB) key. On collision the later record overwrites
// the earlier one while keeping the earlier record's position, so the
// output order depends only on first appearances and is deterministic.
func Merge(lists ...[]Record) []Record {
	var out []Record
	index := make(map[mergeKey]int)
	for _, list := range lists {
		for _, rec := range list {
			k := keyOf(rec)
			if i, seen := index[k]; seen {
				out[i] = rec
				continue
			}
			index[k] = len(out)
			out = append(out, rec)
		}
	}
	return out
}
