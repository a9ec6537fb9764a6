// Package varga implements the divisional-chart sign mappings of Vedic
// astrology. Each varga system partitions a 30° sign into equal parts
// (except the irregular D30) and reassigns every part to a target sign
// according to its own classical rule.
//
// The mappings are pure functions of (sign, degree-within-sign). Callers
// are responsible for reducing a full longitude to its sign and
// within-sign degree first, typically with [zodiac.Split].
package varga

import "github.com/rsharan/jyotish/pkg/zodiac"

// System identifies a divisional chart.
type System int

// The eight supported divisional charts, in customary order.
const (
	D1  System = iota // Rasi (identity, no subdivision)
	D2                // Hora
	D3                // Drekkana
	D7                // Saptamsa
	D9                // Navamsa
	D10               // Dasamsa
	D12               // Dwadasamsa
	D30               // Trimsamsa
)

// Systems lists every divisional chart in table-column order.
var Systems = []System{D1, D2, D3, D7, D9, D10, D12, D30}

var systemCodes = [...]string{"D1", "D2", "D3", "D7", "D9", "D10", "D12", "D30"}

var systemNames = [...]string{
	"Rasi", "Hora", "Drekkana", "Saptamsa", "Navamsa", "Dasamsa", "Dwadasamsa", "Trimsamsa",
}

// String returns the short code, e.g. "D9".
func (s System) String() string {
	if s < 0 || int(s) >= len(systemCodes) {
		return "Unknown"
	}
	return systemCodes[s]
}

// Name returns the Sanskrit chart name, e.g. "Navamsa".
func (s System) Name() string {
	if s < 0 || int(s) >= len(systemNames) {
		return "Unknown"
	}
	return systemNames[s]
}

// ParseSystem resolves a system from its short code ("D9") or Sanskrit
// name ("Navamsa"). The second return value reports whether the name was
// recognized.
func ParseSystem(name string) (System, bool) {
	for i := range systemCodes {
		if systemCodes[i] == name || systemNames[i] == name {
			return System(i), true
		}
	}
	return 0, false
}

// Map returns the target sign for a body placed at the given within-sign
// degree under the given divisional chart.
//
// The caller must guarantee within ∈ [0,30); Map does not re-normalize a
// full longitude. Degrees exactly on a partition edge resolve to the
// lower band (floor semantics), so the mapping is total and
// deterministic over the half-open interval.
func Map(system System, sign zodiac.Sign, within float64) zodiac.Sign {
	switch system {
	case D1:
		return sign
	case D2:
		return hora(sign, within)
	case D3:
		return drekkana(sign, within)
	case D7:
		return saptamsa(sign, within)
	case D9:
		return navamsa(sign, within)
	case D10:
		return dasamsa(sign, within)
	case D12:
		return dwadasamsa(sign, within)
	case D30:
		return trimsamsa(sign, within)
	}
	return sign
}

// MapLongitude is a convenience wrapper that splits a full longitude
// into sign and within-sign degree before mapping.
func MapLongitude(system System, lon float64) zodiac.Sign {
	sign, within := zodiac.Split(lon)
	return Map(system, sign, within)
}

// part returns the 0-indexed subdivision containing within, for n equal
// parts of a 30° sign.
func part(within float64, n int) int {
	p := int(within / (30 / float64(n)))
	if p >= n { // guard the upper edge against float error at within≈30
		p = n - 1
	}
	return p
}

// hora maps to one of the two luminary signs only. Odd signs run
// Leo then Cancer; even signs reverse the order.
func hora(sign zodiac.Sign, within float64) zodiac.Sign {
	first := within < 15
	if sign.OddOrdinal() {
		if first {
			return zodiac.Leo
		}
		return zodiac.Cancer
	}
	if first {
		return zodiac.Cancer
	}
	return zodiac.Leo
}

// drekkana offsets by trine: the three decanates fall on the sign
// itself, the 5th from it, and the 9th from it.
var drekkanaOffsets = [3]int{0, 4, 8}

func drekkana(sign zodiac.Sign, within float64) zodiac.Sign {
	return sign.Offset(drekkanaOffsets[part(within, 3)])
}

// saptamsa counts from the sign itself for odd signs and from the 7th
// sign for even signs.
func saptamsa(sign zodiac.Sign, within float64) zodiac.Sign {
	base := sign
	if !sign.OddOrdinal() {
		base = sign.Offset(6)
	}
	return base.Offset(part(within, 7))
}

// navamsa counts from the sign itself for movable signs, the 9th for
// fixed signs, and the 5th for dual signs.
func navamsa(sign zodiac.Sign, within float64) zodiac.Sign {
	base := sign
	switch sign.Quality() {
	case zodiac.Fixed:
		base = sign.Offset(8)
	case zodiac.Dual:
		base = sign.Offset(4)
	}
	return base.Offset(part(within, 9))
}

// dasamsa counts from the sign itself for odd signs and from the 9th
// sign for even signs.
func dasamsa(sign zodiac.Sign, within float64) zodiac.Sign {
	base := sign
	if !sign.OddOrdinal() {
		base = sign.Offset(8)
	}
	return base.Offset(part(within, 10))
}

// dwadasamsa counts the twelve 2.5° parts from the sign itself.
func dwadasamsa(sign zodiac.Sign, within float64) zodiac.Sign {
	return sign.Offset(part(within, 12))
}

// trimsamsa uses irregular degree bands of 5, 5, 8, 7 and 5 degrees.
// Odd and even signs each map their bands to a fixed sequence of five
// planetary-ruled signs.
var (
	trimsamsaEdges = [5]float64{5, 10, 18, 25, 30}
	trimsamsaOdd   = [5]zodiac.Sign{zodiac.Aries, zodiac.Aquarius, zodiac.Sagittarius, zodiac.Gemini, zodiac.Libra}
	trimsamsaEven  = [5]zodiac.Sign{zodiac.Scorpio, zodiac.Capricorn, zodiac.Pisces, zodiac.Virgo, zodiac.Taurus}
)

func trimsamsa(sign zodiac.Sign, within float64) zodiac.Sign {
	band := len(trimsamsaEdges) - 1
	for i, edge := range trimsamsaEdges {
		if within < edge {
			band = i
			break
		}
	}
	if sign.OddOrdinal() {
		return trimsamsaOdd[band]
	}
	return trimsamsaEven[band]
}
