// Package zodiac provides the shared vocabulary of the jyotish engine:
// zodiacal signs, sign qualities, celestial bodies, and normalized
// ecliptic angles.
//
// All angles throughout the engine are sidereal ecliptic longitudes in
// degrees, normalized to [0,360). Signs are indexed 0-11 starting at
// Aries; each sign spans exactly 30°.
package zodiac

import "errors"

// ErrNotFinite is returned when a longitude is NaN or infinite. Such
// values violate the input contract and are rejected outright rather
// than coerced.
var ErrNotFinite = errors.New("longitude must be finite")

// Sign is the ordinal position of a zodiacal sign, starting at Aries=0.
type Sign int

// The twelve signs in zodiacal order.
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// NumSigns is the number of zodiacal signs.
const NumSigns = 12

var signNames = [NumSigns]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the sign's English name, or "Unknown" for out-of-range values.
func (s Sign) String() string {
	if s < 0 || s >= NumSigns {
		return "Unknown"
	}
	return signNames[s]
}

// Valid reports whether s is within the 0-11 sign range.
func (s Sign) Valid() bool { return s >= 0 && s < NumSigns }

// MarshalText implements encoding.TextMarshaler so signs serialize as
// their names.
func (s Sign) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Offset returns the sign n places after s in zodiacal order, wrapping
// around the circle. Negative offsets wrap backwards.
func (s Sign) Offset(n int) Sign {
	return Sign(((int(s)+n)%NumSigns + NumSigns) % NumSigns)
}

// OddOrdinal reports whether s is an odd-numbered sign in the
// traditional 1-based counting (Aries=1st, Taurus=2nd, ...).
//
// Note the inversion: a zero-based index that is EVEN corresponds to an
// ODD 1-based sign. Aries (index 0) is the 1st and therefore odd. Varga
// rules are stated in the 1-based convention, so this predicate must
// not be "simplified" to index parity.
func (s Sign) OddOrdinal() bool { return s%2 == 0 }

// Quality is the threefold modality of a sign.
type Quality int

// Sign qualities, cycling movable → fixed → dual every three signs.
const (
	Movable Quality = iota
	Fixed
	Dual
)

var qualityNames = [...]string{"Movable", "Fixed", "Dual"}

// String returns the quality's English name.
func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return "Unknown"
	}
	return qualityNames[q]
}

// Quality returns the sign's modality. Aries is movable, Taurus fixed,
// Gemini dual, and the pattern repeats around the zodiac.
func (s Sign) Quality() Quality { return Quality(s % 3) }
