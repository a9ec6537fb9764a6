package zodiac

import "fmt"

// Body identifies a chart participant. The ascendant is a pseudo-body:
// it is sourced from its own input field but flows through the same
// classification pipeline as the planets.
type Body int

// Chart bodies in canonical table order.
const (
	Ascendant Body = iota
	Sun
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Rahu
	Ketu
	Uranus
	Neptune
	Pluto
)

var bodyNames = [...]string{
	"Ascendant", "Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Rahu", "Ketu", "Uranus", "Neptune", "Pluto",
}

// Bodies lists every body in canonical order. Tables iterate this slice
// so that output row order is deterministic across invocations.
var Bodies = []Body{
	Ascendant, Sun, Moon, Mercury, Venus, Mars,
	Jupiter, Saturn, Rahu, Ketu, Uranus, Neptune, Pluto,
}

// Planets lists the bodies sourced from the ephemeris, i.e. everything
// except the ascendant.
var Planets = Bodies[1:]

// String returns the body's English name, or "Unknown" for out-of-range values.
func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return "Unknown"
	}
	return bodyNames[b]
}

// Valid reports whether b is a known body.
func (b Body) Valid() bool { return b >= 0 && int(b) < len(bodyNames) }

// MarshalText implements encoding.TextMarshaler so bodies serialize as
// their names.
func (b Body) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// names ParseBody does.
func (b *Body) UnmarshalText(text []byte) error {
	parsed, ok := ParseBody(string(text))
	if !ok {
		return fmt.Errorf("unknown body %q", text)
	}
	*b = parsed
	return nil
}

// ParseBody resolves a body from its English name. The second return
// value reports whether the name was recognized.
func ParseBody(name string) (Body, bool) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), true
		}
	}
	return 0, false
}
