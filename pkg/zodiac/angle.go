package zodiac

import (
	"fmt"
	"math"
)

// Finite reports whether deg is a usable angle (not NaN or ±Inf).
// Non-finite input violates the engine's input contract; callers at the
// boundary reject it with [ErrNotFinite] before any classification runs.
func Finite(deg float64) bool {
	return !math.IsNaN(deg) && !math.IsInf(deg, 0)
}

// Normalize folds deg into the canonical [0,360) range. The result is
// congruent to deg modulo 360. Every classification in the engine
// operates on normalized longitudes.
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Distance returns the angular distance between two longitudes, folded
// to the shorter arc. The result is always in [0,180].
func Distance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SignOf returns the sign containing the longitude: floor(lon/30) after
// normalization.
func SignOf(lon float64) Sign {
	return Sign(Normalize(lon) / 30)
}

// Split decomposes a longitude into its sign and the degree offset
// within that sign. The offset is in [0,30).
func Split(lon float64) (Sign, float64) {
	n := Normalize(lon)
	s := Sign(n / 30)
	return s, n - float64(s)*30
}

// FormatDMS renders a degree value as degrees, minutes and seconds,
// e.g. "100°30′15″". Seconds are truncated toward zero to keep the
// rendering stable at partition boundaries.
func FormatDMS(deg float64) string {
	d := int(deg)
	rem := (deg - float64(d)) * 60
	m := int(rem)
	s := int((rem - float64(m)) * 60)
	return fmt.Sprintf("%d°%02d′%02d″", d, m, s)
}

// FormatInSign renders a longitude as a sign-relative position,
// e.g. "10°30′00″ Leo".
func FormatInSign(lon float64) string {
	sign, within := Split(lon)
	return fmt.Sprintf("%s %s", FormatDMS(within), sign)
}
