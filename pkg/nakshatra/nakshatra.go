// Package nakshatra maps ecliptic longitudes onto the 27 lunar mansions
// of the sidereal zodiac. Each nakshatra spans 360/27 = 13°20′ and is
// divided into four padas of 3°20′. Every mansion has a ruling planet
// drawn from a fixed nine-lord cycle.
package nakshatra

import "github.com/rsharan/jyotish/pkg/zodiac"

// Count is the number of lunar mansions.
const Count = 27

// Span is the angular width of one nakshatra in degrees (13°20′).
const Span = 360.0 / Count

// PadaSpan is the angular width of one pada in degrees (3°20′).
const PadaSpan = Span / 4

var names = [Count]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// lords is the Vimshottari lord cycle. It repeats three times around
// the zodiac, so the lord of mansion i is lords[i mod 9].
var lords = [9]zodiac.Body{
	zodiac.Ketu, zodiac.Venus, zodiac.Sun, zodiac.Moon, zodiac.Mars,
	zodiac.Rahu, zodiac.Jupiter, zodiac.Saturn, zodiac.Mercury,
}

// Info describes the lunar mansion containing a longitude. Pada and
// Lord are derived from the longitude alone and are never stored
// independently of it.
type Info struct {
	Index int         `json:"index"` // 0-26
	Name  string      `json:"name"`
	Pada  int         `json:"pada"` // 1-4
	Lord  zodiac.Body `json:"lord"` // serializes as the planet name
}

// Resolve returns the nakshatra placement for a longitude. The
// longitude is normalized first; a degree exactly on a span edge
// resolves to the lower mansion (floor semantics).
//
// Non-finite input is rejected upstream at the chart boundary; Resolve
// assumes a finite value.
func Resolve(lon float64) Info {
	n := zodiac.Normalize(lon)
	idx := int(n / Span)
	if idx >= Count { // float guard for n≈360
		idx = Count - 1
	}
	offset := n - float64(idx)*Span
	pada := int(offset/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return Info{
		Index: idx,
		Name:  names[idx],
		Pada:  pada,
		Lord:  lords[idx%9],
	}
}

// Name returns the name of the mansion at the given index, or empty for
// out-of-range values.
func Name(index int) string {
	if index < 0 || index >= Count {
		return ""
	}
	return names[index]
}
