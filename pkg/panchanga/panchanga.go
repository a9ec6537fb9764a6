// Package panchanga derives the five limbs of the Vedic luni-solar day:
// vara (weekday), tithi with its paksha, nakshatra with pada, yoga and
// karana. All five are pure functions of the Sun and Moon longitudes
// plus a reference instant rendered in the chart's timezone.
//
// The limbs are presented as a unit: if any input is unusable (a
// non-finite luminary longitude or an unresolvable timezone) the whole
// result is unavailable, never a partial record.
package panchanga

import (
	"fmt"
	"time"

	"github.com/rsharan/jyotish/pkg/nakshatra"
	"github.com/rsharan/jyotish/pkg/zodiac"
)

// Paksha is the lunar fortnight: waxing (Shukla) or waning (Krishna).
type Paksha int

// The two pakshas.
const (
	Shukla Paksha = iota
	Krishna
)

// String returns the paksha name.
func (p Paksha) String() string {
	if p == Krishna {
		return "Krishna"
	}
	return "Shukla"
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (p Paksha) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// tithiNames is the 15-entry fortnight cycle. The 15th entry names the
// full moon; on the waning side the same slot is Amavasya instead.
var tithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda", "Vriddhi",
	"Dhruva", "Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata",
	"Variyana", "Parigha", "Shiva", "Siddha", "Sadhya", "Shubha",
	"Shukla", "Brahma", "Indra", "Vaidhriti",
}

// The karana cycle is irregular at its ends: a single fixed half-tithi
// opens the month, seven movable karanas rotate through the middle, and
// three fixed ones close it.
var (
	karanaFirst    = "Kimstughna"
	karanaRotating = [7]string{"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti"}
	karanaEnding   = [3]string{"Shakuni", "Chatushpada", "Naga"}
)

// Result is the computed panchanga. It is immutable once returned.
type Result struct {
	Vara        string         `json:"vara"`
	Paksha      Paksha         `json:"paksha"`
	TithiNumber int            `json:"tithi_number"` // 1-30
	TithiName   string         `json:"tithi_name"`
	Nakshatra   nakshatra.Info `json:"nakshatra"`
	YogaIndex   int            `json:"yoga_index"` // 0-26
	Yoga        string         `json:"yoga"`
	KaranaIndex int            `json:"karana_index"` // 0-59
	Karana      string         `json:"karana"`
}

// Compute derives the five limbs from the luminary longitudes and the
// reference instant rendered in the named IANA timezone.
//
// It returns an error wrapping [zodiac.ErrNotFinite] when either
// longitude is NaN or infinite, and a timezone resolution error when tz
// is unknown. In both cases no partial result is produced.
func Compute(sunLon, moonLon float64, at time.Time, tz string) (Result, error) {
	if !zodiac.Finite(sunLon) {
		return Result{}, fmt.Errorf("sun longitude: %w", zodiac.ErrNotFinite)
	}
	if !zodiac.Finite(moonLon) {
		return Result{}, fmt.Errorf("moon longitude: %w", zodiac.ErrNotFinite)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Result{}, fmt.Errorf("resolve timezone %q: %w", tz, err)
	}

	diff := zodiac.Normalize(moonLon - sunLon)
	sum := zodiac.Normalize(moonLon + sunLon)

	number, paksha, tithiName := tithi(diff)
	yogaIdx := yogaIndex(sum)
	karanaIdx := int(diff / 6)
	if karanaIdx > 59 {
		karanaIdx = 59
	}

	return Result{
		Vara:        at.In(loc).Weekday().String(),
		Paksha:      paksha,
		TithiNumber: number,
		TithiName:   tithiName,
		Nakshatra:   nakshatra.Resolve(moonLon),
		YogaIndex:   yogaIdx,
		Yoga:        yogaNames[yogaIdx],
		KaranaIndex: karanaIdx,
		Karana:      karanaName(karanaIdx),
	}, nil
}

// tithi classifies the Moon-minus-Sun separation into the 30 lunar days.
// Each tithi spans exactly 12°; the first fifteen are waxing (Shukla),
// the rest waning (Krishna). The final waning slot is Amavasya, the new
// moon, in place of the table's Purnima entry.
func tithi(diff float64) (number int, paksha Paksha, name string) {
	number = int(diff/12) + 1
	if number > 30 {
		number = 30
	}
	paksha = Shukla
	if number > 15 {
		paksha = Krishna
	}
	idx := (number - 1) % 15
	name = tithiNames[idx]
	if paksha == Krishna && idx == 14 {
		name = "Amavasya"
	}
	return number, paksha, name
}

// yogaIndex classifies the Moon-plus-Sun sum into 27 equal divisions.
func yogaIndex(sum float64) int {
	idx := int(sum / (360.0 / 27))
	if idx > 26 {
		idx = 26
	}
	return idx
}

// karanaName resolves the half-tithi name for an index in 0-59.
func karanaName(idx int) string {
	switch {
	case idx == 0:
		return karanaFirst
	case idx >= 57:
		return karanaEnding[idx-57]
	default:
		return karanaRotating[(idx-1)%7]
	}
}

// YogaName returns the name of the yoga at the given index, or empty
// for out-of-range values.
func YogaName(index int) string {
	if index < 0 || index >= len(yogaNames) {
		return ""
	}
	return yogaNames[index]
}
