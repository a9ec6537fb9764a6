package errors

import (
	"math"
	"time"
)

// ValidateLongitude validates a raw ecliptic longitude from the
// ephemeris boundary. Any finite real value is acceptable (the engine
// normalizes into [0,360) itself); NaN and infinities violate the input
// contract and are rejected.
func ValidateLongitude(name string, deg float64) error {
	if math.IsNaN(deg) {
		return New(ErrCodeInvalidLongitude, "longitude for %s is NaN", name)
	}
	if math.IsInf(deg, 0) {
		return New(ErrCodeInvalidLongitude, "longitude for %s is infinite", name)
	}
	return nil
}

// ValidateTimezone validates an IANA timezone identifier by resolving
// it against the platform timezone database.
func ValidateTimezone(tz string) error {
	if tz == "" {
		return New(ErrCodeInvalidTimezone, "timezone cannot be empty")
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return Wrap(ErrCodeInvalidTimezone, err, "unknown timezone %q", tz)
	}
	return nil
}
