// Package dates normalizes the heterogeneous date representations the
// source emits (epoch seconds, epoch milliseconds, free-text timestamps)
// into UTC instants, and applies the acquisition-time year filter.
package dates

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Epochs above this magnitude are millisecond-scale.
const milliEpochThreshold = 10_000_000_000

// Parse converts a decoded JSON value into a UTC instant. It accepts
// numeric epochs and free-text dates; timestamps without an explicit zone
// are assumed UTC. The second return is false on any parse failure.
func Parse(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case float64:
		return fromEpoch(v), true
	case int:
		return fromEpoch(float64(v)), true
	case int64:
		return fromEpoch(float64(v)), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return fromEpoch(f), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		t, err := dateparse.ParseIn(s, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	default:
		return time.Time{}, false
	}
}

func fromEpoch(ts float64) time.Time {
	if ts > milliEpochThreshold {
		ts /= 1000
	}
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}

// RestrictToYear returns t only when its UTC calendar year equals year.
// This is a filter, never a correction: an instant outside the target year
// is discarded, not re-labeled.
func RestrictToYear(t time.Time, year int) (time.Time, bool) {
	if t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}
