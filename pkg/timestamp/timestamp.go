// Package timestamp provides standardized Unix timestamp handling for the
// protocol layer.
//
// The canonical timestamp format is int64 milliseconds since the Unix
// epoch (UTC). Identifiers embed their creation instant in these units,
// and all time-to-live arithmetic is expressed in them. Keeping one unit
// everywhere eliminates the second/millisecond confusion class of bugs.
//
// Zero Value Semantics:
//   - A timestamp value of 0 means "not set" or "unknown"
//   - Functions handle zero values gracefully, returning appropriate defaults
package timestamp

import "time"

// Now returns the current time as milliseconds since the Unix epoch.
func Now() int64 {
	return time.Now().UnixMilli()
}

// ToUnixMs converts a time.Time to milliseconds since the Unix epoch.
// A zero time.Time converts to 0.
func ToUnixMs(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromUnixMs converts milliseconds since the Unix epoch to a time.Time.
// A timestamp of 0 converts to the zero time.Time.
func FromUnixMs(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// Format renders a timestamp as an RFC3339 string in UTC.
// A timestamp of 0 renders as the empty string.
func Format(ms int64) string {
	if ms == 0 {
		return ""
	}
	return FromUnixMs(ms).UTC().Format(time.RFC3339)
}

// Add advances a timestamp by the given duration.
// Adding to a zero timestamp returns 0 (unknown stays unknown).
func Add(ms int64, d time.Duration) int64 {
	if ms == 0 {
		return 0
	}
	return ms + d.Milliseconds()
}

// Elapsed returns now - then in milliseconds. The result is signed: a
// negative value means "then" lies in the future relative to "now",
// which callers must tolerate (clock skew between peers is normal).
func Elapsed(then, now int64) int64 {
	return now - then
}

// Remaining returns the milliseconds of life left given a time-to-live
// and an elapsed duration, clamped at zero once the budget is spent.
func Remaining(ttlMs int64, elapsedMs int64) uint64 {
	if elapsedMs >= ttlMs {
		return 0
	}
	return uint64(ttlMs - elapsedMs)
}
