package timestamp_test

import (
	"fmt"
	"time"

	"github.com/c360/meshproto/pkg/timestamp"
)

// ExampleFormat demonstrates formatting timestamps for display
func ExampleFormat() {
	ts := int64(1673785845123)
	fmt.Printf("Formatted: %s\n", timestamp.Format(ts))

	// Zero timestamp returns empty string
	fmt.Printf("Zero formatted: '%s'\n", timestamp.Format(0))

	// Output:
	// Formatted: 2023-01-15T12:30:45Z
	// Zero formatted: ''
}

// ExampleToUnixMs demonstrates converting time.Time to milliseconds
func ExampleToUnixMs() {
	t := time.Date(2023, 1, 15, 12, 30, 45, 123000000, time.UTC)
	fmt.Printf("time.Time to milliseconds: %d\n", timestamp.ToUnixMs(t))

	// Output:
	// time.Time to milliseconds: 1673785845123
}

// ExampleRemaining demonstrates time-to-live arithmetic
func ExampleRemaining() {
	created := int64(1673785845000)
	now := timestamp.Add(created, 70*time.Millisecond)

	elapsed := timestamp.Elapsed(created, now)
	fmt.Printf("Remaining: %d ms\n", timestamp.Remaining(100, elapsed))

	// Once the budget is spent the remaining time clamps at zero
	late := timestamp.Add(created, 250*time.Millisecond)
	fmt.Printf("Remaining late: %d ms\n", timestamp.Remaining(100, timestamp.Elapsed(created, late)))

	// Output:
	// Remaining: 30 ms
	// Remaining late: 0 ms
}
