package uuid

import (
	"math/rand/v2"
	"sync"

	"github.com/c360/meshproto/pkg/timestamp"
)

// Clock supplies the current instant as milliseconds since the Unix
// epoch. Tests inject deterministic clocks through WithClock.
type Clock func() int64

// Factory generates protocol identifiers. It owns the process-wide
// millisecond/counter cell that keeps identifiers created within the
// same millisecond strictly increasing, guarded by a mutex because
// concurrent callers may request identifiers at overlapping instants.
//
// Construct one Factory and share it; the zero value is not usable.
type Factory struct {
	mu      sync.Mutex
	clock   Clock
	lastMs  int64
	counter uint16
	// fill is the 62-bit random lower-word payload, generated once per
	// factory so saturated-counter identifiers still compare
	// non-decreasing.
	fill uint64
}

// Option configures a Factory.
type Option func(*Factory)

// WithClock replaces the wall clock. Useful for deterministic tests.
func WithClock(clock Clock) Option {
	return func(f *Factory) {
		f.clock = clock
	}
}

// WithFill fixes the random lower-word fill. Useful for reproducible
// test vectors; the variant bits are applied on top regardless.
func WithFill(fill uint64) Option {
	return func(f *Factory) {
		f.fill = fill
	}
}

// NewFactory creates an identifier factory using the wall clock unless
// overridden.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		clock:  timestamp.Now,
		lastMs: -1,
		fill:   rand.Uint64(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// New generates an identifier for the current instant.
func (f *Factory) New() UUID {
	return f.newAt(f.clock())
}

// NewAt generates an identifier for the given instant in epoch
// milliseconds. The monotonic guard still applies: an instant at or
// before the previous one lands in the previous bucket and takes the
// next counter value, keeping output non-decreasing.
func (f *Factory) NewAt(ms int64) UUID {
	return f.newAt(ms)
}

func (f *Factory) newAt(ms int64) UUID {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ms <= f.lastMs {
		// Same bucket, or a clock that stepped backwards: stay in the
		// previous bucket and advance the counter, saturating at
		// MaxCounter. Once saturated, identifiers in this millisecond
		// repeat the final counter value.
		ms = f.lastMs
		if f.counter < MaxCounter {
			f.counter++
		}
	} else {
		f.lastMs = ms
		f.counter = 0
	}

	msb := uint64(ms)<<timeShift |
		uint64(VersionTimeOrdered)<<versionShift |
		uint64(f.counter)

	// Force the RFC 9562 variant onto the stable random fill.
	lsb := uint64(variantRFC)<<62 | f.fill&(1<<62-1)

	return UUID{msb: msb, lsb: lsb}
}

// defaultFactory serves the package-level convenience constructor.
var defaultFactory = NewFactory()

// New generates an identifier from the shared package-level factory.
// Callers that need an injectable clock construct their own Factory.
func New() UUID {
	return defaultFactory.New()
}
