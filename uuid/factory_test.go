package uuid

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestFactory_CounterIncrementsWithinMillisecond(t *testing.T) {
	f := NewFactory(WithClock(func() int64 { return testMs }))

	first := f.New()
	second := f.New()
	third := f.New()

	assert.Equal(t, uint16(0), first.Counter())
	assert.Equal(t, uint16(1), second.Counter())
	assert.Equal(t, uint16(2), third.Counter())

	// All three share the millisecond bucket
	for _, id := range []UUID{first, second, third} {
		ms, ok := id.Time()
		require.True(t, ok)
		assert.Equal(t, testMs, ms)
	}
}

func TestFactory_CounterResetsOnNewMillisecond(t *testing.T) {
	now := testMs
	f := NewFactory(WithClock(func() int64 { return now }))

	f.New()
	f.New()
	now++

	id := f.New()
	assert.Equal(t, uint16(0), id.Counter())

	ms, ok := id.Time()
	require.True(t, ok)
	assert.Equal(t, testMs+1, ms)
}

func TestFactory_CounterSaturates(t *testing.T) {
	f := NewFactory(WithClock(func() int64 { return testMs }))

	var last UUID
	for i := 0; i <= MaxCounter+10; i++ {
		last = f.New()
	}

	// Saturated: further identifiers in the bucket repeat MaxCounter
	assert.Equal(t, uint16(MaxCounter), last.Counter())
	assert.True(t, last.IsProtocol())
}

func TestFactory_ClockStepsBackward(t *testing.T) {
	now := testMs
	f := NewFactory(WithClock(func() int64 { return now }))

	before := f.New()
	now -= 500

	after := f.New()

	// Output never regresses even when the clock does
	assert.LessOrEqual(t, 0, after.Compare(before))

	ms, ok := after.Time()
	require.True(t, ok)
	assert.Equal(t, testMs, ms)
}

func TestFactory_MonotonicSequential(t *testing.T) {
	f := NewFactory()

	prev := f.New()
	for i := 0; i < 10_000; i++ {
		next := f.New()
		require.LessOrEqual(t, 0, next.Compare(prev),
			"identifier %d regressed: %s < %s", i, next, prev)
		prev = next
	}
}

func TestFactory_MonotonicConcurrent(t *testing.T) {
	f := NewFactory()

	const workers = 8
	const perWorker = 2_000

	var mu sync.Mutex
	all := make([]UUID, 0, workers*perWorker)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			local := make([]UUID, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, f.New())
			}
			mu.Lock()
			all = append(all, local...)
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Every identifier is unique or shares its value only through
	// counter saturation; sorted output equals a non-decreasing stream
	sort.Slice(all, func(i, j int) bool { return all[i].Compare(all[j]) < 0 })
	for i := 1; i < len(all); i++ {
		require.LessOrEqual(t, 0, all[i].Compare(all[i-1]))
	}
}

func TestFactory_PerWorkerOrderIsMonotonic(t *testing.T) {
	f := NewFactory()

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < 4; w++ {
		g.Go(func() error {
			prev := f.New()
			for i := 0; i < 5_000; i++ {
				next := f.New()
				if next.Compare(prev) < 0 {
					t.Errorf("identifier regressed under concurrency: %s < %s", next, prev)
				}
				prev = next
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestNew_PackageLevel(t *testing.T) {
	id := New()
	assert.True(t, id.IsProtocol())
}
