package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerRecords(t *testing.T) {
	reg := NewRegistry(time.Millisecond)
	timer := reg.Start("sleep")
	time.Sleep(5 * time.Millisecond)
	timer.Stop()

	entries := reg.Entries("sleep")
	require.Len(t, entries, 1)
	assert.GreaterOrEqual(t, entries[0].Duration, int64(5))
	assert.Equal(t, "sleep", timer.Name())
}

func TestTimerSubResolutionDropped(t *testing.T) {
	reg := NewRegistry(time.Hour)
	reg.Block("fast")()

	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.Names())
}

func TestTimerStopIdempotent(t *testing.T) {
	reg := NewRegistry(time.Microsecond)
	timer := reg.Start("once")
	time.Sleep(time.Millisecond)
	timer.Stop()
	timer.Stop()

	assert.Equal(t, 1, reg.Len())
}

func TestTimerNilStop(t *testing.T) {
	var timer *Timer
	assert.NotPanics(t, timer.Stop)
}

func TestTimerRecordsOnPanic(t *testing.T) {
	reg := NewRegistry(time.Microsecond)

	func() {
		defer func() {
			assert.Equal(t, "boom", recover())
		}()
		defer reg.Block("panicky")()
		time.Sleep(time.Millisecond)
		panic("boom")
	}()

	assert.Len(t, reg.Entries("panicky"), 1)
}

func TestTimerRecordsOnEarlyReturn(t *testing.T) {
	reg := NewRegistry(time.Microsecond)
	work := func(early bool) int {
		defer reg.Block("work")()
		time.Sleep(time.Millisecond)
		if early {
			return 1
		}
		time.Sleep(time.Millisecond)
		return 2
	}
	work(true)
	work(false)

	agg, err := reg.Aggregate("work")
	require.NoError(t, err)
	assert.Equal(t, 2, agg.Count)
	assert.GreaterOrEqual(t, agg.Max, float64(2000))
}

func TestTimerIndependentNames(t *testing.T) {
	reg := NewRegistry(time.Microsecond)
	outer := reg.Start("outer")
	inner := reg.Start("inner")
	time.Sleep(time.Millisecond)
	inner.Stop()
	time.Sleep(time.Millisecond)
	outer.Stop()

	in, err := reg.Aggregate("inner")
	require.NoError(t, err)
	out, err := reg.Aggregate("outer")
	require.NoError(t, err)
	assert.Equal(t, 1, in.Count)
	assert.Equal(t, 1, out.Count)
	assert.Greater(t, out.Max, in.Max)
}
