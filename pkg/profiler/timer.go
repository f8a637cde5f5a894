package profiler

import (
	"sync/atomic"
	"time"
)

// Timer measures one scope. Stop it exactly once, normally with defer so
// the entry is recorded on every return path and during a panic.
type Timer struct {
	reg     *Registry
	name    string
	start   time.Time
	stopped atomic.Bool
}

func (t *Timer) Name() string {
	return t.name
}

// Elapsed is the monotonic time since Start.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop submits the elapsed time in whole resolution units. Less than one
// unit is discarded. Calls after the first do nothing.
func (t *Timer) Stop() {
	if t == nil || !t.stopped.CompareAndSwap(false, true) {
		return
	}
	elapsed := t.Elapsed()
	units := int64(elapsed / t.reg.Resolution())
	if units > 0 {
		t.reg.Append(Entry{Name: t.name, Duration: units})
	}
}
