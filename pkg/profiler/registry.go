package profiler

import (
	"bytes"
	"io"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

type bucket struct {
	mu   sync.Mutex
	list []Entry
}

func (b *bucket) snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := make([]Entry, len(b.list))
	copy(s, b.list)
	return s
}

// Registry accumulates entries by name. The zero value is not usable, use NewRegistry.
//
// The name map is guarded by mu. The read lock is enough to find an existing
// bucket; the write lock is taken only to create one. Each bucket guards its
// own slice.
type Registry struct {
	mu         sync.RWMutex
	data       map[string]*bucket
	resolution atomic.Int64
	now        func() time.Time
}

// NewRegistry returns an empty registry that measures timers in whole
// multiples of resolution. A non-positive resolution means DefaultResolution.
func NewRegistry(resolution time.Duration) *Registry {
	r := &Registry{
		data: make(map[string]*bucket),
		now:  time.Now,
	}
	r.SetResolution(resolution)
	return r
}

func (r *Registry) Resolution() time.Duration {
	return time.Duration(r.resolution.Load())
}

// SetResolution affects timers stopped after the call. Entries already
// recorded keep their units.
func (r *Registry) SetResolution(resolution time.Duration) {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	r.resolution.Store(int64(resolution))
}

// Append stores e under e.Name. Entries with a non-positive duration are dropped.
func (r *Registry) Append(e Entry) {
	if e.Duration <= 0 {
		return
	}
	r.mu.RLock()
	b, ok := r.data[e.Name]
	r.mu.RUnlock()
	if !ok {
		r.mu.Lock()
		if b = r.data[e.Name]; b == nil {
			b = &bucket{}
			r.data[e.Name] = b
		}
		r.mu.Unlock()
	}
	b.mu.Lock()
	b.list = append(b.list, e)
	b.mu.Unlock()
}

func (r *Registry) lookup(name string) *bucket {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data[name]
}

// Entries returns a copy of the entries recorded for name in insertion order.
func (r *Registry) Entries(name string) []Entry {
	b := r.lookup(name)
	if b == nil {
		return nil
	}
	return b.snapshot()
}

// Names returns every recorded name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.data))
	for name := range r.data {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len is the total number of entries across all names.
func (r *Registry) Len() int {
	r.mu.RLock()
	buckets := make([]*bucket, 0, len(r.data))
	for _, b := range r.data {
		buckets = append(buckets, b)
	}
	r.mu.RUnlock()

	total := 0
	for _, b := range buckets {
		b.mu.Lock()
		total += len(b.list)
		b.mu.Unlock()
	}
	return total
}

func (r *Registry) Aggregate(name string) (Aggregate, error) {
	return aggregate(name, r.Entries(name))
}

// Aggregates returns statistics for every name, sorted by name.
func (r *Registry) Aggregates() []Aggregate {
	names := r.Names()
	out := make([]Aggregate, 0, len(names))
	for _, name := range names {
		agg, err := r.Aggregate(name)
		if err != nil {
			continue
		}
		out = append(out, agg)
	}
	return out
}

// Report writes one timestamped block of statistics to w.
func (r *Registry) Report(w io.Writer, now time.Time) error {
	return writeReport(w, now, r.Aggregates())
}

// Save appends one report block to filename, creating the file if needed.
func (r *Registry) Save(filename string) error {
	buf := &bytes.Buffer{}
	if err := r.Report(buf, r.now()); err != nil {
		return err
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &IOError{Op: "open", Path: filename, Err: err}
	}
	if _, err = f.Write(buf.Bytes()); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: filename, Err: err}
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return &IOError{Op: "sync", Path: filename, Err: err}
	}
	if err = f.Close(); err != nil {
		return &IOError{Op: "close", Path: filename, Err: err}
	}
	return nil
}

// Start begins timing a scope named name.
func (r *Registry) Start(name string) *Timer {
	return &Timer{reg: r, name: name, start: time.Now()}
}

// Block starts a timer and returns its Stop, for use as
//
//	defer reg.Block("name")()
func (r *Registry) Block(name string) func() {
	return r.Start(name).Stop
}
