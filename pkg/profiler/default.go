package profiler

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultOutput     = "very_simple_profiler.log"
	DefaultResolution = time.Millisecond
)

// Options configure the process registry.
type Options struct {
	// Output is the file Shutdown and the flusher append to.
	Output string
	// Resolution is the unit entries are stored in.
	Resolution time.Duration
	// FlushInterval enables periodic saves when positive.
	FlushInterval time.Duration
}

func DefaultOptions() Options {
	return Options{Output: DefaultOutput, Resolution: DefaultResolution}
}

func (o Options) withDefaults() Options {
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.Resolution == 0 {
		o.Resolution = DefaultResolution
	}
	return o
}

func (o Options) validate() error {
	if o.Resolution < 0 {
		return errors.New("vsprof: resolution must be positive")
	}
	if o.FlushInterval < 0 {
		return errors.New("vsprof: flush interval must not be negative")
	}
	return nil
}

var (
	defaultReg atomic.Pointer[Registry]

	// lifecycle guards defaultOpts and defaultFlusher.
	lifecycle      sync.Mutex
	defaultOpts    = DefaultOptions()
	defaultFlusher *Flusher
)

// Default returns the process registry. It is created with DefaultOptions on
// first use so scopes measured before Init are kept.
func Default() *Registry {
	if r := defaultReg.Load(); r != nil {
		return r
	}
	defaultReg.CompareAndSwap(nil, NewRegistry(DefaultResolution))
	return defaultReg.Load()
}

func initDefault(opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	opts = opts.withDefaults()

	lifecycle.Lock()
	defer lifecycle.Unlock()

	if defaultFlusher != nil {
		defaultFlusher.Stop()
		defaultFlusher = nil
	}

	reg := Default()
	reg.SetResolution(opts.Resolution)
	defaultOpts = opts

	if opts.FlushInterval > 0 {
		defaultFlusher = NewFlusher(reg, opts.Output, opts.FlushInterval)
		defaultFlusher.Start()
	}
	logrus.Debugf(
		"[vsprof] Initialized: output=%v resolution=%v flush-interval=%v",
		opts.Output, opts.Resolution, opts.FlushInterval,
	)
	return nil
}

// shutdownDefault stops periodic flushing and appends the final block.
// Entries are kept, so a later shutdown appends another cumulative block.
func shutdownDefault() error {
	lifecycle.Lock()
	defer lifecycle.Unlock()

	if defaultFlusher != nil {
		defaultFlusher.Stop()
		defaultFlusher = nil
	}
	logrus.Debugf("[vsprof] Saving statistics to %v", defaultOpts.Output)
	return Default().Save(defaultOpts.Output)
}
