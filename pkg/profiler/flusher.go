package profiler

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Flusher saves a registry to a file on a fixed interval.
type Flusher struct {
	reg      *Registry
	filename string
	interval time.Duration

	lock    sync.Mutex
	started bool
	stop    chan struct{}
	done    chan struct{}
}

func NewFlusher(reg *Registry, filename string, interval time.Duration) *Flusher {
	return &Flusher{
		reg:      reg,
		filename: filename,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the flush loop. It may be called once.
func (f *Flusher) Start() {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.started {
		return
	}
	f.started = true
	go f.loop()
}

func (f *Flusher) loop() {
	defer close(f.done)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := f.reg.Save(f.filename); err != nil {
				logrus.Warningf("[vsprof] Periodic flush failed: %v", err)
			}
		case <-f.stop:
			return
		}
	}
}

// Stop ends the loop and waits for an in-flight save to finish. It does not save.
func (f *Flusher) Stop() {
	f.lock.Lock()
	defer f.lock.Unlock()
	if !f.started {
		return
	}
	select {
	case <-f.stop:
	default:
		close(f.stop)
	}
	<-f.done
}
