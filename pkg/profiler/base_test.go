package profiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pborman/uuid"
)

func getFname() string {
	return filepath.Join(os.TempDir(), "vsprof-"+uuid.New()+".log")
}

func mustRead(t *testing.T, fname string) string {
	t.Helper()
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// resetDefault gives the test a fresh process registry and restores it afterwards.
func resetDefault(t *testing.T) {
	reset := func() {
		lifecycle.Lock()
		if defaultFlusher != nil {
			defaultFlusher.Stop()
			defaultFlusher = nil
		}
		defaultOpts = DefaultOptions()
		lifecycle.Unlock()
		defaultReg.Store(NewRegistry(DefaultResolution))
	}
	reset()
	t.Cleanup(reset)
}
