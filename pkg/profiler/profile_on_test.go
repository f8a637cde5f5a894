//go:build vsprof

package profiler

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instrumented() {
	defer Func()()
	time.Sleep(time.Millisecond)
}

func TestEnabledRecords(t *testing.T) {
	resetDefault(t)
	fname := getFname()
	defer os.Remove(fname)
	assert.True(t, Enabled)

	require.NoError(t, Init(Options{Output: fname, Resolution: time.Microsecond}))
	for i := 0; i < 3; i++ {
		instrumented()
	}
	func() {
		defer Block("block")()
		time.Sleep(time.Millisecond)
	}()

	agg, err := Default().Aggregate("profiler.instrumented")
	require.NoError(t, err)
	assert.Equal(t, 3, agg.Count)
	assert.Len(t, Default().Entries("block"), 1)

	require.NoError(t, Shutdown())
	content := mustRead(t, fname)
	assert.Contains(t, content, "block (1) Max = ")
	assert.Contains(t, content, "profiler.instrumented (3) Max = ")
}

func TestEnabledSaveExplicit(t *testing.T) {
	resetDefault(t)
	fname := getFname()
	defer os.Remove(fname)

	Default().Append(Entry{Name: "explicit", Duration: 4})
	require.NoError(t, Save(fname))
	require.NoError(t, Save(fname))
	assert.Equal(t, 2, countBlocks(mustRead(t, fname)))
}
