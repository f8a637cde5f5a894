package profiler

import (
	"os"
	"testing"
	"time"

	"github.com/kuberlab/vsprof/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsStable(t *testing.T) {
	resetDefault(t)
	assert.Same(t, Default(), Default())
	assert.Equal(t, DefaultResolution, Default().Resolution())
}

func TestInitShutdownDefault(t *testing.T) {
	resetDefault(t)
	fname := getFname()
	defer os.Remove(fname)

	// Entries recorded before init are kept.
	Default().Append(Entry{Name: "early", Duration: 2})

	require.NoError(t, initDefault(Options{Output: fname, Resolution: time.Microsecond}))
	assert.Equal(t, time.Microsecond, Default().Resolution())

	stop := Default().Block("late")
	time.Sleep(time.Millisecond)
	stop()

	require.NoError(t, shutdownDefault())
	content := mustRead(t, fname)
	assert.Contains(t, content, "early (1) Max = 2 Min = 2 Avg = 2\n")
	assert.Contains(t, content, "late (1) Max = ")
	assert.Equal(t, 1, countBlocks(content))

	// Entries survive shutdown; another shutdown appends another block.
	require.NoError(t, shutdownDefault())
	assert.Equal(t, 2, countBlocks(mustRead(t, fname)))
}

func TestInitDefaultValidates(t *testing.T) {
	resetDefault(t)
	assert.Error(t, initDefault(Options{Resolution: -time.Millisecond}))
	assert.Error(t, initDefault(Options{FlushInterval: -time.Second}))
}

func TestInitDefaultFillsDefaults(t *testing.T) {
	resetDefault(t)
	require.NoError(t, initDefault(Options{}))
	utils.Assert(DefaultOptions(), defaultOpts, t)
}

func TestInitDefaultStartsFlusher(t *testing.T) {
	resetDefault(t)
	fname := getFname()
	defer os.Remove(fname)

	Default().Append(Entry{Name: "flushed", Duration: 1})
	require.NoError(t, initDefault(Options{Output: fname, FlushInterval: 5 * time.Millisecond}))
	require.NotNil(t, defaultFlusher)

	require.Eventually(t, func() bool {
		return utils.Exists(fname)
	}, 5*time.Second, 5*time.Millisecond)

	// Reconfiguring replaces the flusher.
	old := defaultFlusher
	require.NoError(t, initDefault(Options{Output: fname, FlushInterval: time.Hour}))
	assert.NotSame(t, old, defaultFlusher)

	require.NoError(t, shutdownDefault())
	assert.Nil(t, defaultFlusher)
	assert.Contains(t, mustRead(t, fname), "flushed (1)")
}

func TestShutdownReportsIOError(t *testing.T) {
	resetDefault(t)
	require.NoError(t, initDefault(Options{Output: os.TempDir()}))

	err := shutdownDefault()
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)
}
