//go:build !vsprof

package profiler

import (
	"testing"
	"time"

	"github.com/kuberlab/vsprof/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledRecordsNothing(t *testing.T) {
	resetDefault(t)
	fname := getFname()
	assert.False(t, Enabled)

	require.NoError(t, Init(Options{Output: fname, Resolution: time.Microsecond, FlushInterval: time.Millisecond}))
	func() {
		defer Func()()
		defer Block("disabled")()
		time.Sleep(2 * time.Millisecond)
	}()

	assert.Equal(t, 0, Default().Len())
	require.NoError(t, Save(fname))
	require.NoError(t, Shutdown())
	assert.False(t, utils.Exists(fname))
}

func TestDisabledDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		Block("disabled")()
		Func()()
	})
	assert.Equal(t, float64(0), allocs)
}
