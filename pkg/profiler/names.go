package profiler

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/kuberlab/vsprof/pkg/utils"
)

const unknownFunc = "unknown"

var funcNames = utils.NewStringCache()

// callerName returns the short name of the function skip frames above the
// caller of callerName, e.g. "profiler.(*Registry).Save".
func callerName(skip int) string {
	pcs := make([]uintptr, 1)
	if runtime.Callers(skip+2, pcs) == 0 {
		return unknownFunc
	}
	key := strconv.FormatUint(uint64(pcs[0]), 16)
	if name, ok := funcNames.Get(key); ok {
		return name
	}

	frame, _ := runtime.CallersFrames(pcs).Next()
	name := shortFuncName(frame.Function)
	funcNames.Set(key, name)
	return name
}

// shortFuncName strips the import path and keeps the package name.
func shortFuncName(full string) string {
	if full == "" {
		return unknownFunc
	}
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	return full
}
