//go:build vsprof

package profiler

// Enabled reports whether the binary was built with the vsprof tag.
const Enabled = true

// Init configures the process registry and starts periodic flushing when
// opts.FlushInterval is positive. Calling it again reconfigures.
func Init(opts Options) error {
	return initDefault(opts)
}

// Shutdown stops periodic flushing and appends the statistics to the
// configured output.
func Shutdown() error {
	return shutdownDefault()
}

// Save appends the statistics of the process registry to filename.
func Save(filename string) error {
	return Default().Save(filename)
}

// Block times the enclosing block under name. Line breaks in name are
// written to the log as spaces.
//
//	defer profiler.Block("load config")()
func Block(name string) func() {
	return Default().Start(name).Stop
}

// Func times the calling function under its own name:
//
//	defer profiler.Func()()
func Func() func() {
	return Default().Start(callerName(1)).Stop
}
