//go:build !vsprof

package profiler

const Enabled = false

func noop() {}

func Init(Options) error { return nil }

func Shutdown() error { return nil }

func Save(string) error { return nil }

func Block(string) func() { return noop }

func Func() func() { return noop }
