// Package profiler measures how long named functions and blocks take and
// appends count/min/max/average statistics per name to a text log.
//
// Instrumentation is switched on with the vsprof build tag:
//
//	go build -tags vsprof
//
// Call sites look the same either way:
//
//	func work() {
//		defer profiler.Func()()
//
//		stop := profiler.Block("work: parse")
//		parse()
//		stop()
//	}
//
// Without the tag Func, Block, Init, Shutdown and Save are empty and nothing
// is recorded or written. Registry and Timer are always available for code
// that manages its own registry.
//
// The host application owns the lifecycle: Init once at startup, Shutdown
// before exit. Each save appends one block to the output file:
//
//	2024-3-5 7:8:9
//	work (3) Max = 30 Min = 10 Avg = 20
//	work: parse (3) Max = 12 Min = 4 Avg = 8
//
// A Registry is safe for concurrent use.
package profiler
