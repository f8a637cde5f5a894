package main

import (
	"fmt"
	"time"

	"github.com/kuberlab/vsprof/pkg/profiler"
)

// step is one unit of the demo workload: a short "read" followed by a
// variable amount of work.
func step(i int) error {
	defer profiler.Func()()

	if err := read(i); err != nil {
		return err
	}
	checksum(i)
	return nil
}

func read(i int) error {
	defer profiler.Block("demo: read")()

	time.Sleep(time.Duration(1+i%4) * time.Millisecond)
	if i < 0 {
		return fmt.Errorf("invalid step %v", i)
	}
	return nil
}

func checksum(i int) uint64 {
	defer profiler.Block("demo: checksum")()

	sum := uint64(i)
	for n := 0; n < 200000*(1+i%3); n++ {
		sum = sum*31 + uint64(n)
	}
	time.Sleep(time.Millisecond)
	return sum
}
