package config

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// logicalCPUs is replaced in tests
var logicalCPUs = func() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// WorkerCount caps the requested worker count to the logical CPU count and
// to the image width. Requests below 2 mean a sequential render and are
// returned unchanged.
func WorkerCount(requested, width int) int {
	if requested < 2 {
		return requested
	}
	return max(1, min(requested, logicalCPUs(), width))
}
