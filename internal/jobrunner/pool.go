package jobrunner

import "runtime"

// Pool sizing constants.
const (
	// MinWorkers ensures at least one converter can run.
	MinWorkers = 1

	// MaxWorkers caps automatic sizing; each converter downloads pages and
	// renders the book, so a handful saturates a typical machine.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for the converter's own child processes.
	cpuDivisor = 2
)

// ResolveWorkers determines the number of concurrent converters.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
