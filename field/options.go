package field

import "fmt"

// Option customizes a Field at construction time: a function mutating
// private config before the Field is built, with constructors that
// validate and panic on meaningless input.
// Complexity: applying n options costs O(n).
type Option func(*config)

type config struct {
	presetWorkers int
	minChunkSize  int
}

func newConfig() *config {
	return &config{minChunkSize: 1}
}

// WithWorkers pre-warms n long-lived worker goroutines at construction
// time, so the first StepParallel call with a matching jobs count pays
// no goroutine-spin-up cost. Panics if n < 0; n == 0 is a no-op (no pool
// is pre-warmed, matching StepParallel(0)'s fallback to Step).
// Complexity: O(n) time, O(n) goroutines, at New time.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Errorf("%s: %w", fieldErrorf("WithWorkers", "negative worker count"), ErrInvalidOption))
	}
	return func(c *config) {
		c.presetWorkers = n
	}
}

// WithMinChunkSize sets the smallest number of Groups a single worker is
// given per StepParallel call: when len(groups)/jobs would fall under
// this floor, fewer than jobs workers are fed a chunk so none receives
// fewer than minChunkSize Groups. When fewer than minChunkSize Groups
// exist in total, a single worker receives all of them. It has no effect on the resulting
// Field state, only on how the transition work is spread across
// goroutines. Panics if n < 1.
// Complexity: O(1).
func WithMinChunkSize(n int) Option {
	if n < 1 {
		panic(fmt.Errorf("%s: %w", fieldErrorf("WithMinChunkSize", "chunk size must be >= 1"), ErrInvalidOption))
	}
	return func(c *config) {
		c.minChunkSize = n
	}
}
