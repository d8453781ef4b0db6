package microbench

import "errors"

// Errors that can be returned by the benchmark runner.
var (
	// ErrInvalidConfig is returned when a benchmark option is out of range.
	ErrInvalidConfig = errors.New("microbench: invalid configuration")

	// ErrIterationMismatch is returned when the requested iteration count
	// does not match the timing matrix's outer length.
	ErrIterationMismatch = errors.New("microbench: iteration count does not match timing matrix")

	// ErrEmptyMatrix is returned when a timing matrix has no iterations.
	ErrEmptyMatrix = errors.New("microbench: timing matrix is empty")
)
