// Package microbench is a small wall-clock micro-benchmarking library.
//
// It repeatedly executes a caller-supplied operation, measures elapsed time
// per execution at nanosecond resolution, and reduces the samples to
// descriptive statistics: mean, standard deviation, best/worst, and a
// cache-skew warning when the worst sample dwarfs the best.
//
// # Usage
//
// The main entry point is the Benchmark function:
//
//	stats, err := microbench.Benchmark("fib(30)", microbench.FuncOperation(func() error {
//	    fib(30)
//	    return nil
//	}), microbench.WithIterations(5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("mean: %s\n", microbench.FormatDuration(stats.Mean, 3))
//
// A run consists of a number of independent iterations, each executing the
// operation for a fixed number of loops. Iterations are compared against
// each other for variance assessment; the grand mean weights each
// iteration equally. When no loop count is given, Benchmark probes the
// operation at geometrically increasing repetition counts until one second
// of cumulative runtime has elapsed.
//
// Failing invocations are dropped, not recorded: they reduce the success
// count in the report but never contribute a zero sample.
//
// Measurement is synchronous and single-threaded. The operation runs
// inline on the calling goroutine, and whatever it does is attributed to
// wall-clock time, so it must not spawn competing concurrent work that
// would skew its own timing. There is no cancellation: a hung operation
// blocks the run.
package microbench

import (
	"fmt"
	"time"
)

// Benchmark measures op and writes a rendered report to the configured
// output writer (standard output by default). It runs the configured
// number of iterations, each a pass of the configured number of loops,
// and reduces the resulting timing matrix to a Stats summary.
//
// Invalid option values fail with ErrInvalidConfig before any measurement
// runs, and no partial report is ever written.
func Benchmark(label string, op Operation, opts ...Option) (*Stats, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.loops < 0 || cfg.iterations < 1 || cfg.precision < 1 || cfg.timer == nil || cfg.out == nil {
		return nil, ErrInvalidConfig
	}

	loops := cfg.loops
	if loops == 0 {
		loops = cfg.timer.SuggestLoops(op)
	}

	samples := make([][]time.Duration, cfg.iterations)
	for i := range samples {
		samples[i] = cfg.timer.MeasureN(loops, op)
	}

	stats, err := newStats(label, loops, cfg.iterations, samples, cfg.correctedStddev)
	if err != nil {
		return nil, err
	}
	stats.precision = cfg.precision

	if _, err := fmt.Fprint(cfg.out, stats.String()); err != nil {
		return nil, fmt.Errorf("microbench: writing report: %w", err)
	}
	return stats, nil
}
