package microbench

import (
	"io"
	"os"
)

const (
	defaultIterations = 7
	defaultPrecision  = 3
)

// Config holds the configuration for a benchmark run.
type Config struct {
	loops           int
	iterations      int
	precision       int
	out             io.Writer
	timer           *Timer
	correctedStddev bool
}

// Option is a functional option for configuring benchmark runs.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	return &Config{
		iterations: defaultIterations,
		precision:  defaultPrecision,
		out:        os.Stdout,
		timer:      defaultTimer,
	}
}

// WithLoops sets the number of timed invocations per iteration.
// Default (0) derives the loop count with SuggestLoops.
func WithLoops(n int) Option {
	return func(c *Config) {
		c.loops = n
	}
}

// WithIterations sets the number of independent measurement passes.
// Default is 7.
func WithIterations(n int) Option {
	return func(c *Config) {
		c.iterations = n
	}
}

// WithPrecision sets the number of fractional digits in the rendered
// report's durations. Default is 3.
func WithPrecision(n int) Option {
	return func(c *Config) {
		c.precision = n
	}
}

// WithOutput sets the writer the report is emitted to.
// Default is standard output.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.out = w
	}
}

// WithTimer sets the timer used for measurement. Useful for injecting a
// fake clock in tests.
func WithTimer(t *Timer) Option {
	return func(c *Config) {
		c.timer = t
	}
}

// WithCorrectedStddev divides the standard deviation by the recorded
// sample count instead of the requested loops*iterations. The default
// keeps the requested divisor for output compatibility, even though it
// under-reports spread when samples were dropped.
func WithCorrectedStddev() Option {
	return func(c *Config) {
		c.correctedStddev = true
	}
}
