package microbench

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// skewThreshold is the worst/best ratio above which the report warns that
// samples look skewed (cold caches, scheduler noise).
const skewThreshold = 2.0

// Stats is the read-only summary of one benchmark run. It is computed once
// from a completed timing matrix and never mutated afterwards.
type Stats struct {
	// Label identifies the measured operation.
	Label string

	// Loops and Iterations are the requested shape of the run.
	Loops      int
	Iterations int

	// Successes counts recorded samples across all iterations. It is less
	// than Loops*Iterations when invocations failed and were dropped.
	Successes int

	// Samples is the raw timing matrix (outer index = iteration), retained
	// for transparency and debugging.
	Samples [][]time.Duration

	// IterTotals and IterMeans hold per-iteration sums and means. A mean
	// divides by the iteration's actual sample count; an iteration with no
	// samples has mean 0.
	IterTotals []time.Duration
	IterMeans  []time.Duration

	// Total is the sum of all samples. Mean is the unweighted mean of the
	// per-iteration means: each iteration counts as one trial of equal
	// weight, however many samples it recorded. This insulates the mean
	// from iterations that dropped samples, and is not the same as the
	// pooled mean over all samples.
	Total time.Duration
	Mean  time.Duration

	// Stddev is the population standard deviation over the flattened
	// matrix. The divisor is the requested sample count Loops*Iterations,
	// so dropped samples bias it low; see WithCorrectedStddev.
	Stddev time.Duration

	// Best and Worst are the extreme single samples across the matrix.
	// Iterations with no samples are excluded from the reduction.
	Best  time.Duration
	Worst time.Duration

	// DiffRatio is Worst/Best rounded to two decimals. When Best is 0 and
	// Worst is not, the clock could not resolve the operation and the
	// ratio is reported as +Inf.
	DiffRatio float64

	// Warning is non-empty when DiffRatio exceeds skewThreshold.
	Warning string

	precision int
}

// NewStats reduces a timing matrix into a Stats summary.
//
// iterations must equal len(samples) and the matrix must have at least one
// iteration; violations indicate a bug in the calling code and fail with
// ErrIterationMismatch or ErrEmptyMatrix.
func NewStats(label string, loops, iterations int, samples [][]time.Duration) (*Stats, error) {
	return newStats(label, loops, iterations, samples, false)
}

func newStats(label string, loops, iterations int, samples [][]time.Duration, correctedStddev bool) (*Stats, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyMatrix
	}
	if iterations != len(samples) {
		return nil, ErrIterationMismatch
	}

	s := &Stats{
		Label:      label,
		Loops:      loops,
		Iterations: iterations,
		Samples:    samples,
		IterTotals: make([]time.Duration, iterations),
		IterMeans:  make([]time.Duration, iterations),
		precision:  defaultPrecision,
	}

	for i, iter := range samples {
		s.Successes += len(iter)
		var total time.Duration
		for _, d := range iter {
			total += d
		}
		s.IterTotals[i] = total
		if len(iter) > 0 {
			s.IterMeans[i] = total / time.Duration(len(iter))
		}
		s.Total += total
	}

	var meanSum time.Duration
	for _, m := range s.IterMeans {
		meanSum += m
	}
	s.Mean = meanSum / time.Duration(iterations)

	divisor := loops * iterations
	if correctedStddev {
		divisor = s.Successes
	}
	if divisor > 0 {
		var sq float64
		for _, iter := range samples {
			for _, d := range iter {
				diff := float64(d - s.Mean)
				sq += diff * diff
			}
		}
		s.Stddev = time.Duration(math.Sqrt(sq / float64(divisor)))
	}

	// Reduce best/worst per iteration first, skipping empty iterations so
	// a missing sample can never masquerade as a 0ns best.
	seen := false
	for _, iter := range samples {
		if len(iter) == 0 {
			continue
		}
		lo, hi := iter[0], iter[0]
		for _, d := range iter[1:] {
			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
		if !seen || lo < s.Best {
			s.Best = lo
		}
		if !seen || hi > s.Worst {
			s.Worst = hi
		}
		seen = true
	}

	switch {
	case s.Best > 0:
		s.DiffRatio = math.Round(float64(s.Worst)*100/float64(s.Best)) / 100
	case s.Worst > 0:
		s.DiffRatio = math.Inf(1)
	default:
		s.DiffRatio = 1
	}
	if s.DiffRatio > skewThreshold {
		s.Warning = fmt.Sprintf("worst sample took %.2fx longer than best; results may be skewed by caching effects", s.DiffRatio)
	}

	return s, nil
}

// Render formats the report with the given number of fractional digits for
// every duration field.
func (s *Stats) Render(precision int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "benchmark: %s\n", s.Label)
	fmt.Fprintf(&b, "  loops:      %d\n", s.Loops)
	fmt.Fprintf(&b, "  iterations: %d\n", s.Iterations)
	fmt.Fprintf(&b, "  successes:  %d\n", s.Successes)
	fmt.Fprintf(&b, "  total:      %s\n", FormatDuration(s.Total, precision))
	fmt.Fprintf(&b, "  mean:       %s\n", FormatDuration(s.Mean, precision))
	fmt.Fprintf(&b, "  stddev:     %s\n", FormatDuration(s.Stddev, precision))
	fmt.Fprintf(&b, "  best:       %s\n", FormatDuration(s.Best, precision))
	fmt.Fprintf(&b, "  worst:      %s\n", FormatDuration(s.Worst, precision))
	fmt.Fprintf(&b, "  diff ratio: %.2f\n", s.DiffRatio)
	if s.Warning != "" {
		fmt.Fprintf(&b, "  warning:    %s\n", s.Warning)
	}
	return b.String()
}

// String renders the report with the precision the benchmark was
// configured with (default 3).
func (s *Stats) String() string {
	return s.Render(s.precision)
}
