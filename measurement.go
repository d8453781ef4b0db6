package microbench

import (
	"time"
)

// Operation is the unit of work being benchmarked: a no-argument call that
// either completes or fails. A failing invocation produces no sample.
type Operation interface {
	// Execute runs the operation once. This is the code being timed.
	Execute() error
}

// FuncOperation adapts a plain function to the Operation interface.
type FuncOperation func() error

// Execute implements Operation.
func (f FuncOperation) Execute() error {
	return f()
}

// Timer measures operations against a monotonic nanosecond clock.
// The zero value is not usable; construct with NewTimer.
type Timer struct {
	now func() int64
}

// NewTimer returns a Timer backed by the process monotonic clock.
func NewTimer() *Timer {
	return &Timer{now: nowNanos}
}

// Measure times a single invocation of op.
//
// The returned duration is valid only when ok is true. A failing invocation
// yields ok == false and no duration: the sample is dropped, not recorded
// as zero. The operation's side effects happen either way.
func (t *Timer) Measure(op Operation) (d time.Duration, ok bool) {
	start := t.now()
	if err := op.Execute(); err != nil {
		return 0, false
	}
	return time.Duration(t.now() - start), true
}

// MeasureN invokes Measure loops times sequentially and collects the
// successful samples in execution order. Failed invocations contribute
// nothing and do not stop the loop, so the result length is in [0, loops].
func (t *Timer) MeasureN(loops int, op Operation) []time.Duration {
	samples := make([]time.Duration, 0, loops)
	for i := 0; i < loops; i++ {
		if d, ok := t.Measure(op); ok {
			samples = append(samples, d)
		}
	}
	return samples
}

const (
	// cumulativeFloor is the probe target: enough cumulative runtime to
	// amortize call overhead and clock resolution noise.
	cumulativeFloor = time.Second
	// maxLoopExponent bounds the probe search.
	maxLoopExponent = 10
)

// SuggestLoops searches for a loop-count selector likely to give stable
// timing. For exponent e in 1..maxLoopExponent it probes 10^(e-1)
// invocations and returns e as soon as the probe's cumulative runtime
// reaches one second. The return value is the exponent, not the probe
// size. If no probe crosses the floor the search gives up and returns 1;
// that is an accepted approximation for very fast operations, not a
// guarantee of statistical sufficiency.
//
// The probes execute op, so SuggestLoops doubles as a warm-up pass.
func (t *Timer) SuggestLoops(op Operation) int {
	candidate := 1
	for e := 1; e <= maxLoopExponent; e++ {
		var total time.Duration
		for _, d := range t.MeasureN(candidate, op) {
			total += d
		}
		if total >= cumulativeFloor {
			return e
		}
		candidate *= 10
	}
	return 1
}

// defaultTimer backs the package-level convenience functions.
var defaultTimer = NewTimer()

// Measure times a single invocation of op on the default timer.
func Measure(op Operation) (time.Duration, bool) {
	return defaultTimer.Measure(op)
}

// MeasureN collects up to loops samples of op on the default timer.
func MeasureN(loops int, op Operation) []time.Duration {
	return defaultTimer.MeasureN(loops, op)
}

// SuggestLoops probes op on the default timer for a stable loop count.
func SuggestLoops(op Operation) int {
	return defaultTimer.SuggestLoops(op)
}
