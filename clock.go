package microbench

import (
	"time"
)

// monotonicEpoch anchors every clock read. time.Since against a single
// epoch uses the runtime's monotonic reading, so wall-clock adjustments
// (NTP slew, manual changes) never show up in samples.
var monotonicEpoch = time.Now()

// nowNanos returns nanoseconds elapsed since the package epoch.
func nowNanos() int64 {
	return time.Since(monotonicEpoch).Nanoseconds()
}

// ClockName returns the name of the time source being used.
func ClockName() string {
	return "time.Now"
}

// ClockResolutionNs returns the nominal clock resolution in nanoseconds.
// The nominal resolution is 1ns; the effective resolution depends on the
// platform and is the usual reason a very fast operation records 0ns
// samples.
func ClockResolutionNs() float64 {
	return 1.0
}
