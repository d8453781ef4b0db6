package microbench

import (
	"fmt"
	"strconv"
	"strings"
)

// Nanos covers the sample representations the formatter accepts: raw
// integer nanosecond counts (including time.Duration) and floating-point
// derived statistics.
type Nanos interface {
	~int | ~int64 | ~uint64 | ~float64
}

// FormatDuration renders a nanosecond count in a magnitude-appropriate
// unit: nanoseconds below 1e3, microseconds below 1e6, milliseconds below
// 1e9, seconds otherwise. precision is the number of fractional digits;
// trailing zeros are trimmed, so FormatDuration(1500, 3) is "1.5 µs" and
// FormatDuration(3_000_000_000, 3) is "3 s".
//
// Panics if precision < 1; that is a programming error at the call site.
func FormatDuration[N Nanos](value N, precision int) string {
	if precision < 1 {
		panic(fmt.Sprintf("microbench: FormatDuration precision must be positive, got %d", precision))
	}

	v := float64(value)
	unit := "ns"
	switch {
	case v < 1_000:
	case v < 1_000_000:
		v /= 1_000
		unit = "µs"
	case v < 1_000_000_000:
		v /= 1_000_000
		unit = "ms"
	default:
		v /= 1_000_000_000
		unit = "s"
	}

	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s + " " + unit
}
