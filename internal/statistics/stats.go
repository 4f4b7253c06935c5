package statistics

import (
	"math"
	"time"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0.0
	}
	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(n))
}

// Speedup returns baseline/other as a ratio: >1 means other is faster
// than the baseline. Returns 0 when other is non-positive.
func Speedup(baseline, other time.Duration) float64 {
	if other <= 0 {
		return 0.0
	}
	return float64(baseline) / float64(other)
}
