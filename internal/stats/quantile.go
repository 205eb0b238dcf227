package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// quantile returns the q-th quantile of values using linear interpolation
// between closest ranks, the convention the historical reports were
// produced with. The rank position is (n-1)*q; gonum's cumulant-based
// quantiles interpolate differently and would shift every reported
// quartile.
func quantile(values []float64, q float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return values[0]
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := float64(n-1) * q
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// median is the 50th percentile.
func median(values []float64) float64 {
	return quantile(values, 0.5)
}

// mean wraps gonum's mean with a zero value for empty input.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// sampleStd is the sample standard deviation. Fewer than two values
// report 0 instead of a division-by-zero NaN.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}
