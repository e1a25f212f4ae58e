package roads

import (
	"math"
	"sort"
)

// rollingMedian returns, for every position, the median of the present
// values in a centered window. The window shrinks at the ends and a window
// with no present value yields NaN.
func rollingMedian(vals []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	before := window / 2
	after := window - 1 - before

	out := make([]float64, len(vals))
	buf := make([]float64, 0, window)
	for i := range vals {
		lo := max(0, i-before)
		hi := min(len(vals)-1, i+after)

		buf = buf[:0]
		for _, v := range vals[lo : hi+1] {
			if !math.IsNaN(v) {
				buf = append(buf, v)
			}
		}
		out[i] = median(buf)
	}
	return out
}

// median sorts vals in place and returns their median, averaging the two
// middle values for an even count.
func median(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}

// fillGaps linearly interpolates missing values by position and carries the
// nearest present value into leading and trailing gaps. An all-missing
// slice is returned unchanged.
func fillGaps(vals []float64) []float64 {
	out := make([]float64, len(vals))
	copy(out, vals)

	prev := -1
	for i, v := range out {
		if math.IsNaN(v) {
			continue
		}
		switch {
		case prev == -1:
			for j := 0; j < i; j++ {
				out[j] = v
			}
		case i-prev > 1:
			step := (v - out[prev]) / float64(i-prev)
			for j := prev + 1; j < i; j++ {
				out[j] = out[prev] + step*float64(j-prev)
			}
		}
		prev = i
	}
	if prev == -1 {
		return out
	}
	for j := prev + 1; j < len(out); j++ {
		out[j] = out[prev]
	}
	return out
}
