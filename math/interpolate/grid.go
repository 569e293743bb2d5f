package interpolate

import (
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced samples starting at lo. If endpoint is
// true the last sample is hi, otherwise hi is excluded and the spacing is
// (hi - lo) / n.
func Linspace(lo, hi float64, n int, endpoint bool) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	case endpoint:
		return floats.Span(make([]float64, n), lo, hi)
	default:
		return floats.Span(make([]float64, n+1), lo, hi)[:n]
	}
}

// StrictlyMonotone returns true if xs is strictly increasing or strictly
// decreasing. Tables with fewer than two elements are not monotone.
func StrictlyMonotone(xs []float64) bool {
	if len(xs) < 2 || xs[0] == xs[1] {
		return false
	}
	incr := xs[0] < xs[1]
	for i := 1; i < len(xs)-1; i++ {
		if incr && !(xs[i+1] > xs[i]) {
			return false
		} else if !incr && !(xs[i+1] < xs[i]) {
			return false
		}
	}
	return true
}
