package interpolate

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a piecewise linear interpolator. Points beyond either end of the
// table are extrapolated along the end segments.
type Linear struct {
	xs, vals []float64
	incr     bool
}

// NewLinear creates a linear interpolator for a sequence of strictly increasing
// or strictly decreasing points, xs, which take on the values given by vals.
// At least two points are required.
//
// Lookups will occur in O(log |xs|).
func NewLinear(xs, vals []float64) (*Linear, error) {
	if err := checkTable(xs, vals, 2); err != nil {
		return nil, err
	}
	lin := &Linear{
		xs:   append([]float64(nil), xs...),
		vals: append([]float64(nil), vals...),
		incr: xs[0] < xs[1],
	}
	return lin, nil
}

// Eval returns the interpolated value at x.
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs[i1], lin.xs[i2]
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}

// search returns the index of the segment which x falls in, with points off
// the ends of the table assigned to the end segments.
func (lin *Linear) search(x float64) int {
	lo, hi := 0, len(lin.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if lin.incr == (x >= lin.xs[mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
