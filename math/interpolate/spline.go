package interpolate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MinSplinePoints is the smallest table a cubic spline can be fit to.
const MinSplinePoints = 4

type splineCoeff struct {
	a, b, c, d float64
}

// Spline represents a 1D cubic spline which can be used to interpolate between
// points. The spline uses not-a-knot end conditions, so the first two and the
// last two segments are each a single cubic. Evaluating it outside the range
// of the table continues the nearest end segment.
type Spline struct {
	xs, ys, y2s []float64
	coeffs      []splineCoeff

	incr bool

	// Usually the input data is uniform. This is our estimate of the point
	// spacing.
	dx float64
}

// NewSpline creates a spline based off a table of x and y values. The values
// must be strictly increasing or strictly decreasing in x, and there must be
// at least MinSplinePoints of them.
//
// xs and ys are copied, so the caller is free to modify them afterwards.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if err := checkTable(xs, ys, MinSplinePoints); err != nil {
		return nil, err
	}
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("%w: y value %d, %g, is not finite",
				ErrBadTable, i, y)
		}
	}

	sp := new(Spline)
	sp.xs = make([]float64, len(xs))
	sp.ys = make([]float64, len(xs))
	sp.y2s = make([]float64, len(xs))
	sp.coeffs = make([]splineCoeff, len(xs)-1)

	copy(sp.xs, xs)
	copy(sp.ys, ys)
	sp.incr = xs[0] < xs[1]
	sp.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)

	if err := sp.calcY2s(); err != nil {
		return nil, err
	}
	sp.calcCoeffs()
	return sp, nil
}

// Eval computes the value of the spline at the given point.
func (sp *Spline) Eval(x float64) float64 {
	return sp.Diff(x, 0)
}

// EvalAll evaluates the spline at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = sp.Eval(x)
	}
	return out[0]
}

// Diff computes the derivative of spline at the given point to the
// specified order. Order 0 is the value itself.
func (sp *Spline) Diff(x float64, order int) float64 {
	i := sp.bsearch(x)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	switch order {
	case 0:
		return ((a*dx+b)*dx+c)*dx + d
	case 1:
		return (3*a*dx+2*b)*dx + c
	case 2:
		return 6*a*dx + 2*b
	case 3:
		return 6 * a
	default:
		return 0
	}
}

// bsearch returns the index of the segment used to evaluate x. Points beyond
// either end of the table map onto the end segments.
func (sp *Spline) bsearch(x float64) int {
	n := len(sp.xs)
	if !sp.past(x, sp.xs[1]) {
		return 0
	} else if sp.past(x, sp.xs[n-2]) {
		return n - 2
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - sp.xs[0]) / sp.dx)
	if guess >= 0 && guess < n-1 &&
		sp.past(x, sp.xs[guess]) && !sp.past(x, sp.xs[guess+1]) {

		return guess
	}

	// Binary search.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if sp.past(x, sp.xs[mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// past returns true if x is at or beyond knot in the direction of the table.
// Knots belong to the segment which starts at them, so evaluating the spline
// exactly at a knot returns the tabulated value.
func (sp *Spline) past(x, knot float64) bool {
	if sp.incr {
		return x >= knot
	}
	return x <= knot
}

// calcY2s computes the second derivative at every point in the table given to
// NewSpline. Interior rows are the usual continuity conditions; the first and
// last rows force the third derivative to be continuous across the second and
// second-to-last knots.
func (sp *Spline) calcY2s() error {
	n := len(sp.xs)
	xs, ys := sp.xs, sp.ys
	hs := make([]float64, n-1)
	for i := range hs {
		hs[i] = xs[i+1] - xs[i]
	}

	a := mat.NewDense(n, n, nil)
	r := mat.NewVecDense(n, nil)

	a.Set(0, 0, hs[1])
	a.Set(0, 1, -(hs[0] + hs[1]))
	a.Set(0, 2, hs[0])

	for j := 1; j < n-1; j++ {
		a.Set(j, j-1, hs[j-1])
		a.Set(j, j, 2*(hs[j-1]+hs[j]))
		a.Set(j, j+1, hs[j])
		r.SetVec(j, 6*((ys[j+1]-ys[j])/hs[j]-(ys[j]-ys[j-1])/hs[j-1]))
	}

	a.Set(n-1, n-3, hs[n-2])
	a.Set(n-1, n-2, -(hs[n-3] + hs[n-2]))
	a.Set(n-1, n-1, hs[n-3])

	var y2s mat.VecDense
	if err := y2s.SolveVec(a, r); err != nil {
		return fmt.Errorf("%w: spline system could not be solved: %s",
			ErrBadTable, err.Error())
	}
	for i := range sp.y2s {
		sp.y2s[i] = y2s.AtVec(i)
	}
	return nil
}

func (sp *Spline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs, sp.ys, sp.y2s
	for i := range coeffs {
		h := xs[i+1] - xs[i]
		coeffs[i].a = (y2s[i+1] - y2s[i]) / (6 * h)
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6
		coeffs[i].d = ys[i]
	}
}

// checkTable returns an error if xs and ys cannot be used as an interpolation
// table with at least minLen entries.
func checkTable(xs, ys []float64, minLen int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: len(xs) = %d but len(ys) = %d",
			ErrBadTable, len(xs), len(ys))
	} else if len(xs) < minLen {
		return fmt.Errorf("%w: table has %d points, but at least %d are needed",
			ErrBadTable, len(xs), minLen)
	}

	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: x value %d, %g, is not finite",
				ErrBadTable, i, x)
		}
	}

	if !StrictlyMonotone(xs) {
		return fmt.Errorf("%w: x values are not strictly increasing or "+
			"strictly decreasing", ErrBadTable)
	}
	return nil
}
