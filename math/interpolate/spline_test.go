package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubic(x float64) float64 {
	return x*x*x - 2*x*x + 0.5*x + 1
}

func tabulate(f func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

func TestSplineReproducesCubic(t *testing.T) {
	xs := []float64{0, 0.3, 0.7, 1, 1.6, 2}
	sp, err := NewSpline(xs, tabulate(cubic, xs))
	require.NoError(t, err)

	for x := -0.5; x <= 2.5; x += 0.05 {
		assert.InDelta(t, cubic(x), sp.Eval(x), 1e-9, "x = %g", x)
	}
	assert.InDelta(t, 3*1.1*1.1-4*1.1+0.5, sp.Diff(1.1, 1), 1e-9)
	assert.InDelta(t, 6*1.1-4, sp.Diff(1.1, 2), 1e-9)
	assert.InDelta(t, 6.0, sp.Diff(1.1, 3), 1e-9)
	assert.Equal(t, 0.0, sp.Diff(1.1, 4))
}

func TestSplineExactAtKnots(t *testing.T) {
	xs := []float64{0, 0.1, 0.25, 0.5, 0.75, 1}
	ys := []float64{0, 0.04, 0.06, 0.05, 0.03, 0.001}
	sp, err := NewSpline(xs, ys)
	require.NoError(t, err)

	for i := 0; i < len(xs)-1; i++ {
		assert.Equal(t, ys[i], sp.Eval(xs[i]), "knot %d", i)
	}
	assert.InDelta(t, ys[len(ys)-1], sp.Eval(xs[len(xs)-1]), 1e-12)
}

func TestSplineDecreasing(t *testing.T) {
	incXs := []float64{0, 0.2, 0.45, 0.6, 0.8, 1}
	incYs := []float64{0, 0.05, 0.07, 0.06, 0.04, 0.01}
	decXs := make([]float64, len(incXs))
	decYs := make([]float64, len(incYs))
	for i := range incXs {
		decXs[len(incXs)-1-i] = incXs[i]
		decYs[len(incYs)-1-i] = incYs[i]
	}

	inc, err := NewSpline(incXs, incYs)
	require.NoError(t, err)
	dec, err := NewSpline(decXs, decYs)
	require.NoError(t, err)

	for _, x := range Linspace(-0.1, 1.1, 37, true) {
		assert.InDelta(t, inc.Eval(x), dec.Eval(x), 1e-12, "x = %g", x)
	}
	for i := 0; i < len(decXs)-1; i++ {
		assert.Equal(t, decYs[i], dec.Eval(decXs[i]), "knot %d", i)
	}
}

func TestSplineFourPointsIsSingleCubic(t *testing.T) {
	xs := []float64{1, 0.6, 0.3, 0}
	sp, err := NewSpline(xs, tabulate(cubic, xs))
	require.NoError(t, err)
	for _, x := range []float64{-1, 0.1, 0.45, 0.9, 2} {
		assert.InDelta(t, cubic(x), sp.Eval(x), 1e-9, "x = %g", x)
	}
}

func TestSplineFlat(t *testing.T) {
	xs := Linspace(1, 0, 15, false)
	sp, err := NewSpline(xs, make([]float64, len(xs)))
	require.NoError(t, err)

	out := sp.EvalAll(Linspace(1, 0, 25, false))
	for i := range out {
		assert.Equal(t, 0.0, out[i])
	}
}

func TestSplineEvalAllBuffer(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	sp, err := NewSpline(xs, []float64{2, 3, 4, 5, 6})
	require.NoError(t, err)

	buf := make([]float64, 3)
	out := sp.EvalAll([]float64{-1, 2.5, 6}, buf)
	assert.Same(t, &buf[0], &out[0])
	assert.InDeltaSlice(t, []float64{1, 4.5, 8}, buf, 1e-12)
}

func TestSplineCopiesInput(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 4, 9}
	sp, err := NewSpline(xs, ys)
	require.NoError(t, err)

	ys[2] = 100
	xs[3] = 50
	assert.InDelta(t, 6.25, sp.Eval(2.5), 1e-12)
}

func TestSplineErrors(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
	}{
		{"length mismatch", []float64{0, 1, 2, 3}, []float64{0, 1, 2}},
		{"too short", []float64{0, 0.5, 1}, []float64{0, 1, 0}},
		{"not sorted", []float64{0, 0.5, 0.2, 1}, []float64{0, 1, 1, 0}},
		{"duplicate x", []float64{0, 0.5, 0.5, 1}, []float64{0, 1, 1, 0}},
		{"leading duplicate", []float64{0, 0, 0.5, 1}, []float64{0, 1, 1, 0}},
		{"not finite", []float64{0, 0.5, 0.7, 1}, []float64{0, math.NaN(), 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, err := NewSpline(tt.xs, tt.ys)
			assert.Nil(t, sp)
			assert.ErrorIs(t, err, ErrBadTable)
		})
	}
}
