package gofoil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gofoil/math/interpolate"
)

var (
	cmpAirfoil = cmp.AllowUnexported(Airfoil2D{})
	cmpWing    = cmp.AllowUnexported(Airfoil3D{}, Airfoil2D{})
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// thickness is the half-thickness of a symmetric four-digit NACA section
// with maximum thickness t.
func thickness(t, x float64) float64 {
	return 5 * t * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x +
		0.2843*x*x*x - 0.1015*x*x*x*x)
}

// naca returns a symmetric airfoil with n points per surface, both of which
// include the leading edge.
func naca(tb testing.TB, name string, t float64, n int) *Airfoil2D {
	tb.Helper()
	ux := interpolate.Linspace(1, 0, n, true)
	lx := interpolate.Linspace(0, 1, n, true)
	uy, ly := make([]float64, n), make([]float64, n)
	for i := range ux {
		uy[i] = thickness(t, ux[i])
		ly[i] = -thickness(t, lx[i])
	}
	af, err := FromPoints(name, ux, uy, lx, ly)
	require.NoError(tb, err)
	return af
}

func constant(n int, val float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = val
	}
	return out
}
