package gofoil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAirfoil2DFlat(t *testing.T) {
	af := NewAirfoil2D("flat")
	upper, lower := af.Upper(), af.Lower()

	assert.Equal(t, "flat", af.Name)
	assert.Equal(t, FlatPoints, upper.Len())
	assert.Equal(t, FlatPoints, lower.Len())
	assert.Equal(t, 1.0, upper.X[0])
	assert.InDelta(t, 1.0/15, upper.X[FlatPoints-1], 1e-12)
	assert.Equal(t, 0.0, lower.X[0])
	assert.Equal(t, 1.0, lower.X[FlatPoints-1])
	assert.Equal(t, make([]float64, FlatPoints), upper.Y)
	assert.Equal(t, make([]float64, FlatPoints), lower.Y)
}

func TestNewAirfoil2DIndependent(t *testing.T) {
	a, b := NewAirfoil2D(""), NewAirfoil2D("")
	assert.NotSame(t, &a.upper.X[0], &b.upper.X[0])
	assert.NotSame(t, &a.lower.Y[0], &b.lower.Y[0])

	a.upper.Y[3] = 1
	assert.Equal(t, 0.0, b.upper.Y[3])
}

func TestFromPointsCopies(t *testing.T) {
	ux, uy := []float64{1, 0.5, 0}, []float64{0, 0.1, 0}
	lx, ly := []float64{0, 0.5, 1}, []float64{0, -0.1, 0}
	af, err := FromPoints("raw", ux, uy, lx, ly)
	require.NoError(t, err)

	uy[1], ly[1] = 9, 9
	assert.Equal(t, []float64{0, 0.1, 0}, af.Upper().Y)
	assert.Equal(t, []float64{0, -0.1, 0}, af.Lower().Y)

	_, err = FromPoints("bad", ux, uy[:2], lx, ly)
	assert.ErrorIs(t, err, ErrMalformedCurve)
	_, err = FromPoints("bad", ux, uy, lx, nil)
	assert.ErrorIs(t, err, ErrMalformedCurve)
}

func TestSetAndFlatten(t *testing.T) {
	af := naca(t, "n12", 0.12, 9)

	c := Curve{X: []float64{1, 0.5, 0}, Y: []float64{0, 0.2, 0}}
	require.NoError(t, af.SetUpper(c))
	c.Y[1] = 5
	assert.Equal(t, 0.2, af.Upper().Y[1])
	assert.ErrorIs(t, af.SetLower(Curve{X: []float64{0}}), ErrMalformedCurve)

	af.FlattenLower()
	lower := af.Lower()
	assert.Equal(t, LowerX(FlatPoints), lower.X)
	assert.Equal(t, make([]float64, FlatPoints), lower.Y)
	assert.Equal(t, 0.2, af.Upper().Y[1])

	af.Flatten()
	diff(t, NewAirfoil2D("n12"), af, cmpAirfoil)
}

func TestInterpolatePointCount(t *testing.T) {
	af := naca(t, "n12", 0.12, 17)
	for _, n := range []int{4, 7, DefaultXDim, 100} {
		out, err := af.Interpolate(n)
		require.NoError(t, err)
		assert.Equal(t, n, out.Upper().Len())
		assert.Equal(t, n, out.Lower().Len())
		assert.Equal(t, UpperX(n), out.Upper().X)
		assert.Equal(t, LowerX(n), out.Lower().X)
		assert.Greater(t, out.Upper().X[n-1], 0.0)
	}
}

func TestInterpolateRoundTrip(t *testing.T) {
	n := 12
	ux, lx := UpperX(n), LowerX(n)
	uy, ly := make([]float64, n), make([]float64, n)
	for i := range ux {
		uy[i] = thickness(0.15, ux[i])
		ly[i] = -0.5 * thickness(0.15, lx[i])
	}
	af, err := FromPoints("sampled", ux, uy, lx, ly)
	require.NoError(t, err)

	out, err := af.Interpolate(n)
	require.NoError(t, err)
	assert.InDeltaSlice(t, uy, out.Upper().Y, 1e-12)
	assert.InDeltaSlice(t, ly, out.Lower().Y, 1e-12)
}

func TestInterpolateLeavesReceiver(t *testing.T) {
	af := naca(t, "n09", 0.09, 10)
	before := af.Copy()

	out, err := af.Interpolate(30)
	require.NoError(t, err)
	assert.Equal(t, "n09", out.Name)
	diff(t, before, af, cmpAirfoil)

	out.upper.Y[0] = 42
	diff(t, before, af, cmpAirfoil)
}

func TestInterpolateFlat(t *testing.T) {
	out, err := NewAirfoil2D("").Interpolate(DefaultXDim)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, DefaultXDim), out.Upper().Y)
	assert.Equal(t, make([]float64, DefaultXDim), out.Lower().Y)
}

func TestInterpolateErrors(t *testing.T) {
	af := naca(t, "n12", 0.12, 10)
	_, err := af.Interpolate(0)
	assert.ErrorIs(t, err, ErrSampleCount)

	short, err := FromPoints("short",
		[]float64{1, 0.5, 0}, []float64{0, 0.1, 0},
		LowerX(5), make([]float64, 5),
	)
	require.NoError(t, err)
	_, err = short.Interpolate(10)
	assert.ErrorIs(t, err, ErrMalformedCurve)
	assert.Contains(t, err.Error(), "upper surface")

	unsorted, err := FromPoints("unsorted",
		UpperX(5), make([]float64, 5),
		[]float64{0, 0.3, 0.2, 0.6, 1}, make([]float64, 5),
	)
	require.NoError(t, err)
	_, err = unsorted.Interpolate(10)
	assert.ErrorIs(t, err, ErrMalformedCurve)
	assert.Contains(t, err.Error(), "lower surface")
}

func TestOutline(t *testing.T) {
	af := NewAirfoil2D("")
	upper, lower := af.Outline()
	assert.Equal(t, FlatPoints+1, upper.Len())
	x, y := upper.Point(FlatPoints)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, FlatPoints, lower.Len())
	assert.Equal(t, FlatPoints, af.Upper().Len())
}

func TestAirfoil2DPrint(t *testing.T) {
	af, err := FromPoints("tiny",
		[]float64{1, 0}, []float64{0.02, 0},
		[]float64{0, 1}, []float64{0, -0.01},
	)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, af.Print(buf))
	assert.Equal(t, "tiny\n"+
		"1.000000\t0.020000\n"+
		"0.000000\t0.000000\n"+
		"0.000000\t0.000000\n"+
		"1.000000\t-0.010000\n", buf.String())
}
