package gofoil

import (
	"fmt"

	"github.com/phil-mansfield/gofoil/math/interpolate"
)

// Curve is an ordered sequence of (x, y) points describing one surface of an
// airfoil. X does not need to be sorted to be stored, but it must be strictly
// monotone for the curve to be resampled.
type Curve struct {
	X, Y []float64
}

// NewCurve creates a curve from copies of x and y.
func NewCurve(x, y []float64) (Curve, error) {
	c := Curve{
		X: append([]float64(nil), x...),
		Y: append([]float64(nil), y...),
	}
	if err := c.Validate(); err != nil {
		return Curve{}, err
	}
	return c, nil
}

// flatCurve returns a curve with y = 0 at every x.
func flatCurve(x []float64) Curve {
	return Curve{X: x, Y: make([]float64, len(x))}
}

// Len returns the number of points in the curve.
func (c Curve) Len() int { return len(c.X) }

// Point returns the i-th point of the curve.
func (c Curve) Point(i int) (x, y float64) { return c.X[i], c.Y[i] }

// Copy returns a deep copy of c.
func (c Curve) Copy() Curve {
	return Curve{
		X: append([]float64(nil), c.X...),
		Y: append([]float64(nil), c.Y...),
	}
}

// Validate returns an error if c cannot be stored as a surface.
func (c Curve) Validate() error {
	if len(c.X) != len(c.Y) {
		return fmt.Errorf("%w: len(x) = %d but len(y) = %d",
			ErrMalformedCurve, len(c.X), len(c.Y))
	} else if len(c.X) < 2 {
		return fmt.Errorf("%w: curve has %d points, but at least 2 are needed",
			ErrMalformedCurve, len(c.X))
	}
	return nil
}

// ValidateFit returns an error if a cubic curve cannot be fit through c.
func (c Curve) ValidateFit() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.X) < interpolate.MinSplinePoints {
		return fmt.Errorf("%w: curve has %d points, but a cubic fit needs %d",
			ErrMalformedCurve, len(c.X), interpolate.MinSplinePoints)
	}
	if !interpolate.StrictlyMonotone(c.X) {
		return fmt.Errorf("%w: x values are not strictly monotone",
			ErrMalformedCurve)
	}
	return nil
}

// Resample fits a cubic spline through c and evaluates it at xs. Points of xs
// outside the range of c are extrapolated.
func (c Curve) Resample(xs []float64) (Curve, error) {
	if err := c.ValidateFit(); err != nil {
		return Curve{}, err
	}
	sp, err := interpolate.NewSpline(c.X, c.Y)
	if err != nil {
		return Curve{}, fmt.Errorf("%w: %w", ErrMalformedCurve, err)
	}
	out := Curve{X: append([]float64(nil), xs...)}
	out.Y = sp.EvalAll(out.X)
	return out, nil
}
