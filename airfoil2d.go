package gofoil

import (
	"fmt"
	"io"

	"github.com/phil-mansfield/gofoil/math/interpolate"
)

const (
	// DefaultXDim is the number of samples per surface used when resampling
	// an airfoil without an explicit point count.
	DefaultXDim = 25
	// FlatPoints is the number of samples per surface of a flat airfoil.
	FlatPoints = 15
)

// Airfoil2D is a wing cross-section. By convention the upper surface runs
// from the trailing edge to the leading edge (x from 1 towards 0) and the
// lower surface runs from the leading edge to the trailing edge (x from 0 to
// 1). The two surfaces conceptually share the leading edge point, but no
// continuity between them is enforced.
type Airfoil2D struct {
	// Name is an optional label. The empty string means the airfoil has no
	// name.
	Name string

	upper, lower Curve
}

// UpperX returns the x samples of a flat upper surface with n points: n
// evenly spaced values from 1 down to, but not including, 0.
func UpperX(n int) []float64 { return interpolate.Linspace(1, 0, n, false) }

// LowerX returns the x samples of a flat lower surface with n points: n
// evenly spaced values from 0 to 1 inclusive.
func LowerX(n int) []float64 { return interpolate.Linspace(0, 1, n, true) }

// NewAirfoil2D returns a flat airfoil (y = 0 on both surfaces) with
// FlatPoints samples per surface. Every call allocates new curves.
func NewAirfoil2D(name string) *Airfoil2D {
	return &Airfoil2D{
		Name:  name,
		upper: flatCurve(UpperX(FlatPoints)),
		lower: flatCurve(LowerX(FlatPoints)),
	}
}

// FromPoints creates an airfoil from raw upper and lower surface points. The
// slices are copied.
func FromPoints(name string, ux, uy, lx, ly []float64) (*Airfoil2D, error) {
	upper, err := NewCurve(ux, uy)
	if err != nil {
		return nil, fmt.Errorf("upper surface of '%s': %w", name, err)
	}
	lower, err := NewCurve(lx, ly)
	if err != nil {
		return nil, fmt.Errorf("lower surface of '%s': %w", name, err)
	}
	return &Airfoil2D{Name: name, upper: upper, lower: lower}, nil
}

// Upper returns a copy of the upper surface.
func (af *Airfoil2D) Upper() Curve { return af.upper.Copy() }

// Lower returns a copy of the lower surface.
func (af *Airfoil2D) Lower() Curve { return af.lower.Copy() }

// SetUpper replaces the upper surface with a copy of c.
func (af *Airfoil2D) SetUpper(c Curve) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("upper surface of '%s': %w", af.Name, err)
	}
	af.upper = c.Copy()
	return nil
}

// SetLower replaces the lower surface with a copy of c.
func (af *Airfoil2D) SetLower(c Curve) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("lower surface of '%s': %w", af.Name, err)
	}
	af.lower = c.Copy()
	return nil
}

// FlattenUpper resets the upper surface to its flat default.
func (af *Airfoil2D) FlattenUpper() { af.upper = flatCurve(UpperX(FlatPoints)) }

// FlattenLower resets the lower surface to its flat default.
func (af *Airfoil2D) FlattenLower() { af.lower = flatCurve(LowerX(FlatPoints)) }

// Flatten resets both surfaces.
func (af *Airfoil2D) Flatten() {
	af.FlattenUpper()
	af.FlattenLower()
}

// Copy returns a deep copy of af.
func (af *Airfoil2D) Copy() *Airfoil2D {
	return &Airfoil2D{Name: af.Name, upper: af.upper.Copy(), lower: af.lower.Copy()}
}

// Interpolate fits a cubic curve through each surface and resamples both to
// xdim points. The upper surface is sampled at UpperX(xdim) and the lower
// surface at LowerX(xdim); samples outside the range of the stored x
// values are extrapolated. The name is kept and af is left unchanged.
func (af *Airfoil2D) Interpolate(xdim int) (*Airfoil2D, error) {
	if xdim < 1 {
		return nil, fmt.Errorf("%w: cannot resample '%s' to %d points",
			ErrSampleCount, af.Name, xdim)
	}

	upper, err := af.upper.Resample(UpperX(xdim))
	if err != nil {
		return nil, fmt.Errorf("upper surface of '%s': %w", af.Name, err)
	}
	lower, err := af.lower.Resample(LowerX(xdim))
	if err != nil {
		return nil, fmt.Errorf("lower surface of '%s': %w", af.Name, err)
	}

	return &Airfoil2D{Name: af.Name, upper: upper, lower: lower}, nil
}

// Outline returns the surfaces in the form used for drawing: the upper
// surface is closed by appending the leading edge point (0, 0).
func (af *Airfoil2D) Outline() (upper, lower Curve) {
	upper = af.upper.Copy()
	upper.X = append(upper.X, 0)
	upper.Y = append(upper.Y, 0)
	return upper, af.lower.Copy()
}

// Print writes the name of the airfoil followed by one tab-separated row per
// point, upper surface first.
func (af *Airfoil2D) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w, af.Name); err != nil {
		return err
	}
	for _, c := range []Curve{af.upper, af.lower} {
		for i := range c.X {
			_, err := fmt.Fprintf(w, "%05f\t%05f\n", c.X[i], c.Y[i])
			if err != nil {
				return err
			}
		}
	}
	return nil
}
