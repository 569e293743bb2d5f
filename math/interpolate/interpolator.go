/*package interpolate contains one dimensional interpolators which are used to
resample tabulated curves.

Unlike most interpolation libraries, every interpolator in this package
extrapolates: points outside the table are evaluated by continuing the end
segments rather than being clamped or rejected.
*/
package interpolate

import (
	"errors"
)

// ErrBadTable is returned when a table of points cannot be interpolated.
var ErrBadTable = errors.New("interpolate: bad table")

type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Linear{}
)
