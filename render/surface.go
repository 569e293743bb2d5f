/*package render draws airfoils. The core gofoil types only hand over point
sequences; everything that knows about figures, files and plotting
libraries lives here.
*/
package render

import (
	"path/filepath"
	"strings"

	"github.com/phil-mansfield/gofoil"
	"github.com/phil-mansfield/gofoil/io"
)

// Surface is everything needed to draw one airfoil: the upper surface closed
// at the leading edge, the lower surface, and a label.
type Surface struct {
	Upper, Lower gofoil.Curve
	Label        string
}

// NewSurface returns the Surface of af, labeled with its name.
func NewSurface(af *gofoil.Airfoil2D) Surface {
	upper, lower := af.Outline()
	return Surface{Upper: upper, Lower: lower, Label: af.Name}
}

// StationPlotName returns the name of the figure file for station idx of a
// wing, following the naming of the station's CSV file.
func StationPlotName(af *gofoil.Airfoil2D, idx int, ext string) string {
	name := io.StationFileName(af, idx)
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
