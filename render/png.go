package render

import (
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/phil-mansfield/gofoil"
)

const (
	// Default figure size, in inches.
	DefaultWidth  = 6.5
	DefaultHeight = 4
)

// Plot builds a figure of s.
func Plot(s Surface) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Label
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	err := plotutil.AddLines(p,
		"Upper", curveXYs(s.Upper),
		"Lower", curveXYs(s.Lower),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// PNG draws s to fname with the default figure size.
func PNG(s Surface, fname string) error {
	return PNGSize(s, fname, DefaultWidth*vg.Inch, DefaultHeight*vg.Inch)
}

// PNGSize draws s to fname with the given figure size. The image format is
// chosen from the extension of fname, so ".svg" and ".pdf" also work.
func PNGSize(s Surface, fname string, width, height vg.Length) error {
	p, err := Plot(s)
	if err != nil {
		return err
	}
	return p.Save(width, height, fname)
}

// WingPNGs draws every station of wing to its own file in dir and returns the
// names of the files written, chord first.
func WingPNGs(wing *gofoil.Airfoil3D, dir, prefix string) ([]string, error) {
	fnames := make([]string, wing.Len())
	for i, af := range wing.Airfoils() {
		fname := filepath.Join(dir, prefix+StationPlotName(af, i, ".png"))
		if err := PNG(NewSurface(af), fname); err != nil {
			return nil, err
		}
		fnames[i] = fname
	}
	return fnames, nil
}

func curveXYs(c gofoil.Curve) plotter.XYs {
	pts := make(plotter.XYs, c.Len())
	for i := range pts {
		pts[i].X, pts[i].Y = c.Point(i)
	}
	return pts
}
