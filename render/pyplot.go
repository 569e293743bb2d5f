package render

import (
	"path/filepath"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gofoil"
)

// Matplotlib figure size, in inches.
const (
	PyplotWidth  = 7
	PyplotHeight = 4
)

// Pyplot queues a matplotlib figure of s which is saved to fname. Nothing
// is drawn until Flush is called.
func Pyplot(s Surface, fname string) {
	plt.Figure(plt.FigSize(PyplotWidth, PyplotHeight))
	plt.Plot(s.Upper.X, s.Upper.Y, "b", plt.LW(2))
	plt.Plot(s.Lower.X, s.Lower.Y, "r", plt.LW(2))
	plt.Title(s.Label)
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.SaveFig(fname)
}

// WingPyplots queues one figure per station of wing and returns the names of
// the files which will be written by Flush.
func WingPyplots(wing *gofoil.Airfoil3D, dir, prefix string) []string {
	fnames := make([]string, wing.Len())
	for i, af := range wing.Airfoils() {
		fnames[i] = filepath.Join(dir, prefix+StationPlotName(af, i, ".png"))
		Pyplot(NewSurface(af), fnames[i])
	}
	return fnames
}

// Flush runs every queued matplotlib command and clears the queue. It
// requires python with matplotlib.
func Flush() {
	plt.Execute()
	plt.Reset()
}
