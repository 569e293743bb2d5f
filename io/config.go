package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gofoil"
	"github.com/phil-mansfield/gofoil/math/interpolate"
)

const (
	ExampleWingFile = `[Wing]

#######################
# Required Parameters #
#######################

# Airfoil files for the chord (span fraction 0) and the tip (span fraction 1).
# Files ending in .csv are read as comma separated files whose first row is
# the airfoil name. Anything else is read as a whitespace separated table of
# x and y columns. In both cases the upper surface is listed first, running
# from the trailing edge to the leading edge, and the first row with x = 0
# starts the lower surface.
Chord = path/to/chord.csv
Tip = path/to/tip.csv

# Directory which output files will be written to. One file is written per
# station, named <station name>_<station index>.csv.
Output = path/to/output/dir

#######################
# Optional Parameters #
#######################

# Number of points each surface is resampled to. Default is 25.
# XDim = 100

# Span fractions of the output stations. Each Span line adds one station. The
# first must be 0 and the last must be 1. Default is 0, 0.1, ..., 1.
# Span = 0
# Span = 0.5
# Span = 0.75
# Span = 1

# Alternative to Span: the number of evenly spaced stations from chord to
# tip, including both.
# SpanCount = 8

# Draw every station. Must be one of [ png | pyplot ]. pyplot requires a
# python installation with matplotlib.
# Plot = png

# Text prepended to every output file name.
# PrependName = pre_

# Output file which is useful for debugging.
# LogFile = log.out`

	ExampleResampleFile = `[Resample]

#######################
# Required Parameters #
#######################

# Airfoil file to resample, in either of the formats accepted by [Wing].
Input = path/to/airfoil.csv
# File the resampled airfoil is written to.
Output = path/to/resampled.csv

#######################
# Optional Parameters #
#######################

# Number of points each surface is resampled to. Default is 25.
# XDim = 100

# Must be one of [ png | pyplot ].
# Plot = png

# LogFile = log.out`
)

// Plot formats accepted by the Plot variable.
const (
	PlotNone   = ""
	PlotPNG    = "png"
	PlotPyplot = "pyplot"
)

type WingConfig struct {
	// Required
	Chord, Tip, Output string

	// Optional
	XDim        int
	Span        []float64
	SpanCount   int
	Plot        string
	PrependName string
	LogFile     string
}

type WingWrapper struct {
	Wing WingConfig
}

func DefaultWingWrapper() *WingWrapper {
	con := WingConfig{}
	con.XDim = gofoil.DefaultXDim
	return &WingWrapper{con}
}

func (con *WingConfig) ValidChord() bool  { return con.Chord != "" }
func (con *WingConfig) ValidTip() bool    { return con.Tip != "" }
func (con *WingConfig) ValidOutput() bool { return con.Output != "" }
func (con *WingConfig) ValidXDim() bool   { return con.XDim > 0 }
func (con *WingConfig) ValidSpanCount() bool {
	return con.SpanCount >= 2
}
func (con *WingConfig) ValidPlot() bool { return validPlot(con.Plot) }
func (con *WingConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// CheckInit normalizes con and returns an error describing the first invalid
// variable, if any.
func (con *WingConfig) CheckInit() error {
	con.Plot = normalizePlot(con.Plot)

	if !con.ValidChord() {
		return fmt.Errorf("Invalid/non-existent 'Chord' value.")
	} else if !con.ValidTip() {
		return fmt.Errorf("Invalid/non-existent 'Tip' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidXDim() {
		return fmt.Errorf("'XDim' must be positive, but is %d.", con.XDim)
	} else if !con.ValidPlot() {
		return fmt.Errorf(
			"'Plot' must be one of [png | pyplot]. '%s' is not recognized.",
			con.Plot,
		)
	} else if len(con.Span) > 0 && con.SpanCount != 0 {
		return fmt.Errorf("Only one of 'Span' and 'SpanCount' may be set.")
	} else if con.SpanCount != 0 && !con.ValidSpanCount() {
		return fmt.Errorf(
			"'SpanCount' must be at least 2, but is %d.", con.SpanCount,
		)
	}

	if _, err := con.SpanFractions(); err != nil {
		return err
	}
	return nil
}

// SpanFractions returns the span fractions of the stations requested by
// con: the Span list if given, SpanCount evenly spaced fractions if given,
// and the default fractions otherwise.
func (con *WingConfig) SpanFractions() ([]float64, error) {
	var spans []float64
	switch {
	case len(con.Span) > 0:
		spans = append([]float64(nil), con.Span...)
	case con.SpanCount != 0:
		spans = interpolate.Linspace(0, 1, con.SpanCount, true)
	default:
		spans = gofoil.DefaultSpans()
	}

	if err := gofoil.ValidateSpans(spans); err != nil {
		return nil, err
	}
	return spans, nil
}

// ReadWingConfig reads and checks a [Wing] config file.
func ReadWingConfig(fname string) (*WingConfig, error) {
	wrap := DefaultWingWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Wing.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Wing, nil
}

type ResampleConfig struct {
	// Required
	Input, Output string

	// Optional
	XDim    int
	Plot    string
	LogFile string
}

type ResampleWrapper struct {
	Resample ResampleConfig
}

func DefaultResampleWrapper() *ResampleWrapper {
	con := ResampleConfig{}
	con.XDim = gofoil.DefaultXDim
	return &ResampleWrapper{con}
}

func (con *ResampleConfig) ValidInput() bool  { return con.Input != "" }
func (con *ResampleConfig) ValidOutput() bool { return con.Output != "" }
func (con *ResampleConfig) ValidXDim() bool   { return con.XDim > 0 }
func (con *ResampleConfig) ValidPlot() bool   { return validPlot(con.Plot) }
func (con *ResampleConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// CheckInit normalizes con and returns an error describing the first invalid
// variable, if any.
func (con *ResampleConfig) CheckInit() error {
	con.Plot = normalizePlot(con.Plot)

	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidXDim() {
		return fmt.Errorf("'XDim' must be positive, but is %d.", con.XDim)
	} else if !con.ValidPlot() {
		return fmt.Errorf(
			"'Plot' must be one of [png | pyplot]. '%s' is not recognized.",
			con.Plot,
		)
	}
	return nil
}

// ReadResampleConfig reads and checks a [Resample] config file.
func ReadResampleConfig(fname string) (*ResampleConfig, error) {
	wrap := DefaultResampleWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Resample.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Resample, nil
}

func normalizePlot(plot string) string {
	return strings.ToLower(strings.Trim(plot, " "))
}

func validPlot(plot string) bool {
	switch normalizePlot(plot) {
	case PlotNone, PlotPNG, PlotPyplot:
		return true
	}
	return false
}
