package gofoil

import (
	"github.com/phil-mansfield/gofoil/math/interpolate"
)

// Project evaluates the line through (0, chordValue) and (1, tipValue) at
// every span fraction in spans, extrapolating past both ends.
//
// If chordValue and tipValue are exactly equal, Project returns a slice of
// zeros rather than the shared value. Callers rely on this to skip the
// projection of flat regions.
func Project(chordValue, tipValue float64, spans []float64) []float64 {
	if chordValue-tipValue == 0 {
		return make([]float64, len(spans))
	}

	// Two distinct finite x values can't fail.
	lin, err := interpolate.NewLinear(
		[]float64{0, 1}, []float64{chordValue, tipValue},
	)
	if err != nil {
		panic(err.Error())
	}
	return lin.EvalAll(spans)
}
