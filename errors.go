package gofoil

import (
	"errors"
)

var (
	// ErrMalformedCurve is returned when a surface curve cannot be stored or
	// cannot be fit: mismatched lengths, too few points, or x values which
	// are not strictly monotone.
	ErrMalformedCurve = errors.New("gofoil: malformed curve")
	// ErrSampleCount is returned when a resampling point count is not
	// positive.
	ErrSampleCount = errors.New("gofoil: invalid sample count")
	// ErrSpanFractions is returned when a set of span fractions does not
	// start at 0, end at 1, and increase strictly in between.
	ErrSpanFractions = errors.New("gofoil: invalid span fractions")
	// ErrNoStation is returned when no station matches a span fraction.
	ErrNoStation = errors.New("gofoil: no station at span fraction")
)
