package gofoil

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// NumCores is the number of goroutines Airfoil3D.Interpolate splits the span
// projection across. The result does not depend on it.
var NumCores = 1

// DefaultSpans returns the default station span fractions, [0.0, 0.1, ...,
// 1.0]. A new slice is returned on every call.
func DefaultSpans() []float64 {
	return []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
}

// Station is a single cross-section of a wing and its span fraction.
type Station struct {
	Span float64
	Foil *Airfoil2D
}

// Airfoil3D is a wing described by an ordered set of stations running from
// the chord (span fraction 0) to the tip (span fraction 1). The zero value has
// no stations; wings are built with NewAirfoil3D.
type Airfoil3D struct {
	stations []Station
}

// NewAirfoil3D creates a wing out of copies of chord and tip. A nil chord is
// replaced by a flat airfoil, and an unnamed chord is named "Chord". A nil
// tip is replaced by a flat airfoil named "Tip".
func NewAirfoil3D(chord, tip *Airfoil2D) *Airfoil3D {
	if chord == nil {
		chord = NewAirfoil2D("")
	} else {
		chord = chord.Copy()
	}
	if chord.Name == "" {
		chord.Name = "Chord"
	}

	if tip == nil {
		tip = NewAirfoil2D("Tip")
	} else {
		tip = tip.Copy()
	}

	return &Airfoil3D{stations: []Station{{0, chord}, {1, tip}}}
}

// SetChord replaces the first station with a copy of chord. A nil chord is
// replaced by a flat airfoil.
func (wing *Airfoil3D) SetChord(chord *Airfoil2D) {
	wing.stations[0] = Station{0, copyOrFlat(chord)}
}

// SetTip replaces the last station with a copy of tip. A nil tip is replaced
// by a flat airfoil.
func (wing *Airfoil3D) SetTip(tip *Airfoil2D) {
	wing.stations[len(wing.stations)-1] = Station{1, copyOrFlat(tip)}
}

func copyOrFlat(af *Airfoil2D) *Airfoil2D {
	if af == nil {
		return NewAirfoil2D("")
	}
	return af.Copy()
}

// FlattenChord replaces the chord with a flat airfoil.
func (wing *Airfoil3D) FlattenChord() { wing.SetChord(NewAirfoil2D("")) }

// FlattenTip replaces the tip with a flat airfoil.
func (wing *Airfoil3D) FlattenTip() { wing.SetTip(NewAirfoil2D("")) }

// Len returns the number of stations.
func (wing *Airfoil3D) Len() int { return len(wing.stations) }

// Station returns a copy of the i-th station.
func (wing *Airfoil3D) Station(i int) Station {
	st := wing.stations[i]
	return Station{st.Span, st.Foil.Copy()}
}

// Chord returns a copy of the chord airfoil.
func (wing *Airfoil3D) Chord() *Airfoil2D { return wing.stations[0].Foil.Copy() }

// Tip returns a copy of the tip airfoil.
func (wing *Airfoil3D) Tip() *Airfoil2D {
	return wing.stations[len(wing.stations)-1].Foil.Copy()
}

// Spans returns the span fraction of every station.
func (wing *Airfoil3D) Spans() []float64 {
	spans := make([]float64, len(wing.stations))
	for i := range spans {
		spans[i] = wing.stations[i].Span
	}
	return spans
}

// Airfoils returns copies of the airfoil at every station.
func (wing *Airfoil3D) Airfoils() []*Airfoil2D {
	afs := make([]*Airfoil2D, len(wing.stations))
	for i := range afs {
		afs[i] = wing.stations[i].Foil.Copy()
	}
	return afs
}

// StationAt returns the index of the station whose span fraction is closest
// to span. Only stations within tol of span are considered, so a tol of 0
// requires an exact match. Ties go to the station nearer the chord.
func (wing *Airfoil3D) StationAt(span, tol float64) (int, error) {
	best, bestDist := -1, math.Inf(+1)
	for i, st := range wing.stations {
		dist := math.Abs(st.Span - span)
		if dist <= tol && dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best == -1 {
		return -1, fmt.Errorf("%w: no station within %g of %g",
			ErrNoStation, tol, span)
	}
	return best, nil
}

// ValidateSpans returns an error unless spans has at least two elements,
// starts at exactly 0, ends at exactly 1 and is strictly increasing.
func ValidateSpans(spans []float64) error {
	if len(spans) < 2 {
		return fmt.Errorf("%w: %d span fractions given, but the chord and "+
			"tip need at least 2", ErrSpanFractions, len(spans))
	} else if spans[0] != 0 {
		return fmt.Errorf("%w: first span fraction is %g, not 0",
			ErrSpanFractions, spans[0])
	} else if spans[len(spans)-1] != 1 {
		return fmt.Errorf("%w: last span fraction is %g, not 1",
			ErrSpanFractions, spans[len(spans)-1])
	}

	for i := 0; i < len(spans)-1; i++ {
		if !(spans[i+1] > spans[i]) {
			return fmt.Errorf("%w: span fractions %d and %d, %g and %g, are "+
				"not strictly increasing", ErrSpanFractions,
				i, i+1, spans[i], spans[i+1])
		}
	}
	return nil
}

// Interpolate creates a new wing with one station per span fraction in spans.
// The chord and tip are resampled to xdim points per surface, and every
// intermediate station is found by projecting the chord and tip y values at
// each sample index linearly along the span (see Project).
//
// Stations without a name are named after their index. The tip's name is
// always replaced this way. wing is left unchanged.
func (wing *Airfoil3D) Interpolate(xdim int, spans []float64) (*Airfoil3D, error) {
	if err := ValidateSpans(spans); err != nil {
		return nil, err
	} else if len(wing.stations) < 2 {
		return nil, fmt.Errorf("%w: wing has %d stations, but a chord and "+
			"a tip are needed", ErrNoStation, len(wing.stations))
	}

	chord, err := wing.stations[0].Foil.Interpolate(xdim)
	if err != nil {
		return nil, fmt.Errorf("chord: %w", err)
	}
	tip, err := wing.stations[len(wing.stations)-1].Foil.Interpolate(xdim)
	if err != nil {
		return nil, fmt.Errorf("tip: %w", err)
	}

	out := &Airfoil3D{stations: make([]Station, len(spans))}
	for i, span := range spans {
		out.stations[i] = Station{span, &Airfoil2D{
			upper: flatCurve(UpperX(xdim)),
			lower: flatCurve(LowerX(xdim)),
		}}
	}
	last := len(spans) - 1
	out.stations[0].Foil = chord
	out.stations[last].Foil = tip
	tip.Name = ""

	for i, st := range out.stations {
		if st.Foil.Name == "" {
			st.Foil.Name = strconv.Itoa(i)
		}
	}

	out.project(xdim, spans)
	return out, nil
}

// project fills in the y values of the intermediate stations of wing from
// its first and last stations. The chord and tip are never written to.
func (wing *Airfoil3D) project(xdim int, spans []float64) {
	chord := wing.stations[0].Foil
	tip := wing.stations[len(wing.stations)-1].Foil
	inner := wing.stations[1 : len(wing.stations)-1]

	projectRange := func(start, end int) {
		for i := start; i < end; i++ {
			upper := Project(chord.upper.Y[i], tip.upper.Y[i], spans)
			lower := Project(chord.lower.Y[i], tip.lower.Y[i], spans)
			for j, st := range inner {
				st.Foil.upper.Y[i] = upper[j+1]
				st.Foil.lower.Y[i] = lower[j+1]
			}
		}
	}

	workers := NumCores
	if workers > xdim {
		workers = xdim
	}
	if workers <= 1 {
		projectRange(0, xdim)
		return
	}

	out := make(chan int, workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			projectRange(id*xdim/workers, (id+1)*xdim/workers)
			out <- id
		}(w)
	}
	for w := 0; w < workers; w++ {
		<-out
	}
}

// Print writes every station from chord to tip.
func (wing *Airfoil3D) Print(w io.Writer) error {
	for _, st := range wing.stations {
		if err := st.Foil.Print(w); err != nil {
			return err
		}
	}
	return nil
}
