package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/gofoil"
)

// LoadTable reads an airfoil from a whitespace separated text table with an
// x column and a y column, in the same point order as LoadCSV. Tables carry
// no name, so the airfoil is named after the file.
func LoadTable(fname string) (*gofoil.Airfoil2D, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys := cols[0], cols[1]
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%s: %w: %d x values but %d y values",
			fname, ErrFormat, len(xs), len(ys))
	}

	af, err := splitSurfaces(Stem(fname), xs, ys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return af, nil
}

// Load reads an airfoil from fname, choosing the format from its extension:
// ".csv" files are read with LoadCSV and anything else with LoadTable.
func Load(fname string) (*gofoil.Airfoil2D, error) {
	if IsCSV(fname) {
		return LoadCSV(fname)
	}
	return LoadTable(fname)
}
