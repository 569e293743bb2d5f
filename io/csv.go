package io

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phil-mansfield/gofoil"
)

var (
	// ErrNoBoundary is returned when an airfoil file has no row with x == 0,
	// so the upper and lower surfaces cannot be told apart.
	ErrNoBoundary = errors.New("io: no leading edge row with x = 0")
	// ErrFormat is returned when a row of an airfoil file is malformed.
	ErrFormat = errors.New("io: malformed airfoil file")
)

// LoadCSV reads an airfoil from a comma separated file. The first row holds
// the name of the airfoil and every following row holds one x, y point, with
// all upper surface points listed before all lower surface points.
//
// If the name cell is empty, the airfoil is named after the file.
func LoadCSV(fname string) (*gofoil.Airfoil2D, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	af, err := ReadCSV(csv.NewReader(f), Stem(fname))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return af, nil
}

// ReadCSV reads an airfoil in the format described by LoadCSV from r.
// fallbackName is used if the file does not name the airfoil.
func ReadCSV(r *csv.Reader, fallbackName string) (*gofoil.Airfoil2D, error) {
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file is empty", ErrFormat)
	} else if err != nil {
		return nil, err
	}
	name := fallbackName
	if len(header) > 0 && strings.TrimSpace(header[0]) != "" {
		name = strings.TrimSpace(header[0])
	}

	xs, ys := []float64{}, []float64{}
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		x, y, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		xs, ys = append(xs, x), append(ys, y)
	}

	return splitSurfaces(name, xs, ys)
}

func parseRow(rec []string) (x, y float64, err error) {
	if len(rec) < 2 {
		return 0, 0, fmt.Errorf("%w: expected x and y, got %d fields",
			ErrFormat, len(rec))
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrFormat, err.Error())
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrFormat, err.Error())
	}
	return x, y, nil
}

// splitSurfaces splits a list of points into the upper and lower surfaces of
// an airfoil. The boundary is the first point with x exactly equal to 0,
// which ends the upper surface and starts the lower surface.
func splitSurfaces(name string, xs, ys []float64) (*gofoil.Airfoil2D, error) {
	edge := -1
	for i, x := range xs {
		if x == 0 {
			edge = i
			break
		}
	}
	if edge == -1 {
		return nil, ErrNoBoundary
	}

	return gofoil.FromPoints(name,
		xs[:edge+1], ys[:edge+1], xs[edge:], ys[edge:],
	)
}

// SaveCSV writes af to fname in the format read by LoadCSV and returns the
// name of the file written. If fname is empty, the file is named after the
// airfoil.
//
// The leading edge point is written once if the lower surface starts on the
// same x = 0 point that the upper surface ends on.
func SaveCSV(af *gofoil.Airfoil2D, fname string) (string, error) {
	if fname == "" {
		fname = af.Name + ".csv"
	}

	f, err := os.Create(fname)
	if err != nil {
		return "", err
	}

	if err := WriteCSV(csv.NewWriter(f), af); err != nil {
		f.Close()
		return "", fmt.Errorf("%s: %w", fname, err)
	}
	return fname, f.Close()
}

// WriteCSV writes af to w in the format described by LoadCSV.
func WriteCSV(w *csv.Writer, af *gofoil.Airfoil2D) error {
	upper, lower := af.Upper(), af.Lower()

	start := 0
	if n := upper.Len(); n > 0 && lower.Len() > 0 &&
		upper.X[n-1] == 0 && lower.X[0] == 0 && upper.Y[n-1] == lower.Y[0] {
		start = 1
	}

	if err := w.Write([]string{af.Name, ""}); err != nil {
		return err
	}
	for i := range upper.X {
		if err := w.Write(formatRow(upper.X[i], upper.Y[i])); err != nil {
			return err
		}
	}
	for i := start; i < lower.Len(); i++ {
		if err := w.Write(formatRow(lower.X[i], lower.Y[i])); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatRow(x, y float64) []string {
	return []string{
		strconv.FormatFloat(x, 'g', -1, 64),
		strconv.FormatFloat(y, 'g', -1, 64),
	}
}

// StationFileName returns the name of the file station idx of a wing is
// written to: "<name>_<idx>.csv", or "<idx>.csv" for unnamed airfoils.
func StationFileName(af *gofoil.Airfoil2D, idx int) string {
	if af.Name == "" {
		return fmt.Sprintf("%d.csv", idx)
	}
	return fmt.Sprintf("%s_%d.csv", af.Name, idx)
}

// SaveAirfoil3D writes every station of wing to its own file in dir and
// returns the names of the files written, chord first.
func SaveAirfoil3D(wing *gofoil.Airfoil3D, dir string) ([]string, error) {
	return SaveAirfoil3DPrefix(wing, dir, "")
}

// SaveAirfoil3DPrefix is SaveAirfoil3D with prefix prepended to every file
// name.
func SaveAirfoil3DPrefix(
	wing *gofoil.Airfoil3D, dir, prefix string,
) ([]string, error) {
	fnames := make([]string, wing.Len())
	for i, af := range wing.Airfoils() {
		fname := filepath.Join(dir, prefix+StationFileName(af, i))
		if _, err := SaveCSV(af, fname); err != nil {
			return nil, err
		}
		fnames[i] = fname
	}
	return fnames, nil
}

// Stem returns the base name of fname without its extension.
func Stem(fname string) string {
	base := filepath.Base(fname)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsCSV returns true if fname has a ".csv" extension.
func IsCSV(fname string) bool {
	return strings.EqualFold(filepath.Ext(fname), ".csv")
}
