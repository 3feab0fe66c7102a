package terminals

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReadCSV reads x,y,z rows. A first row that does not parse as numbers is
// treated as a header and skipped.
func ReadCSV(r io.Reader) ([]r3.Vec, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var pts []r3.Vec
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return pts, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		p, err := parse(rec)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		pts = append(pts, p)
	}
}

// WriteCSV writes the Header row followed by one row per point.
func WriteCSV(w io.Writer, pts []r3.Vec) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, p := range pts {
		if err := cw.Write([]string{format(p.X), format(p.Y), format(p.Z)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func parse(rec []string) (r3.Vec, error) {
	var v [3]float64
	for i, s := range rec {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return r3.Vec{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return r3.Vec{}, fmt.Errorf("non-finite value %q", s)
		}
		v[i] = f
	}

	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
