package pointio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/meshkit/delaunay/point"
	"github.com/meshkit/delaunay/quadedge"
)

// ReadPoints parses a CSV point set from r. Each record must have exactly
// two fields, x and y, parseable as float64; a header row ("x,y") is
// accepted and skipped if present.
func ReadPoints(r io.Reader) ([]point.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var pts []point.Point
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pointio: %w", err)
		}
		if first {
			first = false
			if _, err := strconv.ParseFloat(record[0], 64); err != nil {
				// Header row such as "x,y"; skip it.
				continue
			}
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("pointio: parsing x %q: %w", record[0], err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("pointio: parsing y %q: %w", record[1], err)
		}
		pts = append(pts, point.Point{X: x, Y: y})
	}
	return pts, nil
}

// WriteSegments writes segs to w as CSV records ax,ay,bx,by, one per line.
func WriteSegments(w io.Writer, segs []quadedge.Segment) error {
	cw := csv.NewWriter(w)
	for _, s := range segs {
		record := []string{
			strconv.FormatFloat(s.A.X, 'g', -1, 64),
			strconv.FormatFloat(s.A.Y, 'g', -1, 64),
			strconv.FormatFloat(s.B.X, 'g', -1, 64),
			strconv.FormatFloat(s.B.Y, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("pointio: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
