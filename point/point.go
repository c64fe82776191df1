// Package point provides the 2D point type consumed by the quadedge and
// triangulate packages, along with the lexicographic sort and near-duplicate
// removal ("sanitize") that the Guibas-Stolfi construction requires of its
// input.
//
// Coordinates follow a top-left-origin, y-downward convention: increasing Y
// moves toward the bottom of the plane. The sign of orient2d in package
// predicate is defined relative to that convention, not the textbook
// y-upward one.
package point

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute tolerance used by Equal to treat two points as
// the same vertex. It is twice the machine epsilon for float64, matching
// the tolerance used during sanitize to drop near-duplicate input points.
const Epsilon = 2 * 2.220446049250313e-16

// Point is an ordered pair of binary64 coordinates.
type Point struct {
	X, Y float64
}

// Equal reports whether p and q are within Epsilon of each other on both
// axes. This is the "nearly equal" relation used for deduplication; it is
// not a total equivalence in the mathematical sense (it need not be
// transitive), but it is sufficient for the adjacent-pair dedup that
// Sanitize performs on a sorted slice.
func (p Point) Equal(q Point) bool {
	return scalar.EqualWithinAbs(p.X, q.X, Epsilon) && scalar.EqualWithinAbs(p.Y, q.Y, Epsilon)
}

// Less reports whether p sorts before q under the lexicographic order
// (X first, ties broken by Y) that Sanitize and the triangulator require.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// byLex sorts a Point slice lexicographically by (X, Y).
type byLex []Point

func (s byLex) Len() int           { return len(s) }
func (s byLex) Less(i, j int) bool { return s[i].Less(s[j]) }
func (s byLex) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Sanitize sorts pts lexicographically in place and removes near-duplicate
// points (per Equal), returning the deduplicated prefix. It reports
// ErrInvalidCoordinate if any coordinate is not finite; that check runs
// before sorting, so in that case pts is left unmodified and the returned
// slice is nil.
//
// Sanitize is idempotent: Sanitize(Sanitize(pts)) yields the same slice as
// Sanitize(pts).
func Sanitize(pts []Point) ([]Point, error) {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, ErrInvalidCoordinate
		}
	}
	sort.Stable(byLex(pts))
	out := pts[:0]
	for i, p := range pts {
		if i > 0 && p.Equal(out[len(out)-1]) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
