package triangulate

import (
	"github.com/meshkit/delaunay/point"
	"github.com/meshkit/delaunay/predicate"
	"github.com/meshkit/delaunay/quadedge"
)

// Triangulate sorts pts lexicographically, removes near-duplicates, and
// returns the undirected edges of the Delaunay triangulation of the
// surviving points. The pair order within a segment, and the order of
// segments in the result, are both unspecified.
//
// Triangulate returns ErrInsufficientPoints if fewer than two points
// remain after sanitizing, or point.ErrInvalidCoordinate if any input
// coordinate is not finite. pts is sorted in place as a side effect.
func Triangulate(pts []point.Point) ([]quadedge.Segment, error) {
	sanitized, err := point.Sanitize(pts)
	if err != nil {
		return nil, err
	}
	if len(sanitized) < 2 {
		return nil, ErrInsufficientPoints
	}

	m := quadedge.NewMesh(4 * len(sanitized))
	build(m, sanitized)
	return m.Edges(), nil
}

// build is the recursive Guibas-Stolfi construction. It returns (ldo, rdo):
// the counter-clockwise convex-hull edge emanating from the leftmost point
// of pts, and the clockwise convex-hull edge emanating from the rightmost
// point, respectively. pts must be sorted lexicographically and contain at
// least two points.
func build(m *quadedge.Mesh, pts []point.Point) (ldo, rdo quadedge.EdgeRef) {
	switch len(pts) {
	case 2:
		a := m.MakeEdge()
		a.SetOrg(pts[0])
		a.SetDest(pts[1])
		return a, a.Sym()

	case 3:
		a := m.MakeEdge()
		b := m.MakeEdge()
		quadedge.Splice(a.Sym(), b)
		a.SetOrg(pts[0])
		a.SetDest(pts[1])
		b.SetOrg(pts[1])
		b.SetDest(pts[2])

		switch {
		case predicate.CounterClockwise(pts[0], pts[1], pts[2]):
			quadedge.Connect(b, a)
			return a, b.Sym()
		case predicate.CounterClockwise(pts[0], pts[2], pts[1]):
			c := quadedge.Connect(b, a)
			return c.Sym(), c
		default:
			// Colinear: no diagonal to connect.
			return a, b.Sym()
		}

	default:
		mid := len(pts) / 2
		leftOuter, leftInner := build(m, pts[:mid])
		rightInner, rightOuter := build(m, pts[mid:])
		return merge(leftOuter, leftInner, rightInner, rightOuter)
	}
}
