package quadedge

import "github.com/meshkit/delaunay/point"

// Segment is an undirected edge of the subdivision, identified by its two
// endpoints. The order of A and B is unspecified.
type Segment struct {
	A, B point.Point
}

// Edges walks every live quad-edge in m and returns the primal segment
// (Org, Dest) of its slot 0. Dual slots and deleted quad-edges are
// skipped, and each undirected edge of the subdivision appears exactly
// once.
func (m *Mesh) Edges() []Segment {
	segs := make([]Segment, 0, len(m.edges))
	for id, qe := range m.edges {
		if qe.deleted {
			continue
		}
		ref := EdgeRef{m: m, id: int32(id), idx: 0}
		segs = append(segs, Segment{A: ref.Org(), B: ref.Dest()})
	}
	return segs
}
