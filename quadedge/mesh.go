package quadedge

import "github.com/meshkit/delaunay/point"

// slot is one of the four directed-edge records that make up a quadEdge.
// Only the primal slots (index 0 and 2) carry a geometrically meaningful
// origin; the dual slots' origin fields are written by MakeEdge's initial
// configuration but are never read by the triangulator.
type slot struct {
	origin point.Point
	next   EdgeRef
}

// quadEdge is the four-slot record described in the package doc: a primal
// directed edge, its dual rotated +90°, the reversed primal edge, and the
// dual rotated -90°.
type quadEdge struct {
	e       [4]slot
	deleted bool
}

// Mesh is an arena that owns every quad-edge allocated within it. A quad-edge
// is never physically freed once allocated; DeleteEdge only unlinks it
// topologically and flags it deleted. All EdgeRef values obtained from a
// Mesh remain valid identifiers for that Mesh's lifetime.
type Mesh struct {
	edges []quadEdge
}

// NewMesh returns an empty Mesh. hint is a capacity hint for the number of
// quad-edges the triangulation is expected to allocate; passing 4n for n
// points is reasonable, since the Delaunay triangulation of n points never
// has more than 3n-6 primal edges, each quad-edge backs exactly one primal
// edge, and quad-edges deleted during construction keep their records.
func NewMesh(hint int) *Mesh {
	if hint < 0 {
		hint = 0
	}
	return &Mesh{edges: make([]quadEdge, 0, hint)}
}

// Len returns the number of quad-edges ever allocated in m, including
// deleted ones.
func (m *Mesh) Len() int {
	return len(m.edges)
}

// MakeEdge allocates a new quad-edge and returns its primal slot-0
// reference. The freshly allocated quad-edge encodes a single edge
// disconnected from the rest of the mesh: its primal and reversed-primal
// slots each form a one-element Onext ring, and its two dual slots form
// the trivial face cycle between themselves.
func (m *Mesh) MakeEdge() EdgeRef {
	id := int32(len(m.edges))
	r0 := EdgeRef{m: m, id: id, idx: 0}
	r1 := EdgeRef{m: m, id: id, idx: 1}
	r2 := EdgeRef{m: m, id: id, idx: 2}
	r3 := EdgeRef{m: m, id: id, idx: 3}

	m.edges = append(m.edges, quadEdge{
		e: [4]slot{
			{next: r0},
			{next: r3},
			{next: r2},
			{next: r1},
		},
	})
	return r0
}

func (m *Mesh) slot(ref EdgeRef) *slot {
	if ref.m != m {
		panic(ErrForeignEdge{Ref: ref})
	}
	return &m.edges[ref.id].e[ref.idx]
}
