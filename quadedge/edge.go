package quadedge

import (
	"fmt"

	"github.com/meshkit/delaunay/point"
)

// EdgeRef identifies one of the four directed-edge slots of a quad-edge
// within a particular Mesh. It is a small value type: freely copyable,
// comparable with ==, and owning nothing. The zero EdgeRef is not valid for
// any Mesh; always obtain one from Mesh.MakeEdge or a navigation method.
type EdgeRef struct {
	m   *Mesh
	id  int32
	idx uint8
}

// String implements fmt.Stringer.
func (e EdgeRef) String() string {
	return fmt.Sprintf("edge(%d,%d)", e.id, e.idx)
}

// IsValid reports whether e was returned by some Mesh (as opposed to the
// zero EdgeRef).
func (e EdgeRef) IsValid() bool {
	return e.m != nil
}

// Rot returns the dual of e, rotated one quarter-turn counter-clockwise.
// Rotation is pure arithmetic on the slot index; it never touches the
// arena.
func (e EdgeRef) Rot() EdgeRef {
	return EdgeRef{m: e.m, id: e.id, idx: (e.idx + 1) % 4}
}

// Sym returns e reversed: the same undirected edge, opposite direction.
func (e EdgeRef) Sym() EdgeRef {
	return EdgeRef{m: e.m, id: e.id, idx: (e.idx + 2) % 4}
}

// InvRot returns the dual of e, rotated one quarter-turn clockwise. It is
// the inverse of Rot.
func (e EdgeRef) InvRot() EdgeRef {
	return EdgeRef{m: e.m, id: e.id, idx: (e.idx + 3) % 4}
}

// Onext returns the next edge counter-clockwise around Org(e).
func (e EdgeRef) Onext() EdgeRef {
	return e.m.slot(e).next
}

// Oprev returns the previous edge counter-clockwise around Org(e), i.e.
// the next edge clockwise.
func (e EdgeRef) Oprev() EdgeRef {
	return e.Rot().Onext().Rot()
}

// Lnext returns the next edge counter-clockwise around the left face of e.
func (e EdgeRef) Lnext() EdgeRef {
	return e.InvRot().Onext().Rot()
}

// Rprev returns the previous edge counter-clockwise around the right face
// of e.
func (e EdgeRef) Rprev() EdgeRef {
	return e.Sym().Onext()
}

// Org returns the origin point of e. Only primal edges (e or e.Sym()) carry
// a meaningful origin; callers never read Org of a dual slot.
func (e EdgeRef) Org() point.Point {
	return e.m.slot(e).origin
}

// Dest returns the destination point of e, i.e. Org(Sym(e)).
func (e EdgeRef) Dest() point.Point {
	return e.Sym().Org()
}

// SetOrg sets the origin point of e.
func (e EdgeRef) SetOrg(p point.Point) {
	e.m.slot(e).origin = p
}

// SetDest sets the destination point of e, i.e. SetOrg(Sym(e), p).
func (e EdgeRef) SetDest(p point.Point) {
	e.Sym().SetOrg(p)
}

func (e EdgeRef) setOnext(next EdgeRef) {
	e.m.slot(e).next = next
}
