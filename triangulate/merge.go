package triangulate

import (
	"github.com/meshkit/delaunay/point"
	"github.com/meshkit/delaunay/predicate"
	"github.com/meshkit/delaunay/quadedge"
)

// leftOf reports whether p lies strictly to the left of the directed edge
// e (from Org(e) to Dest(e)).
func leftOf(p point.Point, e quadedge.EdgeRef) bool {
	return predicate.CounterClockwise(p, e.Org(), e.Dest())
}

// rightOf reports whether p lies strictly to the right of the directed
// edge e.
func rightOf(p point.Point, e quadedge.EdgeRef) bool {
	return predicate.CounterClockwise(p, e.Dest(), e.Org())
}

// valid reports whether candidate is still a legal choice for the zip-up
// loop advancing basel: its destination must lie strictly to the right of
// basel.
func valid(candidate, basel quadedge.EdgeRef) bool {
	return rightOf(candidate.Dest(), basel)
}

// merge joins the two half-meshes produced by recursing on the left and
// right halves of the sorted point set. ldi is the clockwise hull edge
// emanating from the rightmost point of the left half; rdi is the CCW hull edge
// emanating from the leftmost point of the right half. It returns the
// updated (ldo, rdo) outer hull references for the combined mesh.
func merge(ldo, ldi, rdi, rdo quadedge.EdgeRef) (quadedge.EdgeRef, quadedge.EdgeRef) {
	// Compute the lower common tangent of the two hulls.
	for {
		if leftOf(rdi.Org(), ldi) {
			ldi = ldi.Lnext()
		} else if rightOf(ldi.Org(), rdi) {
			rdi = rdi.Rprev()
		} else {
			break
		}
	}

	// basel is the base edge of the lower common tangent, pointing from
	// the right half's hull to the left half's.
	basel := quadedge.Connect(rdi.Sym(), ldi)
	if ldi.Org() == ldo.Org() {
		ldo = basel.Sym()
	}
	if rdi.Org() == rdo.Org() {
		rdo = basel
	}

	// Zip up the seam, alternating candidates from each side and
	// deleting any that would violate the Delaunay property before
	// picking a winner to extend basel.
	for {
		lcand := basel.Sym().Onext()
		if valid(lcand, basel) {
			for predicate.InCircle(basel.Dest(), basel.Org(), lcand.Dest(), lcand.Onext().Dest()) {
				t := lcand.Onext()
				quadedge.DeleteEdge(lcand)
				lcand = t
			}
		}

		rcand := basel.Oprev()
		if valid(rcand, basel) {
			for predicate.InCircle(basel.Dest(), basel.Org(), rcand.Dest(), rcand.Oprev().Dest()) {
				t := rcand.Oprev()
				quadedge.DeleteEdge(rcand)
				rcand = t
			}
		}

		lok := valid(lcand, basel)
		rok := valid(rcand, basel)
		if !lok && !rok {
			break
		}

		if !lok || (rok && predicate.InCircle(lcand.Dest(), lcand.Org(), rcand.Org(), rcand.Dest())) {
			basel = quadedge.Connect(rcand, basel.Sym())
		} else {
			basel = quadedge.Connect(basel.Sym(), lcand.Sym())
		}
	}

	return ldo, rdo
}
