package quadedge

// Splice is the fundamental topology operator. It simultaneously swaps the
// Onext pointers of (a, b) and of (Rot(Onext(a)), Rot(Onext(b))).
//
// If a and b's origin rings were distinct, Splice merges them into one; if
// they were already the same ring, Splice splits it into two. The same
// operation, applied to the dual, merges or splits the corresponding left
// faces. Splice is its own inverse: calling it twice on the same pair of
// edges is a no-op.
func Splice(a, b EdgeRef) {
	if a.m != b.m {
		panic(ErrForeignEdge{Ref: b})
	}

	alpha := a.Onext().Rot()
	beta := b.Onext().Rot()

	aNext := a.Onext()
	bNext := b.Onext()
	alphaNext := alpha.Onext()
	betaNext := beta.Onext()

	a.setOnext(bNext)
	b.setOnext(aNext)
	alpha.setOnext(betaNext)
	beta.setOnext(alphaNext)
}

// Connect creates a new edge e from Dest(a) to Org(b), splices it in so
// that a, b and e all share a left face, and returns e.
func Connect(a, b EdgeRef) EdgeRef {
	e := a.m.MakeEdge()
	e.SetOrg(a.Dest())
	e.SetDest(b.Org())
	Splice(e, a.Lnext())
	Splice(e.Sym(), b)
	return e
}

// DeleteEdge removes e from the rings it participates in and marks its
// underlying quad-edge deleted. The quad-edge record itself is not
// reclaimed; any EdgeRef still referencing it is stale and must not be
// navigated through, an invariant the triangulator maintains by always
// unlinking an edge before discarding the last reference to it.
func DeleteEdge(e EdgeRef) {
	Splice(e, e.Oprev())
	Splice(e.Sym(), e.Sym().Oprev())
	e.m.edges[e.id].deleted = true
}

// Deleted reports whether the quad-edge underlying e has been removed by
// DeleteEdge.
func (e EdgeRef) Deleted() bool {
	return e.m.edges[e.id].deleted
}
