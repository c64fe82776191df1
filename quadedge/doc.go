// Package quadedge implements the quad-edge data structure of Guibas and
// Stolfi: a planar subdivision represented so that the primal graph
// (vertices and edges of the subdivision) and its dual (faces and the
// edges separating them) are manipulated through a single algebraic
// rotation operator, with all topology changes funneled through one
// primitive, Splice.
//
// A Mesh is an arena that owns every quad-edge allocated within it; an
// EdgeRef is a small, freely copyable, non-owning handle into that arena.
// The four rotations of an EdgeRef (itself, Rot, Sym, InvRot) correspond to
// the primal edge, its dual, the reversed primal edge, and the reversed
// dual, respectively; rotating is pure index arithmetic and never touches
// the arena. Splice, Connect and DeleteEdge are the only operations that
// mutate topology, the latter two by way of Splice; Onext, Oprev, Lnext,
// Rprev, Org and Dest are pure navigation.
//
// Deletion is logical: DeleteEdge unlinks a quad-edge from the rings that
// reference it and marks it deleted, but the record itself is never
// physically freed until the whole Mesh is discarded.
package quadedge
