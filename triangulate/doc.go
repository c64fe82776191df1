// Package triangulate builds the 2D Delaunay triangulation of a point set
// using the Guibas-Stolfi divide-and-conquer algorithm over the quad-edge
// mesh implemented by package quadedge.
//
// Triangulate is the entry point: it sanitizes the input (sorts it
// lexicographically and drops near-duplicates, see package point), builds
// two half-meshes recursively, merges them with the "zip-up" procedure
// using the robust predicates in package predicate, and returns the
// subdivision's undirected edges.
package triangulate
