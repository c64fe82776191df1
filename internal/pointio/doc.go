// Package pointio reads and writes the point sets and edge lists that the
// delaunay command line tool operates on. It is deliberately thin: I/O of
// point sets is an external collaborator of the triangulation engine, not
// part of the engine itself, so this package only adapts CSV text to and
// from the types in package point and package quadedge.
package pointio
