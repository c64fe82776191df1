package triangulate

import "errors"

// ErrInsufficientPoints is returned by Triangulate when fewer than two
// points remain after sanitize. No mesh is produced in that case.
var ErrInsufficientPoints = errors.New("triangulate: fewer than two distinct points after sanitize")
