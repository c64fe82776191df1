package point

import "errors"

// ErrInvalidCoordinate is returned by Sanitize when an input point has a
// non-finite (NaN or infinite) coordinate.
var ErrInvalidCoordinate = errors.New("point: coordinate is not finite")
