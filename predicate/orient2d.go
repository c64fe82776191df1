package predicate

import (
	"math"

	"github.com/meshkit/delaunay/point"
)

// machineEpsilon is the float64 rounding unit, 2^-53, as used in Shewchuk's
// error-bound derivations. This is half of the 2^-52 "machine epsilon"
// constant that point.Epsilon doubles for coordinate near-equality; the two
// serve different purposes and are deliberately not shared.
const machineEpsilon = 1.1102230246251565e-16

// ccwErrBoundA bounds the relative error of the fast Orient2D estimate.
const ccwErrBoundA = (3.0 + 16.0*machineEpsilon) * machineEpsilon

// Orient2D returns a value whose sign equals the sign of the determinant
//
//	| bx-ax  by-ay |
//	| cx-ax  cy-ay |
//
// A negative result means (a, b, c) is ordered counter-clockwise under the
// top-left-origin, y-downward frame documented in package point; zero means
// the three points are colinear.
func Orient2D(a, b, c point.Point) float64 {
	detleft := (b.X - a.X) * (c.Y - a.Y)
	detright := (b.Y - a.Y) * (c.X - a.X)
	det := detleft - detright

	detsum := math.Abs(detleft) + math.Abs(detright)
	if math.Abs(det) >= ccwErrBoundA*detsum {
		return det
	}
	return orient2DExact(a, b, c)
}

func orient2DExact(a, b, c point.Point) float64 {
	bax, cax := bfSub(bf(b.X), bf(a.X)), bfSub(bf(c.X), bf(a.X))
	bay, cay := bfSub(bf(b.Y), bf(a.Y)), bfSub(bf(c.Y), bf(a.Y))
	left := bfMul(bax, cay)
	right := bfMul(bay, cax)
	det := bfSub(left, right)
	return signedFloat64(det)
}

// CounterClockwise reports whether (a, b, c) is ordered counter-clockwise,
// i.e. Orient2D(a, b, c) < 0.
func CounterClockwise(a, b, c point.Point) bool {
	return Orient2D(a, b, c) < 0
}
