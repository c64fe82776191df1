package predicate

import (
	"math"

	"github.com/meshkit/delaunay/point"
)

// iccErrBoundA bounds the relative error of the fast InCircle estimate.
const iccErrBoundA = (10.0 + 96.0*machineEpsilon) * machineEpsilon

// IncircleDet returns a value whose sign equals the sign of the 4x4
// in-circle determinant for (a, b, c, d). A negative result means d lies
// strictly inside the circle through a, b, c when (a, b, c) is oriented
// counter-clockwise (Orient2D(a,b,c) < 0); zero means d lies exactly on
// that circle.
func IncircleDet(a, b, c, d point.Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	bdxcdy := bdx * cdy
	bdycdx := bdy * cdx
	adxcdy := adx * cdy
	adycdx := ady * cdx
	adxbdy := adx * bdy
	adybdx := ady * bdx

	det := alift*(bdxcdy-bdycdx) - blift*(adxcdy-adycdx) + clift*(adxbdy-adybdx)

	permanent := (math.Abs(bdxcdy)+math.Abs(bdycdx))*alift +
		(math.Abs(adxcdy)+math.Abs(adycdx))*blift +
		(math.Abs(adxbdy)+math.Abs(adybdx))*clift
	errbound := iccErrBoundA * permanent
	if math.Abs(det) >= errbound {
		return det
	}
	return inCircleExact(a, b, c, d)
}

func inCircleExact(a, b, c, d point.Point) float64 {
	adx, ady := bfSub(bf(a.X), bf(d.X)), bfSub(bf(a.Y), bf(d.Y))
	bdx, bdy := bfSub(bf(b.X), bf(d.X)), bfSub(bf(b.Y), bf(d.Y))
	cdx, cdy := bfSub(bf(c.X), bf(d.X)), bfSub(bf(c.Y), bf(d.Y))

	alift := bfAdd(bfMul(adx, adx), bfMul(ady, ady))
	blift := bfAdd(bfMul(bdx, bdx), bfMul(bdy, bdy))
	clift := bfAdd(bfMul(cdx, cdx), bfMul(cdy, cdy))

	t1 := bfMul(alift, bfSub(bfMul(bdx, cdy), bfMul(bdy, cdx)))
	t2 := bfMul(blift, bfSub(bfMul(adx, cdy), bfMul(ady, cdx)))
	t3 := bfMul(clift, bfSub(bfMul(adx, bdy), bfMul(ady, bdx)))

	det := bfAdd(bfSub(t1, t2), t3)
	return signedFloat64(det)
}

// InCircle reports whether IncircleDet(a, b, c, d) < 0, which for a
// counter-clockwise (a, b, c) means d lies strictly inside the circle
// through a, b, c.
func InCircle(a, b, c, d point.Point) bool {
	return IncircleDet(a, b, c, d) < 0
}
