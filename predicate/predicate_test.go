package predicate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshkit/delaunay/point"
)

func TestCounterClockwise(t *testing.T) {
	a := point.Point{X: 0, Y: 0}
	b := point.Point{X: 0, Y: 1}
	c := point.Point{X: 1, Y: 0}

	assert.True(t, CounterClockwise(a, b, c))
	assert.False(t, CounterClockwise(a, c, b))
	assert.False(t, CounterClockwise(c, b, a))
	assert.True(t, CounterClockwise(b, c, a))
}

func TestOrient2DColinear(t *testing.T) {
	a := point.Point{X: 0, Y: 0}
	b := point.Point{X: 1, Y: 0}
	c := point.Point{X: 2, Y: 0}
	assert.Zero(t, Orient2D(a, b, c))
}

func TestInCircle(t *testing.T) {
	a := point.Point{X: 0, Y: 0}
	b := point.Point{X: 0, Y: 1}
	c := point.Point{X: 1, Y: 0}
	d := point.Point{X: 1, Y: 1}
	e := point.Point{X: 0.5, Y: 0.5}

	assert.False(t, InCircle(a, b, c, d), "d is exactly on the circumcircle")
	assert.True(t, InCircle(a, b, c, e), "e is strictly inside the circumcircle")
}

// TestDegenerateFallsBackToExact exercises an input whose fast Orient2D
// estimate lands inside the Shewchuk error bound, forcing the
// arbitrary-precision path, and checks the sign still matches a direct
// substitution into the determinant.
func TestDegenerateFallsBackToExact(t *testing.T) {
	// The third point is one ULP off the line through the first two:
	// nearly, but not exactly, colinear.
	a := point.Point{X: 0, Y: 0}
	b := point.Point{X: 1, Y: 1}
	c := point.Point{X: 2, Y: math.Nextafter(2, 3)}

	got := Orient2D(a, b, c)
	assert.False(t, math.IsNaN(got))
	// The exact sign must agree with direct substitution into the
	// determinant; for these small coordinates every float64 difference
	// and product below is exact.
	want := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if want != 0 {
		assert.Equal(t, want < 0, got < 0)
	}
}

func TestIncircleExactFallbackAgreesOnCocircularPoints(t *testing.T) {
	// Four points on the unit circle, cocircular up to the rounding of
	// cos and sin, so the fast filter is inconclusive and the exact path
	// must report a value indistinguishable from zero.
	unit := func(theta float64) point.Point {
		return point.Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	a := unit(0)
	b := unit(math.Pi / 2)
	c := unit(math.Pi)
	d := unit(3 * math.Pi / 2)
	got := IncircleDet(a, b, c, d)
	assert.InDelta(t, 0, got, 1e-9)
}

func BenchmarkOrient2DFastPath(b *testing.B) {
	p1 := point.Point{X: 0, Y: 0}
	p2 := point.Point{X: 1, Y: 0}
	p3 := point.Point{X: 0, Y: 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Orient2D(p1, p2, p3)
	}
}
