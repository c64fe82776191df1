package point

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLess(t *testing.T) {
	for _, test := range []struct {
		p1, p2 Point
		want   bool
	}{
		{Point{0, 0}, Point{1, 0}, true},
		{Point{1, 0}, Point{0, 0}, false},
		{Point{0, 0}, Point{0, 1}, true},
		{Point{0, 1}, Point{0, 0}, false},
		{Point{1, 1}, Point{1, 1}, false},
	} {
		got := test.p1.Less(test.p2)
		assert.Equalf(t, test.want, got, "%v.Less(%v)", test.p1, test.p2)
	}
}

func TestEqual(t *testing.T) {
	for _, test := range []struct {
		p1, p2 Point
		want   bool
	}{
		{Point{0, 0}, Point{0, 0}, true},
		{Point{0, 0}, Point{Epsilon / 2, 0}, true},
		{Point{0, 0}, Point{Epsilon * 2, 0}, false},
		{Point{1, 1}, Point{1, 1 + Epsilon/2}, true},
	} {
		assert.Equalf(t, test.want, test.p1.Equal(test.p2), "%v.Equal(%v)", test.p1, test.p2)
	}
}

func TestSanitizeSortsAndDedups(t *testing.T) {
	pts := []Point{
		{3, 1}, {0, 1}, {0, 1}, {1, 1}, {3, 1}, {3, 2},
	}
	out, err := Sanitize(pts)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{0, 1}, {1, 1}, {3, 1}, {3, 2},
	}, out)
}

func TestSanitizeIsIdempotent(t *testing.T) {
	pts := []Point{{2, 0}, {1, 0}, {1, 0}, {0, 0}}
	once, err := Sanitize(pts)
	require.NoError(t, err)

	twice := make([]Point, len(once))
	copy(twice, once)
	twice, err = Sanitize(twice)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestSanitizeRejectsNonFinite(t *testing.T) {
	for _, pts := range [][]Point{
		{{0, 0}, {math.NaN(), 0}},
		{{0, 0}, {math.Inf(1), 0}},
		{{math.Inf(-1), 0}, {0, 0}},
	} {
		_, err := Sanitize(pts)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	}
}

func TestSanitizeEmptyAndSingle(t *testing.T) {
	out, err := Sanitize(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = Sanitize([]Point{{5, 5}})
	require.NoError(t, err)
	assert.Equal(t, []Point{{5, 5}}, out)
}
