package delaunay_test

import (
	"testing"

	"github.com/katalvlaran/lvltri/delaunay"
	"github.com/katalvlaran/lvltri/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTriangulate_InsufficientInput verifies rejection of short input.
func TestTriangulate_InsufficientInput(t *testing.T) {
	_, err := delaunay.Triangulate(nil)
	assert.ErrorIs(t, err, delaunay.ErrInsufficientInput, "nil input must error")

	_, err = delaunay.Triangulate([]geom.Point{{X: 1, Y: 1}})
	assert.ErrorIs(t, err, delaunay.ErrInsufficientInput, "one point must error")
}

// TestTriangulate_DuplicatePoint verifies duplicates are rejected before
// any work happens.
func TestTriangulate_DuplicatePoint(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 0}}
	_, err := delaunay.Triangulate(pts)
	assert.ErrorIs(t, err, delaunay.ErrDuplicatePoint, "equal points must error")
}

// TestTriangulate_CoordinateOverflow verifies the exact-arithmetic bound.
func TestTriangulate_CoordinateOverflow(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: geom.MaxCoordinate + 1, Y: 0}}
	_, err := delaunay.Triangulate(pts)
	assert.ErrorIs(t, err, geom.ErrCoordinateOverflow, "out-of-range coordinate must error")
}

// TestTriangulate_InputNotMutated verifies the caller's slice is intact.
func TestTriangulate_InputNotMutated(t *testing.T) {
	pts := []geom.Point{{X: 5, Y: 5}, {X: 0, Y: 0}, {X: 3, Y: 1}}
	snapshot := append([]geom.Point(nil), pts...)

	_, err := delaunay.Triangulate(pts)
	require.NoError(t, err)
	assert.Equal(t, snapshot, pts, "Triangulate must not reorder the caller's slice")
}

// TestTriangulate_TwoPoints checks the smallest input: a single edge with hull
// markers on both endpoints.
func TestTriangulate_TwoPoints(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}

	topo, err := delaunay.Triangulate([]geom.Point{a, b})
	require.NoError(t, err)

	assert.Equal(t, 2, topo.EdgeCount())
	assert.True(t, topo.Contains(a, b))
	assert.True(t, topo.Contains(b, a))

	f, ok := topo.First(a)
	require.True(t, ok)
	assert.Equal(t, b, f)
	f, ok = topo.First(b)
	require.True(t, ok)
	assert.Equal(t, a, f)
}

// TestTriangulate_Triangle checks that three CCW points form the
// single triangle, regardless of input order.
func TestTriangulate_Triangle(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 2, Y: 0}
	c := geom.Point{X: 1, Y: 2}

	for _, input := range [][]geom.Point{
		{a, b, c},
		{c, b, a},
		{b, a, c},
	} {
		topo, err := delaunay.Triangulate(input)
		require.NoError(t, err)

		assert.Equal(t, 6, topo.EdgeCount(), "input %v: one triangle", input)
		assert.True(t, topo.Contains(a, b) && topo.Contains(b, c) && topo.Contains(c, a))
		assert.Equal(t, []geom.Point{a, b, c}, topo.Hull(a), "input %v: CCW hull", input)
		assert.NoError(t, topo.Validate())
	}
}

// TestTriangulate_Collinear checks that four aligned points become a
// path with no closing edges.
func TestTriangulate_Collinear(t *testing.T) {
	p0 := geom.Point{X: 0, Y: 0}
	p1 := geom.Point{X: 1, Y: 0}
	p2 := geom.Point{X: 2, Y: 0}
	p3 := geom.Point{X: 3, Y: 0}

	topo, err := delaunay.Triangulate([]geom.Point{p0, p1, p2, p3})
	require.NoError(t, err)

	// Exactly the three path edges, both ways.
	assert.Equal(t, 6, topo.EdgeCount())
	assert.True(t, topo.Contains(p0, p1))
	assert.True(t, topo.Contains(p1, p2))
	assert.True(t, topo.Contains(p2, p3))
	assert.False(t, topo.Contains(p0, p2), "no shortcut edges on a line")
	assert.False(t, topo.Contains(p0, p3), "no closing edge on a line")
	assert.NoError(t, topo.Validate())

	// The degenerate hull markers point inward from the extremes.
	f, ok := topo.First(p0)
	require.True(t, ok)
	assert.Equal(t, p1, f)
	f, ok = topo.First(p3)
	require.True(t, ok)
	assert.Equal(t, p2, f)
}

// TestTriangulate_Square checks that four cocircular corners keep
// the four sides plus exactly one diagonal - either diagonal is Delaunay.
func TestTriangulate_Square(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 1, Y: 0}
	c := geom.Point{X: 0, Y: 1}
	d := geom.Point{X: 1, Y: 1}

	topo, err := delaunay.Triangulate([]geom.Point{a, b, c, d})
	require.NoError(t, err)

	assert.Equal(t, 10, topo.EdgeCount(), "four sides and one diagonal")
	assert.True(t, topo.Contains(a, b), "bottom side")
	assert.True(t, topo.Contains(c, d), "top side")
	assert.True(t, topo.Contains(a, c), "left side")
	assert.True(t, topo.Contains(b, d), "right side")

	mainDiag := topo.Contains(a, d)
	antiDiag := topo.Contains(b, c)
	assert.True(t, mainDiag != antiDiag, "exactly one of the two diagonals must be present")
	assert.NoError(t, topo.Validate())
}

// TestTriangulate_ShortDiagonal checks the known counterexample
// quad where only the short diagonal is Delaunay.
func TestTriangulate_ShortDiagonal(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 1}}

	topo, err := delaunay.Triangulate(pts)
	require.NoError(t, err)

	assert.True(t, topo.Contains(geom.Point{X: 0, Y: 1}, geom.Point{X: 1, Y: 0}),
		"short diagonal must be present")
	assert.False(t, topo.Contains(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 1}),
		"long diagonal's circumcircle traps the opposite vertex")
	assert.NoError(t, topo.Validate())
}
