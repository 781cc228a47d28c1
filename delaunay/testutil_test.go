package delaunay_test

import (
	"testing"

	"github.com/katalvlaran/lvltri/geom"
	"github.com/katalvlaran/lvltri/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// undirected is a canonical undirected edge key: endpoints in
// lexicographic order.
type undirected struct {
	lo, hi geom.Point
}

// canon normalizes a directed edge to its undirected key.
func canon(a, b geom.Point) undirected {
	if geom.Less(b, a) {
		a, b = b, a
	}

	return undirected{lo: a, hi: b}
}

// undirectedEdges collects the undirected edge set of a topology.
func undirectedEdges(topo *topology.Topology) map[undirected]struct{} {
	set := make(map[undirected]struct{}, topo.EdgeCount()/2)
	for _, e := range topo.Edges() {
		set[canon(e.From, e.To)] = struct{}{}
	}

	return set
}

// eachTriangle invokes fn for every directed triangle (a,b,c) of the
// topology: (a,b) stored, c the CCW ring neighbor of (a,b) around a,
// and (b,c) stored.
func eachTriangle(t *testing.T, topo *topology.Topology, fn func(a, b, c geom.Point)) {
	t.Helper()
	for _, e := range topo.Edges() {
		c, ok := topo.Succ(e.From, e.To)
		require.True(t, ok, "succ must exist for stored edge (%v→%v)", e.From, e.To)
		if !topo.Contains(e.To, c) {
			continue
		}
		fn(e.From, e.To, c)
	}
}

// checkDelaunayLocal asserts the edge-flip condition on every directed
// triangle: the opposite ring vertex never invades the circumcircle.
// For triangulations this local condition implies the global property.
func checkDelaunayLocal(t *testing.T, topo *topology.Topology) {
	t.Helper()
	eachTriangle(t, topo, func(a, b, c geom.Point) {
		orient := geom.Orientation(a, b, c)
		assert.NotEqual(t, geom.Aligned, orient, "flat triangle (%v,%v,%v)", a, b, c)

		d, ok := topo.Succ(c, b)
		require.True(t, ok, "succ(%v→%v) must exist", c, b)
		switch orient {
		case geom.Direct:
			assert.NotEqual(t, geom.Inside, geom.InCircle(a, b, c, d),
				"triangle (%v,%v,%v) traps %v", a, b, c, d)
		case geom.Indirect:
			assert.NotEqual(t, geom.Inside, geom.InCircle(a, c, b, d),
				"triangle (%v,%v,%v) traps %v", a, c, b, d)
		}
	})
}

// checkDelaunayGlobal asserts the full property: no input point lies
// strictly inside the circumcircle of any CCW triangle.  O(E·n), for
// small inputs only.
func checkDelaunayGlobal(t *testing.T, topo *topology.Topology, pts []geom.Point) {
	t.Helper()
	eachTriangle(t, topo, func(a, b, c geom.Point) {
		if geom.Orientation(a, b, c) != geom.Direct {
			return
		}
		for _, d := range pts {
			if d == a || d == b || d == c {
				continue
			}
			assert.NotEqual(t, geom.Inside, geom.InCircle(a, b, c, d),
				"circumcircle of (%v,%v,%v) strictly contains %v", a, b, c, d)
		}
	})
}

// checkHull asserts the first-chain walk from the lexicographic minimum
// is a closed CCW cycle supporting the whole point set: every input
// point lies weakly to the left of every hull edge.
func checkHull(t *testing.T, topo *topology.Topology, pts []geom.Point) {
	t.Helper()

	start := pts[0]
	for _, p := range pts[1:] {
		if geom.Less(p, start) {
			start = p
		}
	}

	hull := topo.Hull(start)
	require.NotEmpty(t, hull)

	// Closure: the chain returns to its start.
	last := hull[len(hull)-1]
	next, ok := topo.First(last)
	require.True(t, ok, "hull vertex %v must carry a marker", last)
	require.Equal(t, start, next, "hull walk must cycle back to %v", start)

	// Support: all points weakly left of each directed hull edge.
	for i, a := range hull {
		b := hull[(i+1)%len(hull)]
		for _, p := range pts {
			assert.NotEqual(t, geom.Indirect, geom.Orientation(a, b, p),
				"point %v lies right of hull edge (%v→%v)", p, a, b)
		}
	}
}

// checkEdgeBound asserts the planar bound of at most 3n−6 undirected
// edges for n ≥ 3.
func checkEdgeBound(t *testing.T, topo *topology.Topology, n int) {
	t.Helper()
	if n < 3 {
		return
	}
	assert.LessOrEqual(t, topo.EdgeCount()/2, 3*n-6, "planar edge bound broken for n=%d", n)
}
