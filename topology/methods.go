// Package topology - read surface.
//
// All accessors are read-only; slices returned to the caller are copies.
package topology

// Succ returns the CCW ring neighbor of the directed edge (a,b) around a,
// and whether the edge is stored.
// Complexity: O(1)
func (t *Topology) Succ(a, b Point) (Point, bool) {
	c, ok := t.succ[Edge{From: a, To: b}]

	return c, ok
}

// Pred returns the CW ring neighbor of the directed edge (a,b) around a,
// and whether the edge is stored.
// Complexity: O(1)
func (t *Topology) Pred(a, b Point) (Point, bool) {
	c, ok := t.pred[Edge{From: a, To: b}]

	return c, ok
}

// Contains reports whether the directed edge (a,b) is stored.
// Complexity: O(1)
func (t *Topology) Contains(a, b Point) bool {
	_, ok := t.succ[Edge{From: a, To: b}]

	return ok
}

// First returns the CCW-next hull vertex after hull vertex a, and
// whether a carries a hull marker.
// Complexity: O(1)
func (t *Topology) First(a Point) (Point, bool) {
	b, ok := t.first[a]

	return b, ok
}

// SetFirst records b as the CCW-next hull vertex after a.
// Complexity: O(1)
func (t *Topology) SetFirst(a, b Point) {
	t.first[a] = b
}

// EdgeCount returns the number of stored directed edges (twice the
// number of undirected edges).
// Complexity: O(1)
func (t *Topology) EdgeCount() int {
	return len(t.succ)
}

// Edges returns a copy of all stored directed edges, in no particular
// order.
// Complexity: O(E)
func (t *Topology) Edges() []Edge {
	edges := make([]Edge, 0, len(t.succ))
	for e := range t.succ {
		edges = append(edges, e)
	}

	return edges
}

// ForEachSucc invokes fn for every stored (a,b) ↦ c successor pair, in
// no particular order, stopping early when fn returns false.
// Complexity: O(E)
func (t *Topology) ForEachSucc(fn func(e Edge, c Point) bool) {
	for e, c := range t.succ {
		if !fn(e, c) {
			return
		}
	}
}

// Neighbors returns the CCW neighbor ring of a starting at b, obtained
// by walking succ until the walk returns to b.  The boolean reports
// whether (a,b) is stored at all.
// Complexity: O(deg a)
func (t *Topology) Neighbors(a, b Point) ([]Point, bool) {
	if !t.Contains(a, b) {
		return nil, false
	}

	ring := []Point{b}
	cur := b
	for {
		next, ok := t.succ[Edge{From: a, To: cur}]
		if !ok || next == b {
			break
		}
		ring = append(ring, next)
		cur = next
	}

	return ring, true
}

// Hull walks the first chain from start and returns the visited
// vertices in CCW order.  For a proper convex hull the walk is a cycle
// back to start; for a degenerate (collinear) triangulation the chain
// ends at a vertex without a marker or doubles back, and the walk stops
// at the first repeat.
// Complexity: O(H) with H the hull size
func (t *Topology) Hull(start Point) []Point {
	hull := make([]Point, 0, 8)
	seen := make(map[Point]struct{}, 8)
	cur := start
	for {
		if _, rep := seen[cur]; rep {
			break
		}
		seen[cur] = struct{}{}
		hull = append(hull, cur)

		next, ok := t.first[cur]
		if !ok {
			break
		}
		cur = next
	}

	return hull
}
