// Package topology - base-case seeds.
//
// The divide-and-conquer driver bottoms out at two or three points and
// installs their complete rings wholesale; InsertEdge cannot bootstrap
// a vertex that has no edges yet.
package topology

import "fmt"

// AddSegment seeds the two-point configuration: the single undirected
// edge (a,b), each endpoint's ring containing only the other, and the
// two-vertex hull first[a]=b, first[b]=a.
//
// Returns ErrDegenerateEdge when a == b, ErrEdgeExists when (a,b) is
// already stored.
//
// Complexity: O(1)
func (t *Topology) AddSegment(a, b Point) error {
	if a == b {
		return fmt.Errorf("%w: (%v)", ErrDegenerateEdge, a)
	}
	if _, dup := t.succ[Edge{From: a, To: b}]; dup {
		return fmt.Errorf("%w: (%v→%v)", ErrEdgeExists, a, b)
	}

	// A one-edge ring points back at itself on both sides.
	t.succ[Edge{From: a, To: b}] = b
	t.pred[Edge{From: a, To: b}] = b
	t.succ[Edge{From: b, To: a}] = a
	t.pred[Edge{From: b, To: a}] = a
	t.first[a] = b
	t.first[b] = a

	return nil
}

// AddTriangle seeds the three-point configuration for a CCW triple
// (a,b,c): all six directed edges of the triangle, two-element rings at
// every vertex, and the hull chain first[a]=b, first[b]=c, first[c]=a.
//
// The caller is responsible for passing the triple in CCW order; for a
// CW input the driver reorders to (a,c,b) before calling.
//
// Complexity: O(1)
func (t *Topology) AddTriangle(a, b, c Point) error {
	if a == b || b == c || a == c {
		return fmt.Errorf("%w: (%v,%v,%v)", ErrDegenerateEdge, a, b, c)
	}
	if _, dup := t.succ[Edge{From: a, To: b}]; dup {
		return fmt.Errorf("%w: (%v→%v)", ErrEdgeExists, a, b)
	}

	// Each vertex has exactly two neighbors; succ and pred coincide.
	t.setBoth(a, c, b)
	t.setBoth(c, a, b)
	t.setBoth(a, b, c)
	t.setBoth(b, a, c)
	t.setBoth(b, c, a)
	t.setBoth(c, b, a)
	t.first[a] = b
	t.first[b] = c
	t.first[c] = a

	return nil
}

// AddPath seeds the collinear three-point configuration for a
// lexicographically ordered triple (a,b,c): edges (a,b) and (b,c) only,
// no closing edge (a,c).  The degenerate hull is the path itself, so
// first[a]=b and first[c]=b; b is interior to the hull segment and gets
// no first entry.
//
// Complexity: O(1)
func (t *Topology) AddPath(a, b, c Point) error {
	if a == b || b == c || a == c {
		return fmt.Errorf("%w: (%v,%v,%v)", ErrDegenerateEdge, a, b, c)
	}
	if _, dup := t.succ[Edge{From: a, To: b}]; dup {
		return fmt.Errorf("%w: (%v→%v)", ErrEdgeExists, a, b)
	}

	// Endpoints have one-element rings; b's ring holds both neighbors.
	t.setBoth(a, b, b)
	t.setBoth(c, b, b)
	t.setBoth(b, a, c)
	t.setBoth(b, c, a)
	t.first[a] = b
	t.first[c] = b

	return nil
}

// setBoth writes succ and pred of (from,to) in one step, for rings of
// at most two neighbors where both directions agree.
func (t *Topology) setBoth(from, to, next Point) {
	t.succ[Edge{From: from, To: to}] = next
	t.pred[Edge{From: from, To: to}] = next
}
