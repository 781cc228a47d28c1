// Package topology - O(1) edge surgery.
//
// InsertEdge and DeleteEdge are the only mutators the merge loop uses.
// Both preserve edge symmetry and ring consistency; both are exact
// inverses of each other for a given cyclic position.
package topology

import "fmt"

// InsertEdge inserts the directed edge (a,b) and its reverse into the
// cyclic orders at both endpoints, so that afterwards
//
//	succ[a,b] = sa   and   pred[b,a] = pb.
//
// The caller chooses the cyclic position of the new edge at each end by
// naming sa (the CCW neighbor the new edge slots in before, around a)
// and pb (the CW neighbor it slots in before, around b).
//
// Returns ErrDegenerateEdge when a == b, ErrEdgeExists when (a,b) is
// already stored, and ErrEdgeNotFound when either anchor edge (a,sa) or
// (b,pb) is absent.
//
// Complexity: O(1)
func (t *Topology) InsertEdge(a, b, sa, pb Point) error {
	if a == b {
		return fmt.Errorf("%w: (%v)", ErrDegenerateEdge, a)
	}
	if _, dup := t.succ[Edge{From: a, To: b}]; dup {
		return fmt.Errorf("%w: (%v→%v)", ErrEdgeExists, a, b)
	}

	// 1) Read the current ring neighbors next to the anchors.
	pa, ok := t.pred[Edge{From: a, To: sa}]
	if !ok {
		return fmt.Errorf("%w: anchor (%v→%v)", ErrEdgeNotFound, a, sa)
	}
	sb, ok := t.succ[Edge{From: b, To: pb}]
	if !ok {
		return fmt.Errorf("%w: anchor (%v→%v)", ErrEdgeNotFound, b, pb)
	}

	// 2) Splice (a,b) between (a,pa) and (a,sa) around a.
	t.succ[Edge{From: a, To: pa}] = b
	t.succ[Edge{From: a, To: b}] = sa
	t.pred[Edge{From: a, To: sa}] = b
	t.pred[Edge{From: a, To: b}] = pa

	// 3) Splice (b,a) between (b,pb) and (b,sb) around b.
	t.pred[Edge{From: b, To: sb}] = a
	t.pred[Edge{From: b, To: a}] = pb
	t.succ[Edge{From: b, To: pb}] = a
	t.succ[Edge{From: b, To: a}] = sb

	return nil
}

// DeleteEdge removes (a,b) and (b,a) while closing the cyclic orders
// around both endpoints over the gap.
//
// Returns ErrEdgeNotFound when any of the four directed entries is
// absent; in that case the store is left untouched.
//
// Complexity: O(1)
func (t *Topology) DeleteEdge(a, b Point) error {
	// 1) Read all four ring neighbors before mutating anything.
	sa, ok := t.succ[Edge{From: a, To: b}]
	if !ok {
		return fmt.Errorf("%w: (%v→%v)", ErrEdgeNotFound, a, b)
	}
	sb, ok := t.succ[Edge{From: b, To: a}]
	if !ok {
		return fmt.Errorf("%w: (%v→%v)", ErrEdgeNotFound, b, a)
	}
	pa, ok := t.pred[Edge{From: a, To: b}]
	if !ok {
		return fmt.Errorf("%w: pred (%v→%v)", ErrEdgeNotFound, a, b)
	}
	pb, ok := t.pred[Edge{From: b, To: a}]
	if !ok {
		return fmt.Errorf("%w: pred (%v→%v)", ErrEdgeNotFound, b, a)
	}

	// 2) Drop the four entries.
	delete(t.succ, Edge{From: a, To: b})
	delete(t.succ, Edge{From: b, To: a})
	delete(t.pred, Edge{From: a, To: b})
	delete(t.pred, Edge{From: b, To: a})

	// 3) Re-close the rings.
	t.succ[Edge{From: a, To: pa}] = sa
	t.succ[Edge{From: b, To: pb}] = sb
	t.pred[Edge{From: a, To: sa}] = pa
	t.pred[Edge{From: b, To: sb}] = pb

	return nil
}
