package topology

// Raw map access for corruption tests.  These methods are exported and
// compiled into the package, and they bypass every store invariant.

// SetSuccRaw writes a succ entry without touching pred or the reverse edge.
func (t *Topology) SetSuccRaw(a, b, c Point) {
	t.succ[Edge{From: a, To: b}] = c
}

// SetPredRaw writes a pred entry without touching succ or the reverse edge.
func (t *Topology) SetPredRaw(a, b, c Point) {
	t.pred[Edge{From: a, To: b}] = c
}

// DropSuccRaw removes a succ entry without touching anything else.
func (t *Topology) DropSuccRaw(a, b Point) {
	delete(t.succ, Edge{From: a, To: b})
}
