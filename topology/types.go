// Package topology declares the Edge key type, the Topology store,
// sentinel errors, and the constructor.
//
// Errors:
//
//	ErrEdgeNotFound   - a required directed edge is absent from the store.
//	ErrEdgeExists     - an inserted edge is already present.
//	ErrDegenerateEdge - both endpoints of an edge are the same point.
//	ErrAsymmetricEdge - Validate: (a,b) stored without (b,a).
//	ErrRingCorrupt    - Validate: succ/pred are not mutual inverses.
package topology

import (
	"errors"

	"github.com/katalvlaran/lvltri/geom"
)

// Sentinel errors for topology operations.
var (
	// ErrEdgeNotFound indicates an operation referenced a directed edge
	// that is not in the store.
	ErrEdgeNotFound = errors.New("topology: directed edge not found")

	// ErrEdgeExists indicates an insertion collided with a stored edge.
	ErrEdgeExists = errors.New("topology: directed edge already present")

	// ErrDegenerateEdge indicates an edge from a point to itself.
	ErrDegenerateEdge = errors.New("topology: edge endpoints must differ")

	// ErrAsymmetricEdge indicates a directed edge stored without its twin.
	ErrAsymmetricEdge = errors.New("topology: edge stored without its reverse")

	// ErrRingCorrupt indicates succ and pred disagree around a vertex.
	ErrRingCorrupt = errors.New("topology: succ/pred rings are inconsistent")
)

// Point aliases geom.Point: the store keys on points but owns no
// geometry of its own.
type Point = geom.Point

// Edge is a directed edge: an ordered pair of distinct points.
// Edge is comparable and is the key type of the succ and pred maps.
type Edge struct {
	// From is the source point.
	From geom.Point

	// To is the destination point.
	To geom.Point
}

// Reverse returns the opposing directed edge.
// Complexity: O(1)
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From}
}

// Topology is the mutable planar-graph store.
//
// succ and pred map each stored directed edge (a,b) to the point c such
// that (a,c) is the CCW (resp. CW) neighbor of (a,b) around a.  first
// maps a hull vertex to the CCW-next hull vertex.  The zero sets of all
// three maps together are an empty triangulation.
type Topology struct {
	succ  map[Edge]geom.Point
	pred  map[Edge]geom.Point
	first map[geom.Point]geom.Point
}

// New creates an empty Topology.
// Complexity: O(1)
func New() *Topology {
	return &Topology{
		succ:  make(map[Edge]geom.Point),
		pred:  make(map[Edge]geom.Point),
		first: make(map[geom.Point]geom.Point),
	}
}
