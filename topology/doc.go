// Package topology stores an embedded planar graph as per-vertex cyclic
// neighbor orders, the representation the Delaunay merge mutates in place.
//
// 🚀 What is the succ/pred/first encoding?
//
//	Every undirected edge is two directed edges (a,b) and (b,a).  Two
//	maps over directed edges encode the embedding:
//
//	  • succ[(a,b)] = c  - (a,c) follows (a,b) counter-clockwise around a
//	  • pred[(a,b)] = c  - (a,c) follows (a,b) clockwise around a
//
//	plus one hull marker per hull vertex:
//
//	  • first[a] = b     - (a,b) is the CCW-next hull edge leaving a
//
//	No pointer-heavy ring lists: the twin maps give O(1) InsertEdge and
//	DeleteEdge, and walking succ from any edge enumerates a vertex's
//	neighbors in CCW order exactly once.
//
// ✨ Invariants (preserved by every mutator):
//
//   - Edge symmetry      - (a,b) stored ⇒ (b,a) stored, in both maps
//   - Ring consistency   - pred[a,succ[a,b]] = b and succ[a,pred[a,b]] = b
//   - Triangular faces   - every interior face of a finished
//     triangulation is a triangle (driver's responsibility)
//   - Hull chain         - following first walks the convex hull CCW
//
// ⚙️ Mutators come in two flavors:
//
//	InsertEdge / DeleteEdge - the O(1) surgery used by the merge;
//	AddSegment / AddTriangle / AddPath - the base-case seeds for 2 and 3
//	points, installing complete rings wholesale.
//
// Validate() re-checks symmetry and ring consistency over the whole
// store in O(E) and is meant for tests.
//
// Topology is exclusively owned by one driver invocation; it is not
// safe for concurrent mutation.
package topology
