// Package geom provides the exact geometric primitives every other
// lvltri package is built on: the integer Point type, the two
// lexicographic orders used for splitting, and the orientation and
// in-circle sign predicates.
//
// 🚀 Why exact predicates?
//
//	The merge logic of a Delaunay engine branches on *equality* with
//	Aligned and OnCircle, not just on strict signs.  A single wrong
//	sign produces a corrupted topology, so both predicates here are
//	computed exactly:
//
//	  • Orientation - int64 arithmetic, exact under the coordinate bound
//	  • InCircle    - math/big, never overflows, never rounds
//
// ⚙️ Coordinate contract:
//
//	Coordinates are int64 with |X|, |Y| ≤ MaxCoordinate (2³⁰−1).  Under
//	that bound the 2×2 orientation determinant fits int64 with room to
//	spare; InRange reports whether a point honors the bound and the
//	delaunay driver rejects offenders with ErrCoordinateOverflow before
//	touching any state.
//
// Performance:
//
//   - Orientation: O(1), allocation-free
//   - InCircle:    O(1), a handful of big.Int allocations
//
// See example_test.go for predicate walkthroughs.
package geom
