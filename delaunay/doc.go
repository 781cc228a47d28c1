// Package delaunay computes the Delaunay triangulation and convex hull
// of a finite set of distinct integer points in O(n·log n), with the
// divide-and-conquer algorithm of Lee & Schachter.
//
// 🚀 How it works:
//
//	  • sort the points lexicographically, reject duplicates up front
//	  • split on the axis of larger coordinate variance, around a
//	    linear-time pseudo-median
//	  • triangulate both halves recursively (segments and triangles at
//	    the bottom)
//	  • walk the rising common tangent between the two hulls, then zip
//	    the halves together, deleting every edge the in-circle test
//	    disqualifies and inserting Delaunay cross edges
//
//	The convex hull falls out of the same pass: the topology's first
//	chain is the hull in CCW order when the recursion unwinds.
//
// ✨ Guarantees:
//
//   - Exact         - all branching is on exact predicate signs
//   - Delaunay      - no input point lies strictly inside any
//     triangle's circumcircle
//   - Deterministic - a permutation of the input yields the same edges
//   - Fail-fast     - bad input is rejected before any state exists
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvltri/delaunay"
//
//	topo, err := delaunay.Triangulate(points)
//
//	// step-by-step observation, e.g. for a visual front-end:
//	topo, err = delaunay.Triangulate(points,
//	    delaunay.WithOnInsert(func(a, b geom.Point) { … }),
//	    delaunay.WithOnDelete(func(a, b geom.Point) { … }),
//	    delaunay.WithOnCircle(func(a, b, c geom.Point) { … }))
//
//	// or collect the whole event stream:
//	events, err := delaunay.TriangulateEvents(points)
//
// Performance:
//
//   - Time:   O(n·log n) - balanced splits via the pseudo-median
//   - Memory: O(n) - a planar graph holds at most 3n−6 undirected edges
//
// The engine is single-threaded by design: succ, pred and first are
// exclusively owned by one Triangulate invocation.  Two independent
// triangulations may run side by side.
package delaunay
