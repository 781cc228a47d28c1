// Package lvltri computes planar Delaunay triangulations and convex
// hulls with the divide-and-conquer algorithm of Lee & Schachter.
//
// 🚀 What is lvltri?
//
//	A compact, deterministic triangulation engine in pure Go:
//
//	  • Exact integer predicates: no epsilon tuning, no wrong signs
//	  • O(n·log n) divide & conquer with a linear-time pseudo-median
//	  • The convex hull falls out of the same pass for free
//	  • Step-by-step event hooks for visual front-ends
//
// ✨ Why choose lvltri?
//
//   - Predictable        - same input ⇒ same triangulation, always
//   - Rock-solid         - merge logic branches on exact signs only
//   - Observable         - insert/delete/circle hooks expose every step
//   - Honest errors      - duplicates and short input rejected up front
//
// Under the hood, everything is organized under five subpackages:
//
//	geom/      - Point, lexicographic orders, orientation & in-circle tests
//	median/    - linear-time pseudo-median used to balance the recursion
//	topology/  - the succ/pred/first planar-graph store with O(1) surgery
//	delaunay/  - driver, common tangent, zipper merge, event stream
//	pointset/  - deterministic point-set generators for tests & benchmarks
//
// Quick ASCII example:
//
//	    (1,2)
//	     /\
//	    /  \
//	 (0,0)──(2,0)
//
//	three points make one triangle; its hull is the triangle itself.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/lvltri/delaunay
package lvltri
