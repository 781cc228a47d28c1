// Package pointset generates deterministic planar point sets for
// triangulation tests and benchmarks.
//
// 🚀 What's inside?
//
//	  • Random    - n distinct points in a square, seeded RNG
//	  • Grid      - the full w×h integer lattice (cocircular-heavy)
//	  • Circle    - n points traced around a circle (near-degenerate)
//	  • Collinear - n points on one straight line (fully degenerate)
//
// ✨ Determinism policy:
//
//	Same seed ⇒ identical point set across platforms; seed 0 maps to a
//	fixed default seed.  No time-based randomness anywhere, so failing
//	stress tests reproduce from their logged seed alone.
//
// All generators return points within geom.MaxCoordinate when their
// inputs are in range, ready for delaunay.Triangulate.
package pointset
