// Package pointset - generator implementations.
package pointset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvltri/geom"
)

// Random returns n distinct points with coordinates drawn uniformly
// from [0, bound), generated deterministically from seed (seed==0 maps
// to the fixed default stream).
//
// Returns ErrBadCount when n < 1 or n exceeds the bound² distinct
// positions available, ErrBadBound when bound is non-positive or
// exceeds geom.MaxCoordinate+1.
//
// Complexity: O(n) expected - collisions are rejected via a set.
func Random(n int, bound, seed int64) ([]geom.Point, error) {
	if bound < 1 || bound > geom.MaxCoordinate+1 {
		return nil, fmt.Errorf("%w: bound %d", ErrBadBound, bound)
	}
	if n < 1 || int64(n) > bound*bound {
		return nil, fmt.Errorf("%w: %d points in a %d×%d square", ErrBadCount, n, bound, bound)
	}

	rng := rngFromSeed(seed)
	seen := make(map[geom.Point]struct{}, n)
	pts := make([]geom.Point, 0, n)
	for len(pts) < n {
		p := geom.Point{X: rng.Int63n(bound), Y: rng.Int63n(bound)}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pts = append(pts, p)
	}

	return pts, nil
}

// Grid returns the full w×h integer lattice, row by row.  Lattice
// inputs are rich in cocircular quadruples, exercising every in-circle
// tie-break of the merge.
//
// Returns ErrBadBound when either side is non-positive or the lattice
// leaves the coordinate range.
//
// Complexity: O(w·h)
func Grid(w, h int) ([]geom.Point, error) {
	if w < 1 || h < 1 || int64(w) > geom.MaxCoordinate || int64(h) > geom.MaxCoordinate {
		return nil, fmt.Errorf("%w: %d×%d lattice", ErrBadBound, w, h)
	}

	pts := make([]geom.Point, 0, w*h)
	var i, j int
	for j = 0; j < h; j++ {
		for i = 0; i < w; i++ {
			pts = append(pts, geom.Point{X: int64(i), Y: int64(j)})
		}
	}

	return pts, nil
}

// Circle returns up to n distinct points traced around a circle of
// radius r centered at the origin.  Coordinates are rounded to the
// lattice, so the points are near-cocircular rather than exactly
// cocircular; rounding collisions are dropped, which is why the result
// may hold fewer than n points for small radii.
//
// Returns ErrBadCount when n < 2, ErrBadBound when r < 1 or r exceeds
// geom.MaxCoordinate.
//
// Complexity: O(n)
func Circle(n int, r int64) ([]geom.Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if r < 1 || r > geom.MaxCoordinate {
		return nil, fmt.Errorf("%w: radius %d", ErrBadBound, r)
	}

	seen := make(map[geom.Point]struct{}, n)
	pts := make([]geom.Point, 0, n)
	var i int
	for i = 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		p := geom.Point{
			X: int64(math.Round(float64(r) * math.Cos(theta))),
			Y: int64(math.Round(float64(r) * math.Sin(theta))),
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pts = append(pts, p)
	}

	return pts, nil
}

// Collinear returns n points p_i = (i·dx, i·dy) on one straight line,
// the fully degenerate input that stresses the path base case and the
// variance-driven split.
//
// Returns ErrBadCount when n < 2, ErrBadBound when (dx,dy) is zero or
// the last point leaves the coordinate range.
//
// Complexity: O(n)
func Collinear(n int, dx, dy int64) ([]geom.Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	last := int64(n - 1)
	if dx == 0 && dy == 0 {
		return nil, fmt.Errorf("%w: zero direction", ErrBadBound)
	}
	if !geom.InRange(geom.Point{X: last * dx, Y: last * dy}) {
		return nil, fmt.Errorf("%w: direction (%d,%d) overflows at n=%d", ErrBadBound, dx, dy, n)
	}

	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: int64(i) * dx, Y: int64(i) * dy}
	}

	return pts, nil
}
