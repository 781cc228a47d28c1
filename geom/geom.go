// Package geom declares the Point type, coordinate bounds,
// the lexicographic orders, and the sentinel error for out-of-range input.
package geom

import "errors"

// MaxCoordinate bounds |X| and |Y| so that the orientation determinant
// (two products of coordinate differences) stays strictly below 2⁶³ and
// int64 arithmetic remains exact.
const MaxCoordinate int64 = 1<<30 - 1

// ErrCoordinateOverflow indicates a coordinate outside ±MaxCoordinate,
// for which the int64 orientation fast path could overflow.
var ErrCoordinateOverflow = errors.New("geom: coordinate exceeds MaxCoordinate")

// Point is a point of the plane with exact integer coordinates.
// Point is comparable and may be used as a map key.
type Point struct {
	X, Y int64
}

// InRange reports whether both coordinates of p honor MaxCoordinate.
// Complexity: O(1)
func InRange(p Point) bool {
	return p.X >= -MaxCoordinate && p.X <= MaxCoordinate &&
		p.Y >= -MaxCoordinate && p.Y <= MaxCoordinate
}

// Less is the lexicographic (X, Y) order used for vertical splits and
// for canonical point sorting at the driver boundary.
// Complexity: O(1)
func Less(p, q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// YLess is the (Y, X) order used for horizontal splits: it compares
// points by ordinate first, exactly as comparing coordinate-swapped
// tuples lexicographically would.
// Complexity: O(1)
func YLess(p, q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}

	return p.X < q.X
}
