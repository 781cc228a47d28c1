// Package geom - exact sign predicates.
//
// These two functions are the only places where geometry touches the
// combinatorial machinery of the triangulation; everything downstream
// branches on their three-valued results, including the equality cases
// (Aligned, OnCircle).
package geom

import "math/big"

// Orient is the three-valued result of the orientation test.
//
//   - Direct   - (a,b,c) turns counter-clockwise (positive area).
//   - Aligned  - a, b, c are collinear.
//   - Indirect - (a,b,c) turns clockwise (negative area).
type Orient int

const (
	// Indirect: clockwise turn.
	Indirect Orient = -1

	// Aligned: collinear points.
	Aligned Orient = 0

	// Direct: counter-clockwise turn.
	Direct Orient = 1
)

// CirclePos is the three-valued result of the in-circle test.
//
//   - Inside   - d lies strictly inside the circumcircle of (a,b,c).
//   - OnCircle - d lies exactly on the circumcircle (cocircular).
//   - Outside  - d lies strictly outside the circumcircle.
type CirclePos int

const (
	// Outside: strictly outside the circumcircle.
	Outside CirclePos = -1

	// OnCircle: exactly on the circumcircle.
	OnCircle CirclePos = 0

	// Inside: strictly inside the circumcircle.
	Inside CirclePos = 1
)

// Orientation returns the turn direction of the triple (a, b, c):
// the sign of the determinant
//
//	| bx-ax  cx-ax |
//	| by-ay  cy-ay |
//
// Exact for coordinates within ±MaxCoordinate: each difference fits in
// 32 bits, each product below 2⁶², their difference below 2⁶³.
// Complexity: O(1)
func Orientation(a, b, c Point) Orient {
	d := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case d > 0:
		return Direct
	case d < 0:
		return Indirect
	default:
		return Aligned
	}
}

// InCircle returns the position of d relative to the circumcircle of
// the triangle (a, b, c): the sign of the 3×3 determinant whose row i is
//
//	( pᵢx-dx,  pᵢy-dy,  (pᵢx-dx)² + (pᵢy-dy)² )   for pᵢ ∈ {a, b, c}.
//
// Precondition: (a, b, c) is counter-clockwise (Orientation == Direct);
// for a clockwise triple the sign is negated.
//
// The entries are degree-4 in the coordinates, far beyond int64, so the
// determinant is expanded in math/big and the sign is exact for any
// in-range input.
// Complexity: O(1)
func InCircle(a, b, c, d Point) CirclePos {
	// 1) Translate so d is the origin; the test becomes a plain sign.
	a1, a2 := big.NewInt(a.X-d.X), big.NewInt(a.Y-d.Y)
	b1, b2 := big.NewInt(b.X-d.X), big.NewInt(b.Y-d.Y)
	c1, c2 := big.NewInt(c.X-d.X), big.NewInt(c.Y-d.Y)

	// 2) Third column: squared distances to d.
	a3 := new(big.Int).Add(new(big.Int).Mul(a1, a1), new(big.Int).Mul(a2, a2))
	b3 := new(big.Int).Add(new(big.Int).Mul(b1, b1), new(big.Int).Mul(b2, b2))
	c3 := new(big.Int).Add(new(big.Int).Mul(c1, c1), new(big.Int).Mul(c2, c2))

	// 3) Cofactor expansion along the first row.
	m1 := new(big.Int).Sub(new(big.Int).Mul(b2, c3), new(big.Int).Mul(b3, c2))
	m2 := new(big.Int).Sub(new(big.Int).Mul(b1, c3), new(big.Int).Mul(b3, c1))
	m3 := new(big.Int).Sub(new(big.Int).Mul(b1, c2), new(big.Int).Mul(b2, c1))

	det := new(big.Int).Mul(a1, m1)
	det.Sub(det, new(big.Int).Mul(a2, m2))
	det.Add(det, new(big.Int).Mul(a3, m3))

	switch det.Sign() {
	case 1:
		return Inside
	case -1:
		return Outside
	default:
		return OnCircle
	}
}
