// Package delaunay - ascending common tangent between two hulls.
package delaunay

import (
	"fmt"

	"github.com/katalvlaran/lvltri/geom"
)

// commonTangent returns the lower supporting line (x, y) of the two
// sub-hulls on either side of the splitting line: every point of both
// halves lies weakly to the left of the directed segment (x, y).
//
// x0 is the extreme point of the low half along the split axis, y0 the
// extreme point of the high half; both are hull vertices of their
// halves, so their first markers exist.  The walk advances y along the
// right hull while (x,y,z0) turns clockwise, advances x along the left
// hull while (x,y,z2) turns clockwise, and stops when neither does.
// Aligned never triggers an advance, which keeps the tangent minimal on
// collinear hull stretches.
//
// Complexity: O(H_left + H_right) - each step strictly advances on a
// finite hull and the configuration is monotone.
func (s *solver) commonTangent(x0, y0 geom.Point) (geom.Point, geom.Point, error) {
	x, y := x0, y0

	z0, ok := s.topo.First(y)
	if !ok {
		return x, y, fmt.Errorf("%w: no hull marker at %v", ErrInternalInvariant, y)
	}
	z1, ok := s.topo.First(x)
	if !ok {
		return x, y, fmt.Errorf("%w: no hull marker at %v", ErrInternalInvariant, x)
	}
	if !s.topo.Contains(x, z1) {
		return x, y, fmt.Errorf("%w: hull edge (%v→%v) not stored", ErrInternalInvariant, x, z1)
	}
	z2, _ := s.topo.Pred(x, z1)

	for {
		switch {
		case geom.Orientation(x, y, z0) == geom.Indirect:
			// y is not yet supporting: slide it CCW along the right hull.
			next, ok := s.topo.Succ(z0, y)
			if !ok {
				return x, y, fmt.Errorf("%w: succ(%v→%v) missing during tangent walk", ErrInternalInvariant, z0, y)
			}
			y, z0 = z0, next

		case geom.Orientation(x, y, z2) == geom.Indirect:
			// x is not yet supporting: slide it CW along the left hull.
			next, ok := s.topo.Pred(z2, x)
			if !ok {
				return x, y, fmt.Errorf("%w: pred(%v→%v) missing during tangent walk", ErrInternalInvariant, z2, x)
			}
			x, z2 = z2, next

		default:
			return x, y, nil
		}
	}
}
