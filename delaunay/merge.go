// Package delaunay - the zipper merge.
//
// merge stitches two sub-triangulations along the rising common tangent,
// deleting every edge of the halves that the in-circle test disqualifies
// against the advancing merge front and inserting Delaunay cross edges,
// until the front reaches the upper tangent.
package delaunay

import (
	"fmt"

	"github.com/katalvlaran/lvltri/geom"
)

// merge zips the two halves together along the lower tangent (x, y).
//
// Each loop iteration advances the front by one cross edge: the two
// candidate scans drop non-Delaunay edges around y (CW) and around x
// (CCW), then the surviving candidates compete - the side whose
// candidate triangle's circumcircle does NOT contain the other
// candidate wins, which makes every inserted cross edge Delaunay.  On a
// cocircular tie the y-side candidate wins.
//
// Complexity: O(k) predicate calls for k edges touched; summed over all
// merges this stays within the O(n·log n) bound.
func (s *solver) merge(x, y geom.Point) error {
	// 1) Insert the base tangent edge and mark it as the hull edge of x.
	fx, ok := s.topo.First(x)
	if !ok {
		return fmt.Errorf("%w: no hull marker at %v", ErrInternalInvariant, x)
	}
	fy, ok := s.topo.First(y)
	if !ok {
		return fmt.Errorf("%w: no hull marker at %v", ErrInternalInvariant, y)
	}
	pyf, ok := s.topo.Pred(y, fy)
	if !ok {
		return fmt.Errorf("%w: pred(%v→%v) missing", ErrInternalInvariant, y, fy)
	}
	if err := s.topo.InsertEdge(x, y, fx, pyf); err != nil {
		return fmt.Errorf("%w: base tangent: %v", ErrInternalInvariant, err)
	}
	s.opts.OnInsert(x, y)
	s.topo.SetFirst(x, y)

	// 2) Zip one layer per iteration until both sides run out.
	for {
		y1, hasY1, err := s.scanRight(x, y)
		if err != nil {
			return err
		}
		x1, hasX1, err := s.scanLeft(x, y)
		if err != nil {
			return err
		}

		// 2.c) Decide the next cross edge.
		switch {
		case !hasX1 && !hasY1:
			// Upper tangent reached.
			s.topo.SetFirst(y, x)
			if !s.topo.Contains(x, y) || !s.topo.Contains(y, x) {
				return fmt.Errorf("%w: upper tangent (%v,%v) not stored", ErrInternalInvariant, x, y)
			}

			return nil

		case !hasX1:
			if err = s.crossInsert(y1, x, y); err != nil {
				return err
			}
			s.opts.OnCircle(x, y1, y)
			y = y1

		case !hasY1:
			if err = s.crossInsert(y, x1, x); err != nil {
				return err
			}
			s.opts.OnCircle(y, x1, x)
			x = x1

		case geom.InCircle(x, y, y1, x1) == geom.Inside:
			// The y-side candidate triangle traps x1: advance on x's side.
			if err = s.crossInsert(y, x1, x); err != nil {
				return err
			}
			s.opts.OnCircle(y, x1, x)
			x = x1

		default:
			// Outside or cocircular: the y-side candidate wins the tie.
			if err = s.crossInsert(y1, x, y); err != nil {
				return err
			}
			s.opts.OnCircle(x, y1, y)
			y = y1
		}
	}
}

// scanRight finds the merge candidate on y's side: the CW neighbor of
// (y,x), provided it lies above the front, after deleting every edge
// (y,y1) whose successor candidate y2 invades the circumcircle of
// (x,y,y1).
func (s *solver) scanRight(x, y geom.Point) (geom.Point, bool, error) {
	cand, ok := s.topo.Pred(y, x)
	if !ok {
		return geom.Point{}, false, fmt.Errorf("%w: pred(%v→%v) missing", ErrInternalInvariant, y, x)
	}
	if geom.Orientation(x, y, cand) != geom.Direct {
		return geom.Point{}, false, nil
	}

	y1 := cand
	y2, ok := s.topo.Pred(y, y1)
	if !ok {
		return geom.Point{}, false, fmt.Errorf("%w: pred(%v→%v) missing", ErrInternalInvariant, y, y1)
	}
	for geom.InCircle(x, y, y1, y2) == geom.Inside {
		if err := s.topo.DeleteEdge(y, y1); err != nil {
			return geom.Point{}, false, fmt.Errorf("%w: %v", ErrInternalInvariant, err)
		}
		s.opts.OnDelete(y, y1)
		y1 = y2
		if y2, ok = s.topo.Pred(y, y1); !ok {
			return geom.Point{}, false, fmt.Errorf("%w: pred(%v→%v) missing", ErrInternalInvariant, y, y1)
		}
	}

	return y1, true, nil
}

// scanLeft is the symmetric candidate scan on x's side, walking succ
// (CCW) instead of pred.
func (s *solver) scanLeft(x, y geom.Point) (geom.Point, bool, error) {
	cand, ok := s.topo.Succ(x, y)
	if !ok {
		return geom.Point{}, false, fmt.Errorf("%w: succ(%v→%v) missing", ErrInternalInvariant, x, y)
	}
	if geom.Orientation(x, y, cand) != geom.Direct {
		return geom.Point{}, false, nil
	}

	x1 := cand
	x2, ok := s.topo.Succ(x, x1)
	if !ok {
		return geom.Point{}, false, fmt.Errorf("%w: succ(%v→%v) missing", ErrInternalInvariant, x, x1)
	}
	for geom.InCircle(x, y, x1, x2) == geom.Inside {
		if err := s.topo.DeleteEdge(x, x1); err != nil {
			return geom.Point{}, false, fmt.Errorf("%w: %v", ErrInternalInvariant, err)
		}
		s.opts.OnDelete(x, x1)
		x1 = x2
		if x2, ok = s.topo.Succ(x, x1); !ok {
			return geom.Point{}, false, fmt.Errorf("%w: succ(%v→%v) missing", ErrInternalInvariant, x, x1)
		}
	}

	return x1, true, nil
}

// crossInsert inserts the cross edge (from,to) with both cyclic anchors
// at anchor, the position every merge cross edge takes next to the
// previous front edge.
func (s *solver) crossInsert(from, to, anchor geom.Point) error {
	if err := s.topo.InsertEdge(from, to, anchor, anchor); err != nil {
		return fmt.Errorf("%w: cross edge (%v→%v): %v", ErrInternalInvariant, from, to, err)
	}

	return nil
}
