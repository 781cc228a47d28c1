// Package delaunay - driver: validation, canonical sort, recursion.
package delaunay

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvltri/geom"
	"github.com/katalvlaran/lvltri/median"
	"github.com/katalvlaran/lvltri/topology"
)

// solver bundles the mutable state of one triangulation run: the owned
// topology and the observation hooks.
type solver struct {
	topo *topology.Topology
	opts Options
}

// Triangulate computes the Delaunay triangulation of points and returns
// the finished topology, which also encodes the convex hull through its
// first chain.
//
// The input slice is not mutated; the driver sorts a copy
// lexicographically.  Validation happens before any topology exists:
//
//   - fewer than two points          → ErrInsufficientInput
//   - coordinate beyond MaxCoordinate → geom.ErrCoordinateOverflow
//   - two equal points               → ErrDuplicatePoint
//
// Complexity: O(n·log n) time, O(n) memory.
func Triangulate(points []geom.Point, opts ...Option) (*topology.Topology, error) {
	// 1) Build options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Validate input before any mutation.
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientInput, len(points))
	}
	for _, p := range points {
		if !geom.InRange(p) {
			return nil, fmt.Errorf("%w: %v", geom.ErrCoordinateOverflow, p)
		}
	}

	// 3) Canonical lexicographic order on a private copy; duplicates
	// become adjacent and are rejected in one pass.
	pts := make([]geom.Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return geom.Less(pts[i], pts[j]) })
	var i int
	for i = 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			return nil, fmt.Errorf("%w: %v", ErrDuplicatePoint, pts[i])
		}
	}

	// 4) Recurse.
	s := &solver{topo: topology.New(), opts: o}
	if err := s.compute(pts); err != nil {
		return nil, err
	}

	return s.topo, nil
}

// compute triangulates pts (≥ 2 points, distinct, in lexicographic
// order relative to the top-level sort) into s.topo.
func (s *solver) compute(pts []geom.Point) error {
	switch n := len(pts); {
	case n == 2:
		return s.seedSegment(pts[0], pts[1])

	case n == 3:
		return s.seedTriple(pts[0], pts[1], pts[2])

	default:
		// 1) Split on the axis of larger variance around a pseudo-median.
		less := splitOrder(pts)
		med, err := median.PseudoMedian(pts, less)
		if err != nil {
			return fmt.Errorf("%w: pseudo-median: %v", ErrInternalInvariant, err)
		}
		lo, hi := partition(pts, med, less)

		// 2) Triangulate both halves.
		if err = s.compute(lo); err != nil {
			return err
		}
		if err = s.compute(hi); err != nil {
			return err
		}

		// 3) Stitch: seeds are the extreme points along the split axis.
		x, y, err := s.commonTangent(maxUnder(lo, less), minUnder(hi, less))
		if err != nil {
			return err
		}

		return s.merge(x, y)
	}
}

// seedSegment installs the two-point base case and reports the edge.
func (s *solver) seedSegment(a, b geom.Point) error {
	if err := s.topo.AddSegment(a, b); err != nil {
		return fmt.Errorf("%w: %v", ErrInternalInvariant, err)
	}
	s.opts.OnInsert(a, b)

	return nil
}

// seedTriple installs the three-point base case, dispatching on the
// orientation of the triple.
func (s *solver) seedTriple(a, b, c geom.Point) error {
	var err error
	switch geom.Orientation(a, b, c) {
	case geom.Direct:
		err = s.topo.AddTriangle(a, b, c)
	case geom.Indirect:
		// Reorder to CCW; the rings are identical either way.
		err = s.topo.AddTriangle(a, c, b)
	default:
		// Collinear: re-sort lexicographically so b is the middle point,
		// and seed the open path a–b–c with no closing edge.
		a, b, c = sortTriple(a, b, c)
		if err = s.topo.AddPath(a, b, c); err != nil {
			return fmt.Errorf("%w: %v", ErrInternalInvariant, err)
		}
		s.opts.OnInsert(a, b)
		s.opts.OnInsert(b, c)

		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternalInvariant, err)
	}
	s.opts.OnInsert(a, b)
	s.opts.OnInsert(a, c)
	s.opts.OnInsert(b, c)

	return nil
}

// sortTriple returns the three points in lexicographic order.
func sortTriple(a, b, c geom.Point) (geom.Point, geom.Point, geom.Point) {
	if geom.Less(b, a) {
		a, b = b, a
	}
	if geom.Less(c, b) {
		b, c = c, b
	}
	if geom.Less(b, a) {
		a, b = b, a
	}

	return a, b, c
}
