// Package median implements linear-time pseudo-median selection over
// point slices under a caller-supplied strict order.
package median

import (
	"sort"

	"github.com/katalvlaran/lvltri/geom"
)

// PseudoMedian returns an element of pts whose rank under less is close
// to len(pts)/2. The input slice is never mutated; blocks are copied
// before sorting.
//
// Returns ErrNoData for an empty slice, ErrNilLess for a nil comparator,
// and ErrOptionViolation for a bad option combination.
//
// Complexity: O(n) time - each of the O(log_k n) levels touches each
// element once, and the per-block sorts are bounded by SortThreshold.
func PseudoMedian(pts []geom.Point, less func(a, b geom.Point) bool, opts ...Option) (geom.Point, error) {
	// 1) Validate input.
	if len(pts) == 0 {
		return geom.Point{}, ErrNoData
	}
	if less == nil {
		return geom.Point{}, ErrNilLess
	}

	// 2) Build and validate options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return geom.Point{}, err
	}

	return pseudoMedian(pts, 0, len(pts), less, o), nil
}

// pseudoMedian reduces the half-open range pts[start:end].
// Precondition: end > start.
func pseudoMedian(pts []geom.Point, start, end int, less func(a, b geom.Point) bool, o Options) geom.Point {
	// Small range: sort a copy and take the middle element.
	span := end - start
	if span <= o.SortThreshold {
		return sortedMiddle(pts[start:end], less)
	}

	// Large range: reduce BlockCount contiguous blocks recursively, then
	// take the median of the block medians. Block boundaries follow the
	// i*span/k scheme, so all blocks are non-empty (span > SortThreshold ≥ k).
	medians := make([]geom.Point, 0, o.BlockCount)
	var i int
	for i = 0; i < o.BlockCount; i++ {
		lo := start + i*span/o.BlockCount
		hi := start + (i+1)*span/o.BlockCount
		medians = append(medians, pseudoMedian(pts, lo, hi, less, o))
	}

	return sortedMiddle(medians, less)
}

// sortedMiddle returns the element of rank len(block)/2 by sorting a copy.
// Complexity: O(b·log b) with b = len(block).
func sortedMiddle(block []geom.Point, less func(a, b geom.Point) bool) geom.Point {
	tmp := make([]geom.Point, len(block))
	copy(tmp, block)
	sort.Slice(tmp, func(i, j int) bool { return less(tmp[i], tmp[j]) })

	return tmp[len(tmp)/2]
}
