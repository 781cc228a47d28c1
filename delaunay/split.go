// Package delaunay - split-axis selection and partitioning.
package delaunay

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvltri/geom"
)

// splitOrder picks the comparator for the next split: the lexicographic
// (X,Y) order when the x-coordinates spread wider, the (Y,X) order
// otherwise.  Splitting across the axis of larger variance keeps
// collinear-heavy inputs from degrading the recursion to O(n²).
// Complexity: O(n)
func splitOrder(pts []geom.Point) func(a, b geom.Point) bool {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	var i int
	for i = range pts {
		xs[i] = float64(pts[i].X)
		ys[i] = float64(pts[i].Y)
	}

	if stat.Variance(ys, nil) < stat.Variance(xs, nil) {
		return geom.Less
	}

	return geom.YLess
}

// partition splits pts into the points strictly below med and the rest,
// preserving relative order.  All points are distinct, so med itself
// always lands in hi and both halves are non-empty for any med of
// central rank.
// Complexity: O(n)
func partition(pts []geom.Point, med geom.Point, less func(a, b geom.Point) bool) (lo, hi []geom.Point) {
	lo = make([]geom.Point, 0, len(pts)/2+1)
	hi = make([]geom.Point, 0, len(pts)/2+1)
	for _, p := range pts {
		if less(p, med) {
			lo = append(lo, p)
		} else {
			hi = append(hi, p)
		}
	}

	return lo, hi
}

// maxUnder returns the maximum of pts under less.
// Complexity: O(n)
func maxUnder(pts []geom.Point, less func(a, b geom.Point) bool) geom.Point {
	best := pts[0]
	for _, p := range pts[1:] {
		if less(best, p) {
			best = p
		}
	}

	return best
}

// minUnder returns the minimum of pts under less.
// Complexity: O(n)
func minUnder(pts []geom.Point, less func(a, b geom.Point) bool) geom.Point {
	best := pts[0]
	for _, p := range pts[1:] {
		if less(p, best) {
			best = p
		}
	}

	return best
}
