// Package median selects an approximate median of a point slice in
// linear time, used by the delaunay driver to balance its recursion.
//
// 🚀 What is a pseudo-median?
//
//	An element whose rank is near n/2 but not exactly n/2:
//
//	  • blocks of at most SortThreshold elements are sorted outright
//	    and yield their middle element;
//	  • larger ranges are cut into BlockCount contiguous blocks, each
//	    reduced recursively, and the median of the block medians wins.
//
//	The result's rank is bounded away from both extremes, which is all
//	the divide-and-conquer driver needs for O(log n) recursion depth,
//	and the whole selection runs in O(n) instead of O(n·log n).
//
// ⚙️ Usage:
//
//	med, err := median.PseudoMedian(pts, geom.Less)
//	med, err := median.PseudoMedian(pts, geom.YLess,
//	    median.WithBlockCount(9), median.WithSortThreshold(64))
//
// The defaults (7 blocks, 100-element threshold) are performance
// parameters, not correctness parameters.
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(SortThreshold) per recursion leaf (sorted block copies)
package median
