package advanced

import "sort"

// MonotoneChain computes the convex hull with Andrew's monotone chain
// algorithm: sort the points lexicographically, build the lower chain left
// to right and the upper chain right to left, then splice the chains.
//
// The hull comes back in counterclockwise order starting from the
// lexicographically smallest point. O(n log n), dominated by the sort.
// Collinear points are discarded by the same strict left-turn test as
// GrahamScan.
//
// Behavior is undefined for fewer than 3 points or all-collinear input. The
// caller's slice is not modified; the scan sorts a working copy.
func MonotoneChain(points []Point) []Point {
	v := clonePoints(points)
	sort.Slice(v, func(i, j int) bool {
		return IsLeftOf(v[i], v[j])
	})

	var lower PointStack
	for _, p := range v {
		for lower.Len() >= 2 && Orientation(lower.PeekBelowTop(), lower.Peek(), p) <= 0 {
			lower.Pop()
		}
		lower.Push(p)
	}

	var upper PointStack
	for i := len(v) - 1; i >= 0; i-- {
		p := v[i]
		for upper.Len() >= 2 && Orientation(upper.PeekBelowTop(), upper.Peek(), p) <= 0 {
			upper.Pop()
		}
		upper.Push(p)
	}

	// Both chains contain both extreme points, so drop them from the
	// upper chain when splicing.
	hull := []Point(lower)
	hull = append(hull, upper[1:len(upper)-1]...)
	return hull
}
