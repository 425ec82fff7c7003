package advanced

import "sort"

// GrahamScan computes the convex hull by sorting the points into
// counterclockwise angular order about the leftmost point, then sweeping a
// stack over them, discarding any point that produces a non-left turn.
// https://en.wikipedia.org/wiki/Graham_scan
//
// The stack, bottom to top, is the hull in counterclockwise order starting
// from the leftmost point. O(n log n), dominated by the sort. Exactly
// collinear points fail the strict left-turn test and are discarded, so
// they never survive as hull vertices.
//
// Behavior is undefined for fewer than 3 points or all-collinear input. The
// caller's slice is not modified; the scan sorts a working copy.
func GrahamScan(points []Point) []Point {
	v := clonePoints(points)

	// Put the leftmost point at index 0, then sort the rest by angle
	// about it. All other points sit in the closed half plane to its
	// right, so the angular order is total for inputs in general position.
	min := leftmostIndex(v)
	v[0], v[min] = v[min], v[0]

	rest := v[1:]
	sorter := CCWSorter{Pivot: v[0]}
	sort.Slice(rest, func(i, j int) bool {
		return sorter.Less(rest[i], rest[j])
	})

	var hull PointStack
	hull.Push(v[0])
	hull.Push(v[1])
	hull.Push(v[2])

	for _, p := range v[3:] {
		// Pop until the top two stack points make a strict left turn
		// with p.
		for Orientation(hull.PeekBelowTop(), hull.Peek(), p) <= 0 {
			hull.Pop()
		}
		hull.Push(p)
	}

	return hull
}
