package advanced

// GiftWrapping computes the convex hull by wrapping a line around the point
// set, one hull edge per step.
// https://en.wikipedia.org/wiki/Gift_wrapping_algorithm
//
// The hull comes back in counterclockwise order starting from the leftmost
// point. O(n*h) for h hull vertices, so it wins on small hulls and loses
// badly when most points are hull vertices. The input is read but never
// reordered.
//
// Behavior is undefined for fewer than 3 points or all-collinear input.
func GiftWrapping(points []Point) []Point {
	start := leftmostIndex(points)

	hull := []Point{}
	current := start
	for {
		hull = append(hull, points[current])

		// Pick the candidate every other point is counterclockwise of, as
		// seen from the current hull point. That candidate is the next hull
		// vertex. A strict comparison keeps the first such candidate on
		// ties.
		isCCW := CCWSorter{Pivot: points[current]}
		next := 0
		for i := 1; i < len(points); i++ {
			if next == current || isCCW.Less(points[i], points[next]) {
				next = i
			}
		}

		current = next
		if current == start {
			break
		}
	}

	return hull
}
