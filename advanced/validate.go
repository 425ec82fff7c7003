package advanced

// Predicates over finished hulls. The algorithms don't use these; they
// exist so callers (and our own tests) can check results.

// IsConvexCCW reports whether the polygon is strictly convex and wound
// counterclockwise: every consecutive vertex triple, wrapping around, makes
// a strict left turn. Collinear triples fail the test, matching the
// algorithms' policy of discarding collinear points.
func IsConvexCCW(hull []Point) bool {
	n := len(hull)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if Orientation(hull[i], hull[(i+1)%n], hull[(i+2)%n]) <= 0 {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p is inside or on the boundary of a
// counterclockwise convex hull: p must be on or to the left of every
// directed edge.
func ContainsPoint(hull []Point, p Point) bool {
	n := len(hull)
	for i := 0; i < n; i++ {
		if Orientation(hull[i], hull[(i+1)%n], p) < 0 {
			return false
		}
	}
	return true
}
