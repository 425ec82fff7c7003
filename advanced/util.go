package advanced

import "math"

// Orientation is the z value of the cross product of segments (a, b) and
// (a, c). Positive means c is counterclockwise from (a, b), negative means
// clockwise. Zero means the three points are collinear.
//
// This is the only turn predicate any of the algorithms use. There is no
// epsilon here; comparisons are exact floats, and near-degenerate inputs
// inherit the usual floating point fragility.
func Orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// IsLeftOf reports whether a is lexicographically before b, comparing X
// first and breaking ties on Y. Points with equal coordinates are never
// "left of" each other in either direction, so this is a strict ordering.
func IsLeftOf(a, b Point) bool {
	return a.X < b.X || (a.X == b.X && a.Y < b.Y)
}

// CCWSorter orders points by increasing counterclockwise angle about a
// fixed pivot. The pivot is held by value, so the sorter remains valid even
// if the slice the pivot came from is reordered out from under it.
//
// This is not a total order when points are collinear with the pivot, or
// when the pivot itself is among the compared points. Such ties land
// wherever the sort routine puts them.
type CCWSorter struct {
	Pivot Point
}

func (s CCWSorter) Less(a, b Point) bool {
	return Orientation(s.Pivot, a, b) > 0
}

// Length of segment (a, b).
func Length(a, b Point) float64 {
	return math.Sqrt((b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y))
}

// DistanceToLine is the unsigned distance from p to the infinite line
// through a and b. If a and b coincide this divides by zero and the result
// is Inf or NaN; callers are expected not to do that.
func DistanceToLine(a, b, p Point) float64 {
	return math.Abs(Orientation(a, b, p)) / Length(a, b)
}

// FarthestPointIndex returns the index of the point in points farthest from
// the line through a and b. Ties keep the earliest index, since only a
// strictly greater distance replaces the running maximum.
func FarthestPointIndex(a, b Point, points []Point) int {
	if len(points) == 0 {
		fatalf("farthest point query on empty point list")
	}

	idxMax := 0
	distMax := DistanceToLine(a, b, points[0])
	for i := 1; i < len(points); i++ {
		if d := DistanceToLine(a, b, points[i]); d > distMax {
			idxMax = i
			distMax = d
		}
	}
	return idxMax
}

// Index of the lexicographically smallest point. First occurrence wins on
// exact duplicates.
func leftmostIndex(points []Point) int {
	idx := 0
	for i := 1; i < len(points); i++ {
		if IsLeftOf(points[i], points[idx]) {
			idx = i
		}
	}
	return idx
}

func rightmostIndex(points []Point) int {
	idx := 0
	for i := 1; i < len(points); i++ {
		if IsLeftOf(points[idx], points[i]) {
			idx = i
		}
	}
	return idx
}

func clonePoints(points []Point) []Point {
	v := make([]Point, len(points))
	copy(v, points)
	return v
}
