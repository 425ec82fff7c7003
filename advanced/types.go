package advanced

// Point is a location in the plane. Points are plain values: they are
// compared and copied by value, and none of the algorithms in this package
// ever mutates a point it was given. This keeps every entry point safe to
// call concurrently on independent inputs.
type Point struct {
	X float64
	Y float64
}

type PointStack []Point

// PointSet is a set of points keyed by coordinate value. Two points with
// equal coordinates are the same member.
type PointSet map[Point]struct{}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop assumes a non-empty stack.
func (s *PointStack) Pop() Point {
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

// Peek assumes a non-empty stack.
func (s *PointStack) Peek() Point {
	return (*s)[len(*s)-1]
}

// PeekBelowTop returns the point just below the top of the stack. It assumes
// the stack holds at least two points.
func (s *PointStack) PeekBelowTop() Point {
	return (*s)[len(*s)-2]
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func NewPointSet(points []Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return set
}

func (set PointSet) Has(p Point) bool {
	_, ok := set[p]
	return ok
}
