package advanced

// QuickHull computes the convex hull by repeatedly finding the point
// farthest from a dividing segment and partitioning the remaining points
// against the two new segments, quicksort style.
// https://en.wikipedia.org/wiki/Quickhull
//
// The hull comes back in counterclockwise order starting from the
// lexicographically smallest point. Expected O(n log n), worst case O(n²)
// on adversarial distributions. The partition recursion is run off an
// explicit task stack rather than the call stack, so a pathological input
// costs heap, not stack frames. The input is read but never reordered.
//
// Behavior is undefined for fewer than 3 points or all-collinear input.
func QuickHull(points []Point) []Point {
	a := points[leftmostIndex(points)]
	b := points[rightmostIndex(points)]

	// Split the points on either side of segment (a, b). Points exactly
	// on the line are interior (a and b are the lexicographic extremes)
	// and are dropped here.
	var lower, upper []Point
	for _, p := range points {
		switch o := Orientation(a, b, p); {
		case o < 0:
			lower = append(lower, p)
		case o > 0:
			upper = append(upper, p)
		}
	}

	// Counterclockwise from a means walking the lower side out to b, then
	// the upper side back. Tasks pop in emission order, so each group is
	// pushed in reverse.
	hull := []Point{}
	var tasks quickHullTaskStack
	tasks.push(&quickHullTask{subset: upper, p: b, q: a})
	tasks.push(&quickHullTask{vertex: b, emit: true})
	tasks.push(&quickHullTask{subset: lower, p: a, q: b})
	tasks.push(&quickHullTask{vertex: a, emit: true})

	for len(tasks) > 0 {
		task := tasks.pop()
		if task.emit {
			hull = append(hull, task.vertex)
			continue
		}
		if len(task.subset) == 0 {
			continue
		}

		f := task.subset[FarthestPointIndex(task.p, task.q, task.subset)]
		task.trace(f)

		// Everything right of (p, f) belongs to the subhull before f, and
		// everything right of (f, q) to the subhull after it. Pushed in
		// reverse so the (p, f) half pops first.
		tasks.push(&quickHullTask{subset: pointsRightOf(f, task.q, task.subset), p: f, q: task.q})
		tasks.push(&quickHullTask{vertex: f, emit: true})
		tasks.push(&quickHullTask{subset: pointsRightOf(task.p, f, task.subset), p: task.p, q: f})
	}

	return hull
}

// A pending unit of quickhull work: either emit a known hull vertex, or
// find the hull vertices strictly between p and q among subset, which holds
// only points clockwise of segment (p, q).
type quickHullTask struct {
	subset []Point
	p, q   Point
	vertex Point
	emit   bool
}

type quickHullTaskStack []*quickHullTask

func (s *quickHullTaskStack) push(t *quickHullTask) {
	*s = append(*s, t)
}

func (s *quickHullTaskStack) pop() *quickHullTask {
	t := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return t
}

// The points strictly clockwise of segment (p, q).
func pointsRightOf(p, q Point, points []Point) []Point {
	var out []Point
	for _, pt := range points {
		if Orientation(p, q, pt) < 0 {
			out = append(out, pt)
		}
	}
	return out
}
