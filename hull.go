// Convex hulls of 2D point sets, four ways.
//
// This package offers four classic convex hull algorithms behind one
// validated API: gift wrapping, Graham scan, monotone chain, and quickhull.
// All four return the same hull for any point set in general position (no
// duplicate points, no three collinear points): the hull vertices in
// counterclockwise order, starting from the lexicographically smallest
// point. They differ only in running time and constant factors.
//
// Inputs with duplicate or collinear points are tolerated but not
// guaranteed consistent results across algorithms; all-collinear inputs
// are a documented limitation with undefined output. Coordinates are plain
// float64s with no epsilon handling, so near-degenerate inputs inherit the
// usual floating point fragility. Callers who want the unchecked entry
// points can use the advanced package directly.
package hull

import (
	"math"

	"github.com/osuushi/hull/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point

// Algorithm selects one of the four hull implementations.
type Algorithm int

const (
	// GiftWrappingAlgorithm wraps the point set one hull edge at a time.
	// O(n*h) for h hull vertices.
	GiftWrappingAlgorithm Algorithm = iota
	// GrahamScanAlgorithm sorts by angle about the leftmost point and
	// sweeps a stack. O(n log n).
	GrahamScanAlgorithm
	// MonotoneChainAlgorithm sorts lexicographically and builds the lower
	// and upper chains. O(n log n).
	MonotoneChainAlgorithm
	// QuickHullAlgorithm partitions against farthest points, quicksort
	// style. Expected O(n log n), worst case O(n²).
	QuickHullAlgorithm
)

func (a Algorithm) String() string {
	switch a {
	case GiftWrappingAlgorithm:
		return "giftWrapping"
	case GrahamScanAlgorithm:
		return "grahamScan"
	case MonotoneChainAlgorithm:
		return "monotoneChain"
	case QuickHullAlgorithm:
		return "quickHull"
	}
	return "unknown"
}

// ConvexHull computes the convex hull of points with the chosen algorithm.
// The input must hold at least 3 points with finite coordinates; it is
// never modified, and the returned slice is freshly allocated.
func ConvexHull(points []Point, algorithm Algorithm) ([]Point, error) {
	switch algorithm {
	case GiftWrappingAlgorithm:
		return GiftWrapping(points)
	case GrahamScanAlgorithm:
		return GrahamScan(points)
	case MonotoneChainAlgorithm:
		return MonotoneChain(points)
	case QuickHullAlgorithm:
		return QuickHull(points)
	}
	return nil, errors.Errorf("unknown algorithm %d", algorithm)
}

// GiftWrapping computes the convex hull with the gift wrapping algorithm.
func GiftWrapping(points []Point) ([]Point, error) {
	return run(advanced.GiftWrapping, points)
}

// GrahamScan computes the convex hull with the Graham scan algorithm.
func GrahamScan(points []Point) ([]Point, error) {
	return run(advanced.GrahamScan, points)
}

// MonotoneChain computes the convex hull with Andrew's monotone chain
// algorithm.
func MonotoneChain(points []Point) ([]Point, error) {
	return run(advanced.MonotoneChain, points)
}

// QuickHull computes the convex hull with the quickhull algorithm.
func QuickHull(points []Point) ([]Point, error) {
	return run(advanced.QuickHull, points)
}

func run(algorithm func([]Point) []Point, points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	return algorithm(points), nil
}

// The advanced algorithms leave behavior on too-few points and non-finite
// coordinates undefined. This boundary rejects both up front.
func validatePoints(points []Point) error {
	if len(points) < 3 {
		return errors.Errorf("convex hull requires at least 3 points, got %d", len(points))
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return errors.Errorf("point %d has non-finite coordinates (%v, %v)", i, p.X, p.Y)
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
