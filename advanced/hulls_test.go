package advanced

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every algorithm must produce the identical hull for inputs in general
// position: counterclockwise, starting from the lexicographically smallest
// point. That makes them directly comparable, so most tests run the whole
// table.
var allAlgorithms = map[string]func([]Point) []Point{
	"giftWrapping":  GiftWrapping,
	"grahamScan":    GrahamScan,
	"monotoneChain": MonotoneChain,
	"quickHull":     QuickHull,
}

func randomPoints(n int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: -100 + rng.Float64()*200,
			Y: -100 + rng.Float64()*200,
		}
	}
	return points
}

func TestSquareWithInteriorPoint(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
	expected := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for name, algorithm := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected, algorithm(points))
		})
	}
}

func TestTriangle(t *testing.T) {
	// Given clockwise, so every algorithm has to reorder.
	points := []Point{{0, 0}, {0, 1}, {1, 0}}
	expected := []Point{{0, 0}, {1, 0}, {0, 1}}

	for name, algorithm := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected, algorithm(points))
		})
	}
}

func TestInputIsNotMutated(t *testing.T) {
	points := randomPoints(50, 7)
	original := clonePoints(points)

	for name, algorithm := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			algorithm(points)
			assert.Equal(t, original, points)
		})
	}
}

func TestHullProperties(t *testing.T) {
	points := randomPoints(100, 42)

	for name, algorithm := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			hull := algorithm(points)
			require.GreaterOrEqual(t, len(hull), 3)

			t.Run("strict left turns only", func(t *testing.T) {
				assert.True(t, IsConvexCCW(hull))
			})

			t.Run("every input point is inside or on the hull", func(t *testing.T) {
				for _, p := range points {
					assert.True(t, ContainsPoint(hull, p), "point (%v, %v) outside hull", p.X, p.Y)
				}
			})

			t.Run("hull vertices come from the input", func(t *testing.T) {
				inputs := NewPointSet(points)
				for _, p := range hull {
					assert.True(t, inputs.Has(p))
				}
			})

			t.Run("idempotent on its own output", func(t *testing.T) {
				assert.Equal(t, hull, algorithm(hull))
			})
		})
	}
}

func TestCrossValidation(t *testing.T) {
	// All four algorithms must agree exactly on random inputs. This is the
	// regression test of record: no literal expected hull, just unanimity
	// plus the convexity properties checked above.
	for _, seed := range []int64{1, 2, 3, 99} {
		points := randomPoints(100, seed)
		expected := QuickHull(points)

		for name, algorithm := range allAlgorithms {
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, expected, algorithm(points))
			})
		}
	}
}

func TestFixtures(t *testing.T) {
	t.Run("star", func(t *testing.T) {
		// A five pointed star: the hull is the five outer vertices, the
		// pentagon, with all inner vertices discarded.
		points := LoadFixture("star")
		require.Len(t, points, 10)

		expected := []Point{
			{14.4049, 127.8115},
			{47.0993, 27.1885},
			{152.9007, 27.1885},
			{185.5951, 127.8115},
			{100, 190},
		}
		for name, algorithm := range allAlgorithms {
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, expected, algorithm(points))
			})
		}
	})

	t.Run("pinwheel", func(t *testing.T) {
		// Concave octagon whose hull is its four extreme corners.
		points := LoadFixture("pinwheel")
		require.Len(t, points, 8)

		expected := []Point{{0, 0}, {8, 0}, {8, 8}, {0, 8}}
		for name, algorithm := range allAlgorithms {
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, expected, algorithm(points))
			})
		}
	})
}

func TestLeftmostTieBreak(t *testing.T) {
	// Two points share the minimum x; the lexicographic tie break on y
	// picks the lower one as the starting vertex.
	points := []Point{{0, 5}, {3, 6}, {0, 1}, {4, 0}, {2, 3}}

	for name, algorithm := range allAlgorithms {
		t.Run(name, func(t *testing.T) {
			hull := algorithm(points)
			require.NotEmpty(t, hull)
			assert.Equal(t, Point{0, 1}, hull[0])
		})
	}
}

func TestConcurrentCalls(t *testing.T) {
	// No shared state: concurrent invocations on independent inputs need
	// no synchronization.
	var wg sync.WaitGroup
	for seed := int64(0); seed < 8; seed++ {
		for _, algorithm := range allAlgorithms {
			wg.Add(1)
			go func(algorithm func([]Point) []Point, seed int64) {
				defer wg.Done()
				points := randomPoints(50, seed)
				hull := algorithm(points)
				assert.True(t, IsConvexCCW(hull))
			}(algorithm, seed)
		}
	}
	wg.Wait()
}
