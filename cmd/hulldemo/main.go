package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/hull"
	"github.com/osuushi/hull/advanced"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the hull algorithms. By default this generates a batch of random
// points and prints the hull each algorithm finds, in the same counterclockwise
// order. Points can also be supplied on stdin as newline separated "x y"
// pairs with --stdin.

var (
	algorithmFlag = kingpin.Flag("algorithm", "Which algorithm to run.").
			Default("all").Enum("all", "giftwrap", "graham", "chain", "quickhull")
	count    = kingpin.Flag("count", "Number of random points to generate.").Default("100").Int()
	lo       = kingpin.Flag("lo", "Lower bound of random coordinates.").Default("-100").Float64()
	hi       = kingpin.Flag("hi", "Upper bound of random coordinates.").Default("100").Float64()
	seed     = kingpin.Flag("seed", "Random seed.").Default("1").Int64()
	useStdin = kingpin.Flag("stdin", "Read points from stdin instead of generating them.").Bool()
	pngPath  = kingpin.Flag("png", "Render the last computed hull to this PNG file.").String()
	show     = kingpin.Flag("show", "Cat the rendered hull to the terminal (iTerm2).").Bool()
	scale    = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("2").Float64()
)

var algorithms = map[string][]hull.Algorithm{
	"all": {
		hull.QuickHullAlgorithm,
		hull.GiftWrappingAlgorithm,
		hull.MonotoneChainAlgorithm,
		hull.GrahamScanAlgorithm,
	},
	"giftwrap":  {hull.GiftWrappingAlgorithm},
	"graham":    {hull.GrahamScanAlgorithm},
	"chain":     {hull.MonotoneChainAlgorithm},
	"quickhull": {hull.QuickHullAlgorithm},
}

func main() {
	kingpin.Parse()

	var points []hull.Point
	if *useStdin {
		points = readPoints(os.Stdin)
	} else {
		points = randomPoints(*count, *lo, *hi, *seed)
	}

	var result []hull.Point
	for i, algorithm := range algorithms[*algorithmFlag] {
		if i > 0 {
			fmt.Println()
		}
		h, err := hull.ConvexHull(points, algorithm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", algorithm, err)
			os.Exit(1)
		}
		fmt.Printf("%s point count: %d\n", aurora.Green(algorithm.String()), len(h))
		printPoints(h)
		result = h
	}

	if *pngPath != "" {
		if err := advanced.Draw(points, result, *scale, *pngPath); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
	}
	if *show {
		if err := advanced.DrawToTerminal(points, result, *scale); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
	}
}

func randomPoints(n int, lo, hi float64, seed int64) []hull.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]hull.Point, n)
	for i := range points {
		points[i] = hull.Point{
			X: lo + rng.Float64()*(hi-lo),
			Y: lo + rng.Float64()*(hi-lo),
		}
	}
	return points
}

func readPoints(in *os.File) []hull.Point {
	points := []hull.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) hull.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Fprintf(os.Stderr, "invalid point line %q\n", line)
		os.Exit(1)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid x value %q: %v\n", parts[0], err)
		os.Exit(1)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid y value %q: %v\n", parts[1], err)
		os.Exit(1)
	}
	return hull.Point{X: x, Y: y}
}

func printPoints(points []hull.Point) {
	for _, p := range points {
		fmt.Printf("%v, %v\n", p.X, p.Y)
	}
}
