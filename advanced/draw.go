package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 20

// Draw renders a point set and its hull to a PNG. Input points are dots,
// hull vertices are larger dots, and the hull boundary is stroked as a
// closed polygon. Scale is pixels per input unit.
func Draw(points, hull []Point, scale float64, path string) error {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetRGB(0.6, 0.6, 0.6)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	if len(hull) > 0 {
		c.SetLineWidth(2)
		c.MoveTo(hull[0].X, hull[0].Y)
		for _, p := range hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 1, 1)
		c.Stroke()

		c.SetRGB(0, 1, 0)
		for _, p := range hull {
			c.DrawCircle(p.X, p.Y, 4/scale)
			c.Fill()
		}
	}

	return c.SavePNG(path)
}

// DrawToTerminal renders like Draw, then cats the image straight to the
// terminal. Mostly useful for eyeballing a hull while debugging.
func DrawToTerminal(points, hull []Point, scale float64) error {
	path := "/tmp/hull.png"
	if err := Draw(points, hull, scale, path); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
