package hull

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// Render a point set and its hull polygon to a PNG and cat it to the
// terminal.
func dbgDraw(points, polygon []float64, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < len(points); i += 2 {
		minX = math.Min(minX, points[i])
		minY = math.Min(minY, points[i+1])
		maxX = math.Max(maxX, points[i])
		maxY = math.Max(maxY, points[i+1])
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.MoveTo(polygon[0], polygon[1])
	for i := 2; i < len(polygon); i += 2 {
		c.LineTo(polygon[i], polygon[i+1])
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 0.5, 0)
	for i := 0; i < len(points); i += 2 {
		c.DrawCircle(points[i], points[i+1], 2/scale)
	}
	c.Fill()

	c.SavePNG("/tmp/hull.png")
	imgcat.CatFile("/tmp/hull.png", os.Stdout)
}
