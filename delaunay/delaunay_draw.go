package delaunay

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/geom/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// Render a triangulation to a PNG and cat it to the terminal. points and
// triangles are in the format ComputeTriangles takes and returns.
func dbgDraw(points []float64, triangles []int, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < len(points); i += 2 {
		minX = math.Min(minX, points[i])
		minY = math.Min(minY, points[i+1])
		maxX = math.Max(maxX, points[i])
		maxY = math.Max(maxY, points[i+1])
	}

	// Set up the context
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

	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	for i := 0; i+2 < len(triangles); i += 3 {
		p1, p2, p3 := triangles[i]*2, triangles[i+1]*2, triangles[i+2]*2
		c.MoveTo(points[p1], points[p1+1])
		c.LineTo(points[p2], points[p2+1])
		c.LineTo(points[p3], points[p3+1])
		c.ClosePath()
	}
	c.Stroke()

	c.SetRGB(1, 0.5, 0)
	for i := 0; i < len(points); i += 2 {
		c.DrawCircle(points[i], points[i+1], 2/scale)
	}
	c.Fill()

	c.SavePNG("/tmp/delaunay.png")
	imgcat.CatFile("/tmp/delaunay.png", os.Stdout)
}

// Dump the in-flight triangle list, coloring each triangle by whether the
// sweep has settled it. Super triangle vertices show up as indices at or
// past the end of the point range.
func (t *Triangulator) dbgDump() {
	for i := 0; i+2 < len(t.triangles); i += 3 {
		name := dbg.Name(i / 3)
		if t.settled[i/3] {
			name = aurora.Green(name).String()
		} else {
			name = aurora.Cyan(name).String()
		}
		fmt.Printf("%s: (%d %d %d)\n", name, t.triangles[i], t.triangles[i+1], t.triangles[i+2])
	}
}
