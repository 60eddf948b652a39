package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/geom/delaunay"
	"github.com/osuushi/geom/earclip"
	"github.com/osuushi/geom/hull"
)

// Demo of the geometry toolkit. Input on stdin should be newline separated
// points in the form "x y". The chosen algorithm runs over the whole point
// set: "hull" treats it as a point cloud, while "earclip" treats it as the
// vertices of a simple polygon in order. The result is rendered to a PNG,
// and optionally catted straight to the terminal.

var (
	algorithm = kingpin.Arg("algorithm", "One of hull, delaunay, earclip.").Required().Enum("hull", "delaunay", "earclip")
	out       = kingpin.Flag("out", "Output PNG path.").Short('o').Default("/tmp/geomview.png").String()
	scale     = kingpin.Flag("scale", "Pixels per input unit.").Default("10").Float64()
	cat       = kingpin.Flag("cat", "Cat the rendered PNG to the terminal.").Bool()
	trim      = kingpin.Flag("trim", "Trim delaunay triangles outside the polygon outline.").Bool()
)

func main() {
	kingpin.Parse()

	points := readPoints(os.Stdin)
	fmt.Printf("Read %s points\n", aurora.Cyan(strconv.Itoa(len(points)/2)))

	var triangles []int
	var polygon []float64
	var err error
	switch *algorithm {
	case "hull":
		polygon, err = hull.New().Polygon(points, 0, len(points), false)
	case "delaunay":
		t := delaunay.New()
		triangles, err = t.ComputeTriangles(points, 0, len(points), false)
		if err == nil && *trim {
			triangles = t.Trim(triangles, points, points, 0, len(points))
		}
	case "earclip":
		triangles, err = earclip.New().ComputeTriangles(points, 0, len(points))
	}
	if err != nil {
		log.Fatal(aurora.Red(err))
	}

	if polygon != nil {
		fmt.Printf("Hull has %s points\n", aurora.Green(strconv.Itoa(len(polygon)/2-1)))
	} else {
		fmt.Printf("Produced %s triangles\n", aurora.Green(strconv.Itoa(len(triangles)/3)))
	}

	render(points, polygon, triangles, *scale, *out)
	fmt.Printf("Wrote %s\n", aurora.Yellow(*out))
	if *cat {
		imgcat.CatFile(*out, os.Stdout)
	}
}

func readPoints(in *os.File) []float64 {
	var points []float64
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			log.Fatalf("Invalid point line %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", parts[1], err)
		}
		points = append(points, x, y)
	}
	return points
}

const renderPadding = 20

func render(points, polygon []float64, triangles []int, scale float64, path string) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < len(points); i += 2 {
		minX = math.Min(minX, points[i])
		minY = math.Min(minY, points[i+1])
		maxX = math.Max(maxX, points[i])
		maxY = math.Max(maxY, points[i+1])
	}

	width := int(scale*(maxX-minX)) + renderPadding*2
	height := int(scale*(maxY-minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	if polygon != nil {
		c.MoveTo(polygon[0], polygon[1])
		for i := 2; i < len(polygon); i += 2 {
			c.LineTo(polygon[i], polygon[i+1])
		}
	} else {
		for i := 0; i+2 < len(triangles); i += 3 {
			p1, p2, p3 := triangles[i]*2, triangles[i+1]*2, triangles[i+2]*2
			c.MoveTo(points[p1], points[p1+1])
			c.LineTo(points[p2], points[p2+1])
			c.LineTo(points[p3], points[p3+1])
			c.ClosePath()
		}
	}
	c.Stroke()

	c.SetRGB(1, 0.5, 0)
	for i := 0; i < len(points); i += 2 {
		c.DrawCircle(points[i], points[i+1], 2/scale)
	}
	c.Fill()

	if err := c.SavePNG(path); err != nil {
		log.Fatalf("Could not write %q: %v", path, err)
	}
}
