package earclip

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs flat coordinate buffers.
// This is not a full (or even correct) svg handler. It parses the SVG and
// then finds whatever the first polygon is, then converts that into a flat
// (x, y) buffer. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) []float64 {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	var vertices []float64
	for _, pair := range strings.Fields(pointString) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		vertices = append(vertices, x, y)
	}
	return vertices
}
