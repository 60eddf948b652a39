package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/geom"
)

func pt(x, y float64) geom.Point {
	return geom.Point{X: x, Y: y}
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := pt(0, 0), pt(4, 0), pt(0, 4)

	assert.True(t, PointInTriangle(pt(1, 1), a, b, c))
	assert.False(t, PointInTriangle(pt(3, 3), a, b, c))
	assert.False(t, PointInTriangle(pt(-1, 1), a, b, c))

	// Winding should not matter
	assert.True(t, PointInTriangle(pt(1, 1), a, c, b))
	assert.False(t, PointInTriangle(pt(3, 3), a, c, b))

	// Just inside an edge
	assert.True(t, PointInTriangle(pt(2, 1e-9), a, b, c))
}

func TestPointInPolygon(t *testing.T) {
	square := []float64{0, 0, 10, 0, 10, 10, 0, 10}
	assert.True(t, PointInPolygon(square, 0, len(square), 5, 5))
	assert.False(t, PointInPolygon(square, 0, len(square), 15, 5))
	assert.False(t, PointInPolygon(square, 0, len(square), 5, -1))

	// Concave: a U shape, the pocket between the prongs is outside
	u := []float64{0, 0, 6, 0, 6, 6, 4, 6, 4, 2, 2, 2, 2, 6, 0, 6}
	assert.True(t, PointInPolygon(u, 0, len(u), 1, 5))
	assert.True(t, PointInPolygon(u, 0, len(u), 5, 5))
	assert.True(t, PointInPolygon(u, 0, len(u), 3, 1))
	assert.False(t, PointInPolygon(u, 0, len(u), 3, 4))
}

func TestPointInPolygonWithOffset(t *testing.T) {
	padded := []float64{-1, -1, 0, 0, 10, 0, 10, 10, 0, 10, -1, -1}
	assert.True(t, PointInPolygon(padded, 2, 8, 5, 5))
	assert.False(t, PointInPolygon(padded, 2, 8, 11, 5))
}

func TestSegments(t *testing.T) {
	p, ok := Segments(0, 0, 2, 2, 0, 2, 2, 0)
	require.True(t, ok)
	assert.InDelta(t, 1, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)

	// Lines cross, but beyond the segment extents
	_, ok = Segments(0, 0, 1, 1, 3, 0, 0, 3)
	assert.False(t, ok)

	// Parallel, even overlapping, never intersects
	_, ok = Segments(0, 0, 2, 0, 1, 0, 3, 0)
	assert.False(t, ok)

	// Touching at an endpoint counts
	p, ok = Segments(0, 0, 1, 1, 1, 1, 2, 0)
	require.True(t, ok)
	assert.InDelta(t, 1, p.X, 1e-9)
	assert.InDelta(t, 1, p.Y, 1e-9)
}

func TestLines(t *testing.T) {
	// Same lines as the out-of-extent segment case above; as infinite lines
	// they do cross.
	p, ok := Lines(0, 0, 1, 1, 3, 0, 0, 3)
	require.True(t, ok)
	assert.InDelta(t, 1.5, p.X, 1e-9)
	assert.InDelta(t, 1.5, p.Y, 1e-9)

	_, ok = Lines(0, 0, 1, 0, 0, 1, 1, 1)
	assert.False(t, ok)
}

func TestPolygonsOverlap(t *testing.T) {
	square := []float64{0, 0, 4, 0, 4, 4, 0, 4}
	shifted := []float64{2, 2, 6, 2, 6, 6, 2, 6}
	faraway := []float64{10, 10, 12, 10, 12, 12, 10, 12}
	inner := []float64{1, 1, 3, 1, 3, 3, 1, 3}

	assert.True(t, PolygonsOverlap(square, shifted))
	assert.True(t, PolygonsOverlap(shifted, square))
	assert.False(t, PolygonsOverlap(square, faraway))

	// Full containment: no edges cross, only the vertex test can see it
	assert.True(t, PolygonsOverlap(square, inner))
	assert.True(t, PolygonsOverlap(inner, square))

	// A plus sign: the horizontal and vertical bars cross without either
	// containing a vertex of the other.
	hbar := []float64{0, 2, 6, 2, 6, 4, 0, 4}
	vbar := []float64{2, 0, 4, 0, 4, 6, 2, 6}
	assert.True(t, PolygonsOverlap(hbar, vbar))

	assert.False(t, PolygonsOverlap(nil, square))
	assert.False(t, PolygonsOverlap(square, nil))
}

func TestPolygonEdges(t *testing.T) {
	square := []float64{0, 0, 4, 0, 4, 4, 0, 4}
	inner := []float64{1, 1, 3, 1, 3, 3, 1, 3}
	shifted := []float64{2, 2, 6, 2, 6, 6, 2, 6}

	assert.True(t, PolygonEdges(square, shifted))
	// Containment has no edge crossings
	assert.False(t, PolygonEdges(square, inner))
}

func TestNearestSegmentPoint(t *testing.T) {
	start, end := pt(0, 0), pt(10, 0)

	assert.Equal(t, pt(5, 0), NearestSegmentPoint(start, end, pt(5, 3)))
	// Clamped to the endpoints beyond the extents
	assert.Equal(t, pt(0, 0), NearestSegmentPoint(start, end, pt(-4, 2)))
	assert.Equal(t, pt(10, 0), NearestSegmentPoint(start, end, pt(14, -2)))
	// Zero-length segment
	assert.Equal(t, pt(3, 3), NearestSegmentPoint(pt(3, 3), pt(3, 3), pt(7, 9)))
}

func TestDistanceSegmentPoint(t *testing.T) {
	start, end := pt(0, 0), pt(10, 0)

	assert.InDelta(t, 3, DistanceSegmentPoint(start, end, pt(5, 3)), 1e-9)
	assert.InDelta(t, 5, DistanceSegmentPoint(start, end, pt(13, 4)), 1e-9)
	assert.InDelta(t, 5, DistanceSegmentPoint(pt(2, 2), pt(2, 2), pt(5, 6)), 1e-9)
	assert.InDelta(t, 0, DistanceSegmentPoint(start, end, pt(4, 0)), 1e-9)
}
