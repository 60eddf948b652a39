package geom

import (
	"math"

	"github.com/pkg/errors"
)

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, predicates like the circumcircle test end up
// flipping on coordinates that are equal for any practical purpose.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Signed area of a polygon given as interleaved (x, y) coordinates. Positive
// for counterclockwise winding, negative for clockwise. count is in floats,
// not points.
func SignedArea(vertices []float64, offset, count int) float64 {
	area := 0.0
	end := offset + count
	for i := offset; i < end; i += 2 {
		x1, y1 := vertices[i], vertices[i+1]
		var x2, y2 float64
		if i+2 < end {
			x2, y2 = vertices[i+2], vertices[i+3]
		} else {
			x2, y2 = vertices[offset], vertices[offset+1]
		}
		area += x1*y2 - x2*y1
	}
	return area / 2
}

func PolygonArea(vertices []float64, offset, count int) float64 {
	return math.Abs(SignedArea(vertices, offset, count))
}

func IsClockwise(vertices []float64, offset, count int) bool {
	return SignedArea(vertices, offset, count) < 0
}

func TriangleArea(x1, y1, x2, y2, x3, y3 float64) float64 {
	return math.Abs((x1-x3)*(y2-y1)-(x1-x2)*(y3-y1)) / 2
}

func TriangleCentroid(x1, y1, x2, y2, x3, y3 float64) Point {
	return Point{(x1 + x2 + x3) / 3, (y1 + y2 + y3) / 3}
}

// Centroid of a simple polygon. Degenerate (zero area) polygons yield the
// average of the vertices instead, since the area-weighted formula would
// divide by zero.
func PolygonCentroid(vertices []float64, offset, count int) Point {
	area := SignedArea(vertices, offset, count)
	end := offset + count
	if Equal(area, 0) {
		var c Point
		for i := offset; i < end; i += 2 {
			c.X += vertices[i]
			c.Y += vertices[i+1]
		}
		n := float64(count / 2)
		return Point{c.X / n, c.Y / n}
	}

	var cx, cy float64
	for i := offset; i < end; i += 2 {
		x1, y1 := vertices[i], vertices[i+1]
		var x2, y2 float64
		if i+2 < end {
			x2, y2 = vertices[i+2], vertices[i+3]
		} else {
			x2, y2 = vertices[offset], vertices[offset+1]
		}
		cross := x1*y2 - x2*y1
		cx += (x1 + x2) * cross
		cy += (y1 + y2) * cross
	}
	f := 1 / (6 * area)
	return Point{cx * f, cy * f}
}

// Center of the circle passing through the three points. Collinear points
// have no circumcenter, so we reject them explicitly rather than handing back
// a NaN point.
func Circumcenter(a, b, c Point) (Point, error) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * ab.Cross(ac)
	if Equal(d, 0) {
		return Point{}, errors.Errorf("no circumcenter for collinear points %v, %v, %v", a, b, c)
	}
	abLen2 := ab.Len2()
	acLen2 := ac.Len2()
	ux := (ac.Y*abLen2 - ab.Y*acLen2) / d
	uy := (ab.X*acLen2 - ac.X*abLen2) / d
	return Point{a.X + ux, a.Y + uy}, nil
}

func Circumradius(a, b, c Point) (float64, error) {
	center, err := Circumcenter(a, b, c)
	if err != nil {
		return 0, err
	}
	return center.Dist(a), nil
}
