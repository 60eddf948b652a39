// Package intersect is a stateless library of 2D and 3D intersection and
// overlap predicates.
//
// Every function is pure: it takes explicit geometric inputs, returns a
// boolean "did intersect" (plus the computed point or vector where there is
// one), and keeps no state between calls, so the package is safe to use from
// any number of goroutines. Polygons are flat []float64 slices of interleaved
// (x, y) pairs.
package intersect

import "github.com/osuushi/geom"

// PointInTriangle reports whether p lies inside the triangle (a, b, c). The
// test checks that p is on the same side of all three edges, so it works for
// either winding. Points exactly on an edge may report either way; don't rely
// on boundary behavior.
func PointInTriangle(p, a, b, c geom.Point) bool {
	px1 := p.X - a.X
	py1 := p.Y - a.Y
	side12 := (b.X-a.X)*py1-(b.Y-a.Y)*px1 > 0
	if (c.X-a.X)*py1-(c.Y-a.Y)*px1 > 0 == side12 {
		return false
	}
	if (c.X-b.X)*(p.Y-b.Y)-(c.Y-b.Y)*(p.X-b.X) > 0 != side12 {
		return false
	}
	return true
}

// PointInPolygon reports whether (x, y) is inside the polygon by the even-odd
// rule, reading count floats starting at offset as interleaved (x, y) pairs.
// The polygon may be concave. It need not be closed; the last point connects
// back to the first (an explicitly repeated first point is harmless, since
// the zero-length edge never crosses the scanline).
func PointInPolygon(polygon []float64, offset, count int, x, y float64) bool {
	oddNodes := false
	end := offset + count
	j := end - 2
	for i := offset; i < end; i += 2 {
		yi := polygon[i+1]
		yj := polygon[j+1]
		if (yi < y && yj >= y) || (yj < y && yi >= y) {
			xi := polygon[i]
			if xi+(y-yi)/(yj-yi)*(polygon[j]-xi) < x {
				oddNodes = !oddNodes
			}
		}
		j = i
	}
	return oddNodes
}

// Segments intersects the segment (x1, y1)-(x2, y2) with (x3, y3)-(x4, y4).
// Parallel segments never intersect, even when they overlap.
func Segments(x1, y1, x2, y2, x3, y3, x4, y4 float64) (geom.Point, bool) {
	d := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if d == 0 {
		return geom.Point{}, false
	}
	yd := y1 - y3
	xd := x1 - x3
	ua := ((x4-x3)*yd - (y4-y3)*xd) / d
	if ua < 0 || ua > 1 {
		return geom.Point{}, false
	}
	ub := ((x2-x1)*yd - (y2-y1)*xd) / d
	if ub < 0 || ub > 1 {
		return geom.Point{}, false
	}
	return geom.Point{X: x1 + (x2-x1)*ua, Y: y1 + (y2-y1)*ua}, true
}

// Lines intersects the infinite lines through (x1, y1)-(x2, y2) and
// (x3, y3)-(x4, y4).
func Lines(x1, y1, x2, y2, x3, y3, x4, y4 float64) (geom.Point, bool) {
	d := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if d == 0 {
		return geom.Point{}, false
	}
	ua := ((x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)) / d
	return geom.Point{X: x1 + (x2-x1)*ua, Y: y1 + (y2-y1)*ua}, true
}

// PolygonsOverlap reports whether the two polygons overlap at all. Either
// polygon containing a vertex of the other implies overlap, which is checked
// first because it is cheap; only then does the test fall back to exhaustive
// edge-pair intersection. The polygons may be concave.
func PolygonsOverlap(p1, p2 []float64) bool {
	if len(p1) == 0 || len(p2) == 0 {
		return false
	}
	if PointInPolygon(p1, 0, len(p1), p2[0], p2[1]) ||
		PointInPolygon(p2, 0, len(p2), p1[0], p1[1]) {
		return true
	}
	return PolygonEdges(p1, p2)
}

// PolygonEdges reports whether any edge of p1 intersects any edge of p2.
func PolygonEdges(p1, p2 []float64) bool {
	last1 := len(p1) - 2
	last2 := len(p2) - 2
	x1, y1 := p1[last1], p1[last1+1]
	for i := 0; i <= last1; i += 2 {
		x2, y2 := p1[i], p1[i+1]
		x3, y3 := p2[last2], p2[last2+1]
		for j := 0; j <= last2; j += 2 {
			x4, y4 := p2[j], p2[j+1]
			if _, ok := Segments(x1, y1, x2, y2, x3, y3, x4, y4); ok {
				return true
			}
			x3, y3 = x4, y4
		}
		x1, y1 = x2, y2
	}
	return false
}

// NearestSegmentPoint returns the point on the segment start-end closest to
// point. A zero-length segment yields its single point.
func NearestSegmentPoint(start, end, point geom.Point) geom.Point {
	length2 := start.Dist2(end)
	if length2 == 0 {
		return start
	}
	t := point.Sub(start).Dot(end.Sub(start)) / length2
	if t < 0 {
		return start
	}
	if t > 1 {
		return end
	}
	return start.Add(end.Sub(start).Scale(t))
}

// DistanceSegmentPoint returns the distance from point to the segment
// start-end.
func DistanceSegmentPoint(start, end, point geom.Point) float64 {
	return NearestSegmentPoint(start, end, point).Dist(point)
}

// pointLineSide returns which side of the directed line p1->p2 the point is
// on: 1 for left, -1 for right, 0 for on the line.
func pointLineSide(x1, y1, x2, y2, px, py float64) int {
	side := (x2-x1)*(py-y1) - (y2-y1)*(px-x1)
	switch {
	case side > 0:
		return 1
	case side < 0:
		return -1
	}
	return 0
}
