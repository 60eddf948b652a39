// Package delaunay computes Delaunay triangulations of 2D point sets by
// incremental insertion.
//
// The algorithm seeds a "super triangle" comfortably containing every input
// point, then inserts points in x order. Each insertion destroys the
// triangles whose circumcircle contains the new point, collects their edges,
// cancels the interior (duplicated) edges, and fans new triangles from the
// remaining boundary edges to the inserted point. Because insertion sweeps
// left to right, a triangle whose circumcircle lies entirely left of the
// sweep can never be invalidated again; such triangles are marked complete
// and skipped for the rest of the run, which is what keeps the incremental
// approach fast.
//
// Emitted triangles wind clockwise (negative signed area).
package delaunay

import (
	"github.com/pkg/errors"

	"github.com/osuushi/geom"
	"github.com/osuushi/geom/internal/psort"
	"github.com/osuushi/geom/intersect"
)

// DefaultMaxPoints is the default ceiling on the number of input points. It
// matches a 16-bit signed index type, which is what callers feeding GPU
// index buffers typically need the output to fit in.
const DefaultMaxPoints = 32767

// Circumcircle classification of a point against a triangle.
const (
	incomplete = iota // Point outside, triangle may still be invalidated later.
	complete          // Circumcircle entirely left of the point; triangle is settled.
	inside            // Point inside the circumcircle; triangle must be destroyed.
)

// Triangulator holds the scratch state for triangulation. The zero value is
// ready to use. An instance is not safe for concurrent use, and the slice
// returned by ComputeTriangles is overwritten by the next call.
type Triangulator struct {
	// MaxPoints caps the number of input points; ComputeTriangles fails fast
	// when the cap is exceeded. Zero means DefaultMaxPoints. Raise it only if
	// the consumer of the returned indices can represent values that large.
	MaxPoints int

	sortedPoints    []float64
	originalIndices []int
	triangles       []int
	edges           []int
	settled         []bool
	superTriangle   [6]float64
}

func New() *Triangulator {
	return &Triangulator{}
}

// ComputeTriangles triangulates the points in the given slice, reading count
// floats starting at offset as interleaved (x, y) pairs. Pass sorted as true
// if the pairs are already ordered by x; otherwise the points are copied to
// scratch and sorted first, leaving the input untouched, and the returned
// indices are mapped back to the caller's original order.
//
// Triangles are returned as a flat list of indices, three per triangle.
// Indices count points (not floats) from the start of the range, so every
// index is less than count/2. Fewer than 3 points yields an empty list.
func (t *Triangulator) ComputeTriangles(points []float64, offset, count int, sorted bool) ([]int, error) {
	if count%2 != 0 {
		return nil, errors.Errorf("delaunay: count must be even, got %d", count)
	}
	maxPoints := t.MaxPoints
	if maxPoints == 0 {
		maxPoints = DefaultMaxPoints
	}
	if count/2 > maxPoints {
		return nil, errors.Errorf("delaunay: point count %d exceeds maximum %d", count/2, maxPoints)
	}

	t.triangles = t.triangles[:0]
	if count < 6 {
		return t.triangles, nil
	}

	if !sorted {
		if cap(t.sortedPoints) < count {
			t.sortedPoints = make([]float64, count)
		}
		t.sortedPoints = t.sortedPoints[:count]
		copy(t.sortedPoints, points[offset:offset+count])

		if cap(t.originalIndices) < count/2 {
			t.originalIndices = make([]int, count/2)
		}
		t.originalIndices = t.originalIndices[:count/2]
		for i := range t.originalIndices {
			t.originalIndices[i] = i
		}

		points = t.sortedPoints
		offset = 0
		psort.Pairs(points[:count], t.originalIndices)
	}
	end := offset + count

	// Bounds for the super triangle, sized at 20x the larger extent so that
	// its edges stay well clear of every circumcircle built from the input.
	xmin, ymin := points[offset], points[offset+1]
	xmax, ymax := xmin, ymin
	for i := offset + 2; i < end; i += 2 {
		if points[i] < xmin {
			xmin = points[i]
		}
		if points[i] > xmax {
			xmax = points[i]
		}
		if points[i+1] < ymin {
			ymin = points[i+1]
		}
		if points[i+1] > ymax {
			ymax = points[i+1]
		}
	}
	dmax := xmax - xmin
	if ymax-ymin > dmax {
		dmax = ymax - ymin
	}
	dmax *= 20
	xmid, ymid := (xmax+xmin)/2, (ymax+ymin)/2

	// Super triangle vertices are addressed by float indices at and beyond
	// end, which keeps the triangle list homogeneous: an index below end is a
	// real point, anything else is a super vertex.
	t.superTriangle = [6]float64{
		xmid - dmax, ymid - dmax,
		xmid, ymid + dmax,
		xmid + dmax, ymid - dmax,
	}
	t.triangles = append(t.triangles, end, end+2, end+4)
	t.settled = append(t.settled[:0], false)

	for pointIndex := offset; pointIndex < end; pointIndex += 2 {
		x, y := points[pointIndex], points[pointIndex+1]

		// Destroy every triangle whose circumcircle contains the new point,
		// collecting its edges. Iterating backwards keeps the removal splices
		// from disturbing the part of the list we haven't visited yet.
		edges := t.edges[:0]
		for triangleIndex := len(t.triangles) - 1; triangleIndex >= 2; triangleIndex -= 3 {
			settledIndex := triangleIndex / 3
			if t.settled[settledIndex] {
				continue
			}
			p1 := t.triangles[triangleIndex-2]
			p2 := t.triangles[triangleIndex-1]
			p3 := t.triangles[triangleIndex]
			x1, y1 := t.pointAt(points, end, p1)
			x2, y2 := t.pointAt(points, end, p2)
			x3, y3 := t.pointAt(points, end, p3)
			switch circumCircle(x, y, x1, y1, x2, y2, x3, y3) {
			case complete:
				t.settled[settledIndex] = true
			case inside:
				edges = append(edges, p1, p2, p2, p3, p3, p1)
				t.triangles = append(t.triangles[:triangleIndex-2], t.triangles[triangleIndex+1:]...)
				t.settled = append(t.settled[:settledIndex], t.settled[settledIndex+1:]...)
			}
		}

		// An edge shared by two destroyed triangles is interior to the cavity
		// and must not seed a new triangle. All triangles wind the same way,
		// so interior duplicates show up with opposite direction; cancel both.
		for i := 0; i < len(edges); i += 2 {
			edge1A := edges[i]
			if edge1A == -1 {
				continue
			}
			edge1B := edges[i+1]
			for ii := i + 2; ii < len(edges); ii += 2 {
				if edge1A == edges[ii+1] && edge1B == edges[ii] {
					edges[i] = -1
					edges[ii] = -1
					break
				}
			}
		}

		// Fan new triangles from the remaining boundary edges to the point.
		for i := 0; i < len(edges); i += 2 {
			if edges[i] == -1 {
				continue
			}
			t.addTriangle(points, end, edges[i], edges[i+1], pointIndex)
		}
		t.edges = edges[:0]
	}

	// Drop every triangle that still touches a super triangle vertex.
	for i := len(t.triangles) - 1; i >= 2; i -= 3 {
		if t.triangles[i] >= end || t.triangles[i-1] >= end || t.triangles[i-2] >= end {
			t.triangles = append(t.triangles[:i-2], t.triangles[i+1:]...)
		}
	}

	// Convert float indices to point indices relative to the range, undoing
	// the scratch sort if one was performed.
	if !sorted {
		for i, v := range t.triangles {
			t.triangles[i] = t.originalIndices[v/2]
		}
	} else {
		for i, v := range t.triangles {
			t.triangles[i] = (v - offset) / 2
		}
	}

	return t.triangles, nil
}

// Append a triangle, flipping the vertex order if needed so the output winds
// clockwise. Preserving a single winding keeps the interior-edge cancellation
// above sound across insertions.
func (t *Triangulator) addTriangle(points []float64, end, p1, p2, p3 int) {
	x1, y1 := t.pointAt(points, end, p1)
	x2, y2 := t.pointAt(points, end, p2)
	x3, y3 := t.pointAt(points, end, p3)
	if (x2-x1)*(y3-y1)-(y2-y1)*(x3-x1) > 0 {
		p2, p3 = p3, p2
	}
	t.triangles = append(t.triangles, p1, p2, p3)
	t.settled = append(t.settled, false)
}

func (t *Triangulator) pointAt(points []float64, end, index int) (x, y float64) {
	if index >= end {
		return t.superTriangle[index-end], t.superTriangle[index-end+1]
	}
	return points[index], points[index+1]
}

// Trim removes the triangles whose centroid falls outside the given hull
// polygon. The hull may be concave; this is the post-filter for clipping a
// triangulation to a non-convex outline. triangles is the flat index list
// from ComputeTriangles with indices valid into points, hull is the outline
// as count floats of interleaved (x, y) pairs starting at offset. The
// filtered list is returned; it shares storage with the input.
func (t *Triangulator) Trim(triangles []int, points, hull []float64, offset, count int) []int {
	for i := len(triangles) - 1; i >= 2; i -= 3 {
		p1 := triangles[i-2] * 2
		p2 := triangles[i-1] * 2
		p3 := triangles[i] * 2
		centroid := geom.TriangleCentroid(
			points[p1], points[p1+1],
			points[p2], points[p2+1],
			points[p3], points[p3+1])
		if !intersect.PointInPolygon(hull, offset, count, centroid.X, centroid.Y) {
			triangles = append(triangles[:i-2], triangles[i+1:]...)
		}
	}
	return triangles
}

// Classify the point (xp, yp) against the circumcircle of the triangle
// (x1, y1), (x2, y2), (x3, y3).
//
// The circumcenter is the intersection of two perpendicular bisectors. A
// bisector slope blows up when its edge is near horizontal, so there are
// three branch cases: edge 1-2 near horizontal, edge 2-3 near horizontal,
// and the general case. A triangle with both edges near horizontal is
// degenerate and reported incomplete. Points within Tolerance of the circle
// boundary count as inside.
//
// Because points arrive in x order, a point lying right of the circumcircle
// proves that no later point can ever fall inside it; that is the complete
// result, and the caller never needs to test that triangle again.
func circumCircle(xp, yp, x1, y1, x2, y2, x3, y3 float64) int {
	var xc, yc float64
	y1y2 := abs(y1 - y2)
	y2y3 := abs(y2 - y3)
	switch {
	case y1y2 < geom.Tolerance:
		if y2y3 < geom.Tolerance {
			return incomplete
		}
		m2 := -(x3 - x2) / (y3 - y2)
		mx2 := (x2 + x3) / 2
		my2 := (y2 + y3) / 2
		xc = (x2 + x1) / 2
		yc = m2*(xc-mx2) + my2
	case y2y3 < geom.Tolerance:
		m1 := -(x2 - x1) / (y2 - y1)
		mx1 := (x1 + x2) / 2
		my1 := (y1 + y2) / 2
		xc = (x3 + x2) / 2
		yc = m1*(xc-mx1) + my1
	default:
		m1 := -(x2 - x1) / (y2 - y1)
		m2 := -(x3 - x2) / (y3 - y2)
		mx1 := (x1 + x2) / 2
		mx2 := (x2 + x3) / 2
		my1 := (y1 + y2) / 2
		my2 := (y2 + y3) / 2
		xc = (m1*mx1 - m2*mx2 + my2 - my1) / (m1 - m2)
		yc = m1*(xc-mx1) + my1
	}

	dx := x2 - xc
	dy := y2 - yc
	rsqr := dx*dx + dy*dy

	dx = xp - xc
	dx *= dx
	dy = yp - yc
	if dx+dy*dy-rsqr <= geom.Tolerance {
		return inside
	}
	if xp > xc && dx > rsqr {
		return complete
	}
	return incomplete
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
