// Package hull computes 2D convex hulls with the monotone chain (Andrew's)
// algorithm.
//
// Hulls are returned in counterclockwise order with the first point repeated
// at the end, so the result is a closed polygon. Points exactly on a hull
// edge are excluded: a collinear triple is not a strict left turn, so the
// middle point is popped. That is a deliberate simplification, not a bug.
package hull

import (
	"github.com/pkg/errors"

	"github.com/osuushi/geom/internal/psort"
)

// ConvexHull holds the scratch state for hull computation. The zero value is
// ready to use. An instance is not safe for concurrent use, and returned
// slices are overwritten by the next call on the same instance.
type ConvexHull struct {
	sortedPoints    []float64
	hull            []float64
	indices         []int
	originalIndices []int
}

func New() *ConvexHull {
	return &ConvexHull{}
}

// Polygon computes the convex hull of the points in the given slice, reading
// count floats starting at offset as interleaved (x, y) pairs. Pass sorted as
// true if the pairs are already ordered by x, then y; otherwise the points
// are copied to scratch and sorted first, leaving the input untouched.
//
// The returned polygon is counterclockwise and closed: its last point equals
// its first.
func (c *ConvexHull) Polygon(points []float64, offset, count int, sorted bool) ([]float64, error) {
	if count%2 != 0 {
		return nil, errors.Errorf("hull: count must be even, got %d", count)
	}
	if count < 6 {
		return nil, errors.Errorf("hull: need at least 3 points, got %d", count/2)
	}

	if !sorted {
		points = c.copyToScratch(points, offset, count)
		offset = 0
		psort.Pairs(points[:count], nil)
	}
	end := offset + count

	hull := c.hull[:0]

	// Lower hull: scan left to right, popping while the last three points do
	// not make a strict counterclockwise turn.
	for i := offset; i < end; i += 2 {
		x, y := points[i], points[i+1]
		for len(hull) >= 4 && ccw(hull, x, y) <= 0 {
			hull = hull[:len(hull)-2]
		}
		hull = append(hull, x, y)
	}

	// Upper hull: same scan right to left. Ending at offset rather than
	// offset+2 re-appends the first point, which closes the polygon.
	for i, base := end-4, len(hull)+2; i >= offset; i -= 2 {
		x, y := points[i], points[i+1]
		for len(hull) >= base && ccw(hull, x, y) <= 0 {
			hull = hull[:len(hull)-2]
		}
		hull = append(hull, x, y)
	}

	c.hull = hull
	return hull, nil
}

// Indices computes the convex hull like Polygon, but returns the indices of
// the hull points within the input instead of their coordinates. Indices
// count points, not floats, from the start of the slice. Like Polygon, the
// hull is counterclockwise and the first index is repeated at the end.
//
// When sorted is false, an index array is carried through every swap of the
// scratch sort so the returned indices refer to the caller's original point
// order.
func (c *ConvexHull) Indices(points []float64, offset, count int, sorted bool) ([]int, error) {
	if count%2 != 0 {
		return nil, errors.Errorf("hull: count must be even, got %d", count)
	}
	if count < 6 {
		return nil, errors.Errorf("hull: need at least 3 points, got %d", count/2)
	}

	pointCount := count / 2
	pointOffset := offset / 2

	if cap(c.originalIndices) < pointCount {
		c.originalIndices = make([]int, pointCount)
	}
	originalIndices := c.originalIndices[:pointCount]
	c.originalIndices = originalIndices
	for i := range originalIndices {
		originalIndices[i] = pointOffset + i
	}

	if !sorted {
		points = c.copyToScratch(points, offset, count)
		offset = 0
		psort.Pairs(points[:count], originalIndices)
	}
	end := offset + count

	hull := c.hull[:0]
	indices := c.indices[:0]

	for i := offset; i < end; i += 2 {
		x, y := points[i], points[i+1]
		for len(hull) >= 4 && ccw(hull, x, y) <= 0 {
			hull = hull[:len(hull)-2]
			indices = indices[:len(indices)-1]
		}
		hull = append(hull, x, y)
		indices = append(indices, originalIndices[(i-offset)/2])
	}

	for i, base := end-4, len(hull)+2; i >= offset; i -= 2 {
		x, y := points[i], points[i+1]
		for len(hull) >= base && ccw(hull, x, y) <= 0 {
			hull = hull[:len(hull)-2]
			indices = indices[:len(indices)-1]
		}
		hull = append(hull, x, y)
		indices = append(indices, originalIndices[(i-offset)/2])
	}

	c.hull = hull
	c.indices = indices
	return indices, nil
}

func (c *ConvexHull) copyToScratch(points []float64, offset, count int) []float64 {
	if cap(c.sortedPoints) < count {
		c.sortedPoints = make([]float64, count)
	}
	c.sortedPoints = c.sortedPoints[:count]
	copy(c.sortedPoints, points[offset:offset+count])
	return c.sortedPoints
}

// Turn direction from the hull's last two points to (px, py): positive for a
// strict counterclockwise (left) turn.
func ccw(hull []float64, px, py float64) float64 {
	n := len(hull)
	p1x, p1y := hull[n-4], hull[n-3]
	p2x, p2y := hull[n-2], hull[n-1]
	return (p2x-p1x)*(py-p1y) - (p2y-p1y)*(px-p1x)
}
