package intersect

import (
	"math"

	"github.com/osuushi/geom"
)

// MinimumTranslationVector describes the smallest push that separates two
// overlapping convex polygons: move the first polygon by Normal scaled by
// Depth. Its contents are meaningless when the overlap test returned false.
type MinimumTranslationVector struct {
	Normal geom.Point
	Depth  float64
}

// OverlapConvexPolygons tests two convex polygons for overlap with the
// separating axis theorem, reading count floats starting at each offset as
// interleaved (x, y) pairs. It returns false as soon as any edge-normal axis
// separates the projections. If mtv is non-nil and the polygons overlap, it
// receives the minimum translation vector that moves the first polygon out
// of the second.
//
// The push direction on each axis is decided by counting how many vertices
// of the other polygon sit on the normal side of the edge, and the counting
// rule flips between the two polygons' own axis passes, so the vector always
// pushes the first polygon away from the second.
func OverlapConvexPolygons(verts1 []float64, offset1, count1 int, verts2 []float64, offset2, count2 int, mtv *MinimumTranslationVector) bool {
	overlap := math.MaxFloat64
	var smallestAxis geom.Point

	if !overlapsOnAxes(verts1, offset1, count1, verts2, offset2, count2, false, &overlap, &smallestAxis) {
		return false
	}
	if !overlapsOnAxes(verts2, offset2, count2, verts1, offset1, count1, true, &overlap, &smallestAxis) {
		return false
	}

	if mtv != nil {
		mtv.Normal = smallestAxis
		mtv.Depth = overlap
	}
	return true
}

// Project both polygons onto every edge-normal axis of the first, tightening
// overlap and smallestAxis along the way. Returns false on the first axis
// with a gap. flip inverts the sign-counting rule, which is how the caller
// gets a consistent push direction out of the two passes.
func overlapsOnAxes(verts1 []float64, offset1, count1 int, verts2 []float64, offset2, count2 int, flip bool, overlap *float64, smallestAxis *geom.Point) bool {
	end1 := offset1 + count1
	end2 := offset2 + count2
	for i := offset1; i < end1; i += 2 {
		x1, y1 := verts1[i], verts1[i+1]
		ni := i + 2
		if ni == end1 {
			ni = offset1
		}
		x2, y2 := verts1[ni], verts1[ni+1]

		// The edge normal is the candidate separating axis.
		axisX := y1 - y2
		axisY := -(x1 - x2)
		length := math.Sqrt(axisX*axisX + axisY*axisY)
		axisX /= length
		axisY /= length

		min1 := axisX*verts1[offset1] + axisY*verts1[offset1+1]
		max1 := min1
		for j := offset1; j < end1; j += 2 {
			p := axisX*verts1[j] + axisY*verts1[j+1]
			if p < min1 {
				min1 = p
			} else if p > max1 {
				max1 = p
			}
		}

		// While projecting the other polygon, count how many of its vertices
		// are on the normal side of this edge; the sign of the count picks the
		// push direction when neither polygon cleanly contains the other.
		numInNormalDir := 0
		min2 := axisX*verts2[offset2] + axisY*verts2[offset2+1]
		max2 := min2
		for j := offset2; j < end2; j += 2 {
			numInNormalDir += pointLineSide(x1, y1, x2, y2, verts2[j], verts2[j+1])
			p := axisX*verts2[j] + axisY*verts2[j+1]
			if p < min2 {
				min2 = p
			} else if p > max2 {
				max2 = p
			}
		}

		if !(min1 <= min2 && max1 >= min2 || min2 <= min1 && max2 >= min1) {
			// Found a separating axis.
			return false
		}

		o := math.Min(max1, max2) - math.Max(min1, min2)
		if min1 < min2 && max1 > max2 || min2 < min1 && max2 > max1 {
			// One projection contains the other. The overlap is the span plus
			// the smaller of the two escape distances.
			mins := math.Abs(min1 - min2)
			maxs := math.Abs(max1 - max2)
			if mins < maxs {
				o += mins
			} else {
				o += maxs
			}
		}

		if o < *overlap {
			*overlap = o
			// The other polygon sitting mostly on the normal side of this
			// polygon's edge means the normal points into the overlap, so the
			// escape direction is the negated axis. On the second polygon's
			// own axis pass the roles are reversed, and so is the rule.
			dir := numInNormalDir > 0
			if !flip {
				dir = !dir
			}
			if dir {
				*smallestAxis = geom.Point{X: axisX, Y: axisY}
			} else {
				*smallestAxis = geom.Point{X: -axisX, Y: -axisY}
			}
		}
	}
	return true
}
