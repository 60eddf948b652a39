package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/geom"
)

func triangleArea3(v []float64, offset, stride int) float64 {
	a := geom.Point3{X: v[offset], Y: v[offset+1], Z: v[offset+2]}
	b := geom.Point3{X: v[offset+stride], Y: v[offset+stride+1], Z: v[offset+stride+2]}
	c := geom.Point3{X: v[offset+stride*2], Y: v[offset+stride*2+1], Z: v[offset+stride*2+2]}
	return b.Sub(a).Cross(c.Sub(a)).Len() / 2
}

func sideArea(buf []float64, triangles, stride int) float64 {
	area := 0.0
	for i := 0; i < triangles; i++ {
		area += triangleArea3(buf, i*stride*3, stride)
	}
	return area
}

func assertOnSide(t *testing.T, buf []float64, triangles, stride int, plane geom.Plane, front bool) {
	t.Helper()
	for i := 0; i < triangles*3; i++ {
		p := geom.Point3{X: buf[i*stride], Y: buf[i*stride+1], Z: buf[i*stride+2]}
		d := plane.Distance(p)
		if front {
			assert.GreaterOrEqual(t, d, -geom.Tolerance)
		} else {
			assert.LessOrEqual(t, d, geom.Tolerance)
		}
	}
}

func TestSplitTriangleWhole(t *testing.T) {
	plane := geom.Plane{Normal: geom.Point3{X: 1}, D: 0} // x = 0
	split := NewSplitTriangle(3)

	// Entirely on the front side
	front := []float64{1, 0, 0, 3, 0, 0, 2, 2, 0}
	split.Split(front, plane)
	assert.Equal(t, 1, split.Total)
	assert.Equal(t, 1, split.NumFront)
	assert.Equal(t, 0, split.NumBack)
	assert.Equal(t, front, split.Front[:9])

	// Entirely on the back side
	back := []float64{-1, 0, 0, -3, 0, 0, -2, 2, 0}
	split.Split(back, plane)
	assert.Equal(t, 1, split.Total)
	assert.Equal(t, 0, split.NumFront)
	assert.Equal(t, 1, split.NumBack)
	assert.Equal(t, back, split.Back[:9])
}

func TestSplitTriangleAcrossPlane(t *testing.T) {
	plane := geom.Plane{Normal: geom.Point3{X: 1}, D: 0} // x = 0
	split := NewSplitTriangle(3)

	// One vertex in front, two behind
	triangle := []float64{-2, 0, 0, 2, 0, 0, -2, 4, 0}
	split.Split(triangle, plane)

	assert.Equal(t, 3, split.Total)
	assert.Equal(t, 1, split.NumFront)
	assert.Equal(t, 2, split.NumBack)

	assertOnSide(t, split.Front, split.NumFront, 3, plane, true)
	assertOnSide(t, split.Back, split.NumBack, 3, plane, false)

	// The pieces tile the original
	total := sideArea(split.Front, split.NumFront, 3) + sideArea(split.Back, split.NumBack, 3)
	assert.InDelta(t, triangleArea3(triangle, 0, 3), total, 1e-9)
}

func TestSplitTriangleVertexOnPlane(t *testing.T) {
	plane := geom.Plane{Normal: geom.Point3{X: 1}, D: 0}
	split := NewSplitTriangle(3)

	// One vertex exactly on the plane, the others on both sides
	triangle := []float64{0, 4, 0, -2, 0, 0, 2, 0, 0}
	split.Split(triangle, plane)

	require.Equal(t, 3, split.Total)
	assertOnSide(t, split.Front, split.NumFront, 3, plane, true)
	assertOnSide(t, split.Back, split.NumBack, 3, plane, false)
	total := sideArea(split.Front, split.NumFront, 3) + sideArea(split.Back, split.NumBack, 3)
	assert.InDelta(t, triangleArea3(triangle, 0, 3), total, 1e-9)
}

func TestSplitTriangleInterpolatesAttributes(t *testing.T) {
	plane := geom.Plane{Normal: geom.Point3{X: 1}, D: 0}

	// Attributes are linear functions of position (u = x, v = 2x + y), so
	// interpolation along the cut must preserve them at every output vertex.
	stride := 5
	triangle := make([]float64, 0, stride*3)
	for _, p := range [][3]float64{{-2, 0, 0}, {2, 0, 0}, {-2, 4, 0}} {
		triangle = append(triangle, p[0], p[1], p[2], p[0], 2*p[0]+p[1])
	}

	split := NewSplitTriangle(stride)
	split.Split(triangle, plane)
	require.Equal(t, 3, split.Total)

	check := func(buf []float64, triangles int) {
		for i := 0; i < triangles*3; i++ {
			x := buf[i*stride]
			y := buf[i*stride+1]
			assert.InDelta(t, x, buf[i*stride+3], 1e-9)
			assert.InDelta(t, 2*x+y, buf[i*stride+4], 1e-9)
		}
	}
	check(split.Front, split.NumFront)
	check(split.Back, split.NumBack)
}

func TestSplitTriangleReuse(t *testing.T) {
	plane := geom.Plane{Normal: geom.Point3{X: 1}, D: 0}
	split := NewSplitTriangle(3)

	split.Split([]float64{-2, 0, 0, 2, 0, 0, -2, 4, 0}, plane)
	require.Equal(t, 3, split.Total)

	// A whole-side split afterwards must fully reset the counters
	split.Split([]float64{1, 0, 0, 3, 0, 0, 2, 2, 0}, plane)
	assert.Equal(t, 1, split.Total)
	assert.Equal(t, 1, split.NumFront)
	assert.Equal(t, 0, split.NumBack)
}
