package intersect

import "github.com/osuushi/geom"

// SplitTriangle holds the result of splitting a triangle with a plane: the
// sub-triangles on the front and back side, with all per-vertex attributes
// interpolated across the cut. The buffers are fixed capacity and owned by
// the instance; reusing one instance across calls avoids reallocation, but
// the results are only valid until the next Split call with the same
// instance.
type SplitTriangle struct {
	// Front and Back hold up to two triangles each, as consecutive vertices
	// of attributeCount floats. Only the first NumFront/NumBack triangles are
	// meaningful after a split.
	Front, Back []float64
	// How many triangles ended up on each side, and in total (1 or 3).
	NumFront, NumBack, Total int

	edgeSplit    []float64
	frontCurrent bool
	frontOffset  int
	backOffset   int
}

// NewSplitTriangle allocates result buffers for triangles of attributeCount
// floats per vertex. The first three attributes must be the x, y, z position;
// anything after that (normals, colors, texture coordinates) is carried
// through the split by linear interpolation.
func NewSplitTriangle(attributeCount int) *SplitTriangle {
	return &SplitTriangle{
		Front:     make([]float64, attributeCount*3*2),
		Back:      make([]float64, attributeCount*3*2),
		edgeSplit: make([]float64, attributeCount),
	}
}

func (s *SplitTriangle) reset() {
	s.frontCurrent = false
	s.frontOffset = 0
	s.backOffset = 0
	s.NumFront = 0
	s.NumBack = 0
	s.Total = 0
}

func (s *SplitTriangle) setSide(front bool) {
	s.frontCurrent = front
}

func (s *SplitTriangle) add(vertex []float64, offset, stride int) {
	if s.frontCurrent {
		copy(s.Front[s.frontOffset:s.frontOffset+stride], vertex[offset:offset+stride])
		s.frontOffset += stride
	} else {
		copy(s.Back[s.backOffset:s.backOffset+stride], vertex[offset:offset+stride])
		s.backOffset += stride
	}
}

// Split cuts a single triangle with a plane. The triangle is three
// consecutive vertices of stride floats each, where stride is the attribute
// count the SplitTriangle was built for; triangle must therefore hold
// exactly 3*stride floats.
//
// A triangle entirely on one side of the plane is copied to that side whole
// (Total == 1). Otherwise the cut produces three sub-triangles (Total == 3),
// one on one side and two on the other, with every vertex attribute
// interpolated along the crossing parameter of each cut edge. Vertices
// exactly on the plane count as front.
func (s *SplitTriangle) Split(triangle []float64, plane geom.Plane) {
	stride := len(triangle) / 3
	r1 := sideOf(triangle, 0, plane)
	r2 := sideOf(triangle, stride, plane)
	r3 := sideOf(triangle, stride*2, plane)
	s.reset()

	// Easy case: all vertices on one side.
	if r1 == r2 && r2 == r3 {
		s.Total = 1
		if r1 {
			s.NumBack = 1
			copy(s.Back[:len(triangle)], triangle)
		} else {
			s.NumFront = 1
			copy(s.Front[:len(triangle)], triangle)
		}
		return
	}

	s.Total = 3
	s.NumFront = b2i(!r1) + b2i(!r2) + b2i(!r3)
	s.NumBack = s.Total - s.NumFront

	// Walk the triangle's edges. Whenever an edge crosses the plane, emit the
	// interpolated crossing vertex on both sides and switch the side the
	// following vertices are collected on.
	s.setSide(!r1)

	first, second := 0, stride
	if r1 != r2 {
		s.splitEdge(triangle, first, second, stride, plane)
		s.add(triangle, first, stride)
		s.add(s.edgeSplit, 0, stride)
		s.setSide(!s.frontCurrent)
		s.add(s.edgeSplit, 0, stride)
	} else {
		s.add(triangle, first, stride)
	}

	first, second = stride, stride*2
	if r2 != r3 {
		s.splitEdge(triangle, first, second, stride, plane)
		s.add(triangle, first, stride)
		s.add(s.edgeSplit, 0, stride)
		s.setSide(!s.frontCurrent)
		s.add(s.edgeSplit, 0, stride)
	} else {
		s.add(triangle, first, stride)
	}

	first, second = stride*2, 0
	if r3 != r1 {
		s.splitEdge(triangle, first, second, stride, plane)
		s.add(triangle, first, stride)
		s.add(s.edgeSplit, 0, stride)
		s.setSide(!s.frontCurrent)
		s.add(s.edgeSplit, 0, stride)
	} else {
		s.add(triangle, first, stride)
	}

	// The side with four vertices is a quad fan; unroll it into two
	// triangles by duplicating the shared edge.
	if s.NumFront == 2 {
		copy(s.Front[stride*3:stride*5], s.Front[stride*2:stride*4])
		copy(s.Front[stride*5:stride*6], s.Front[:stride])
	} else {
		copy(s.Back[stride*3:stride*5], s.Back[stride*2:stride*4])
		copy(s.Back[stride*5:stride*6], s.Back[:stride])
	}
}

// Interpolate the crossing vertex of the edge from vertex index s to e into
// the edgeSplit scratch buffer, positions and remaining attributes alike.
func (st *SplitTriangle) splitEdge(vertices []float64, s, e, stride int, plane geom.Plane) {
	start := geom.Point3{X: vertices[s], Y: vertices[s+1], Z: vertices[s+2]}
	end := geom.Point3{X: vertices[e], Y: vertices[e+1], Z: vertices[e+2]}
	p, t, _ := LinePlane(start, end, plane)
	st.edgeSplit[0] = p.X
	st.edgeSplit[1] = p.Y
	st.edgeSplit[2] = p.Z
	for i := 3; i < stride; i++ {
		a := vertices[s+i]
		b := vertices[e+i]
		st.edgeSplit[i] = a + t*(b-a)
	}
}

// Whether the vertex at offset is on the back side of the plane. On-plane
// vertices count as front.
func sideOf(vertices []float64, offset int, plane geom.Plane) bool {
	p := geom.Point3{X: vertices[offset], Y: vertices[offset+1], Z: vertices[offset+2]}
	return plane.Test(p) == geom.Back
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
