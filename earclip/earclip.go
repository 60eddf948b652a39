// Package earclip triangulates simple polygons by iterative ear removal.
//
// The polygon may be concave, but must not self-intersect and must not
// contain holes. A polygon of n vertices always produces exactly n-2
// triangles. For nearly collinear (degenerate) input the triangulator never
// fails: when no true ear exists it falls back to clipping any non-concave
// vertex, trading geometric correctness for a termination guarantee.
// Self-intersecting input therefore produces unspecified, but non-crashing,
// output.
//
// Emitted triangles wind clockwise (negative signed area).
package earclip

import (
	"github.com/pkg/errors"

	"github.com/osuushi/geom"
)

const (
	concave    = -1
	tangential = 0
	convex     = 1
)

// Triangulator holds the scratch state for ear clipping. The zero value is
// ready to use. Reusing one instance across calls avoids reallocation, but
// the scratch buffers make an instance unsafe for concurrent use, and the
// slice returned by ComputeTriangles is overwritten by the next call.
type Triangulator struct {
	vertices    []float64
	indices     []int
	vertexTypes []int
	triangles   []int
	vertexCount int
}

func New() *Triangulator {
	return &Triangulator{}
}

// ComputeTriangles triangulates the polygon in vertices, reading count floats
// starting at offset as interleaved (x, y) pairs. It returns count/2 - 2
// triangles as a flat list of vertex indices, three per triangle. Indices
// count points (not floats) from the start of the vertices slice.
func (t *Triangulator) ComputeTriangles(vertices []float64, offset, count int) ([]int, error) {
	if count%2 != 0 {
		return nil, errors.Errorf("earclip: count must be even, got %d", count)
	}
	if count < 6 {
		return nil, errors.Errorf("earclip: polygon must have at least 3 vertices, got %d", count/2)
	}

	t.vertices = vertices
	vertexCount := count / 2
	t.vertexCount = vertexCount
	vertexOffset := offset / 2

	if cap(t.indices) < vertexCount {
		t.indices = make([]int, vertexCount)
	}
	indices := t.indices[:vertexCount]
	t.indices = indices
	if geom.IsClockwise(vertices, offset, count) {
		for i := 0; i < vertexCount; i++ {
			indices[i] = vertexOffset + i
		}
	} else {
		// Reverse the index order so we always walk the polygon clockwise.
		for i, n := 0, vertexCount-1; i < vertexCount; i++ {
			indices[i] = vertexOffset + n - i
		}
	}

	if cap(t.vertexTypes) < vertexCount {
		t.vertexTypes = make([]int, 0, vertexCount)
	}
	t.vertexTypes = t.vertexTypes[:0]
	for i := 0; i < vertexCount; i++ {
		t.vertexTypes = append(t.vertexTypes, t.classifyVertex(i))
	}

	// A polygon with n vertices has a triangulation of exactly n-2 triangles.
	t.triangles = t.triangles[:0]
	if cap(t.triangles) < (vertexCount-2)*3 {
		t.triangles = make([]int, 0, (vertexCount-2)*3)
	}
	t.triangulate()

	t.vertices = nil
	return t.triangles, nil
}

func (t *Triangulator) triangulate() {
	for t.vertexCount > 3 {
		earTip := t.findEarTip()
		t.cutEarTip(earTip)

		// The cut may have flipped the convexity of the two vertices that were
		// adjacent to the ear, so they must be reclassified.
		previous := t.previousIndex(earTip)
		next := earTip
		if next == t.vertexCount {
			next = 0
		}
		t.vertexTypes[previous] = t.classifyVertex(previous)
		t.vertexTypes[next] = t.classifyVertex(next)
	}

	if t.vertexCount == 3 {
		t.triangles = append(t.triangles, t.indices[0], t.indices[1], t.indices[2])
	}
}

func (t *Triangulator) classifyVertex(index int) int {
	previous := t.indices[t.previousIndex(index)] * 2
	current := t.indices[index] * 2
	next := t.indices[t.nextIndex(index)] * 2
	v := t.vertices
	return spannedAreaSign(v[previous], v[previous+1], v[current], v[current+1], v[next], v[next+1])
}

func (t *Triangulator) findEarTip() int {
	for i := 0; i < t.vertexCount; i++ {
		if t.isEarTip(i) {
			return i
		}
	}

	// Desperate mode. No vertex is an ear tip, so the polygon is degenerate,
	// e.g. nearly collinear. The input was not necessarily degenerate; we may
	// have made it so by clipping valid ears. Clip a convex or tangential
	// vertex if one exists, otherwise give up and take the first vertex. This
	// sacrifices correctness to guarantee termination. (Idea from Martin Held,
	// "FIST: Fast industrial-strength triangulation of polygons", 1998.)
	for i := 0; i < t.vertexCount; i++ {
		if t.vertexTypes[i] != concave {
			return i
		}
	}
	return 0
}

func (t *Triangulator) isEarTip(earTip int) bool {
	if t.vertexTypes[earTip] == concave {
		return false
	}

	previous := t.previousIndex(earTip)
	next := t.nextIndex(earTip)
	v := t.vertices
	p1 := t.indices[previous] * 2
	p2 := t.indices[earTip] * 2
	p3 := t.indices[next] * 2
	p1x, p1y := v[p1], v[p1+1]
	p2x, p2y := v[p2], v[p2+1]
	p3x, p3y := v[p3], v[p3+1]

	// The candidate is an ear iff no other polygon vertex lies inside its
	// triangle. Only non-convex vertices can be inside (tangential ones count
	// because they may coincide with a triangle corner). Since the polygon
	// winds clockwise, a point is inside when all three spanned areas are
	// non-negative. The p3->p1 edge is tested first: concave vertices are
	// most likely to be outside it, so it rejects fastest.
	for i := t.nextIndex(next); i != previous; i = t.nextIndex(i) {
		if t.vertexTypes[i] == convex {
			continue
		}
		pv := t.indices[i] * 2
		vx, vy := v[pv], v[pv+1]
		if spannedAreaSign(p3x, p3y, p1x, p1y, vx, vy) >= 0 {
			if spannedAreaSign(p1x, p1y, p2x, p2y, vx, vy) >= 0 {
				if spannedAreaSign(p2x, p2y, p3x, p3y, vx, vy) >= 0 {
					return false
				}
			}
		}
	}
	return true
}

func (t *Triangulator) cutEarTip(earTip int) {
	t.triangles = append(t.triangles,
		t.indices[t.previousIndex(earTip)],
		t.indices[earTip],
		t.indices[t.nextIndex(earTip)])

	t.indices = append(t.indices[:earTip], t.indices[earTip+1:]...)
	t.vertexTypes = append(t.vertexTypes[:earTip], t.vertexTypes[earTip+1:]...)
	t.vertexCount--
}

func (t *Triangulator) previousIndex(index int) int {
	if index == 0 {
		return t.vertexCount - 1
	}
	return index - 1
}

func (t *Triangulator) nextIndex(index int) int {
	return (index + 1) % t.vertexCount
}

func spannedAreaSign(p1x, p1y, p2x, p2y, p3x, p3y float64) int {
	area := p1x * (p3y - p2y)
	area += p2x * (p1y - p3y)
	area += p3x * (p2y - p1y)
	switch {
	case area < 0:
		return concave
	case area > 0:
		return convex
	}
	return tangential
}
