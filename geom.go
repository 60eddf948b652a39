// Package geom provides the shared primitives for a small computational
// geometry toolkit: 2D and 3D points, planes, rays and axis-aligned boxes,
// plus the float predicates the algorithm packages (earclip, hull, delaunay,
// intersect) are built on.
//
// Everything here is a plain value type with no identity. Coordinate buffers
// are flat []float64 slices of interleaved (x, y) or (x, y, z) tuples, owned
// by the caller; the algorithm packages only read them, or write into their
// own reusable scratch storage.
package geom

import "math"

// A 2D point or direction. Which one it is depends on context; the same
// arithmetic applies either way, so we don't split the type.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// The scalar 2D cross product. Its sign gives the turn direction from p to q:
// positive for a counterclockwise turn.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Len2() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

func (p Point) Dist2(q Point) float64 {
	return p.Sub(q).Len2()
}

// Normalize to unit length. The zero vector normalizes to itself rather than
// dividing by zero.
func (p Point) Norm() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// Tolerance-based equality. See Equal for why exact comparison is avoided.
func (p Point) Equal(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}
