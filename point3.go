package geom

import "math"

// A 3D point or direction.
type Point3 struct {
	X, Y, Z float64
}

func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Point3) Sub(q Point3) Point3 {
	return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

func (p Point3) Scale(s float64) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

func (p Point3) Dot(q Point3) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

func (p Point3) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

func (p Point3) Len2() float64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

func (p Point3) Dist(q Point3) float64 {
	return p.Sub(q).Len()
}

func (p Point3) Norm() Point3 {
	l := p.Len()
	if l == 0 {
		return p
	}
	return Point3{p.X / l, p.Y / l, p.Z / l}
}

func (p Point3) Equal(q Point3) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y) && Equal(p.Z, q.Z)
}
