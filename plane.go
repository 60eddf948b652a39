package geom

// Which side of a plane a point is on, relative to the plane normal.
type PlaneSide int

const (
	OnPlane PlaneSide = iota
	Back
	Front
)

// An infinite plane in Hessian normal form: all points p satisfying
// Normal·p + D = 0. Normal is expected to be unit length.
type Plane struct {
	Normal Point3
	D      float64
}

// Construct a plane from three points on it. The normal follows the winding
// of the points by the right-hand rule.
func PlaneFromPoints(a, b, c Point3) Plane {
	normal := b.Sub(a).Cross(c.Sub(a)).Norm()
	return Plane{Normal: normal, D: -a.Dot(normal)}
}

// Signed distance from the plane. Positive on the front side.
func (pl Plane) Distance(p Point3) float64 {
	return pl.Normal.Dot(p) + pl.D
}

// Classify the point against the plane. Points within Tolerance of the plane
// count as on it; without the band, coplanar tests would flicker between
// sides on float noise.
func (pl Plane) Test(p Point3) PlaneSide {
	d := pl.Distance(p)
	switch {
	case Equal(d, 0):
		return OnPlane
	case d < 0:
		return Back
	}
	return Front
}

// A ray with an origin and a direction. Direction is expected to be unit
// length for distance semantics, but none of the intersection tests require
// it; t values are simply in units of the direction's length.
type Ray struct {
	Origin, Direction Point3
}

// The point at parameter t along the ray.
func (r Ray) PointAt(t float64) Point3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// An axis-aligned box, described by its minimum and maximum corners.
type Box struct {
	Min, Max Point3
}

func (b Box) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
