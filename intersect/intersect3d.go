package intersect

import "github.com/osuushi/geom"

// PointInTriangle3 reports whether p lies inside the triangle (a, b, c). The
// point is assumed to be coplanar with the triangle; that is the caller's
// responsibility.
func PointInTriangle3(p, a, b, c geom.Point3) bool {
	v0 := a.Sub(p)
	v1 := b.Sub(p)
	v2 := c.Sub(p)

	ab := v0.Dot(v1)
	ac := v0.Dot(v2)
	bc := v1.Dot(v2)
	cc := v2.Dot(v2)

	if bc*ac-cc*ab < 0 {
		return false
	}
	bb := v1.Dot(v1)
	if ab*bc-ac*bb < 0 {
		return false
	}
	return true
}

// SegmentPlane intersects the segment start-end with the plane. A segment
// parallel to the plane never intersects, and neither does one whose crossing
// parameter falls outside [0, 1].
func SegmentPlane(start, end geom.Point3, plane geom.Plane) (geom.Point3, bool) {
	dir := end.Sub(start)
	denom := dir.Dot(plane.Normal)
	if denom == 0 {
		return geom.Point3{}, false
	}
	t := -(start.Dot(plane.Normal) + plane.D) / denom
	if t < 0 || t > 1 {
		return geom.Point3{}, false
	}
	return start.Add(dir.Scale(t)), true
}

// LinePlane intersects the infinite line through start and end with the
// plane, returning the crossing parameter t relative to the two points. A
// parallel line only intersects when start itself lies on the plane, in
// which case the intersection degenerates to start (t = 0).
func LinePlane(start, end geom.Point3, plane geom.Plane) (geom.Point3, float64, bool) {
	dir := end.Sub(start)
	denom := dir.Dot(plane.Normal)
	if denom != 0 {
		t := -(start.Dot(plane.Normal) + plane.D) / denom
		return start.Add(dir.Scale(t)), t, true
	}
	if plane.Test(start) == geom.OnPlane {
		return start, 0, true
	}
	return geom.Point3{}, 0, false
}

// RayPlane intersects the ray with the plane. A ray parallel to the plane
// only intersects when its origin lies on the plane, in which case the
// intersection degenerates to the origin. Crossings behind the origin do not
// count.
func RayPlane(ray geom.Ray, plane geom.Plane) (geom.Point3, bool) {
	denom := ray.Direction.Dot(plane.Normal)
	if denom != 0 {
		t := -(ray.Origin.Dot(plane.Normal) + plane.D) / denom
		if t < 0 {
			return geom.Point3{}, false
		}
		return ray.PointAt(t), true
	}
	if plane.Test(ray.Origin) == geom.OnPlane {
		return ray.Origin, true
	}
	return geom.Point3{}, false
}

// RayTriangle intersects the ray with the triangle (t1, t2, t3) using the
// Möller-Trumbore formulation. When the determinant is near zero the ray is
// parallel to the triangle's plane; instead of reporting a miss outright, the
// degenerate case falls back to an explicit coplanar point-in-triangle test
// so that a ray lying in the plane still hits.
func RayTriangle(ray geom.Ray, t1, t2, t3 geom.Point3) (geom.Point3, bool) {
	edge1 := t2.Sub(t1)
	edge2 := t3.Sub(t1)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if geom.Equal(det, 0) {
		p := geom.PlaneFromPoints(t1, t2, t3)
		if p.Test(ray.Origin) == geom.OnPlane && PointInTriangle3(ray.Origin, t1, t2, t3) {
			return ray.Origin, true
		}
		return geom.Point3{}, false
	}

	det = 1 / det

	tvec := ray.Origin.Sub(t1)
	u := tvec.Dot(pvec) * det
	if u < 0 || u > 1 {
		return geom.Point3{}, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * det
	if v < 0 || u+v > 1 {
		return geom.Point3{}, false
	}

	t := edge2.Dot(qvec) * det
	if t < 0 {
		return geom.Point3{}, false
	}

	if t <= geom.Tolerance {
		return ray.Origin, true
	}
	return ray.PointAt(t), true
}

// RayBounds intersects the ray with an axis-aligned box using the slab test:
// each of the six faces the origin could be outside of is tried, and the
// closest valid hit wins. An origin already inside the box is returned as the
// intersection without further computation.
func RayBounds(ray geom.Ray, box geom.Box) (geom.Point3, bool) {
	if box.Contains(ray.Origin) {
		return ray.Origin, true
	}
	lowest := 0.0
	hit := false

	consider := func(t float64, onFace func(p geom.Point3) bool) {
		if t < 0 {
			return
		}
		p := ray.PointAt(t)
		if onFace(p) && (!hit || t < lowest) {
			hit = true
			lowest = t
		}
	}
	withinYZ := func(p geom.Point3) bool {
		return p.Y >= box.Min.Y && p.Y <= box.Max.Y && p.Z >= box.Min.Z && p.Z <= box.Max.Z
	}
	withinXZ := func(p geom.Point3) bool {
		return p.X >= box.Min.X && p.X <= box.Max.X && p.Z >= box.Min.Z && p.Z <= box.Max.Z
	}
	withinXY := func(p geom.Point3) bool {
		return p.X >= box.Min.X && p.X <= box.Max.X && p.Y >= box.Min.Y && p.Y <= box.Max.Y
	}

	if ray.Origin.X <= box.Min.X && ray.Direction.X > 0 {
		consider((box.Min.X-ray.Origin.X)/ray.Direction.X, withinYZ)
	}
	if ray.Origin.X >= box.Max.X && ray.Direction.X < 0 {
		consider((box.Max.X-ray.Origin.X)/ray.Direction.X, withinYZ)
	}
	if ray.Origin.Y <= box.Min.Y && ray.Direction.Y > 0 {
		consider((box.Min.Y-ray.Origin.Y)/ray.Direction.Y, withinXZ)
	}
	if ray.Origin.Y >= box.Max.Y && ray.Direction.Y < 0 {
		consider((box.Max.Y-ray.Origin.Y)/ray.Direction.Y, withinXZ)
	}
	if ray.Origin.Z <= box.Min.Z && ray.Direction.Z > 0 {
		consider((box.Min.Z-ray.Origin.Z)/ray.Direction.Z, withinXY)
	}
	if ray.Origin.Z >= box.Max.Z && ray.Direction.Z < 0 {
		consider((box.Max.Z-ray.Origin.Z)/ray.Direction.Z, withinXY)
	}

	if !hit {
		return geom.Point3{}, false
	}

	// Clamp away the float noise so the hit is exactly on the box surface.
	p := ray.PointAt(lowest)
	p.X = clamp(p.X, box.Min.X, box.Max.X)
	p.Y = clamp(p.Y, box.Min.Y, box.Max.Y)
	p.Z = clamp(p.Z, box.Min.Z, box.Max.Z)
	return p, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
