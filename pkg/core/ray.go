package core

// Ray represents a ray with an origin and unit direction. SkipEmitters marks
// rays whose radiance must not include directly-hit light sources, because
// that light has already been accounted for by explicit light sampling.
type Ray struct {
	Origin       Vec3
	Direction    Vec3
	SkipEmitters bool
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// HitGeom records the geometry of the closest intersection found so far
// during a cast. Distance is seeded by the caller (+Inf for ordinary rays,
// the distance to the light for shadow rays) and only ever decreases: an
// intersector may overwrite the record only when its own hit is strictly
// closer than Distance. Origin keeps the ray origin so shading can
// reconstruct the view direction at the hit point.
type HitGeom struct {
	Distance float64
	Point    Vec3
	Normal   Vec3
	Origin   Vec3
}

// CameraConfig describes a pinhole view: eye point, look-at point, up hint
// and the distance from the eye to the view plane.
type CameraConfig struct {
	Eye    Vec3
	LookAt Vec3
	Up     Vec3
	VPDist float64
}
