package geometry

import (
	"math"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3
	Mat    material.Material
}

// NewPlane creates a new plane. The normal is normalized on construction.
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), Mat: mat}
}

// Material returns the plane's material
func (p *Plane) Material() material.Material {
	return p.Mat
}

// Intersect tests the ray against the plane, overwriting geom only when the
// hit is strictly closer than geom.Distance.
func (p *Plane) Intersect(ray core.Ray, geom *core.HitGeom) bool {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t >= geom.Distance {
		return false
	}

	geom.Distance = t
	geom.Point = ray.At(t)
	geom.Normal = p.Normal
	geom.Origin = ray.Origin
	return true
}

// SampleSurface on an infinite plane has no finite-area density; planes are
// never emitters, so the sample carries zero weight.
func (p *Plane) SampleSurface(from core.Vec3, sampler core.Sampler) core.Sample {
	return core.Sample{P: p.Point, W: 0}
}
