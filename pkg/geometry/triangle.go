package geometry

import (
	"math"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Mat        material.Material
	normal     core.Vec3
	area       float64
}

// NewTriangle creates a new triangle from three vertices. Winding V0->V1->V2
// determines the normal direction.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	cross := edge1.Cross(edge2)
	return &Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		Mat:    mat,
		normal: cross.Normalize(),
		area:   0.5 * cross.Length(),
	}
}

// Material returns the triangle's material
func (t *Triangle) Material() material.Material {
	return t.Mat
}

// Intersect tests the ray against the triangle using the Möller-Trumbore
// algorithm, overwriting geom only when the hit is strictly closer than
// geom.Distance.
func (t *Triangle) Intersect(ray core.Ray, geom *core.HitGeom) bool {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}

	dist := f * edge2.Dot(q)
	if dist < tMin || dist >= geom.Distance {
		return false
	}

	geom.Distance = dist
	geom.Point = ray.At(dist)
	geom.Normal = t.normal
	geom.Origin = ray.Origin
	return true
}

// SampleSurface draws a uniform-area point on the triangle via the sqrt
// barycentric mapping.
func (t *Triangle) SampleSurface(from core.Vec3, sampler core.Sampler) core.Sample {
	uv := sampler.Get2D()

	su := math.Sqrt(uv.X)
	b0 := 1.0 - su
	b1 := uv.Y * su

	point := t.V0.Multiply(b0).
		Add(t.V1.Multiply(b1)).
		Add(t.V2.Multiply(1.0 - b0 - b1))

	return core.Sample{
		P: point,
		W: lightWeight(t.area, t.normal, point, from),
	}
}
