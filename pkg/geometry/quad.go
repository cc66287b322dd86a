package geometry

import (
	"math"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors.
// Quads double as area lights when given an emissive material.
type Quad struct {
	Corner core.Vec3
	U, V   core.Vec3
	Mat    material.Material

	normal core.Vec3
	d      float64   // plane equation constant: normal · corner
	w      core.Vec3 // normal / (normal · (u × v)), for barycentric coords
	area   float64
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()
	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Mat:    mat,
		normal: normal,
		d:      normal.Dot(corner),
		w:      normal.Multiply(1.0 / normal.Dot(cross)),
		area:   cross.Length(),
	}
}

// Material returns the quad's material
func (q *Quad) Material() material.Material {
	return q.Mat
}

// Intersect tests the ray against the quad, overwriting geom only when the
// hit is strictly closer than geom.Distance.
func (q *Quad) Intersect(ray core.Ray, geom *core.HitGeom) bool {
	denominator := ray.Direction.Dot(q.normal)

	// Ray parallel to the quad's plane
	if math.Abs(denominator) < 1e-8 {
		return false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denominator
	if t < tMin || t >= geom.Distance {
		return false
	}

	// Barycentric bounds check against the edge vectors
	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return false
	}

	geom.Distance = t
	geom.Point = hitPoint
	geom.Normal = q.normal
	geom.Origin = ray.Origin
	return true
}

// SampleSurface draws a uniform-area point on the parallelogram. Quad
// emitters radiate from both faces, so the weight uses the face toward the
// shaded point.
func (q *Quad) SampleSurface(from core.Vec3, sampler core.Sampler) core.Sample {
	uv := sampler.Get2D()

	point := q.Corner.Add(q.U.Multiply(uv.X)).Add(q.V.Multiply(uv.Y))

	normal := q.normal
	if normal.Dot(from.Subtract(point)) < 0 {
		normal = normal.Negate()
	}

	return core.Sample{
		P: point,
		W: lightWeight(q.area, normal, point, from),
	}
}
