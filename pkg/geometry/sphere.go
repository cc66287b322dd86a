package geometry

import (
	"math"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/material"
)

// Sphere represents a sphere defined by center and radius
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.Mat
}

// Intersect tests the ray against the sphere, overwriting geom only when the
// hit is strictly closer than geom.Distance.
func (s *Sphere) Intersect(ray core.Ray, geom *core.HitGeom) bool {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearest root in front of the ray origin
	root := (-halfB - sqrtD) / a
	if root < tMin {
		root = (-halfB + sqrtD) / a
		if root < tMin {
			return false
		}
	}

	if root >= geom.Distance {
		return false
	}

	geom.Distance = root
	geom.Point = ray.At(root)
	geom.Normal = geom.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	geom.Origin = ray.Origin
	return true
}

// SampleSurface draws a uniform point on the sphere surface. The weight is
// the uniform-area density reciprocal folded with the geometric coupling
// term, area * cos(theta') / d².
func (s *Sphere) SampleSurface(from core.Vec3, sampler core.Sampler) core.Sample {
	u := sampler.Get2D()

	// Uniform direction on the unit sphere
	z := 1.0 - 2.0*u.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * u.Y
	local := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)

	point := s.Center.Add(local.Multiply(s.Radius))
	area := 4.0 * math.Pi * s.Radius * s.Radius

	return core.Sample{
		P: point,
		W: lightWeight(area, local, point, from),
	}
}
