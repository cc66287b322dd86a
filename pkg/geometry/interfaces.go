package geometry

import (
	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/material"
)

// Intersectors reject hits closer than this to keep freshly spawned rays
// from re-hitting the surface they left.
const tMin = 1e-4

// Object is anything a ray can hit. Intersect checks the ray against the
// object and is the sole authority on overwriting geom: it must write only
// when its own hit distance is strictly less than the incoming geom.Distance,
// which is what makes a linear cast over any object order produce the
// nearest hit. SampleSurface draws a point on the object's surface together
// with the importance weight for direct light estimation; it is only called
// on emitters.
type Object interface {
	Intersect(ray core.Ray, geom *core.HitGeom) bool
	SampleSurface(from core.Vec3, sampler core.Sampler) core.Sample
	Material() material.Material
}

// lightWeight converts a uniform-area surface sample into the importance
// weight for the direct-lighting estimate: area * cos(theta') / d², where
// theta' is the angle between the emitter normal at the sample and the
// direction back toward the shaded point. Samples on the far side of the
// emitter get zero weight.
func lightWeight(area float64, sampleNormal, samplePoint, from core.Vec3) float64 {
	toShaded := from.Subtract(samplePoint)
	d2 := toShaded.LengthSquared()
	if d2 < 1e-12 {
		return 0
	}
	cos := sampleNormal.Dot(toShaded.Normalize())
	if cos <= 0 {
		return 0
	}
	return area * cos / d2
}
