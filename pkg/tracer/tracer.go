package tracer

import (
	"math"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/geometry"
	"github.com/dcasas/go-pathtracer/pkg/material"
	"github.com/dcasas/go-pathtracer/pkg/scene"
)

// shadowEpsilon offsets secondary ray origins along the surface normal to
// avoid self-intersection.
const shadowEpsilon = 1e-4

// HitInfo aggregates the geometry of the nearest hit with the material of
// the object that produced it. Produced by Cast, consumed by Shade.
type HitInfo struct {
	Geom     core.HitGeom
	Material material.Material
}

// Config contains the tuning knobs of the light transport estimator
type Config struct {
	// TreeDepth is the base recursion budget for each camera ray. Russian
	// roulette may extend it per bounce.
	TreeDepth int
	// MaxRouletteDepth caps the roulette-extended budget so pathological
	// extension chains cannot grow the stack without bound.
	MaxRouletteDepth int
}

// DefaultConfig returns the reference estimator settings
func DefaultConfig() Config {
	return Config{
		TreeDepth:        1,
		MaxRouletteDepth: 32,
	}
}

// Tracer estimates the radiance arriving along rays in a scene. It is not
// safe for concurrent use: each render worker owns a Tracer with its own
// sampler stream.
type Tracer struct {
	scene   *scene.Scene
	sampler core.Sampler
	config  Config
}

// New creates a tracer over a read-only scene
func New(s *scene.Scene, sampler core.Sampler, config Config) *Tracer {
	return &Tracer{scene: s, sampler: sampler, config: config}
}

// Cast finds the nearest intersection between the ray and the scene's
// objects, skipping ignore. The caller seeds hit.Geom.Distance with the far
// limit of the search: +Inf for ordinary rays, the distance to the sampled
// light for shadow rays. Each intersector only overwrites the record when
// its own hit is strictly closer, so after the scan the record holds the
// nearest hit regardless of object order. Returns true if any object wrote
// a hit.
func (t *Tracer) Cast(ray core.Ray, hit *HitInfo, ignore geometry.Object) bool {
	found := false
	for _, object := range t.scene.Objects {
		if object == ignore {
			continue
		}
		if object.Intersect(ray, &hit.Geom) {
			hit.Material = object.Material()
			found = true
		}
	}
	return found
}

// Trace answers "what color is seen looking along this ray?". A miss or an
// exhausted depth budget yields the scene background. A hit on an emitter by
// a ray flagged SkipEmitters yields black, suppressing double-counting of
// light already gathered by explicit light sampling. Everything else is
// delegated to Shade with one unit of depth spent.
func (t *Tracer) Trace(ray core.Ray, maxTreeDepth int) core.Vec3 {
	var hit HitInfo
	hit.Geom.Distance = math.Inf(1)

	if t.Cast(ray, &hit, nil) && maxTreeDepth > -1 {
		if hit.Material.IsEmitter() && ray.SkipEmitters {
			return core.Vec3{}
		}
		return t.Shade(hit, maxTreeDepth-1)
	}
	return t.scene.Background
}

// Shade computes the radiance leaving the hit point back toward the ray
// origin: direct light via one explicit sample per emitter with shadow
// testing, plus at most one stochastic indirect bounce whose depth budget is
// extended by Russian roulette.
func (t *Tracer) Shade(hit HitInfo, maxTreeDepth int) core.Vec3 {
	if hit.Material.IsEmitter() {
		return hit.Material.Emission
	}

	n := hit.Geom.Normal
	bounceOrigin := hit.Geom.Point.Add(n.Multiply(shadowEpsilon))

	depth := t.extendDepth(maxTreeDepth)

	// Branch selection for the indirect bounce is drawn before walking the
	// lights so the direct and indirect estimates are independent.
	u := t.sampler.Get1D()
	contriD := hit.Material.MeanDiffuse()
	contriS := hit.Material.MeanSpecular()

	// View direction: from the ray origin toward the hit point
	v := hit.Geom.Point.Subtract(hit.Geom.Origin).Normalize()

	direct := t.directLight(hit, n, v, bounceOrigin)
	indirect := t.indirectLight(hit, n, v, bounceOrigin, u, contriD, contriS, depth)

	return direct.Add(indirect)
}

// directLight accumulates the contribution of every emitter in the scene,
// one surface sample each, with shadow-ray occlusion testing.
func (t *Tracer) directLight(hit HitInfo, n, v, origin core.Vec3) core.Vec3 {
	var direct core.Vec3

	for _, object := range t.scene.Objects {
		mat := object.Material()
		if !mat.IsEmitter() {
			continue
		}

		s := object.SampleSurface(hit.Geom.Point, t.sampler)
		toLight := s.P.Subtract(hit.Geom.Point)
		l := toLight.Normalize()

		// Occlusion test: search only up to the sampled point, and skip the
		// emitter itself so it cannot shadow its own sample.
		shadowRay := core.Ray{Origin: origin, Direction: l}
		var occluder HitInfo
		occluder.Geom.Distance = toLight.Length()
		if t.Cast(shadowRay, &occluder, object) {
			continue
		}

		var reflected core.Vec3
		if nl := n.Dot(l); nl > 0 {
			reflected = hit.Material.Diffuse.Multiply(nl)
		}
		if hit.Material.PhongExp > 0 {
			if rv := l.Reflect(n).Dot(v); rv > 0 {
				phong := math.Pow(rv, hit.Material.PhongExp)
				reflected = reflected.Add(hit.Material.Specular.Multiply(phong))
			}
		}

		irradiance := mat.Emission.Multiply(s.W)
		direct = direct.Add(reflected.MultiplyVec(irradiance))
	}

	return direct
}

// indirectLight adds at most one stochastic bounce. The unit interval is
// partitioned by the mean reflectances: u below contriD selects the diffuse
// lobe, u in [contriD, contriD+contriS) selects the specular lobe. A u in
// the specular band of a material with no specular exponent selects nothing
// even though the outer test passed; that dead zone is part of the
// estimator's convergence behavior and is kept deliberately.
func (t *Tracer) indirectLight(hit HitInfo, n, v, origin core.Vec3, u, contriD, contriS float64, depth int) core.Vec3 {
	if u >= contriD+contriS {
		return core.Vec3{}
	}

	var indirect core.Vec3

	hemi := core.SampleProjectedHemisphere(n, t.sampler)
	if u < contriD {
		bounce := core.Ray{Origin: origin, Direction: hemi.P}
		incoming := t.Trace(bounce, depth)
		indirect = hit.Material.Diffuse.
			Multiply(hemi.W / math.Pi).
			MultiplyVec(incoming)
	}

	if hit.Material.PhongExp > 0 && u >= contriD {
		mirror := v.Reflect(n)
		lobe := core.SampleSpecularLobe(mirror, hit.Material.PhongExp, t.sampler)
		bounce := core.Ray{Origin: origin, Direction: lobe.P}
		incoming := t.Trace(bounce, depth)
		spec := hit.Material.Specular.
			Multiply(lobe.W * (hit.Material.PhongExp + 2) / (2 * math.Pi)).
			MultiplyVec(incoming)
		indirect = indirect.Add(spec)
	}

	return indirect
}

// extendDepth runs the Russian-roulette extension loop: starting from a
// survival threshold of 100 on a 0-99 scale, each uniform draw at or below
// the threshold buys one extra level of recursion and lowers the threshold
// by 15. The threshold strictly decreases, so the loop runs at most seven
// extensions; the result is additionally clamped to MaxRouletteDepth.
func (t *Tracer) extendDepth(maxTreeDepth int) int {
	depth := maxTreeDepth
	threshold := 100.0
	for threshold >= 0 {
		alpha := t.sampler.Get1D() * 99.0
		if alpha > threshold {
			break
		}
		depth++
		threshold -= 15
	}
	if depth > t.config.MaxRouletteDepth {
		depth = t.config.MaxRouletteDepth
	}
	return depth
}
