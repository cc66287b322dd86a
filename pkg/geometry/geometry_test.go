package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/material"
)

func freshGeom() core.HitGeom {
	return core.HitGeom{Distance: math.Inf(1)}
}

func TestSphereIntersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	geom := freshGeom()
	require.True(t, sphere.Intersect(ray, &geom))
	require.InDelta(t, 4.0, geom.Distance, 1e-9)
	require.InDelta(t, -1.0, geom.Point.Z, 1e-6)
	require.InDelta(t, 1.0, geom.Normal.Dot(core.NewVec3(0, 0, 1)), 1e-9)
	require.Equal(t, ray.Origin, geom.Origin)
}

func TestSphereIntersectMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 5, -5), 1, material.Material{})

	geom := freshGeom()
	require.False(t, sphere.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), &geom))
	require.True(t, math.IsInf(geom.Distance, 1), "a miss must not touch the record")
}

func TestSphereIntersectBehindOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, material.Material{})

	geom := freshGeom()
	require.False(t, sphere.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), &geom))
}

func TestIntersectOnlyOverwritesCloserHits(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	objects := []Object{
		NewSphere(core.NewVec3(0, 0, -5), 1, material.Material{}),
		NewPlane(core.NewVec3(0, 0, -6), core.NewVec3(0, 0, 1), material.Material{}),
		NewTriangle(core.NewVec3(-1, -1, -7), core.NewVec3(1, -1, -7), core.NewVec3(0, 1, -7), material.Material{}),
		NewQuad(core.NewVec3(-1, -1, -8), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), material.Material{}),
	}

	for _, obj := range objects {
		// A recorded closer hit blocks the overwrite entirely
		geom := core.HitGeom{Distance: 0.5}
		require.False(t, obj.Intersect(ray, &geom))
		require.Equal(t, 0.5, geom.Distance)

		// A farther record is overwritten
		geom = core.HitGeom{Distance: 100}
		require.True(t, obj.Intersect(ray, &geom))
		require.Less(t, geom.Distance, 100.0)
	}
}

func TestPlaneIntersectParallelRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.Material{})
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))

	geom := freshGeom()
	require.False(t, plane.Intersect(ray, &geom))
}

func TestTriangleIntersectInsideOutside(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, -3),
		core.NewVec3(1, -1, -3),
		core.NewVec3(0, 1, -3),
		material.Material{},
	)

	geom := freshGeom()
	require.True(t, tri.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), &geom))
	require.InDelta(t, 3.0, geom.Distance, 1e-9)

	geom = freshGeom()
	require.False(t, tri.Intersect(core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1)), &geom))
}

func TestQuadIntersectBounds(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), material.Material{})

	geom := freshGeom()
	require.True(t, quad.Intersect(core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, -1)), &geom))

	geom = freshGeom()
	require.False(t, quad.Intersect(core.NewRay(core.NewVec3(1.5, 0, 0), core.NewVec3(0, 0, -1)), &geom))
}

func TestSphereSampleSurface(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 5, 0), 1, material.NewEmissive(core.NewVec3(5, 5, 5)))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	from := core.NewVec3(0, 0, 0)

	for i := 0; i < 200; i++ {
		s := sphere.SampleSurface(from, sampler)
		require.InDelta(t, 1.0, s.P.Subtract(sphere.Center).Length(), 1e-9,
			"sample must lie on the sphere surface")
		require.GreaterOrEqual(t, s.W, 0.0)
	}
}

func TestQuadSampleSurface(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, 3, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2),
		material.NewEmissive(core.NewVec3(5, 5, 5)))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	from := core.NewVec3(0, 0, 0)

	for i := 0; i < 200; i++ {
		s := quad.SampleSurface(from, sampler)
		require.InDelta(t, 3.0, s.P.Y, 1e-9)
		require.GreaterOrEqual(t, s.P.X, -1.0)
		require.LessOrEqual(t, s.P.X, 1.0)
		require.GreaterOrEqual(t, s.P.Z, -1.0)
		require.LessOrEqual(t, s.P.Z, 1.0)
		require.Greater(t, s.W, 0.0,
			"a point below the quad always sees the emitting face")
	}
}

func TestTriangleSampleSurfaceOnTriangle(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 2, 0),
		core.NewVec3(1, 2, 0),
		core.NewVec3(0, 2, 1),
		material.NewEmissive(core.NewVec3(1, 1, 1)),
	)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		s := tri.SampleSurface(core.NewVec3(0, 0, 0), sampler)
		require.InDelta(t, 2.0, s.P.Y, 1e-9, "sample stays in the triangle plane")
		require.GreaterOrEqual(t, s.P.X, -1e-9)
		require.GreaterOrEqual(t, s.P.Z, -1e-9)
		require.LessOrEqual(t, s.P.X+s.P.Z, 1.0+1e-9)
	}
}
