package scene

import (
	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/geometry"
	"github.com/dcasas/go-pathtracer/pkg/material"
)

// NewDefaultScene builds a small open scene: a diffuse ground plane, a matte
// sphere, a glossy Phong sphere, and a single spherical emitter overhead.
func NewDefaultScene() *Scene {
	s := &Scene{
		Background: core.NewVec3(0.15, 0.15, 0.2),
		Camera: core.CameraConfig{
			Eye:    core.NewVec3(0, 1.2, 2.5),
			LookAt: core.NewVec3(0, 0.8, -2),
			Up:     core.NewVec3(0, 1, 0),
			VPDist: 2.0,
		},
	}

	ground := material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7))
	matte := material.NewDiffuse(core.NewVec3(0.25, 0.35, 0.7))
	glossy := material.NewPhong(
		core.NewVec3(0.45, 0.2, 0.15),
		core.NewVec3(0.35, 0.35, 0.35),
		40,
	)
	light := material.NewEmissive(core.NewVec3(6, 6, 6))

	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewSphere(core.NewVec3(-0.9, 0.8, -2.5), 0.8, matte),
		geometry.NewSphere(core.NewVec3(1.0, 0.7, -2.0), 0.7, glossy),
		geometry.NewSphere(core.NewVec3(0, 3.2, -2.0), 0.5, light),
	)

	return s
}
