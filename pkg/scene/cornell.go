package scene

import (
	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/geometry"
	"github.com/dcasas/go-pathtracer/pkg/material"
)

// NewCornellScene builds a Cornell-style box: white floor, ceiling and back
// wall, red and green side walls, a quad area light in the ceiling, and two
// spheres inside the box. Walls are quads so rays leaving the box see the
// background rather than the far side of an infinite plane.
func NewCornellScene() *Scene {
	s := &Scene{
		Background: core.NewVec3(0, 0, 0),
		Camera: core.CameraConfig{
			Eye:    core.NewVec3(0, 1, 3.4),
			LookAt: core.NewVec3(0, 1, 0),
			Up:     core.NewVec3(0, 1, 0),
			VPDist: 1.6,
		},
	}

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))
	glossy := material.NewPhong(
		core.NewVec3(0.3, 0.3, 0.35),
		core.NewVec3(0.4, 0.4, 0.4),
		60,
	)
	light := material.NewEmissive(core.NewVec3(9, 9, 9))

	const half = 1.0 // box spans [-1,1] in x, [0,2] in y, [-1,1] in z

	s.Add(
		// Floor, ceiling, back wall
		geometry.NewQuad(core.NewVec3(-half, 0, -half),
			core.NewVec3(2*half, 0, 0), core.NewVec3(0, 0, 2*half), white),
		geometry.NewQuad(core.NewVec3(-half, 2, -half),
			core.NewVec3(0, 0, 2*half), core.NewVec3(2*half, 0, 0), white),
		geometry.NewQuad(core.NewVec3(-half, 0, -half),
			core.NewVec3(0, 2, 0), core.NewVec3(2*half, 0, 0), white),
		// Red left wall, green right wall
		geometry.NewQuad(core.NewVec3(-half, 0, -half),
			core.NewVec3(0, 0, 2*half), core.NewVec3(0, 2, 0), red),
		geometry.NewQuad(core.NewVec3(half, 0, -half),
			core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 2*half), green),
		// Ceiling light, slightly below the ceiling quad
		geometry.NewQuad(core.NewVec3(-0.3, 1.995, -0.3),
			core.NewVec3(0.6, 0, 0), core.NewVec3(0, 0, 0.6), light),
		// Contents
		geometry.NewSphere(core.NewVec3(-0.4, 0.35, -0.3), 0.35, white),
		geometry.NewSphere(core.NewVec3(0.45, 0.3, 0.2), 0.3, glossy),
	)

	return s
}
