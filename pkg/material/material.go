package material

import (
	"github.com/dcasas/go-pathtracer/pkg/core"
)

// Material describes how a surface reflects and emits light. Diffuse and
// Specular are per-channel reflectances, PhongExp controls specular lobe
// sharpness (a value <= 0 disables the specular lobe entirely), and Emission
// is the radiance an emitter radiates. Materials are read-only during
// rendering.
type Material struct {
	Diffuse  core.Vec3
	Specular core.Vec3
	PhongExp float64
	Emission core.Vec3
	Emissive bool
}

// NewDiffuse creates a purely diffuse material
func NewDiffuse(diffuse core.Vec3) Material {
	return Material{Diffuse: diffuse}
}

// NewPhong creates a material with diffuse and Phong specular components
func NewPhong(diffuse, specular core.Vec3, phongExp float64) Material {
	return Material{Diffuse: diffuse, Specular: specular, PhongExp: phongExp}
}

// NewEmissive creates a light-emitting material
func NewEmissive(emission core.Vec3) Material {
	return Material{Emission: emission, Emissive: true}
}

// IsEmitter reports whether the material emits light
func (m Material) IsEmitter() bool {
	return m.Emissive
}

// MeanDiffuse returns the mean diffuse reflectance across the color channels
func (m Material) MeanDiffuse() float64 {
	return m.Diffuse.Mean()
}

// MeanSpecular returns the mean specular reflectance across the color channels
func (m Material) MeanSpecular() float64 {
	return m.Specular.Mean()
}
