package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/geometry"
	"github.com/dcasas/go-pathtracer/pkg/material"
)

func TestEmitters(t *testing.T) {
	s := &Scene{}
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 5, 0), 1, material.NewEmissive(core.NewVec3(4, 4, 4))),
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7))),
	)

	emitters := s.Emitters()
	require.Len(t, emitters, 1)
	require.True(t, emitters[0].Material().IsEmitter())
}

func TestBuiltinScenesHaveEmitters(t *testing.T) {
	for name, s := range map[string]*Scene{
		"default": NewDefaultScene(),
		"cornell": NewCornellScene(),
	} {
		require.NotEmpty(t, s.Objects, name)
		require.NotEmpty(t, s.Emitters(), name)
		require.Greater(t, s.Camera.VPDist, 0.0, name)
	}
}

const testSceneJSON = `{
	"background": [0.1, 0.2, 0.3],
	"camera": {"eye": [0, 1, 4], "lookat": [0, 1, 0], "up": [0, 1, 0], "vpdist": 2},
	"objects": [
		{"type": "sphere", "center": [0, 1, -2], "radius": 0.5,
		 "material": {"diffuse": [0.6, 0.6, 0.6]}},
		{"type": "plane", "point": [0, 0, 0], "normal": [0, 1, 0],
		 "material": {"diffuse": [0.7, 0.7, 0.7], "specular": [0.1, 0.1, 0.1], "phong_exp": 20}},
		{"type": "quad", "corner": [-1, 3, -3], "u": [2, 0, 0], "v": [0, 0, 2],
		 "material": {"emission": [8, 8, 8]}},
		{"type": "triangle", "v0": [-1, 0, -4], "v1": [1, 0, -4], "v2": [0, 2, -4],
		 "material": {"diffuse": [0.2, 0.4, 0.8]}}
	]
}`

func writeSceneFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	s, err := Load(writeSceneFile(t, testSceneJSON))
	require.NoError(t, err)

	require.Equal(t, core.NewVec3(0.1, 0.2, 0.3), s.Background)
	require.Equal(t, core.NewVec3(0, 1, 4), s.Camera.Eye)
	require.Equal(t, 2.0, s.Camera.VPDist)
	require.Len(t, s.Objects, 4)
	require.Len(t, s.Emitters(), 1)

	require.IsType(t, &geometry.Sphere{}, s.Objects[0])
	require.IsType(t, &geometry.Plane{}, s.Objects[1])
	require.IsType(t, &geometry.Quad{}, s.Objects[2])
	require.IsType(t, &geometry.Triangle{}, s.Objects[3])

	plane := s.Objects[1].(*geometry.Plane)
	require.Equal(t, 20.0, plane.Material().PhongExp)

	quad := s.Objects[2].(*geometry.Quad)
	require.Equal(t, core.NewVec3(8, 8, 8), quad.Material().Emission)
}

func TestLoadDefaultsViewPlaneDistance(t *testing.T) {
	s, err := Load(writeSceneFile(t, `{"objects": []}`))
	require.NoError(t, err)
	require.Equal(t, 2.0, s.Camera.VPDist)
}

func TestLoadRejectsUnknownObjectType(t *testing.T) {
	_, err := Load(writeSceneFile(t, `{"objects": [{"type": "torus"}]}`))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
