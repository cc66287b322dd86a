package scene

import (
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/geometry"
	"github.com/dcasas/go-pathtracer/pkg/material"
)

// sceneFile is the on-disk JSON scene description
type sceneFile struct {
	Background [3]float64   `json:"background"`
	Camera     cameraFile   `json:"camera"`
	Objects    []objectFile `json:"objects"`
}

type cameraFile struct {
	Eye    [3]float64 `json:"eye"`
	LookAt [3]float64 `json:"lookat"`
	Up     [3]float64 `json:"up"`
	VPDist float64    `json:"vpdist"`
}

type objectFile struct {
	Type     string       `json:"type"`
	Material materialFile `json:"material"`

	// sphere
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
	// plane
	Point  [3]float64 `json:"point"`
	Normal [3]float64 `json:"normal"`
	// triangle
	V0 [3]float64 `json:"v0"`
	V1 [3]float64 `json:"v1"`
	V2 [3]float64 `json:"v2"`
	// quad
	Corner [3]float64 `json:"corner"`
	U      [3]float64 `json:"u"`
	V      [3]float64 `json:"v"`
}

type materialFile struct {
	Diffuse  [3]float64 `json:"diffuse"`
	Specular [3]float64 `json:"specular"`
	PhongExp float64    `json:"phong_exp"`
	Emission [3]float64 `json:"emission"`
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func (m materialFile) build() material.Material {
	emission := vec(m.Emission)
	if emission.LengthSquared() > 0 {
		return material.NewEmissive(emission)
	}
	return material.Material{
		Diffuse:  vec(m.Diffuse),
		Specular: vec(m.Specular),
		PhongExp: m.PhongExp,
	}
}

// Load reads a JSON scene description from path
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading scene file").WithTag("path", path).Wrap(err)
	}

	var file sceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.New("parsing scene file").WithTag("path", path).Wrap(err)
	}

	s := &Scene{
		Background: vec(file.Background),
		Camera: core.CameraConfig{
			Eye:    vec(file.Camera.Eye),
			LookAt: vec(file.Camera.LookAt),
			Up:     vec(file.Camera.Up),
			VPDist: file.Camera.VPDist,
		},
	}
	if s.Camera.VPDist <= 0 {
		s.Camera.VPDist = 2.0
	}

	for i, obj := range file.Objects {
		mat := obj.Material.build()
		switch obj.Type {
		case "sphere":
			s.Add(geometry.NewSphere(vec(obj.Center), obj.Radius, mat))
		case "plane":
			s.Add(geometry.NewPlane(vec(obj.Point), vec(obj.Normal), mat))
		case "triangle":
			s.Add(geometry.NewTriangle(vec(obj.V0), vec(obj.V1), vec(obj.V2), mat))
		case "quad":
			s.Add(geometry.NewQuad(vec(obj.Corner), vec(obj.U), vec(obj.V), mat))
		default:
			return nil, errors.New("unknown object type").
				WithTag("path", path).
				WithTag("index", i).
				WithTag("type", obj.Type)
		}
	}

	return s, nil
}
