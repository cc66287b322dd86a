package scene

import (
	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering: an insertion-ordered
// slice of objects, a background color returned for rays that escape, and the
// camera. Scenes are read-only while a render is in flight.
type Scene struct {
	Objects    []geometry.Object
	Background core.Vec3
	Camera     core.CameraConfig
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Object) {
	s.Objects = append(s.Objects, objects...)
}

// Emitters returns the light-emitting objects in scene order
func (s *Scene) Emitters() []geometry.Object {
	var emitters []geometry.Object
	for _, obj := range s.Objects {
		if obj.Material().IsEmitter() {
			emitters = append(emitters, obj)
		}
	}
	return emitters
}
