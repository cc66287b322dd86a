package renderer

import (
	"math"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/output"
)

// ToneMap converts linear radiance to a display pixel: each channel maps to
// floor(256*value) clamped to [0, 255]. Values above 1.0 clip hard; there is
// no gamma correction or highlight compression.
func ToneMap(color core.Vec3) output.Pixel {
	return output.Pixel{
		R: toneChannel(color.X),
		G: toneChannel(color.Y),
		B: toneChannel(color.Z),
	}
}

func toneChannel(v float64) uint8 {
	c := int(math.Floor(256 * v))
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return uint8(c)
}
