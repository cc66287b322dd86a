package renderer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/output"
)

func TestToneMapAnchors(t *testing.T) {
	require.Equal(t, output.Pixel{R: 0, G: 0, B: 0}, ToneMap(core.NewVec3(0, 0, 0)))
	require.Equal(t, output.Pixel{R: 255, G: 255, B: 255}, ToneMap(core.NewVec3(1, 1, 1)))
}

func TestToneMapHardClip(t *testing.T) {
	// Values above 1.0 clip without any highlight compression
	require.Equal(t, output.Pixel{R: 255, G: 0, B: 0}, ToneMap(core.NewVec3(2, 0, 0)))
	require.Equal(t, output.Pixel{R: 255, G: 255, B: 255}, ToneMap(core.NewVec3(100, 100, 100)))
}

func TestToneMapNegativeClampsToZero(t *testing.T) {
	require.Equal(t, output.Pixel{R: 0, G: 0, B: 0}, ToneMap(core.NewVec3(-0.5, -1, 0)))
}

func TestToneMapQuantization(t *testing.T) {
	require.Equal(t, output.Pixel{R: 128, G: 128, B: 128}, ToneMap(core.NewVec3(0.5, 0.5, 0.5)))
	// floor, not round
	require.Equal(t, uint8(1), ToneMap(core.NewVec3(0.0078, 0, 0)).R) // 256*0.0078 = 1.9968
}

func TestToneMapMonotonic(t *testing.T) {
	prev := uint8(0)
	for v := 0.0; v <= 1.5; v += 0.01 {
		cur := ToneMap(core.NewVec3(v, v, v)).R
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}
