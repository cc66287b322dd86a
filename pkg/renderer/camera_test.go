package renderer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcasas/go-pathtracer/pkg/core"
)

func testCameraConfig() core.CameraConfig {
	return core.CameraConfig{
		Eye:    core.NewVec3(0, 1, 5),
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		VPDist: 2,
	}
}

func TestCameraCenterRayFollowsGaze(t *testing.T) {
	config := testCameraConfig()
	camera := NewCamera(config, 101, 81)

	gaze := config.LookAt.Subtract(config.Eye).Normalize()
	center := camera.Ray(50, 40) // raster midpoint of a 101x81 grid

	require.Equal(t, config.Eye, center.Origin)
	require.InDelta(t, 1.0, center.Direction.Dot(gaze), 1e-12)
}

func TestCameraRaysAreUnitLength(t *testing.T) {
	camera := NewCamera(testCameraConfig(), 64, 48)

	for _, pos := range [][2]float64{{0, 0}, {63, 0}, {0, 47}, {63, 47}, {10.3, 22.7}} {
		ray := camera.Ray(pos[0], pos[1])
		require.InDelta(t, 1.0, ray.Direction.Length(), 1e-12)
		require.False(t, ray.SkipEmitters)
	}
}

func TestCameraScanlineZeroLooksUp(t *testing.T) {
	camera := NewCamera(testCameraConfig(), 64, 48)

	top := camera.Ray(31.5, 0)
	bottom := camera.Ray(31.5, 47)
	require.Greater(t, top.Direction.Y, bottom.Direction.Y,
		"scanline 0 samples the top of the view plane")
}

func TestCameraUpOrthogonalizedAgainstGaze(t *testing.T) {
	// A non-perpendicular up hint must not skew the basis
	config := testCameraConfig()
	config.Up = core.NewVec3(0.3, 1, 0.2)
	camera := NewCamera(config, 101, 81)

	gaze := config.LookAt.Subtract(config.Eye).Normalize()
	center := camera.Ray(50, 40)
	require.InDelta(t, 1.0, center.Direction.Dot(gaze), 1e-12)
}
