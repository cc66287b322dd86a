package renderer

import (
	"github.com/dcasas/go-pathtracer/pkg/core"
)

// Camera turns raster coordinates into primary rays. The view basis is built
// once: gaze toward the look-at point, up orthogonalized against the gaze,
// right as their cross product. The raster origin sits at the top-left of a
// view plane spanning [-1,1] along both up and right at distance VPDist from
// the eye.
type Camera struct {
	eye          core.Vec3
	rasterOrigin core.Vec3
	dU           core.Vec3 // per-scanline step down the raster
	dR           core.Vec3 // per-column step across the raster
}

// NewCamera builds the ray basis for a raster of the given resolution
func NewCamera(config core.CameraConfig, width, height int) *Camera {
	gaze := config.LookAt.Subtract(config.Eye).Normalize()
	up := config.Up.PerpendicularTo(gaze).Normalize()
	right := gaze.Cross(up).Normalize()

	return &Camera{
		eye:          config.Eye,
		rasterOrigin: gaze.Multiply(config.VPDist).Subtract(right).Add(up),
		dU:           up.Multiply(2.0 / float64(height-1)),
		dR:           right.Multiply(2.0 / float64(width-1)),
	}
}

// Ray returns the primary ray through raster position (x, y), where y counts
// scanlines from the top of the view plane. Fractional positions give
// jittered rays for multisampling.
func (c *Camera) Ray(x, y float64) core.Ray {
	direction := c.rasterOrigin.
		Add(c.dR.Multiply(x)).
		Subtract(c.dU.Multiply(y)).
		Normalize()
	return core.Ray{Origin: c.eye, Direction: direction}
}
