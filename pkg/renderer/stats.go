package renderer

import "time"

// RenderStats summarizes a completed render
type RenderStats struct {
	Width, Height   int
	PrimaryRays     int64
	SamplesPerPixel int
	Scanlines       int
	Elapsed         time.Duration
}

// TotalPixels returns the number of pixels rendered
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}
