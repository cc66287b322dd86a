package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/dcasas/go-pathtracer/pkg/core"
	"github.com/dcasas/go-pathtracer/pkg/output"
	"github.com/dcasas/go-pathtracer/pkg/scene"
	"github.com/dcasas/go-pathtracer/pkg/tracer"
)

// Logger is the renderer's progress sink
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	Width           int
	Height          int
	SamplesPerPixel int   // Primary rays per pixel; 1 disables jittering
	TreeDepth       int   // Base recursion budget per camera ray
	Workers         int   // Parallel scanline workers; 0 = CPU count, 1 = sequential
	Seed            int64 // Base seed; worker k renders with Seed+k
}

// DefaultConfig returns the reference render settings
func DefaultConfig() Config {
	return Config{
		Width:           512,
		Height:          384,
		SamplesPerPixel: 50,
		TreeDepth:       1,
		Workers:         0,
		Seed:            42,
	}
}

// Renderer drives image synthesis: it generates primary rays per pixel,
// averages their traced radiance, tone-maps, and fills the image buffer
// scanline by scanline. OnScanline, when set, is invoked after each scanline
// is stored; it always runs on the collecting goroutine, so the image may be
// read from inside it.
type Renderer struct {
	scene      *scene.Scene
	config     Config
	logger     Logger
	OnScanline func(completed int, img *output.Image)
}

// New creates a renderer for a scene
func New(s *scene.Scene, config Config, logger Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{scene: s, config: config, logger: logger}
}

type scanlineResult struct {
	line   int
	pixels []output.Pixel
	rays   int64
}

// Render renders the whole image and returns it with run statistics
func (r *Renderer) Render() (*output.Image, RenderStats) {
	start := time.Now()

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	img := output.NewImage(r.config.Width, r.config.Height)
	camera := NewCamera(r.scene.Camera, r.config.Width, r.config.Height)

	stats := RenderStats{
		Width:           r.config.Width,
		Height:          r.config.Height,
		SamplesPerPixel: r.config.SamplesPerPixel,
	}

	if workers == 1 {
		r.renderSequential(camera, img, &stats)
	} else {
		r.renderParallel(camera, img, &stats, workers)
	}

	stats.Elapsed = time.Since(start)
	renderSeconds.Observe(stats.Elapsed.Seconds())
	r.logger.Printf("done.\n")
	return img, stats
}

// renderSequential is the reference single-stream order: scanlines top to
// bottom, one sampler for everything. Fixed seeds give bit-identical images.
func (r *Renderer) renderSequential(camera *Camera, img *output.Image, stats *RenderStats) {
	worker := r.newWorker(0)
	for line := 0; line < r.config.Height; line++ {
		pixels, rays := r.renderScanline(camera, worker, line)
		r.storeScanline(img, stats, scanlineResult{line: line, pixels: pixels, rays: rays})
	}
}

func (r *Renderer) renderParallel(camera *Camera, img *output.Image, stats *RenderStats, workers int) {
	tasks := make(chan int, r.config.Height)
	results := make(chan scanlineResult, r.config.Height)

	for w := 0; w < workers; w++ {
		go func(id int) {
			worker := r.newWorker(id)
			for line := range tasks {
				pixels, rays := r.renderScanline(camera, worker, line)
				results <- scanlineResult{line: line, pixels: pixels, rays: rays}
			}
		}(w)
	}

	for line := 0; line < r.config.Height; line++ {
		tasks <- line
	}
	close(tasks)

	for i := 0; i < r.config.Height; i++ {
		r.storeScanline(img, stats, <-results)
	}
}

// renderWorker owns a tracer and the sampler stream backing it
type renderWorker struct {
	tracer  *tracer.Tracer
	sampler core.Sampler
}

func (r *Renderer) newWorker(id int) *renderWorker {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(r.config.Seed + int64(id))))
	return &renderWorker{
		tracer: tracer.New(r.scene, sampler, tracer.Config{
			TreeDepth:        r.config.TreeDepth,
			MaxRouletteDepth: tracer.DefaultConfig().MaxRouletteDepth,
		}),
		sampler: sampler,
	}
}

// renderScanline casts all primary rays for one scanline. With one sample
// per pixel the ray goes through the pixel center; otherwise each sample is
// jittered uniformly within [-0.5, 0.5) pixel widths on both axes and the
// traced colors are averaged.
func (r *Renderer) renderScanline(camera *Camera, worker *renderWorker, line int) ([]output.Pixel, int64) {
	pixels := make([]output.Pixel, r.config.Width)
	spp := r.config.SamplesPerPixel

	for i := 0; i < r.config.Width; i++ {
		var color core.Vec3
		if spp == 1 {
			color = worker.tracer.Trace(camera.Ray(float64(i), float64(line)), r.config.TreeDepth)
		} else {
			for n := 0; n < spp; n++ {
				jitter := worker.sampler.Get2D()
				ray := camera.Ray(
					float64(i)+jitter.X-0.5,
					float64(line)+jitter.Y-0.5,
				)
				color = color.Add(worker.tracer.Trace(ray, r.config.TreeDepth))
			}
		}
		pixels[i] = ToneMap(color.Multiply(1.0 / float64(spp)))
	}

	return pixels, int64(r.config.Width * spp)
}

// storeScanline writes a finished scanline into the buffer at the vertically
// flipped row index: scanline 0 samples the top of the view plane and lands
// in the last buffer row.
func (r *Renderer) storeScanline(img *output.Image, stats *RenderStats, res scanlineResult) {
	img.SetRow(r.config.Height-res.line-1, res.pixels)

	stats.PrimaryRays += res.rays
	stats.Scanlines++
	primaryRaysTotal.Add(float64(res.rays))
	scanlinesTotal.Inc()

	if res.line%10 == 0 {
		r.logger.Printf("line %d\n", res.line)
	}
	if r.OnScanline != nil {
		r.OnScanline(stats.Scanlines, img)
	}
}
