package renderer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	primaryRaysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathtracer_primary_rays_total",
		Help: "Primary rays cast from the eye.",
	})

	scanlinesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathtracer_scanlines_total",
		Help: "Scanlines rendered.",
	})

	renderSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathtracer_render_seconds",
		Help:    "Wall-clock duration of complete renders.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})
)
