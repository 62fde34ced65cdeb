package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "learnopengl_frames_rendered_total",
		Help: "Total number of frames drawn and presented",
	})
	ResizeEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "learnopengl_resize_events_total",
		Help: "Total number of framebuffer resize events handled",
	})
	ShaderCompileFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "learnopengl_shader_compile_failures_total",
		Help: "Total number of shader stages or programs that failed to compile or link",
	}, []string{"stage"})
	FrameSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "learnopengl_frame_seconds",
		Help:    "Time between consecutive presented frames",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	})
)

func init() {
	for _, stage := range []string{"vertex", "fragment", "link"} {
		ShaderCompileFailures.WithLabelValues(stage).Add(0)
	}
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
