// Package metrics provides Prometheus metrics collection for the label service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// LabelCompositionsTotal tracks total label compositions by outcome.
	LabelCompositionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "label_compositions_total",
			Help: "Total number of label compositions",
		},
		[]string{"status"},
	)

	// LabelCompositionDuration tracks the full compose pipeline duration.
	LabelCompositionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "label_composition_duration_seconds",
			Help:    "Label composition duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
	)

	// StickerPagesTotal tracks how many sticker pages were rendered.
	StickerPagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sticker_pages_total",
			Help: "Total number of sticker pages rendered",
		},
	)

	// LabelFetchesTotal tracks marketplace label downloads by result.
	LabelFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "label_fetches_total",
			Help: "Total number of marketplace label downloads",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordComposition records metrics for one label composition.
func RecordComposition(duration time.Duration, status string, stickerPages int) {
	LabelCompositionDuration.Observe(duration.Seconds())
	LabelCompositionsTotal.WithLabelValues(status).Inc()
	if stickerPages > 0 {
		StickerPagesTotal.Add(float64(stickerPages))
	}
}

// RecordLabelFetch records the outcome of a marketplace label download.
func RecordLabelFetch(result string) {
	LabelFetchesTotal.WithLabelValues(result).Inc()
}
