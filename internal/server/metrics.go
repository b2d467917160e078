package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"paletteai/pkg/logging"
)

const (
	outcomeSuccess       = "success"
	outcomeProviderError = "provider_error"
	outcomeInvalidOutput = "invalid_output"
)

var (
	// MetricGenerationsTotal counts palette generations by outcome
	MetricGenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paletteai_generations_total",
		Help: "Total palette generations by outcome",
	}, []string{"outcome"})

	// MetricGenerationDuration tracks time spent waiting on the model
	MetricGenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "paletteai_generation_duration_seconds",
		Help:    "Palette generation latency in seconds",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	})

	// MetricHTTPRequestsTotal counts backend requests by route and status
	MetricHTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paletteai_http_requests_total",
		Help: "Total HTTP requests by path and status code",
	}, []string{"path", "code"})

	// MetricRateLimited counts requests rejected by the rate limiter
	MetricRateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paletteai_rate_limited_total",
		Help: "Total requests rejected by the rate limiter",
	})
)

// MetricsServer wraps the HTTP server for prometheus metrics
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start begins serving metrics (non-blocking)
func (m *MetricsServer) Start() {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Server", err, "Metrics server error")
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
