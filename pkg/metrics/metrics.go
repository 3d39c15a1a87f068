package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private Prometheus registry for the service.
// A nil *Recorder is valid and records nothing.
//
// Metrics:
//   - horoscope_generated_total{sign}
//   - horoscope_rejected_total{reason}
//   - horoscope_http_requests_total{method,route,status}
//   - horoscope_http_request_duration_seconds{method,route}
type Recorder struct {
	registry        *prometheus.Registry
	generated       *prometheus.CounterVec
	rejected        *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRecorder creates and registers the service metrics.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "horoscope_generated_total",
				Help: "Total number of horoscope records handed out",
			},
			[]string{"sign"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "horoscope_rejected_total",
				Help: "Total number of rejected generation requests",
			},
			[]string{"reason"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "horoscope_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "horoscope_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	registry.MustRegister(
		r.generated,
		r.rejected,
		r.requests,
		r.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveGenerated counts one handed out record.
func (r *Recorder) ObserveGenerated(sign string) {
	if r == nil {
		return
	}
	r.generated.WithLabelValues(sign).Inc()
}

// ObserveRejected counts one rejected request.
func (r *Recorder) ObserveRejected(reason string) {
	if r == nil {
		return
	}
	r.rejected.WithLabelValues(reason).Inc()
}

// ObserveRequest records one served HTTP request.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
