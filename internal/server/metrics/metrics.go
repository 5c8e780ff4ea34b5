// Package metrics collects and exposes Prometheus metrics for the WallMagic server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the HTTP layer uses to record metrics.
type Recorder interface {
	RecordRequest(method string, route string, status int, elapsed time.Duration)
	RecordRegistration()
	RecordLogin(success bool)
}

// Collector implements Recorder on top of a Prometheus registry.
type Collector struct {
	requests      *prometheus.CounterVec
	duration      prometheus.Histogram
	registrations prometheus.Counter
	logins        *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallmagic_http_requests_total",
			Help: "Number of handled HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wallmagic_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wallmagic_registrations_total",
			Help: "Number of successfully registered accounts.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallmagic_logins_total",
			Help: "Number of login attempts by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.requests,
		c.duration,
		c.registrations,
		c.logins,
	)

	return c
}

// RecordRequest counts one handled request. The route label takes the
// router pattern rather than the raw URL to keep cardinality bounded.
func (c *Collector) RecordRequest(method string, route string, status int, elapsed time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.duration.Observe(elapsed.Seconds())
}

// RecordRegistration counts one completed registration.
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordLogin counts one login attempt.
func (c *Collector) RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.logins.WithLabelValues(result).Inc()
}

// Handler returns the HTTP handler that serves the registry in Prometheus
// exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
