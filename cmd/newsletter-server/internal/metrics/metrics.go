// Package metrics holds the Prometheus collectors of the newsletter server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SubscriptionRequests *prometheus.CounterVec
	SubscriptionDuration prometheus.Histogram
	HTTPRequests         *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New creates the metrics and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SubscriptionRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsletter_subscription_requests_total",
			Help: "Subscription requests by outcome",
		}, []string{"outcome"}),
		SubscriptionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsletter_subscription_duration_seconds",
			Help:    "Time spent handling subscription requests",
			Buckets: prometheus.DefBuckets,
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newsletter_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),
		gatherer: reg,
	}
}

// NewDefault creates a registry carrying the Go runtime and process collectors.
func NewDefault() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, New(reg)
}

// ObserveSubscription records one subscription request.
func (m *Metrics) ObserveSubscription(outcome string, elapsed time.Duration) {
	m.SubscriptionRequests.WithLabelValues(outcome).Inc()
	m.SubscriptionDuration.Observe(elapsed.Seconds())
}

// ObserveHTTP records one HTTP response.
func (m *Metrics) ObserveHTTP(route, code string) {
	m.HTTPRequests.WithLabelValues(route, code).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
