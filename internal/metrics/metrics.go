package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics - коллекторы приложения на собственном реестре
// (чтобы тесты могли создавать несколько экземпляров)
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	votesTotal      *prometheus.CounterVec
	mediaProcessed  *prometheus.CounterVec
	mediaQueueDepth prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contest",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "contest",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		votesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contest",
			Name:      "votes_total",
			Help:      "Votes recorded by type.",
		}, []string{"type"}),
		mediaProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contest",
			Name:      "media_processed_total",
			Help:      "Media items processed by the worker, by final status.",
		}, []string{"status"}),
		mediaQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "contest",
			Name:      "media_queue_depth",
			Help:      "Media items waiting for processing.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.votesTotal,
		m.mediaProcessed,
		m.mediaQueueDepth,
	)
	return m
}

func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) VoteRecorded(voteType string) {
	m.votesTotal.WithLabelValues(voteType).Inc()
}

func (m *Metrics) MediaProcessed(status string) {
	m.mediaProcessed.WithLabelValues(status).Inc()
}

func (m *Metrics) SetMediaQueueDepth(n int) {
	m.mediaQueueDepth.Set(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
