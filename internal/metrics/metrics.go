package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tracker"

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	DomainEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "domain_events_total",
		Help:      "Domain events published, by type.",
	}, []string{"type"})

	HistoryRecords = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticket_history_records_total",
		Help:      "Ticket history rows written.",
	})

	BroadcastDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_dropped_total",
		Help:      "Messages dropped because a listener's buffer was full.",
	})

	Listeners = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "broadcast_listeners",
		Help:      "Currently registered broadcast listeners.",
	})
)

func init() {
	prometheus.MustRegister(
		HTTPRequests,
		HTTPDuration,
		DomainEvents,
		HistoryRecords,
		BroadcastDropped,
		Listeners,
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
