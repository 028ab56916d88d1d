package v1

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var statsRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "coinary_stats_requests_total",
	Help: "Number of stats requests by endpoint.",
}, []string{"endpoint"})

var statsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "coinary_stats_duration_seconds",
	Help:    "Duration of stats aggregations by endpoint.",
	Buckets: prometheus.DefBuckets,
}, []string{"endpoint"})

// observeStats records one stats request. Meant to be deferred at the
// start of a handler.
func observeStats(endpoint string, begin time.Time) {
	statsRequests.WithLabelValues(endpoint).Inc()
	statsDuration.WithLabelValues(endpoint).Observe(time.Since(begin).Seconds())
}
