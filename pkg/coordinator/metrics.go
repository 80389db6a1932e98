package coordinator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	dispatchDuration  prometheus.Histogram
	remainingBackends prometheus.Gauge
	scanRangesTotal   prometheus.Counter
	queriesCancelled  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		dispatchDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "stride_coordinator_fragment_dispatch_duration_seconds",
			Help:    "Time taken to start all remote fragment instances of a query.",
			Buckets: prometheus.DefBuckets,
		}),
		remainingBackends: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "stride_coordinator_remaining_backends",
			Help: "Remote fragment instances not yet reported done, summed over running queries.",
		}),
		scanRangesTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "stride_coordinator_scan_ranges_total",
			Help: "Scan ranges assigned across all queries.",
		}),
		queriesCancelled: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "stride_coordinator_queries_cancelled_total",
			Help: "Queries that were cancelled, by client request or after a backend error.",
		}),
	}
}
