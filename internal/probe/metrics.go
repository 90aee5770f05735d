package probe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "probe_checks_total",
		Help: "Diagnostics executed by the probe service, by check and outcome.",
	}, []string{"check", "outcome"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "probe_http_request_duration_seconds",
		Help:    "Time spent serving probe API requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)
