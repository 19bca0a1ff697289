package workflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	callsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unmask",
			Subsystem: "collaborator",
			Name:      "calls_total",
			Help:      "Collaborator calls by step and outcome.",
		},
		[]string{"step", "outcome"},
	)

	callDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "unmask",
			Subsystem: "collaborator",
			Name:      "call_duration_seconds",
			Help:      "Collaborator call latency by step.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"step"},
	)
)
