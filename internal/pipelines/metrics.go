package pipelines

import (
	"event-rollup/internal/shared/metrics"
)

var (
	// metricRunTotal counts finished runs by terminal status and error code.
	metricRunTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "run_total",
		},
		[]string{metrics.FieldStatus, metrics.FieldErrorCode},
	)

	metricRunDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "run_duration_seconds",
			Buckets:   metrics.RunBuckets,
		},
		[]string{metrics.FieldStatus},
	)
)
