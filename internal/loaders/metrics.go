package loaders

import (
	"event-rollup/internal/shared/metrics"
)

var (
	// metricLoadTotal counts staging loads by error code, "" for success.
	metricLoadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubLoad,
			Name:      "staging_load_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRowsLoadedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubLoad,
			Name:      "rows_loaded_total",
		},
		[]string{},
	)
)
