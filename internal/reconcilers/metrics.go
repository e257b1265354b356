package reconcilers

import (
	"event-rollup/internal/shared/metrics"
)

var (
	// metricMergeTotal counts merges by error code, "" for success.
	metricMergeTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMerge,
			Name:      "merge_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricRowsMergedTotal counts main table rows inserted or updated.
	metricRowsMergedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMerge,
			Name:      "rows_merged_total",
		},
		[]string{},
	)
)
