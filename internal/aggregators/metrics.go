package aggregators

import (
	"event-rollup/internal/shared/metrics"
)

const (
	outcomeProcessed  = "processed"
	outcomeUnreadable = "unreadable"
	outcomeInvalid    = "invalid"
)

// metricRecordsTotal counts event records seen during aggregation by outcome.
//
//   - processed: counted towards an hour bucket
//   - unreadable: the object could not be fetched or read
//   - invalid: the object is not a valid event record (bad json, missing fields, bad timestamp)
var (
	metricRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_total",
		},
		[]string{metrics.FieldOutcome},
	)
)
