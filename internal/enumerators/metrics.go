package enumerators

import (
	"event-rollup/internal/shared/metrics"
)

const (
	outcomeEligible   = "eligible"
	outcomeTooRecent  = "too_recent"
	outcomeNotRecord  = "not_record"
	outcomeListFailed = "list_failed"
)

// metricObjectsEnumeratedTotal counts listed objects by what the enumerator did with them.
// A failed listing counts once under outcome="list_failed".
var (
	metricObjectsEnumeratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubEnumeration,
			Name:      "objects_enumerated_total",
		},
		[]string{metrics.FieldOutcome},
	)
)
