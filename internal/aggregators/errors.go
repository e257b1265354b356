package aggregators

import (
	"fmt"

	"event-rollup/internal/shared/svcerrors"
)

const (
	codeInternalAggregationAborted = "AGG_9000"
)

// errAggregationAborted returns an error when aggregation stops before every object was read.
func errAggregationAborted(processed int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregationAborted, fmt.Errorf("aggregationAborted after %d records: %w", processed, cause))
}
