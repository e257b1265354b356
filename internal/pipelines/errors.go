package pipelines

import (
	"fmt"

	"event-rollup/internal/shared/svcerrors"
)

const (
	codeInvalidDate   = "RUN_1000"
	codeRunInProgress = "RUN_1001"

	codeInternalPublishFailed = "PUB_9000"
)

// errInvalidDate returns an error for a run date that lies in the future.
func errInvalidDate(date string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDate, fmt.Sprintf("run date %s is in the future", date), nil)
}

// errRunInProgress returns an error when another run holds the pipeline.
func errRunInProgress() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeRunInProgress, "a rollup run is already in progress", nil)
}

// errInternalPublishFailed returns an error when the summary cannot be written to the summary bucket.
func errInternalPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPublishFailed, fmt.Errorf("summaryPublishFailed: %w", cause))
}
