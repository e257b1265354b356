package enumerators

import (
	"fmt"

	"event-rollup/internal/shared/svcerrors"
)

const (
	codeInvalidThreshold = "ENUM_1000"

	codeStorageUnavailable = "ENUM_9000"
)

// errInvalidThreshold returns an error for a negative age threshold.
func errInvalidThreshold(hours int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidThreshold, fmt.Sprintf("hours threshold must be >= 0, got %d", hours), nil)
}

// errStorageUnavailable returns an error when the source bucket cannot be listed.
func errStorageUnavailable(bucket, prefix string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeStorageUnavailable, fmt.Sprintf("failed to list %s/%s", bucket, prefix), cause)
}
