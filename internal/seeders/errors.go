package seeders

import (
	"fmt"

	"event-rollup/internal/shared/svcerrors"
)

const (
	codeInvalidSeedCount = "SEED_1000"
	codeInvalidStartSeq  = "SEED_1001"

	codeInternalSeedWriteFailed = "SEED_9000"
)

func errInvalidSeedCount(count, max int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidSeedCount, fmt.Sprintf("count must be between 1 and %d, got %d", max, count), nil)
}

func errInvalidStartSeq(seq int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidStartSeq, fmt.Sprintf("start sequence must be positive, got %d", seq), nil)
}

// errInternalSeedWriteFailed returns an error when a record cannot be written to the source bucket.
func errInternalSeedWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSeedWriteFailed, fmt.Errorf("seedWriteFailed: %w", cause))
}
