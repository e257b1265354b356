package loaders

import (
	"fmt"

	"event-rollup/internal/shared/svcerrors"
	"event-rollup/internal/warehouses"
)

const (
	codeSchemaMismatch  = "LOAD_1000"
	codeInvalidLocation = "LOAD_1001"

	codeInternalLoadFailed        = "LOAD_9000"
	codeInternalSummaryReadFailed = "LOAD_9001"
)

// errSchemaMismatch returns an error when the published summary does not have the summary schema.
func errSchemaMismatch(location string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeSchemaMismatch, "summary schema mismatch at "+location, cause)
}

// errColumnNameTooLong returns an error when an event type yields a column name the warehouse would truncate.
func errColumnNameTooLong(location, column string) *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeSchemaMismatch,
		fmt.Sprintf("summary schema mismatch at %s: column %q exceeds %d bytes", location, column, warehouses.MaxIdentifierLength), nil)
}

// errInvalidLocation returns an error when the location is not in the summary bucket.
func errInvalidLocation(location string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLocation, "invalid summary location: "+location, cause)
}

// errInternalLoadFailed returns an error when the warehouse rejects or cannot complete the load.
func errInternalLoadFailed(table warehouses.TableRef, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLoadFailed, fmt.Errorf("loadFailed %s: %w", table, cause))
}

// errInternalLoadVerificationFailed returns an error when the loaded table differs from the summary.
func errInternalLoadVerificationFailed(table warehouses.TableRef, format string, args ...any) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLoadFailed, fmt.Errorf("loadVerificationFailed %s: "+format, append([]any{table}, args...)...))
}

// errInternalSummaryReadFailed returns an error when the published summary cannot be read.
func errInternalSummaryReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryReadFailed, fmt.Errorf("summaryReadFailed: %w", cause))
}
