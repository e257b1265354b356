package reconcilers

import (
	"fmt"

	"event-rollup/internal/shared/svcerrors"
	"event-rollup/internal/warehouses"
)

const (
	codeStagingSchemaInvalid = "MERGE_1000"

	codeInternalMergeFailed = "MERGE_9000"
)

// errStagingSchemaInvalid returns an error when the staging table does not have the summary schema.
func errStagingSchemaInvalid(staging warehouses.TableRef, cause error) *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeStagingSchemaInvalid, "staging table "+staging.String()+" does not have the summary schema", cause)
}

// errInternalMergeFailed returns an error when the merge cannot be prepared or executed.
func errInternalMergeFailed(staging, main warehouses.TableRef, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalMergeFailed, fmt.Errorf("mergeFailed %s into %s: %w", staging, main, cause))
}
