package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument    = "invalid_argument"
	categoryResourceConflict   = "resource_conflict"
	categoryFailedPrecondition = "failed_precondition"
	categoryUnavailable        = "unavailable"
	categoryInternal           = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"

	internalMessage = "internal server error"
)

// statusOf maps a category to the status the run trigger answers with.
var statusOf = map[string]int{
	categoryInvalidArgument:    http.StatusBadRequest,
	categoryResourceConflict:   http.StatusConflict,
	categoryFailedPrecondition: http.StatusUnprocessableEntity,
	categoryUnavailable:        http.StatusServiceUnavailable,
	categoryInternal:           http.StatusInternalServerError,
}

// ServiceError is a failure with a stable code callers and dashboards can rely on.
// Message is safe to return to clients; Cause is not.
type ServiceError struct {
	Category       string
	Code           string
	Message        string
	Cause          error
	HttpStatusCode int
}

func newServiceError(category, code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       category,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: statusOf[category],
	}
}

// NewInvalidArgumentError reports bad caller input such as a malformed run date.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryInvalidArgument, code, message, cause)
}

// NewFailedPreconditionError reports persisted state (a published file, a table schema) with an unexpected shape.
func NewFailedPreconditionError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryFailedPrecondition, code, message, cause)
}

// NewUnavailableError reports a dependency (bucket, warehouse) that cannot be reached.
func NewUnavailableError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryUnavailable, code, message, cause)
}

// NewResourceConflictError reports work that collides with existing state or another run.
func NewResourceConflictError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryResourceConflict, code, message, cause)
}

// NewInternalError hides cause behind a generic message.
func NewInternalError(code string, cause error) *ServiceError {
	return newServiceError(categoryInternal, code, internalMessage, cause)
}

// NewInternalErrorUndefined wraps an error that carries no code of its own.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// AsServiceError finds the first ServiceError in err's chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		return nil, false
	}
	return svcErr, true
}

// CodeOf returns the stable code of err, SYS_9001 for errors that carry none and "" for nil.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr.Code
	}
	return errorCodeInternalUndefined
}

func (e *ServiceError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
