package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID     = "run_id"
	FieldRunDate   = "run_date"
	FieldJobID     = "job_id"
	FieldObjectKey = "object_key"
	FieldLocation  = "location"
	FieldTable     = "table"
)
