package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"

	contentTypeJSON = "application/json"

	queryDate = "date"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func runDate(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(queryDate))
}
