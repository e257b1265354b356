package http

import (
	"net/http"
	"time"

	"event-rollup/internal/pipelines"
	"event-rollup/internal/shared/svcerrors"
)

const (
	codeInvalidRunDate = "HTTP_1000"
)

type runHandler struct {
	pipeline pipelines.RollupPipeline
}

func NewRunHandler(pipeline pipelines.RollupPipeline) AppHttpHandler {
	return &runHandler{pipeline: pipeline}
}

// Handle processes POST /runs: one synchronous rollup run, optionally for ?date=YYYY-MM-DD.
// Completed runs, empty days and days without valid events all answer 200 with the run report.
func (h *runHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var opts pipelines.RunOptions
	if raw := runDate(r); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return svcerrors.NewInvalidArgumentError(codeInvalidRunDate, "date must be YYYY-MM-DD", err)
		}
		opts.Date = date
	}

	result, err := h.pipeline.Run(r.Context(), opts)
	if err != nil {
		return err
	}

	writeJSON(w, result.Code, result)
	return nil
}
