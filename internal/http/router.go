package http

import (
	"net/http"

	"event-rollup/internal/pipelines"
	"event-rollup/internal/shared/loggers"
	"event-rollup/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router of the run trigger.
func NewRouter(pipeline pipelines.RollupPipeline, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Post("/runs", errorHandlingAdapter(NewRunHandler(pipeline)))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	return router
}
