package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	FieldErrorCode = "error_code"
	FieldStatus    = "status"
	FieldOutcome   = "outcome"

	ValueNoError = ""

	Namespace      = "event_rollup"
	SubEnumeration = "enumeration"
	SubAggregation = "aggregation"
	SubLoad        = "load"
	SubMerge       = "merge"
	SubPipeline    = "pipeline"
	SubHTTP        = "http"
)

type (
	CounterOpts   = prometheus.CounterOpts
	HistogramOpts = prometheus.HistogramOpts
)

// RunBuckets covers a whole rollup run, from an empty day to a large backfill.
var RunBuckets = []float64{.05, .5, 1, 5, 15, 30, 60, 120, 300, 600, 1800}

// NewCounterVec and NewHistogramVec register with the default registry, which both
// Handler and Push read from.
var (
	NewCounterVec   = promauto.NewCounterVec
	NewHistogramVec = promauto.NewHistogramVec
)

// Handler serves the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Push sends everything in the default registry to a Pushgateway under job.
// One-shot runs exit before a scrape could happen, so they push instead.
var Push = func(gatewayURL, job string) error {
	return push.New(gatewayURL, job).
		Gatherer(prometheus.DefaultGatherer).
		Push()
}
