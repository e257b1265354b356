package pipelines

import (
	"context"
	"net/http"
	"sync"
	"time"

	"event-rollup/internal/aggregators"
	"event-rollup/internal/enumerators"
	"event-rollup/internal/loaders"
	"event-rollup/internal/models"
	"event-rollup/internal/reconcilers"
	"event-rollup/internal/shared/loggers"
	"event-rollup/internal/shared/svcerrors"
	"event-rollup/internal/shared/ulid"
	"event-rollup/internal/stores"
	"event-rollup/internal/warehouses"
)

const (
	StatusCompleted     = "completed"
	StatusNoData        = "no_data"
	StatusNoValidEvents = "no_valid_events"
	StatusFailed        = "failed"
)

const (
	messageCompleted     = "Rollup completed"
	messageNoData        = "No data to process"
	messageNoValidEvents = "No valid events to process"
)

// Config is what a run needs besides its collaborators.
type Config struct {
	HoursThreshold int
	StagingTable   warehouses.TableRef
	MainTable      warehouses.TableRef
}

type RunOptions struct {
	// Date overrides the processed day. Zero means the day before now (UTC).
	Date time.Time
}

// RunResult is the report of one run. Code is the status code an HTTP caller sees.
type RunResult struct {
	RunID          string        `json:"runId"`
	Date           string        `json:"date"`
	Status         string        `json:"status"`
	Message        string        `json:"message"`
	Code           int           `json:"code"`
	ObjectCount    int           `json:"objectCount"`
	ProcessedCount int           `json:"processedCount"`
	SkippedCount   int           `json:"skippedCount"`
	HourCount      int           `json:"hourCount"`
	EventTypes     []string      `json:"eventTypes,omitempty"`
	Location       string        `json:"location,omitempty"`
	LoadJobID      string        `json:"loadJobId,omitempty"`
	RowsLoaded     int64         `json:"rowsLoaded"`
	RowsMerged     int64         `json:"rowsMerged"`
	Duration       time.Duration `json:"-"`
	DurationMs     int64         `json:"durationMs"`
}

//go:generate mockgen -source=rollup_pipeline.go -destination=./mocks/rollup_pipeline_mock.go -package=mocks
type RollupPipeline interface {
	// Run processes one day: enumerate, aggregate, publish, load staging, merge into main.
	// Steps run strictly in order and the first failure aborts the run.
	Run(ctx context.Context, opts RunOptions) (*RunResult, error)
}

type rollupPipeline struct {
	cfg          Config
	enumerator   enumerators.RecordEnumerator
	aggregator   aggregators.EventAggregator
	summaryStore stores.SummaryStore
	loader       loaders.StagingLoader
	reconciler   reconcilers.MergeReconciler
	now          func() time.Time

	running sync.Mutex
}

func NewRollupPipeline(
	cfg Config,
	enumerator enumerators.RecordEnumerator,
	aggregator aggregators.EventAggregator,
	summaryStore stores.SummaryStore,
	loader loaders.StagingLoader,
	reconciler reconcilers.MergeReconciler,
	now func() time.Time,
) RollupPipeline {
	if now == nil {
		now = time.Now
	}
	return &rollupPipeline{
		cfg:          cfg,
		enumerator:   enumerator,
		aggregator:   aggregator,
		summaryStore: summaryStore,
		loader:       loader,
		reconciler:   reconciler,
		now:          now,
	}
}

func (p *rollupPipeline) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if !p.running.TryLock() {
		return nil, errRunInProgress()
	}
	defer p.running.Unlock()

	start := p.now()
	window := models.PriorDayWindow(start)
	if !opts.Date.IsZero() {
		window = models.WindowForDate(opts.Date)
		if window.Date.After(start.UTC()) {
			return nil, errInvalidDate(window.DateString())
		}
	}

	result := &RunResult{RunID: ulid.NewULID(), Date: window.DateString()}
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, result.RunID).
		Str(loggers.FieldRunDate, result.Date).
		Logger()
	ctx = logger.WithContext(ctx)
	logger.Info().Str("prefix", window.EventPrefix()).Msg("started rollup run")

	err := p.run(ctx, window, result)

	result.Duration = p.now().Sub(start)
	result.DurationMs = result.Duration.Milliseconds()
	code := svcerrors.CodeOf(err)
	if err != nil {
		result.Status = StatusFailed
	}
	metricRunTotal.WithLabelValues(result.Status, code).Inc()
	metricRunDurationSeconds.WithLabelValues(result.Status).Observe(result.Duration.Seconds())

	if err != nil {
		logger.Error().
			Err(err).
			Str(loggers.FieldErrorCode, code).
			Dur(loggers.FieldDuration, result.Duration).
			Msg("rollup run failed")
		return nil, err
	}

	logger.Info().
		Str("status", result.Status).
		Int("objects", result.ObjectCount).
		Int("processed", result.ProcessedCount).
		Int("skipped", result.SkippedCount).
		Int64("rows_merged", result.RowsMerged).
		Dur(loggers.FieldDuration, result.Duration).
		Msg("finished rollup run")
	return result, nil
}

func (p *rollupPipeline) run(ctx context.Context, window models.RunWindow, result *RunResult) error {
	objects, err := p.enumerator.ListEligible(ctx, window.EventPrefix(), p.cfg.HoursThreshold)
	if err != nil {
		return err
	}
	result.ObjectCount = len(objects)
	if len(objects) == 0 {
		finish(result, StatusNoData, messageNoData)
		return nil
	}

	aggregate, err := p.aggregator.Aggregate(ctx, objects)
	if err != nil {
		return err
	}
	result.ProcessedCount = aggregate.ProcessedCount
	result.SkippedCount = aggregate.SkippedCount
	if aggregate.ProcessedCount == 0 {
		finish(result, StatusNoValidEvents, messageNoValidEvents)
		return nil
	}
	result.HourCount = len(aggregate.Summary.Rows)
	result.EventTypes = aggregate.Summary.EventTypes

	location, err := p.summaryStore.Put(ctx, aggregate.Summary, window)
	if err != nil {
		return errInternalPublishFailed(err)
	}
	result.Location = location
	loggers.Ctx(ctx).Info().Str(loggers.FieldLocation, location).Msg("published summary")

	load, err := p.loader.Load(ctx, location, p.cfg.StagingTable)
	if err != nil {
		return err
	}
	result.LoadJobID = load.JobID
	result.RowsLoaded = load.RowCount

	merge, err := p.reconciler.Merge(ctx, p.cfg.StagingTable, p.cfg.MainTable)
	if err != nil {
		return err
	}
	result.RowsMerged = merge.AffectedRows

	finish(result, StatusCompleted, messageCompleted)
	return nil
}

func finish(result *RunResult, status, message string) {
	result.Status = status
	result.Message = message
	result.Code = http.StatusOK
}
