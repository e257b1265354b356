package aggregators

import (
	"context"
	"fmt"
	"io"

	"event-rollup/internal/events"
	"event-rollup/internal/models"
	"event-rollup/internal/shared/filestorages"
	"event-rollup/internal/shared/loggers"
)

const (
	progressInterval = 1000
	maxRecordBytes   = 1 << 20
)

// AggregateResult is the outcome of one aggregation pass.
type AggregateResult struct {
	Summary        *models.HourlySummary
	ProcessedCount int
	SkippedCount   int
}

//go:generate mockgen -source=event_aggregator.go -destination=./mocks/event_aggregator_mock.go -package=mocks
type EventAggregator interface {
	// Aggregate reads every object and counts its record by hour bucket and event type.
	// Records that cannot be read or parsed are skipped and logged; only cancellation aborts.
	Aggregate(ctx context.Context, objects []filestorages.ObjectInfo) (*AggregateResult, error)
}

type eventAggregator struct {
	fileStorage filestorages.FileStorage
	rolluper    EventRolluper
}

func NewEventAggregator(fileStorage filestorages.FileStorage, rolluper EventRolluper) EventAggregator {
	return &eventAggregator{fileStorage: fileStorage, rolluper: rolluper}
}

func (a *eventAggregator) Aggregate(ctx context.Context, objects []filestorages.ObjectInfo) (*AggregateResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Info().Msgf("started aggregating %d event records", len(objects))

	counts := models.NewHourlyCounts()
	result := &AggregateResult{}

	for _, obj := range objects {
		if err := ctx.Err(); err != nil {
			return nil, errAggregationAborted(result.ProcessedCount, err)
		}

		record, outcome, err := a.readRecord(ctx, obj.Key)
		if err == nil {
			err = a.rolluper.Rollup(counts, record)
			if err != nil {
				outcome = outcomeInvalid
			}
		}
		if err != nil {
			result.SkippedCount++
			metricRecordsTotal.WithLabelValues(outcome).Inc()
			logger.Warn().
				Err(err).
				Str(loggers.FieldObjectKey, obj.Key).
				Str("outcome", outcome).
				Msg("skipped event record")
			continue
		}

		result.ProcessedCount++
		metricRecordsTotal.WithLabelValues(outcomeProcessed).Inc()
		if result.ProcessedCount%progressInterval == 0 {
			logger.Info().Msgf("processed %d event records", result.ProcessedCount)
		}
	}

	result.Summary = counts.Summary()
	logger.Info().
		Int("processed", result.ProcessedCount).
		Int("skipped", result.SkippedCount).
		Int("hours", len(result.Summary.Rows)).
		Strs("event_types", result.Summary.EventTypes).
		Msg("finished aggregating event records")

	return result, nil
}

// readRecord fetches and parses one object. On failure the outcome names the skip reason.
func (a *eventAggregator) readRecord(ctx context.Context, key string) (*events.EventRecord, string, error) {
	readCloser, err := a.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, outcomeUnreadable, fmt.Errorf("failed to get object: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(io.LimitReader(readCloser, maxRecordBytes+1))
	if err != nil {
		return nil, outcomeUnreadable, fmt.Errorf("failed to read object: %w", err)
	}
	if len(data) > maxRecordBytes {
		return nil, outcomeInvalid, fmt.Errorf("%w: larger than %d bytes", events.ErrInvalidEventRecord, maxRecordBytes)
	}

	record, err := events.ParseEventRecord(data)
	if err != nil {
		return nil, outcomeInvalid, err
	}
	return record, outcomeProcessed, nil
}
