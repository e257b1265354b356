package enumerators

import (
	"context"
	"sort"
	"strings"
	"time"

	"event-rollup/internal/shared/filestorages"
	"event-rollup/internal/shared/loggers"
)

const recordSuffix = ".json"

//go:generate mockgen -source=record_enumerator.go -destination=./mocks/record_enumerator_mock.go -package=mocks
type RecordEnumerator interface {
	// ListEligible returns the event records under the literal prefix that were last modified
	// more than minAgeHours ago. minAgeHours 0 disables the age filter.
	ListEligible(ctx context.Context, prefix string, minAgeHours int) ([]filestorages.ObjectInfo, error)
}

type recordEnumerator struct {
	fileStorage filestorages.FileStorage
	now         func() time.Time
}

func NewRecordEnumerator(fileStorage filestorages.FileStorage, now func() time.Time) RecordEnumerator {
	if now == nil {
		now = time.Now
	}
	return &recordEnumerator{fileStorage: fileStorage, now: now}
}

func (e *recordEnumerator) ListEligible(ctx context.Context, prefix string, minAgeHours int) ([]filestorages.ObjectInfo, error) {
	if minAgeHours < 0 {
		return nil, errInvalidThreshold(minAgeHours)
	}
	logger := loggers.Ctx(ctx)

	objects, err := e.fileStorage.List(ctx, prefix)
	if err != nil {
		metricObjectsEnumeratedTotal.WithLabelValues(outcomeListFailed).Inc()
		return nil, errStorageUnavailable(e.fileStorage.Bucket(), prefix, err)
	}

	cutoff := e.now().UTC().Add(-time.Duration(minAgeHours) * time.Hour)
	eligible := make([]filestorages.ObjectInfo, 0, len(objects))
	var notRecords, tooRecent int
	for _, obj := range objects {
		if !strings.HasSuffix(obj.Key, recordSuffix) {
			notRecords++
			continue
		}
		if minAgeHours > 0 && !obj.LastModified.Before(cutoff) {
			tooRecent++
			continue
		}
		eligible = append(eligible, obj)
	}
	sort.Slice(eligible, func(i, j int) bool { return eligible[i].Key < eligible[j].Key })

	metricObjectsEnumeratedTotal.WithLabelValues(outcomeEligible).Add(float64(len(eligible)))
	metricObjectsEnumeratedTotal.WithLabelValues(outcomeTooRecent).Add(float64(tooRecent))
	metricObjectsEnumeratedTotal.WithLabelValues(outcomeNotRecord).Add(float64(notRecords))

	logger.Info().
		Str("bucket", e.fileStorage.Bucket()).
		Str("prefix", prefix).
		Int("eligible", len(eligible)).
		Int("too_recent", tooRecent).
		Int("not_records", notRecords).
		Msgf("found %d eligible event records", len(eligible))

	return eligible, nil
}
