package loaders

import (
	"context"
	"errors"
	"slices"

	"event-rollup/internal/models"
	"event-rollup/internal/shared/filestorages"
	"event-rollup/internal/shared/loggers"
	"event-rollup/internal/shared/metrics"
	"event-rollup/internal/shared/svcerrors"
	"event-rollup/internal/shared/ulid"
	"event-rollup/internal/stores"
	"event-rollup/internal/warehouses"
)

// LoadResult describes a finished staging load.
type LoadResult struct {
	JobID    string
	Table    warehouses.TableRef
	Columns  []string
	RowCount int64
}

//go:generate mockgen -source=staging_loader.go -destination=./mocks/staging_loader_mock.go -package=mocks
type StagingLoader interface {
	// Load replaces the staging table with the summary published at location and verifies
	// the loaded schema and row count. There is no retry: any failure is returned.
	Load(ctx context.Context, location string, staging warehouses.TableRef) (*LoadResult, error)
}

type stagingLoader struct {
	summaryStore stores.SummaryStore
	warehouse    warehouses.Warehouse
}

func NewStagingLoader(summaryStore stores.SummaryStore, warehouse warehouses.Warehouse) StagingLoader {
	return &stagingLoader{summaryStore: summaryStore, warehouse: warehouse}
}

func (l *stagingLoader) Load(ctx context.Context, location string, staging warehouses.TableRef) (*LoadResult, error) {
	jobID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldJobID, jobID).
		Str(loggers.FieldLocation, location).
		Str(loggers.FieldTable, staging.String()).
		Logger()
	logger.Info().Msg("started staging load")

	result, err := l.load(ctx, jobID, location, staging)
	if err != nil {
		code := svcerrors.CodeOf(err)
		metricLoadTotal.WithLabelValues(code).Inc()
		logger.Error().Err(err).Str(loggers.FieldErrorCode, code).Msg("staging load failed")
		return nil, err
	}

	metricLoadTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRowsLoadedTotal.WithLabelValues().Add(float64(result.RowCount))
	logger.Info().
		Int64("rows", result.RowCount).
		Strs("columns", result.Columns).
		Msg("finished staging load")
	return result, nil
}

func (l *stagingLoader) load(ctx context.Context, jobID, location string, staging warehouses.TableRef) (*LoadResult, error) {
	summary, err := l.summaryStore.Get(ctx, location)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSummarySchemaMismatch):
			return nil, errSchemaMismatch(location, err)
		case errors.Is(err, filestorages.ErrInvalidLocation):
			return nil, errInvalidLocation(location, err)
		}
		return nil, errInternalSummaryReadFailed(err)
	}

	columns := summaryColumns(summary)
	for _, c := range columns {
		if len(c.Name) > warehouses.MaxIdentifierLength {
			return nil, errColumnNameTooLong(location, c.Name)
		}
	}
	rows := summaryRows(summary)

	if _, err := l.warehouse.ReplaceTable(ctx, staging, columns, rows); err != nil {
		return nil, errInternalLoadFailed(staging, err)
	}

	// verify what the warehouse holds, not what was sent
	loadedColumns, err := l.warehouse.Columns(ctx, staging)
	if err != nil {
		return nil, errInternalLoadFailed(staging, err)
	}
	expected := warehouses.ColumnNames(columns)
	if got := warehouses.ColumnNames(loadedColumns); !slices.Equal(got, expected) {
		return nil, errInternalLoadVerificationFailed(staging, "columns %v, expected %v", got, expected)
	}
	rowCount, err := l.warehouse.CountRows(ctx, staging)
	if err != nil {
		return nil, errInternalLoadFailed(staging, err)
	}
	if rowCount != int64(len(rows)) {
		return nil, errInternalLoadVerificationFailed(staging, "%d rows, expected %d", rowCount, len(rows))
	}

	return &LoadResult{JobID: jobID, Table: staging, Columns: expected, RowCount: rowCount}, nil
}

func summaryColumns(summary *models.HourlySummary) []warehouses.Column {
	names := summary.Columns()
	columns := make([]warehouses.Column, len(names))
	columns[0] = warehouses.Column{Name: names[0], Kind: warehouses.KindHour}
	for i := 1; i < len(names); i++ {
		columns[i] = warehouses.Column{Name: names[i], Kind: warehouses.KindCount}
	}
	return columns
}

func summaryRows(summary *models.HourlySummary) [][]any {
	rows := make([][]any, 0, len(summary.Rows))
	for _, r := range summary.Rows {
		row := make([]any, 0, len(r.Counts)+1)
		row = append(row, r.Hour)
		for _, c := range r.Counts {
			row = append(row, c)
		}
		rows = append(rows, row)
	}
	return rows
}
