package reconcilers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"event-rollup/internal/models"
	"event-rollup/internal/shared/loggers"
	"event-rollup/internal/shared/metrics"
	"event-rollup/internal/shared/svcerrors"
	"event-rollup/internal/warehouses"
)

// MergeResult describes a finished merge of staging into main.
type MergeResult struct {
	Staging        warehouses.TableRef
	Main           warehouses.TableRef
	MainCreated    bool
	MergedColumns  []string // count columns overwritten from staging
	AddedColumns   []string // count columns added to main before merging
	SkippedColumns []string // staging count columns main does not have
	AffectedRows   int64
}

//go:generate mockgen -source=merge_reconciler.go -destination=./mocks/merge_reconciler_mock.go -package=mocks
type MergeReconciler interface {
	// Merge upserts every staging row into main by hour: matching hours get their count
	// columns overwritten, new hours are inserted, and main rows absent from staging are kept.
	Merge(ctx context.Context, staging, main warehouses.TableRef) (*MergeResult, error)
}

type mergeReconciler struct {
	warehouse         warehouses.Warehouse
	addMissingColumns bool
}

func NewMergeReconciler(warehouse warehouses.Warehouse, addMissingColumns bool) MergeReconciler {
	return &mergeReconciler{warehouse: warehouse, addMissingColumns: addMissingColumns}
}

func (r *mergeReconciler) Merge(ctx context.Context, staging, main warehouses.TableRef) (*MergeResult, error) {
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldTable, main.String()).
		Str("staging_table", staging.String()).
		Logger()
	logger.Info().Msg("started merge")

	result, err := r.merge(ctx, &logger, staging, main)
	if err != nil {
		code := svcerrors.CodeOf(err)
		metricMergeTotal.WithLabelValues(code).Inc()
		logger.Error().Err(err).Str(loggers.FieldErrorCode, code).Msg("merge failed")
		return nil, err
	}

	metricMergeTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRowsMergedTotal.WithLabelValues().Add(float64(result.AffectedRows))
	logger.Info().
		Bool("main_created", result.MainCreated).
		Strs("merged_columns", result.MergedColumns).
		Strs("added_columns", result.AddedColumns).
		Int64("affected_rows", result.AffectedRows).
		Msg("finished merge")
	return result, nil
}

func (r *mergeReconciler) merge(ctx context.Context, logger *loggers.Logger, staging, main warehouses.TableRef) (*MergeResult, error) {
	stagingColumns, err := r.warehouse.Columns(ctx, staging)
	if err != nil {
		return nil, errInternalMergeFailed(staging, main, err)
	}
	countColumns, err := splitStagingColumns(stagingColumns)
	if err != nil {
		return nil, errStagingSchemaInvalid(staging, err)
	}

	result := &MergeResult{Staging: staging, Main: main}

	mainColumns, err := r.warehouse.Columns(ctx, main)
	if errors.Is(err, warehouses.ErrTableNotFound) {
		logger.Info().Msg("main table not found, creating it from the staging schema")
		if err := r.warehouse.CreateTable(ctx, main, stagingColumns, models.HourColumn); err != nil {
			return nil, errInternalMergeFailed(staging, main, err)
		}
		result.MainCreated = true
		mainColumns = stagingColumns
	} else if err != nil {
		return nil, errInternalMergeFailed(staging, main, err)
	}

	inMain := make(map[string]struct{}, len(mainColumns))
	for _, c := range mainColumns {
		inMain[c.Name] = struct{}{}
	}
	for _, c := range countColumns {
		if _, ok := inMain[c.Name]; ok {
			result.MergedColumns = append(result.MergedColumns, c.Name)
			continue
		}
		if !r.addMissingColumns {
			logger.Warn().Str("column", c.Name).Msg("main table has no such column, skipping it")
			result.SkippedColumns = append(result.SkippedColumns, c.Name)
			continue
		}
		if err := r.warehouse.AddColumn(ctx, main, c); err != nil {
			return nil, errInternalMergeFailed(staging, main, err)
		}
		logger.Info().Str("column", c.Name).Msg("added column to main table")
		result.AddedColumns = append(result.AddedColumns, c.Name)
		result.MergedColumns = append(result.MergedColumns, c.Name)
	}

	statement := UpsertStatement(r.warehouse.QualifiedName(main), r.warehouse.QualifiedName(staging), result.MergedColumns)
	logger.Debug().Str("statement", statement).Msg("executing merge statement")

	affected, err := r.warehouse.Exec(ctx, statement)
	if err != nil {
		return nil, errInternalMergeFailed(staging, main, err)
	}
	result.AffectedRows = affected
	return result, nil
}

// splitStagingColumns checks the staging schema and returns its count columns.
func splitStagingColumns(columns []warehouses.Column) ([]warehouses.Column, error) {
	if len(columns) == 0 || columns[0].Name != models.HourColumn {
		return nil, fmt.Errorf("first column must be %q", models.HourColumn)
	}
	counts := make([]warehouses.Column, 0, len(columns)-1)
	for _, c := range columns[1:] {
		if _, ok := models.EventTypeOfColumn(c.Name); !ok {
			return nil, fmt.Errorf("unexpected column %q", c.Name)
		}
		counts = append(counts, warehouses.Column{Name: c.Name, Kind: warehouses.KindCount})
	}
	return counts, nil
}

// UpsertStatement renders the merge of staging into main keyed by hour. Both Postgres and
// SQLite accept it; the WHERE clause keeps SQLite from reading ON CONFLICT as a join constraint.
func UpsertStatement(main, staging string, countColumns []string) string {
	columns := make([]string, 0, len(countColumns)+1)
	columns = append(columns, warehouses.QuoteIdent(models.HourColumn))
	assignments := make([]string, 0, len(countColumns))
	for _, c := range countColumns {
		q := warehouses.QuoteIdent(c)
		columns = append(columns, q)
		assignments = append(assignments, q+" = excluded."+q)
	}
	list := strings.Join(columns, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) SELECT %s FROM %s WHERE true ON CONFLICT (%s) ",
		main, list, list, staging, warehouses.QuoteIdent(models.HourColumn))
	if len(assignments) == 0 {
		b.WriteString("DO NOTHING")
	} else {
		b.WriteString("DO UPDATE SET " + strings.Join(assignments, ", "))
	}
	return b.String()
}
