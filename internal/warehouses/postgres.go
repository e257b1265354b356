package warehouses

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresWarehouse struct {
	pool *pgxpool.Pool
}

// NewPostgresWarehouse connects to Postgres. Datasets map to schemas.
func NewPostgresWarehouse(ctx context.Context, connString string) (Warehouse, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return &postgresWarehouse{pool: pool}, nil
}

func (w *postgresWarehouse) Close() error {
	w.pool.Close()
	return nil
}

func (w *postgresWarehouse) QualifiedName(ref TableRef) string {
	return QuoteIdent(ref.Dataset) + "." + QuoteIdent(ref.Table)
}

func postgresType(kind ColumnKind) string {
	if kind == KindCount {
		return "BIGINT"
	}
	return "TEXT"
}

func postgresKind(dataType string) ColumnKind {
	switch dataType {
	case "bigint", "integer", "smallint":
		return KindCount
	case "text", "character varying":
		return KindHour
	}
	return KindOther
}

func (w *postgresWarehouse) ReplaceTable(ctx context.Context, ref TableRef, columns []Column, rows [][]any) (int64, error) {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	statements := []string{
		"CREATE SCHEMA IF NOT EXISTS " + QuoteIdent(ref.Dataset),
		"DROP TABLE IF EXISTS " + w.QualifiedName(ref),
		fmt.Sprintf("CREATE TABLE %s (%s)", w.QualifiedName(ref), columnDefinitions(columns, "", postgresType)),
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return 0, fmt.Errorf("replace table %s: %w", ref, err)
		}
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{ref.Dataset, ref.Table}, ColumnNames(columns), pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", ref, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return copied, nil
}

func (w *postgresWarehouse) Columns(ctx context.Context, ref TableRef) ([]Column, error) {
	q := `SELECT column_name, data_type
          FROM information_schema.columns
          WHERE table_schema = $1 AND table_name = $2
          ORDER BY ordinal_position`
	rows, err := w.pool.Query(ctx, q, ref.Dataset, ref.Table)
	if err != nil {
		return nil, fmt.Errorf("query columns of %s: %w", ref, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var name, dataType string
		if err := rows.Scan(&name, &dataType); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		columns = append(columns, Column{Name: name, Kind: postgresKind(dataType)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, ref)
	}
	return columns, nil
}

func (w *postgresWarehouse) CountRows(ctx context.Context, ref TableRef) (int64, error) {
	var n int64
	if err := w.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+w.QualifiedName(ref)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows of %s: %w", ref, err)
	}
	return n, nil
}

func (w *postgresWarehouse) CreateTable(ctx context.Context, ref TableRef, columns []Column, primaryKey string) error {
	if _, err := w.pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+QuoteIdent(ref.Dataset)); err != nil {
		return fmt.Errorf("create schema %s: %w", ref.Dataset, err)
	}
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", w.QualifiedName(ref), columnDefinitions(columns, primaryKey, postgresType))
	if _, err := w.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("create table %s: %w", ref, err)
	}
	return nil
}

func (w *postgresWarehouse) AddColumn(ctx context.Context, ref TableRef, column Column) error {
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s", w.QualifiedName(ref), columnDefinitions([]Column{column}, "", postgresType))
	if _, err := w.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("add column %s to %s: %w", column.Name, ref, err)
	}
	return nil
}

func (w *postgresWarehouse) Exec(ctx context.Context, query string) (int64, error) {
	tag, err := w.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
