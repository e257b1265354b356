package warehouses

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteWarehouse struct {
	db *sql.DB
}

// NewSQLiteWarehouse opens a SQLite database. SQLite has no schemas, so a table ref
// is flattened to a single "<dataset>_<table>" name.
func NewSQLiteWarehouse(dsn string) (Warehouse, error) {
	if err := ensureDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &sqliteWarehouse{db: db}, nil
}

// ensureDir creates the parent directory of a file DSN.
func ensureDir(dsn string) error {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create sqlite directory: %w", err)
	}
	return nil
}

func (w *sqliteWarehouse) Close() error {
	return w.db.Close()
}

func (w *sqliteWarehouse) tableName(ref TableRef) string {
	return ref.Dataset + "_" + ref.Table
}

func (w *sqliteWarehouse) QualifiedName(ref TableRef) string {
	return QuoteIdent(w.tableName(ref))
}

func sqliteType(kind ColumnKind) string {
	if kind == KindCount {
		return "INTEGER"
	}
	return "TEXT"
}

func sqliteKind(declared string) ColumnKind {
	switch strings.ToUpper(declared) {
	case "INTEGER", "BIGINT", "INT":
		return KindCount
	case "TEXT":
		return KindHour
	}
	return KindOther
}

func (w *sqliteWarehouse) ReplaceTable(ctx context.Context, ref TableRef, columns []Column, rows [][]any) (int64, error) {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		"DROP TABLE IF EXISTS " + w.QualifiedName(ref),
		fmt.Sprintf("CREATE TABLE %s (%s)", w.QualifiedName(ref), columnDefinitions(columns, "", sqliteType)),
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("replace table %s: %w", ref, err)
		}
	}

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = QuoteIdent(c.Name)
		placeholders[i] = "?"
	}
	insert, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		w.QualifiedName(ref), strings.Join(quoted, ", "), strings.Join(placeholders, ", ")))
	if err != nil {
		return 0, fmt.Errorf("prepare insert into %s: %w", ref, err)
	}
	defer insert.Close()

	var loaded int64
	for _, row := range rows {
		if _, err := insert.ExecContext(ctx, row...); err != nil {
			return 0, fmt.Errorf("insert into %s: %w", ref, err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return loaded, nil
}

func (w *sqliteWarehouse) Columns(ctx context.Context, ref TableRef) ([]Column, error) {
	rows, err := w.db.QueryContext(ctx, "SELECT name, type FROM pragma_table_info(?) ORDER BY cid", w.tableName(ref))
	if err != nil {
		return nil, fmt.Errorf("query columns of %s: %w", ref, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var name, declared string
		if err := rows.Scan(&name, &declared); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		columns = append(columns, Column{Name: name, Kind: sqliteKind(declared)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, ref)
	}
	return columns, nil
}

func (w *sqliteWarehouse) CountRows(ctx context.Context, ref TableRef) (int64, error) {
	var n int64
	if err := w.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+w.QualifiedName(ref)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows of %s: %w", ref, err)
	}
	return n, nil
}

func (w *sqliteWarehouse) CreateTable(ctx context.Context, ref TableRef, columns []Column, primaryKey string) error {
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", w.QualifiedName(ref), columnDefinitions(columns, primaryKey, sqliteType))
	if _, err := w.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create table %s: %w", ref, err)
	}
	return nil
}

func (w *sqliteWarehouse) AddColumn(ctx context.Context, ref TableRef, column Column) error {
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", w.QualifiedName(ref), columnDefinitions([]Column{column}, "", sqliteType))
	if _, err := w.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("add column %s to %s: %w", column.Name, ref, err)
	}
	return nil
}

func (w *sqliteWarehouse) Exec(ctx context.Context, query string) (int64, error) {
	result, err := w.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
