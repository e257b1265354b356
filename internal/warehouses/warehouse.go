package warehouses

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTableNotFound = errors.New("table not found")
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// MaxIdentifierLength is the longest column name in bytes every driver keeps intact.
// Postgres silently truncates longer identifiers.
const MaxIdentifierLength = 63

// ColumnKind is the logical type of a summary column. Each driver maps it to a native type.
type ColumnKind string

const (
	KindHour  ColumnKind = "hour"
	KindCount ColumnKind = "count"
	KindOther ColumnKind = "other"
)

type Column struct {
	Name string
	Kind ColumnKind
}

// TableRef names a table inside a dataset (a schema in Postgres).
type TableRef struct {
	Dataset string
	Table   string
}

func (t TableRef) String() string {
	return t.Dataset + "." + t.Table
}

// Warehouse is the table store the summary is loaded into and merged in.
//
//go:generate mockgen -source=warehouse.go -destination=./mocks/warehouse_mock.go -package=mocks
type Warehouse interface {
	// ReplaceTable drops ref if it exists, recreates it with columns and bulk-loads rows,
	// all in one transaction. Returns the number of rows loaded.
	ReplaceTable(ctx context.Context, ref TableRef, columns []Column, rows [][]any) (int64, error)
	// Columns returns the columns of ref in ordinal order, or ErrTableNotFound.
	Columns(ctx context.Context, ref TableRef) ([]Column, error)
	CountRows(ctx context.Context, ref TableRef) (int64, error)
	// CreateTable creates ref if it does not exist. Count columns default to 0.
	CreateTable(ctx context.Context, ref TableRef, columns []Column, primaryKey string) error
	AddColumn(ctx context.Context, ref TableRef, column Column) error
	// Exec runs one statement and returns the number of affected rows.
	Exec(ctx context.Context, query string) (int64, error)
	QualifiedName(ref TableRef) string
	Close() error
}

// QuoteIdent quotes name as an SQL identifier. Both drivers accept double quotes.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// ColumnNames returns the names of columns in order.
func ColumnNames(columns []Column) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}

// columnDefinitions renders the column list of a CREATE TABLE statement.
func columnDefinitions(columns []Column, primaryKey string, nativeType func(ColumnKind) string) string {
	defs := make([]string, 0, len(columns))
	for _, c := range columns {
		def := QuoteIdent(c.Name) + " " + nativeType(c.Kind)
		if c.Name == primaryKey {
			def += " PRIMARY KEY"
		}
		if c.Kind == KindCount {
			def += " NOT NULL DEFAULT 0"
		}
		defs = append(defs, def)
	}
	return strings.Join(defs, ", ")
}

// Open connects to the warehouse of driver.
func Open(ctx context.Context, driver, dsn string) (Warehouse, error) {
	switch driver {
	case DriverSQLite:
		return NewSQLiteWarehouse(dsn)
	case DriverPostgres:
		return NewPostgresWarehouse(ctx, dsn)
	}
	return nil, fmt.Errorf("unsupported warehouse driver: %q", driver)
}
