package reconcilers

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"event-rollup/internal/shared/svcerrors"
	"event-rollup/internal/warehouses"
	whmocks "event-rollup/internal/warehouses/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testStaging = warehouses.TableRef{Dataset: "platform_event_data", Table: "event_hourly_summary_staging"}
	testMain    = warehouses.TableRef{Dataset: "platform_event_data", Table: "event_hourly_summary"}

	hourColumn  = warehouses.Column{Name: "hour", Kind: warehouses.KindHour}
	clickColumn = warehouses.Column{Name: "click_event_count", Kind: warehouses.KindCount}
	viewColumn  = warehouses.Column{Name: "view_event_count", Kind: warehouses.KindCount}
)

type testWarehouse struct {
	warehouses.Warehouse
	db *sql.DB
}

func newTestWarehouse(t *testing.T) *testWarehouse {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "warehouse.db")
	w, err := warehouses.NewSQLiteWarehouse(dsn)
	require.NoError(t, err)
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
		_ = w.Close()
	})
	return &testWarehouse{Warehouse: w, db: db}
}

func (w *testWarehouse) loadStaging(t *testing.T, columns []warehouses.Column, rows [][]any) {
	t.Helper()
	_, err := w.ReplaceTable(context.Background(), testStaging, columns, rows)
	require.NoError(t, err)
}

// rows reads every row of ref as hour -> column -> value.
func (w *testWarehouse) rows(t *testing.T, ref warehouses.TableRef) map[string]map[string]int64 {
	t.Helper()
	columns, err := w.Columns(context.Background(), ref)
	require.NoError(t, err)

	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = warehouses.QuoteIdent(c.Name)
	}
	rs, err := w.db.Query("SELECT " + strings.Join(names, ", ") + " FROM " + w.QualifiedName(ref))
	require.NoError(t, err)
	defer rs.Close()

	out := map[string]map[string]int64{}
	for rs.Next() {
		var hour string
		counts := make([]int64, len(columns)-1)
		dest := []any{&hour}
		for i := range counts {
			dest = append(dest, &counts[i])
		}
		require.NoError(t, rs.Scan(dest...))
		row := map[string]int64{}
		for i, c := range columns[1:] {
			row[c.Name] = counts[i]
		}
		out[hour] = row
	}
	require.NoError(t, rs.Err())
	return out
}

func TestMergeReconciler_Merge_UpdatesExistingHour(t *testing.T) {
	t.Parallel()

	w := newTestWarehouse(t)
	ctx := context.Background()
	require.NoError(t, w.CreateTable(ctx, testMain, []warehouses.Column{hourColumn, clickColumn}, "hour"))
	_, err := w.Exec(ctx, `INSERT INTO `+w.QualifiedName(testMain)+` ("hour", "click_event_count") VALUES ('2025-05-07T10:00:00', 1)`)
	require.NoError(t, err)
	w.loadStaging(t, []warehouses.Column{hourColumn, clickColumn}, [][]any{{"2025-05-07T10:00:00", int64(2)}})

	result, err := NewMergeReconciler(w, false).Merge(ctx, testStaging, testMain)
	require.NoError(t, err)
	assert.False(t, result.MainCreated)
	assert.Equal(t, []string{"click_event_count"}, result.MergedColumns)
	assert.Equal(t, int64(1), result.AffectedRows)

	assert.Equal(t, map[string]map[string]int64{
		"2025-05-07T10:00:00": {"click_event_count": 2},
	}, w.rows(t, testMain))
}

func TestMergeReconciler_Merge_IsIdempotent(t *testing.T) {
	t.Parallel()

	w := newTestWarehouse(t)
	ctx := context.Background()
	w.loadStaging(t, []warehouses.Column{hourColumn, clickColumn, viewColumn}, [][]any{
		{"2025-05-07T10:00:00", int64(1), int64(1)},
		{"2025-05-07T11:00:00", int64(1), int64(0)},
	})
	reconciler := NewMergeReconciler(w, false)

	_, err := reconciler.Merge(ctx, testStaging, testMain)
	require.NoError(t, err)
	first := w.rows(t, testMain)

	_, err = reconciler.Merge(ctx, testStaging, testMain)
	require.NoError(t, err)
	assert.Equal(t, first, w.rows(t, testMain))
	assert.Equal(t, map[string]map[string]int64{
		"2025-05-07T10:00:00": {"click_event_count": 1, "view_event_count": 1},
		"2025-05-07T11:00:00": {"click_event_count": 1, "view_event_count": 0},
	}, first)
}

func TestMergeReconciler_Merge_CreatesMissingMain(t *testing.T) {
	t.Parallel()

	w := newTestWarehouse(t)
	ctx := context.Background()
	w.loadStaging(t, []warehouses.Column{hourColumn, clickColumn}, [][]any{{"2025-05-07T10:00:00", int64(3)}})

	result, err := NewMergeReconciler(w, false).Merge(ctx, testStaging, testMain)
	require.NoError(t, err)
	assert.True(t, result.MainCreated)

	columns, err := w.Columns(ctx, testMain)
	require.NoError(t, err)
	assert.Equal(t, []warehouses.Column{hourColumn, clickColumn}, columns)
	assert.Equal(t, map[string]map[string]int64{"2025-05-07T10:00:00": {"click_event_count": 3}}, w.rows(t, testMain))
}

func TestMergeReconciler_Merge_KeepsRowsAndColumnsAbsentFromStaging(t *testing.T) {
	t.Parallel()

	w := newTestWarehouse(t)
	ctx := context.Background()
	require.NoError(t, w.CreateTable(ctx, testMain, []warehouses.Column{hourColumn, clickColumn, viewColumn}, "hour"))
	_, err := w.Exec(ctx, `INSERT INTO `+w.QualifiedName(testMain)+` ("hour", "click_event_count", "view_event_count")
		VALUES ('2025-05-06T09:00:00', 4, 4), ('2025-05-07T10:00:00', 1, 5)`)
	require.NoError(t, err)
	w.loadStaging(t, []warehouses.Column{hourColumn, clickColumn}, [][]any{
		{"2025-05-07T10:00:00", int64(2)},
		{"2025-05-07T12:00:00", int64(7)},
	})

	_, err = NewMergeReconciler(w, false).Merge(ctx, testStaging, testMain)
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]int64{
		"2025-05-06T09:00:00": {"click_event_count": 4, "view_event_count": 4},
		"2025-05-07T10:00:00": {"click_event_count": 2, "view_event_count": 5},
		"2025-05-07T12:00:00": {"click_event_count": 7, "view_event_count": 0},
	}, w.rows(t, testMain))
}

func TestMergeReconciler_Merge_NewEventTypeColumn(t *testing.T) {
	t.Parallel()

	purchaseColumn := warehouses.Column{Name: "purchase_event_count", Kind: warehouses.KindCount}

	tests := []struct {
		name              string
		addMissingColumns bool
		expectedRows      map[string]map[string]int64
		expectedSkipped   []string
		expectedAdded     []string
	}{
		{
			name:              "skipped by default",
			addMissingColumns: false,
			expectedRows:      map[string]map[string]int64{"2025-05-07T10:00:00": {"click_event_count": 2}},
			expectedSkipped:   []string{"purchase_event_count"},
		},
		{
			name:              "added when enabled",
			addMissingColumns: true,
			expectedRows: map[string]map[string]int64{
				"2025-05-07T10:00:00": {"click_event_count": 2, "purchase_event_count": 6},
			},
			expectedAdded: []string{"purchase_event_count"},
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := newTestWarehouse(t)
			ctx := context.Background()
			require.NoError(t, w.CreateTable(ctx, testMain, []warehouses.Column{hourColumn, clickColumn}, "hour"))
			w.loadStaging(t, []warehouses.Column{hourColumn, clickColumn, purchaseColumn}, [][]any{
				{"2025-05-07T10:00:00", int64(2), int64(6)},
			})

			result, err := NewMergeReconciler(w, tt.addMissingColumns).Merge(ctx, testStaging, testMain)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSkipped, result.SkippedColumns)
			assert.Equal(t, tt.expectedAdded, result.AddedColumns)
			assert.Equal(t, tt.expectedRows, w.rows(t, testMain))
		})
	}
}

func TestMergeReconciler_Merge_HourOnlyStaging(t *testing.T) {
	t.Parallel()

	w := newTestWarehouse(t)
	ctx := context.Background()
	require.NoError(t, w.CreateTable(ctx, testMain, []warehouses.Column{hourColumn, clickColumn}, "hour"))
	_, err := w.Exec(ctx, `INSERT INTO `+w.QualifiedName(testMain)+` ("hour", "click_event_count") VALUES ('2025-05-07T10:00:00', 1)`)
	require.NoError(t, err)
	w.loadStaging(t, []warehouses.Column{hourColumn}, [][]any{{"2025-05-07T10:00:00"}, {"2025-05-07T11:00:00"}})

	result, err := NewMergeReconciler(w, false).Merge(ctx, testStaging, testMain)
	require.NoError(t, err)
	assert.Empty(t, result.MergedColumns)

	assert.Equal(t, map[string]map[string]int64{
		"2025-05-07T10:00:00": {"click_event_count": 1},
		"2025-05-07T11:00:00": {"click_event_count": 0},
	}, w.rows(t, testMain))
}

func TestMergeReconciler_Merge_StagingMissing(t *testing.T) {
	t.Parallel()

	w := newTestWarehouse(t)
	result, err := NewMergeReconciler(w, false).Merge(context.Background(), testStaging, testMain)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, warehouses.ErrTableNotFound)
	assert.Equal(t, codeInternalMergeFailed, svcerrors.CodeOf(err))
}

func TestMergeReconciler_Merge_InvalidStagingSchema(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockWarehouse := whmocks.NewMockWarehouse(ctrl)
	mockWarehouse.EXPECT().Columns(gomock.Any(), testStaging).Return([]warehouses.Column{
		hourColumn,
		{Name: "clicks", Kind: warehouses.KindCount},
	}, nil)

	result, err := NewMergeReconciler(mockWarehouse, false).Merge(context.Background(), testStaging, testMain)
	assert.Nil(t, result)
	assert.Equal(t, codeStagingSchemaInvalid, svcerrors.CodeOf(err))
}

func TestMergeReconciler_Merge_ExecFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockWarehouse := whmocks.NewMockWarehouse(ctrl)
	execErr := errors.New("deadline exceeded")

	mockWarehouse.EXPECT().Columns(gomock.Any(), testStaging).Return([]warehouses.Column{hourColumn, clickColumn}, nil)
	mockWarehouse.EXPECT().Columns(gomock.Any(), testMain).Return([]warehouses.Column{hourColumn, clickColumn}, nil)
	mockWarehouse.EXPECT().QualifiedName(testMain).Return(`"main"`)
	mockWarehouse.EXPECT().QualifiedName(testStaging).Return(`"staging"`)
	mockWarehouse.EXPECT().Exec(gomock.Any(), gomock.Any()).Return(int64(0), execErr)

	result, err := NewMergeReconciler(mockWarehouse, false).Merge(context.Background(), testStaging, testMain)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, execErr)
	assert.Equal(t, codeInternalMergeFailed, svcerrors.CodeOf(err))
}

func TestUpsertStatement(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		`INSERT INTO "m" ("hour", "click_event_count", "view_event_count") `+
			`SELECT "hour", "click_event_count", "view_event_count" FROM "s" WHERE true `+
			`ON CONFLICT ("hour") DO UPDATE SET "click_event_count" = excluded."click_event_count", "view_event_count" = excluded."view_event_count"`,
		UpsertStatement(`"m"`, `"s"`, []string{"click_event_count", "view_event_count"}))

	assert.Equal(t,
		`INSERT INTO "m" ("hour") SELECT "hour" FROM "s" WHERE true ON CONFLICT ("hour") DO NOTHING`,
		UpsertStatement(`"m"`, `"s"`, nil))
}
