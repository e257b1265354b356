package loaders

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"event-rollup/internal/models"
	"event-rollup/internal/shared/filestorages"
	"event-rollup/internal/shared/svcerrors"
	"event-rollup/internal/stores"
	storemocks "event-rollup/internal/stores/mocks"
	"event-rollup/internal/warehouses"
	whmocks "event-rollup/internal/warehouses/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testLocation = "local://event-data-summary/summary/2025/05/07/hourly_summary_2025-05-07.csv"

var testStaging = warehouses.TableRef{Dataset: "platform_event_data", Table: "event_hourly_summary_staging"}

func sampleSummary() *models.HourlySummary {
	return &models.HourlySummary{
		EventTypes: []string{"click", "view"},
		Rows: []models.HourlyRow{
			{Hour: "2025-05-07T10:00:00", Counts: []int64{1, 1}},
			{Hour: "2025-05-07T11:00:00", Counts: []int64{1, 0}},
		},
	}
}

func newTestWarehouse(t *testing.T) warehouses.Warehouse {
	t.Helper()
	w, err := warehouses.NewSQLiteWarehouse("file:" + filepath.Join(t.TempDir(), "warehouse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestStagingLoader_Load_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockSummaryStore := storemocks.NewMockSummaryStore(ctrl)
	warehouse := newTestWarehouse(t)
	loader := NewStagingLoader(mockSummaryStore, warehouse)
	ctx := context.Background()

	mockSummaryStore.EXPECT().Get(ctx, testLocation).Return(sampleSummary(), nil)

	result, err := loader.Load(ctx, testLocation, testStaging)
	require.NoError(t, err)
	assert.NotEmpty(t, result.JobID)
	assert.Equal(t, testStaging, result.Table)
	assert.Equal(t, []string{"hour", "click_event_count", "view_event_count"}, result.Columns)
	assert.Equal(t, int64(2), result.RowCount)

	columns, err := warehouse.Columns(ctx, testStaging)
	require.NoError(t, err)
	assert.Equal(t, []warehouses.Column{
		{Name: "hour", Kind: warehouses.KindHour},
		{Name: "click_event_count", Kind: warehouses.KindCount},
		{Name: "view_event_count", Kind: warehouses.KindCount},
	}, columns)
}

func TestStagingLoader_Load_ReplacesPreviousContents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockSummaryStore := storemocks.NewMockSummaryStore(ctrl)
	warehouse := newTestWarehouse(t)
	loader := NewStagingLoader(mockSummaryStore, warehouse)
	ctx := context.Background()

	smaller := &models.HourlySummary{
		EventTypes: []string{"purchase"},
		Rows:       []models.HourlyRow{{Hour: "2025-05-08T00:00:00", Counts: []int64{9}}},
	}
	gomock.InOrder(
		mockSummaryStore.EXPECT().Get(ctx, testLocation).Return(sampleSummary(), nil),
		mockSummaryStore.EXPECT().Get(ctx, testLocation).Return(smaller, nil),
	)

	_, err := loader.Load(ctx, testLocation, testStaging)
	require.NoError(t, err)
	result, err := loader.Load(ctx, testLocation, testStaging)
	require.NoError(t, err)

	assert.Equal(t, []string{"hour", "purchase_event_count"}, result.Columns)
	count, err := warehouse.CountRows(ctx, testStaging)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStagingLoader_Load_EmptySummary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockSummaryStore := storemocks.NewMockSummaryStore(ctrl)
	loader := NewStagingLoader(mockSummaryStore, newTestWarehouse(t))

	mockSummaryStore.EXPECT().Get(gomock.Any(), testLocation).Return(&models.HourlySummary{}, nil)

	result, err := loader.Load(context.Background(), testLocation, testStaging)
	require.NoError(t, err)
	assert.Equal(t, []string{"hour"}, result.Columns)
	assert.Equal(t, int64(0), result.RowCount)
}

func TestStagingLoader_Load_SummaryErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		getErr       error
		expectedCode string
	}{
		{
			name:         "schema mismatch",
			getErr:       fmt.Errorf("failed to decode summary: %w", models.ErrSummarySchemaMismatch),
			expectedCode: codeSchemaMismatch,
		},
		{
			name:         "foreign location",
			getErr:       filestorages.ErrInvalidLocation,
			expectedCode: codeInvalidLocation,
		},
		{
			name:         "storage failure",
			getErr:       errors.New("connection reset"),
			expectedCode: codeInternalSummaryReadFailed,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockSummaryStore := storemocks.NewMockSummaryStore(ctrl)
			mockWarehouse := whmocks.NewMockWarehouse(ctrl)
			loader := NewStagingLoader(mockSummaryStore, mockWarehouse)

			mockSummaryStore.EXPECT().Get(gomock.Any(), testLocation).Return(nil, tt.getErr)

			result, err := loader.Load(context.Background(), testLocation, testStaging)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.getErr)
			assert.Equal(t, tt.expectedCode, svcerrors.CodeOf(err))
		})
	}
}

func TestStagingLoader_Load_ColumnNameLength(t *testing.T) {
	t.Parallel()

	// "_event_count" adds 12 bytes to the event type
	tests := []struct {
		name         string
		eventType    string
		expectedCode string
	}{
		{
			name:      "longest type that fits",
			eventType: strings.Repeat("a", warehouses.MaxIdentifierLength-12),
		},
		{
			name:         "one byte over the limit",
			eventType:    strings.Repeat("a", warehouses.MaxIdentifierLength-11),
			expectedCode: codeSchemaMismatch,
		},
		{
			name:         "multibyte type over the limit",
			eventType:    strings.Repeat("é", 26),
			expectedCode: codeSchemaMismatch,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockSummaryStore := storemocks.NewMockSummaryStore(ctrl)
			mockWarehouse := whmocks.NewMockWarehouse(ctrl)
			loader := NewStagingLoader(mockSummaryStore, mockWarehouse)
			ctx := context.Background()

			summary := &models.HourlySummary{
				EventTypes: []string{"click", tt.eventType},
				Rows:       []models.HourlyRow{{Hour: "2025-05-07T10:00:00", Counts: []int64{1, 2}}},
			}
			mockSummaryStore.EXPECT().Get(ctx, testLocation).Return(summary, nil)

			if tt.expectedCode != "" {
				// staging must stay untouched
				result, err := loader.Load(ctx, testLocation, testStaging)
				assert.Nil(t, result)
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, svcerrors.CodeOf(err))
				assert.Contains(t, err.Error(), tt.eventType+"_event_count")
				return
			}

			column := tt.eventType + "_event_count"
			loaded := []warehouses.Column{
				{Name: "hour", Kind: warehouses.KindHour},
				{Name: "click_event_count", Kind: warehouses.KindCount},
				{Name: column, Kind: warehouses.KindCount},
			}
			mockWarehouse.EXPECT().ReplaceTable(ctx, testStaging, loaded, gomock.Any()).Return(int64(1), nil)
			mockWarehouse.EXPECT().Columns(ctx, testStaging).Return(loaded, nil)
			mockWarehouse.EXPECT().CountRows(ctx, testStaging).Return(int64(1), nil)

			result, err := loader.Load(ctx, testLocation, testStaging)
			require.NoError(t, err)
			assert.Len(t, column, warehouses.MaxIdentifierLength)
			assert.Equal(t, []string{"hour", "click_event_count", column}, result.Columns)
		})
	}
}

func TestStagingLoader_Load_WarehouseFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockSummaryStore := storemocks.NewMockSummaryStore(ctrl)
	mockWarehouse := whmocks.NewMockWarehouse(ctrl)
	loader := NewStagingLoader(mockSummaryStore, mockWarehouse)

	loadErr := errors.New("quota exceeded")
	mockSummaryStore.EXPECT().Get(gomock.Any(), testLocation).Return(sampleSummary(), nil)
	mockWarehouse.EXPECT().
		ReplaceTable(gomock.Any(), testStaging, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ref warehouses.TableRef, columns []warehouses.Column, rows [][]any) (int64, error) {
			assert.Equal(t, []string{"hour", "click_event_count", "view_event_count"}, warehouses.ColumnNames(columns))
			assert.Equal(t, [][]any{
				{"2025-05-07T10:00:00", int64(1), int64(1)},
				{"2025-05-07T11:00:00", int64(1), int64(0)},
			}, rows)
			return 0, loadErr
		})

	result, err := loader.Load(context.Background(), testLocation, testStaging)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, loadErr)
	assert.Equal(t, codeInternalLoadFailed, svcerrors.CodeOf(err))
}

func TestStagingLoader_Load_VerificationFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns []warehouses.Column
		rows    int64
	}{
		{
			name:    "column dropped",
			columns: []warehouses.Column{{Name: "hour", Kind: warehouses.KindHour}, {Name: "click_event_count", Kind: warehouses.KindCount}},
			rows:    2,
		},
		{
			name: "row count short",
			columns: []warehouses.Column{
				{Name: "hour", Kind: warehouses.KindHour},
				{Name: "click_event_count", Kind: warehouses.KindCount},
				{Name: "view_event_count", Kind: warehouses.KindCount},
			},
			rows: 1,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockSummaryStore := storemocks.NewMockSummaryStore(ctrl)
			mockWarehouse := whmocks.NewMockWarehouse(ctrl)
			loader := NewStagingLoader(mockSummaryStore, mockWarehouse)

			mockSummaryStore.EXPECT().Get(gomock.Any(), testLocation).Return(sampleSummary(), nil)
			mockWarehouse.EXPECT().ReplaceTable(gomock.Any(), testStaging, gomock.Any(), gomock.Any()).Return(int64(2), nil)
			mockWarehouse.EXPECT().Columns(gomock.Any(), testStaging).Return(tt.columns, nil)
			mockWarehouse.EXPECT().CountRows(gomock.Any(), testStaging).Return(tt.rows, nil).MaxTimes(1)

			result, err := loader.Load(context.Background(), testLocation, testStaging)
			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, codeInternalLoadFailed, svcerrors.CodeOf(err))
			assert.Contains(t, err.Error(), "loadVerificationFailed")
		})
	}
}

func TestStagingLoader_Load_PublishedSummary(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir(), "event-data-summary")
	require.NoError(t, err)
	summaryStore := stores.NewSummaryStore(fileStorage, models.SummaryFormatNDJSON)
	warehouse := newTestWarehouse(t)
	ctx := context.Background()

	location, err := summaryStore.Put(ctx, sampleSummary(), models.WindowForDate(time.Date(2025, 5, 7, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, "local://event-data-summary/summary/2025/05/07/hourly_summary_2025-05-07.json", location)

	result, err := NewStagingLoader(summaryStore, warehouse).Load(ctx, location, testStaging)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.RowCount)
}
