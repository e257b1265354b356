package aggregators

import (
	"testing"
	"time"

	"event-rollup/internal/events"
	"event-rollup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRolluper_Rollup_CountsByHourAndType(t *testing.T) {
	t.Parallel()

	rolluper := NewEventRolluper()
	counts := models.NewHourlyCounts()

	records := []*events.EventRecord{
		{Timestamp: time.Date(2025, 5, 7, 10, 15, 0, 0, time.UTC), Type: "click"},
		{Timestamp: time.Date(2025, 5, 7, 10, 45, 0, 0, time.UTC), Type: "view"},
		{Timestamp: time.Date(2025, 5, 7, 11, 0, 0, 0, time.UTC), Type: "click"},
		{Timestamp: time.Date(2025, 5, 7, 10, 59, 59, 0, time.UTC), Type: "click"},
	}
	for _, r := range records {
		require.NoError(t, rolluper.Rollup(counts, r))
	}

	summary := counts.Summary()
	assert.Equal(t, []string{"click", "view"}, summary.EventTypes)
	require.Len(t, summary.Rows, 2)
	assert.Equal(t, models.HourlyRow{Hour: "2025-05-07T10:00:00", Counts: []int64{2, 1}}, summary.Rows[0])
	assert.Equal(t, models.HourlyRow{Hour: "2025-05-07T11:00:00", Counts: []int64{1, 0}}, summary.Rows[1])
}

func TestEventRolluper_Rollup_TypeIsCaseSensitive(t *testing.T) {
	t.Parallel()

	rolluper := NewEventRolluper()
	counts := models.NewHourlyCounts()
	ts := time.Date(2025, 5, 7, 10, 15, 0, 0, time.UTC)

	require.NoError(t, rolluper.Rollup(counts, &events.EventRecord{Timestamp: ts, Type: "Click"}))
	require.NoError(t, rolluper.Rollup(counts, &events.EventRecord{Timestamp: ts, Type: "click"}))

	assert.Equal(t, []string{"Click", "click"}, counts.EventTypes())
}

func TestEventRolluper_Rollup_OffsetTimestampsUseWallClockHour(t *testing.T) {
	t.Parallel()

	rolluper := NewEventRolluper()
	counts := models.NewHourlyCounts()
	plusTwo := time.FixedZone("+02:00", 2*60*60)

	require.NoError(t, rolluper.Rollup(counts, &events.EventRecord{Timestamp: time.Date(2025, 5, 7, 12, 30, 0, 0, plusTwo), Type: "click"}))

	summary := counts.Summary()
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, "2025-05-07T12:00:00", summary.Rows[0].Hour)
}

func TestEventRolluper_Rollup_RejectsIncompleteRecords(t *testing.T) {
	t.Parallel()

	rolluper := NewEventRolluper()
	counts := models.NewHourlyCounts()

	tests := []struct {
		name   string
		record *events.EventRecord
	}{
		{name: "nil record", record: nil},
		{name: "blank type", record: &events.EventRecord{Timestamp: time.Now(), Type: "  "}},
		{name: "zero timestamp", record: &events.EventRecord{Type: "click"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, rolluper.Rollup(counts, tt.record))
		})
	}
	assert.True(t, counts.IsEmpty())
}
