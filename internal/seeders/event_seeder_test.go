package seeders

import (
	"context"
	"io"
	"testing"
	"time"

	"event-rollup/internal/events"
	"event-rollup/internal/shared/filestorages"
	"event-rollup/internal/shared/svcerrors"
	"event-rollup/internal/stores"
	"event-rollup/internal/stores/mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var seedDay = time.Date(2025, 5, 7, 0, 0, 0, 0, time.UTC)

func TestEventSeeder_WritesRecordsOfTheDay(t *testing.T) {
	t.Parallel()

	storage, err := filestorages.NewFileStorage(t.TempDir(), "events-bucket")
	require.NoError(t, err)
	seeder := NewEventSeeder(stores.NewEventRecordStore(storage), gofakeit.New(42))

	result, err := seeder.Seed(context.Background(), SeedOptions{Date: seedDay.Add(13 * time.Hour), Count: 25})
	require.NoError(t, err)

	assert.Equal(t, "events/2025/05/07/", result.Prefix)
	assert.Equal(t, 25, result.Written)
	assert.Zero(t, result.Existing)

	total := 0
	for eventType, n := range result.ByType {
		assert.Contains(t, EventTypes, eventType)
		total += n
	}
	assert.Equal(t, 25, total)

	objects, err := storage.List(context.Background(), result.Prefix)
	require.NoError(t, err)
	require.Len(t, objects, 25)

	for _, obj := range objects {
		rc, err := storage.Get(context.Background(), obj.Key)
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, rc.Close())
		require.NoError(t, err)

		record, err := events.ParseEventRecord(data)
		require.NoError(t, err, obj.Key)
		assert.Equal(t, seedDay, record.Timestamp.Truncate(24*time.Hour), obj.Key)
		assert.Zero(t, record.Timestamp.Second())
	}
}

func TestEventSeeder_KeepsExistingRecords(t *testing.T) {
	t.Parallel()

	storage, err := filestorages.NewFileStorage(t.TempDir(), "events-bucket")
	require.NoError(t, err)
	seeder := NewEventSeeder(stores.NewEventRecordStore(storage), gofakeit.New(7))

	_, err = seeder.Seed(context.Background(), SeedOptions{Date: seedDay, Count: 3})
	require.NoError(t, err)

	result, err := seeder.Seed(context.Background(), SeedOptions{Date: seedDay, Count: 5, StartSeq: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Existing) // event_002 and event_003
	assert.Equal(t, 3, result.Written)

	objects, err := storage.List(context.Background(), "events/2025/05/07/")
	require.NoError(t, err)
	assert.Len(t, objects, 6)
}

func TestEventSeeder_KeyLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		startSeq     int
		count        int
		expectedKeys []string
	}{
		{
			name:         "default start is one",
			count:        2,
			expectedKeys: []string{"events/2025/05/07/event_001.json", "events/2025/05/07/event_002.json"},
		},
		{
			name:         "explicit start",
			startSeq:     10,
			count:        2,
			expectedKeys: []string{"events/2025/05/07/event_010.json", "events/2025/05/07/event_011.json"},
		},
		{
			name:         "wider than three digits",
			startSeq:     999,
			count:        2,
			expectedKeys: []string{"events/2025/05/07/event_999.json", "events/2025/05/07/event_1000.json"},
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			store := mocks.NewMockEventRecordStore(ctrl)
			calls := make([]any, 0, len(tt.expectedKeys))
			for _, key := range tt.expectedKeys {
				calls = append(calls, store.EXPECT().Put(gomock.Any(), key, gomock.Any()).Return(nil))
			}
			gomock.InOrder(calls...)

			opts := SeedOptions{Date: seedDay, Count: tt.count, StartSeq: tt.startSeq}
			result, err := NewEventSeeder(store, gofakeit.New(1)).Seed(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.count, result.Written)
		})
	}
}

func TestEventSeeder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      SeedOptions
		setupMock func(m *mocks.MockEventRecordStore)
		ctx       func() context.Context
		wantCode  string
	}{
		{
			name:      "zero count",
			opts:      SeedOptions{Date: seedDay},
			setupMock: func(m *mocks.MockEventRecordStore) {},
			wantCode:  codeInvalidSeedCount,
		},
		{
			name:      "count too large",
			opts:      SeedOptions{Date: seedDay, Count: maxSeedCount + 1},
			setupMock: func(m *mocks.MockEventRecordStore) {},
			wantCode:  codeInvalidSeedCount,
		},
		{
			name:      "negative start",
			opts:      SeedOptions{Date: seedDay, Count: 1, StartSeq: -1},
			setupMock: func(m *mocks.MockEventRecordStore) {},
			wantCode:  codeInvalidStartSeq,
		},
		{
			name: "store failure",
			opts: SeedOptions{Date: seedDay, Count: 3},
			setupMock: func(m *mocks.MockEventRecordStore) {
				m.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			wantCode: codeInternalSeedWriteFailed,
		},
		{
			name:      "cancelled",
			opts:      SeedOptions{Date: seedDay, Count: 3},
			setupMock: func(m *mocks.MockEventRecordStore) {},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			wantCode: codeInternalSeedWriteFailed,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			store := mocks.NewMockEventRecordStore(ctrl)
			tt.setupMock(store)

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			result, err := NewEventSeeder(store, gofakeit.New(1)).Seed(ctx, tt.opts)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantCode, svcerrors.CodeOf(err))
		})
	}
}

func TestNewEventSeeder_NilFakerIsRandomlySeeded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockEventRecordStore(ctrl)
	var timestamps []time.Time
	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, record *events.EventRecord) error {
			timestamps = append(timestamps, record.Timestamp)
			return nil
		}).Times(40)

	for i := 0; i < 2; i++ {
		_, err := NewEventSeeder(store, nil).Seed(context.Background(), SeedOptions{Date: seedDay, Count: 20})
		require.NoError(t, err)
	}

	// two seeders with a fixed seed would repeat the same minutes
	assert.NotEqual(t, timestamps[:20], timestamps[20:])
}
