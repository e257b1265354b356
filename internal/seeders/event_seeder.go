package seeders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-rollup/internal/events"
	"event-rollup/internal/models"
	"event-rollup/internal/shared/loggers"
	"event-rollup/internal/stores"

	"github.com/brianvoe/gofakeit/v6"
)

const maxSeedCount = 100_000

// EventTypes are the types synthetic events are drawn from.
var EventTypes = []string{"click", "view", "purchase"}

type SeedOptions struct {
	// Date is any instant of the day to fill, read as UTC.
	Date time.Time

	Count int

	// StartSeq numbers the first key, event_<StartSeq:03d>.json. Zero starts at 1.
	StartSeq int
}

type SeedResult struct {
	Prefix   string
	Written  int
	Existing int
	ByType   map[string]int
}

//go:generate mockgen -source=event_seeder.go -destination=./mocks/event_seeder_mock.go -package=mocks
type EventSeeder interface {
	// Seed writes Count synthetic records at random minutes of the day. Keys that already
	// exist are left untouched and counted as Existing.
	Seed(ctx context.Context, opts SeedOptions) (*SeedResult, error)
}

type eventSeeder struct {
	store stores.EventRecordStore
	faker *gofakeit.Faker
}

// NewEventSeeder returns a seeder drawing from faker. A nil faker is seeded from crypto/rand.
func NewEventSeeder(store stores.EventRecordStore, faker *gofakeit.Faker) EventSeeder {
	if faker == nil {
		faker = gofakeit.New(0)
	}
	return &eventSeeder{store: store, faker: faker}
}

func (s *eventSeeder) Seed(ctx context.Context, opts SeedOptions) (*SeedResult, error) {
	if opts.Count < 1 || opts.Count > maxSeedCount {
		return nil, errInvalidSeedCount(opts.Count, maxSeedCount)
	}
	if opts.StartSeq < 0 {
		return nil, errInvalidStartSeq(opts.StartSeq)
	}
	start := opts.StartSeq
	if start == 0 {
		start = 1
	}

	window := models.WindowForDate(opts.Date)
	result := &SeedResult{Prefix: window.EventPrefix(), ByType: make(map[string]int, len(EventTypes))}
	logger := loggers.Ctx(ctx)

	for i := 0; i < opts.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errInternalSeedWriteFailed(err)
		}

		record := &events.EventRecord{
			Timestamp: window.Date.Add(time.Duration(s.faker.IntRange(0, 24*60-1)) * time.Minute),
			Type:      s.faker.RandomString(EventTypes),
		}
		key := fmt.Sprintf("%sevent_%03d.json", result.Prefix, start+i)

		err := s.store.Put(ctx, key, record)
		if errors.Is(err, stores.ErrEventRecordAlreadyExist) {
			logger.Debug().Str(loggers.FieldObjectKey, key).Msg("event record already exists, kept")
			result.Existing++
			continue
		}
		if err != nil {
			return nil, errInternalSeedWriteFailed(err)
		}
		result.Written++
		result.ByType[record.Type]++
	}

	logger.Info().
		Str("prefix", result.Prefix).
		Int("written", result.Written).
		Int("existing", result.Existing).
		Msg("seeded event records")
	return result, nil
}
