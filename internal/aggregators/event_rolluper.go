package aggregators

import (
	"errors"
	"strings"

	"event-rollup/internal/events"
	"event-rollup/internal/models"
)

//go:generate mockgen -source=event_rolluper.go -destination=./mocks/event_rolluper_mock.go -package=mocks
type EventRolluper interface {
	// Rollup mutates counts by counting record once towards its hour bucket and type.
	Rollup(counts *models.HourlyCounts, record *events.EventRecord) error
}

type eventRolluper struct{}

func NewEventRolluper() EventRolluper {
	return &eventRolluper{}
}

func (r *eventRolluper) Rollup(counts *models.HourlyCounts, record *events.EventRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	if strings.TrimSpace(record.Type) == "" {
		return errors.New("record type is empty")
	}
	if record.Timestamp.IsZero() {
		return errors.New("record timestamp is zero")
	}

	counts.Add(record.HourBucket(), record.Type, 1)
	return nil
}
