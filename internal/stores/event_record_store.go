package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"event-rollup/internal/events"
	"event-rollup/internal/shared/filestorages"
)

var (
	ErrEventRecordAlreadyExist = errors.New("event record already exists")
)

// EventRecordStore writes event records the way producers do: one JSON document per event,
// created once under a caller-chosen key. A second Put of the same key returns
// ErrEventRecordAlreadyExist and leaves the first document untouched.
//
//go:generate mockgen -source=event_record_store.go -destination=./mocks/event_record_store_mock.go -package=mocks
type EventRecordStore interface {
	Put(ctx context.Context, key string, record *events.EventRecord) error
}

type eventRecordStore struct {
	fileStorage filestorages.FileStorage
}

func NewEventRecordStore(fileStorage filestorages.FileStorage) EventRecordStore {
	return &eventRecordStore{fileStorage: fileStorage}
}

func (s *eventRecordStore) Put(ctx context.Context, key string, record *events.EventRecord) error {
	jsonData, err := record.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal event record: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{
		AllowOverwrite: false,
		ContentType:    "application/json",
	})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrEventRecordAlreadyExist
		}
		return fmt.Errorf("failed to put event record: %w", err)
	}
	return nil
}
