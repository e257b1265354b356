package stores

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"event-rollup/internal/models"
	"event-rollup/internal/shared/filestorages"
)

// SummaryStore publishes hourly summaries to the summary bucket and reads them back by location.
//
//go:generate mockgen -source=summary_store.go -destination=./mocks/summary_store_mock.go -package=mocks
type SummaryStore interface {
	// Put writes summary under the window's deterministic key, replacing any earlier publication,
	// and returns its fully qualified location.
	Put(ctx context.Context, summary *models.HourlySummary, window models.RunWindow) (string, error)
	Get(ctx context.Context, location string) (*models.HourlySummary, error)
}

type summaryStore struct {
	fileStorage filestorages.FileStorage
	format      models.SummaryFormat
}

func NewSummaryStore(fileStorage filestorages.FileStorage, format models.SummaryFormat) SummaryStore {
	return &summaryStore{fileStorage: fileStorage, format: format}
}

func (s *summaryStore) Put(ctx context.Context, summary *models.HourlySummary, window models.RunWindow) (string, error) {
	data, err := s.format.Encode(summary)
	if err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}

	key := window.SummaryKey(s.format)
	result, err := s.fileStorage.Put(ctx, key, bytes.NewReader(data), filestorages.PutOptions{
		AllowOverwrite: true,
		ContentType:    s.format.ContentType(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put summary: %w", err)
	}
	return result.Location, nil
}

func (s *summaryStore) Get(ctx context.Context, location string) (*models.HourlySummary, error) {
	key, err := filestorages.KeyOf(s.fileStorage, location)
	if err != nil {
		return nil, err
	}

	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	defer readCloser.Close()

	summary, err := formatOfKey(key, s.format).Decode(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}
	return summary, nil
}

// formatOfKey picks the format from the key's extension so a summary published before a
// format change can still be read.
func formatOfKey(key string, fallback models.SummaryFormat) models.SummaryFormat {
	switch path.Ext(key) {
	case ".csv":
		return models.SummaryFormatCSV
	case ".json":
		return models.SummaryFormatNDJSON
	}
	return fallback
}
