package models

import (
	"fmt"
	"time"
)

const (
	// HourColumn is the key column of every summary, staging and main table.
	HourColumn = "hour"

	// CountColumnSuffix is appended to an event type to name its count column.
	CountColumnSuffix = "_event_count"

	hourBucketParseLayout = "2006-01-02T15:04:05"
)

// HourBucketOf truncates the wall clock of t to the hour and renders it canonically.
// The offset is dropped, not applied: 2025-05-07T10:15:42+02:00 -> "2025-05-07T10:00:00".
func HourBucketOf(t time.Time) string {
	return t.Format("2006-01-02T15") + ":00:00"
}

// ParseHourBucket parses a canonical hour bucket and rejects values that are not on the hour.
func ParseHourBucket(s string) (time.Time, error) {
	t, err := time.Parse(hourBucketParseLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour bucket %q: %w", s, err)
	}
	if HourBucketOf(t) != s {
		return time.Time{}, fmt.Errorf("invalid hour bucket %q: not truncated to the hour", s)
	}
	return t, nil
}

// CountColumn returns the summary column name for an event type.
func CountColumn(eventType string) string {
	return eventType + CountColumnSuffix
}

// EventTypeOfColumn is the inverse of CountColumn.
func EventTypeOfColumn(column string) (string, bool) {
	if len(column) <= len(CountColumnSuffix) || column[len(column)-len(CountColumnSuffix):] != CountColumnSuffix {
		return "", false
	}
	return column[:len(column)-len(CountColumnSuffix)], true
}
