package events

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"event-rollup/internal/models"

	"github.com/bytedance/sonic"
)

// ErrInvalidEventRecord marks a record that cannot be counted. Callers skip such records.
var ErrInvalidEventRecord = errors.New("invalid event record")

// EventRecord is one event written by a producer as its own small JSON document.
//
// Example JSON:
//
//	{"timestamp": "2025-05-07T10:15:00", "type": "click"}
//
// Records have no identity beyond their storage key and are never deduplicated.
type EventRecord struct {
	Timestamp time.Time
	Type      string
}

// timestampLayouts are tried in order. Offsets are kept as written so the hour bucket comes
// from the timestamp's own wall clock; layouts without an offset parse as UTC.
// Fractional seconds are accepted after any seconds field.
var timestampLayouts = buildTimestampLayouts()

func buildTimestampLayouts() []string {
	layouts := make([]string, 0, 19)
	for _, sep := range []string{"T", " "} {
		for _, clock := range []string{"15:04:05", "15:04", "15"} {
			for _, offset := range []string{"Z07:00", "Z0700", ""} {
				layouts = append(layouts, "2006-01-02"+sep+clock+offset)
			}
		}
	}
	return append(layouts, "2006-01-02")
}

// HourBucket returns the canonical hour bucket the record counts towards.
func (e *EventRecord) HourBucket() string {
	return models.HourBucketOf(e.Timestamp)
}

// ParseEventRecord decodes and validates one record. Every failure wraps ErrInvalidEventRecord.
func ParseEventRecord(data []byte) (*EventRecord, error) {
	var obj map[string]any
	if err := sonic.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidEventRecord, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: not a json object", ErrInvalidEventRecord)
	}

	timestampVal, ok := obj["timestamp"]
	if !ok {
		return nil, fmt.Errorf("%w: missing timestamp", ErrInvalidEventRecord)
	}
	timestampStr, ok := timestampVal.(string)
	if !ok {
		return nil, fmt.Errorf("%w: timestamp must be a string", ErrInvalidEventRecord)
	}
	timestamp, err := ParseTimestamp(timestampStr)
	if err != nil {
		return nil, err
	}

	typeVal, ok := obj["type"]
	if !ok {
		return nil, fmt.Errorf("%w: missing type", ErrInvalidEventRecord)
	}
	eventType, ok := typeVal.(string)
	if !ok {
		return nil, fmt.Errorf("%w: type must be a string", ErrInvalidEventRecord)
	}
	if strings.TrimSpace(eventType) == "" {
		return nil, fmt.Errorf("%w: type must not be empty", ErrInvalidEventRecord)
	}

	return &EventRecord{Timestamp: timestamp, Type: eventType}, nil
}

// ParseTimestamp parses the ISO-8601 forms producers emit.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid timestamp format: %q", ErrInvalidEventRecord, s)
}

// Marshal renders the record the way producers write it.
func (e *EventRecord) Marshal() ([]byte, error) {
	return sonic.Marshal(map[string]string{
		"timestamp": e.Timestamp.Format(time.RFC3339),
		"type":      e.Type,
	})
}
