package models

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/bytedance/sonic"
)

// SummaryFormat is the file format a summary is published and loaded in.
type SummaryFormat string

const (
	SummaryFormatCSV    SummaryFormat = "csv"
	SummaryFormatNDJSON SummaryFormat = "ndjson"
)

// ErrSummarySchemaMismatch marks a published summary whose shape does not match the summary schema.
var ErrSummarySchemaMismatch = errors.New("summary schema mismatch")

var summaryJSON = sonic.Config{SortMapKeys: true, UseInt64: true}.Froze()

func ParseSummaryFormat(s string) (SummaryFormat, error) {
	switch SummaryFormat(s) {
	case SummaryFormatCSV, SummaryFormatNDJSON:
		return SummaryFormat(s), nil
	}
	return "", fmt.Errorf("unsupported summary format: %q", s)
}

func (f SummaryFormat) Extension() string {
	switch f {
	case SummaryFormatCSV:
		return "csv"
	case SummaryFormatNDJSON:
		return "json"
	default:
		panic(fmt.Sprintf("invalid SummaryFormat: %q", f))
	}
}

func (f SummaryFormat) ContentType() string {
	switch f {
	case SummaryFormatCSV:
		return "text/csv"
	case SummaryFormatNDJSON:
		return "application/x-ndjson"
	default:
		panic(fmt.Sprintf("invalid SummaryFormat: %q", f))
	}
}

// Encode renders s. CSV always writes the header, so an empty summary is a header-only file.
func (f SummaryFormat) Encode(s *HourlySummary) ([]byte, error) {
	switch f {
	case SummaryFormatCSV:
		return encodeCSV(s)
	case SummaryFormatNDJSON:
		return encodeNDJSON(s)
	default:
		return nil, fmt.Errorf("unsupported summary format: %q", f)
	}
}

// Decode parses a published summary and checks its shape: hour first, every other column a
// count column, uniform column count, canonical hour buckets and non-negative integer counts.
// Shape violations wrap ErrSummarySchemaMismatch.
func (f SummaryFormat) Decode(r io.Reader) (*HourlySummary, error) {
	switch f {
	case SummaryFormatCSV:
		return decodeCSV(r)
	case SummaryFormatNDJSON:
		return decodeNDJSON(r)
	default:
		return nil, fmt.Errorf("unsupported summary format: %q", f)
	}
}

func encodeCSV(s *HourlySummary) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(s.Columns()); err != nil {
		return nil, err
	}
	record := make([]string, len(s.EventTypes)+1)
	for _, row := range s.Rows {
		record[0] = row.Hour
		for i, c := range row.Counts {
			record[i+1] = strconv.FormatInt(c, 10)
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNDJSON(s *HourlySummary) ([]byte, error) {
	var buf bytes.Buffer
	for _, row := range s.Rows {
		obj := make(map[string]any, len(s.EventTypes)+1)
		obj[HourColumn] = row.Hour
		for i, t := range s.EventTypes {
			obj[CountColumn(t)] = row.Counts[i]
		}
		line, err := summaryJSON.Marshal(obj)
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func decodeCSV(r io.Reader) (*HourlySummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // checked below to report a schema mismatch instead of a parse error

	header, err := reader.Read()
	if err == io.EOF {
		return &HourlySummary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read summary header: %w", err)
	}
	eventTypes, err := eventTypesOfHeader(header)
	if err != nil {
		return nil, err
	}

	summary := &HourlySummary{EventTypes: eventTypes}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read summary line %d: %w", line, err)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: line %d has %d columns, header has %d", ErrSummarySchemaMismatch, line, len(record), len(header))
		}
		row := HourlyRow{Hour: record[0], Counts: make([]int64, len(eventTypes))}
		for i, raw := range record[1:] {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d column %q: %q is not a count", ErrSummarySchemaMismatch, line, header[i+1], raw)
			}
			row.Counts[i] = n
		}
		summary.Rows = append(summary.Rows, row)
	}
	return summary, validateRows(summary)
}

func decodeNDJSON(r io.Reader) (*HourlySummary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var summary *HourlySummary
	for line := 1; scanner.Scan(); line++ {
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var obj map[string]any
		if err := summaryJSON.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid json: %v", ErrSummarySchemaMismatch, line, err)
		}

		if summary == nil {
			columns := make([]string, 0, len(obj))
			for k := range obj {
				if k != HourColumn {
					columns = append(columns, k)
				}
			}
			sort.Strings(columns)
			eventTypes, err := eventTypesOfHeader(append([]string{HourColumn}, columns...))
			if err != nil {
				return nil, err
			}
			summary = &HourlySummary{EventTypes: eventTypes}
		}
		if len(obj) != len(summary.EventTypes)+1 {
			return nil, fmt.Errorf("%w: line %d has %d columns, expected %d", ErrSummarySchemaMismatch, line, len(obj), len(summary.EventTypes)+1)
		}

		hour, ok := obj[HourColumn].(string)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: hour must be a string", ErrSummarySchemaMismatch, line)
		}
		row := HourlyRow{Hour: hour, Counts: make([]int64, len(summary.EventTypes))}
		for i, t := range summary.EventTypes {
			column := CountColumn(t)
			n, ok := obj[column].(int64)
			if !ok || n < 0 {
				return nil, fmt.Errorf("%w: line %d column %q: %v is not a count", ErrSummarySchemaMismatch, line, column, obj[column])
			}
			row.Counts[i] = n
		}
		summary.Rows = append(summary.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}
	if summary == nil {
		return &HourlySummary{}, nil
	}
	return summary, validateRows(summary)
}

func eventTypesOfHeader(header []string) ([]string, error) {
	if len(header) == 0 || header[0] != HourColumn {
		return nil, fmt.Errorf("%w: first column must be %q", ErrSummarySchemaMismatch, HourColumn)
	}
	eventTypes := make([]string, 0, len(header)-1)
	seen := make(map[string]struct{}, len(header)-1)
	for _, column := range header[1:] {
		eventType, ok := EventTypeOfColumn(column)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected column %q", ErrSummarySchemaMismatch, column)
		}
		if _, dup := seen[eventType]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrSummarySchemaMismatch, column)
		}
		seen[eventType] = struct{}{}
		eventTypes = append(eventTypes, eventType)
	}
	return eventTypes, nil
}

func validateRows(s *HourlySummary) error {
	seen := make(map[string]struct{}, len(s.Rows))
	for _, row := range s.Rows {
		if _, err := ParseHourBucket(row.Hour); err != nil {
			return fmt.Errorf("%w: %v", ErrSummarySchemaMismatch, err)
		}
		if _, dup := seen[row.Hour]; dup {
			return fmt.Errorf("%w: duplicate hour %q", ErrSummarySchemaMismatch, row.Hour)
		}
		seen[row.Hour] = struct{}{}
	}
	return nil
}
