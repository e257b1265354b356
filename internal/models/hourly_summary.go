package models

import "sort"

// HourlyCounts accumulates event counts by (hour bucket, event type) while records stream through.
// Only the counters are retained, never the records.
type HourlyCounts struct {
	byHour     map[string]map[string]int64
	eventTypes map[string]struct{}
}

func NewHourlyCounts() *HourlyCounts {
	return &HourlyCounts{
		byHour:     make(map[string]map[string]int64),
		eventTypes: make(map[string]struct{}),
	}
}

// Add increments the counter of eventType in hour by n.
func (c *HourlyCounts) Add(hour, eventType string, n int64) {
	counts, ok := c.byHour[hour]
	if !ok {
		counts = make(map[string]int64)
		c.byHour[hour] = counts
	}
	counts[eventType] += n
	c.eventTypes[eventType] = struct{}{}
}

func (c *HourlyCounts) IsEmpty() bool {
	return len(c.byHour) == 0
}

// EventTypes returns every event type seen so far, sorted.
func (c *HourlyCounts) EventTypes() []string {
	types := make([]string, 0, len(c.eventTypes))
	for t := range c.eventTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Summary renders the accumulated counts. The column set is discovered first so that
// every row carries every event type, zero-filled where the hour never saw it.
func (c *HourlyCounts) Summary() *HourlySummary {
	eventTypes := c.EventTypes()

	hours := make([]string, 0, len(c.byHour))
	for h := range c.byHour {
		hours = append(hours, h)
	}
	sort.Strings(hours)

	rows := make([]HourlyRow, 0, len(hours))
	for _, h := range hours {
		counts := make([]int64, len(eventTypes))
		for i, t := range eventTypes {
			counts[i] = c.byHour[h][t]
		}
		rows = append(rows, HourlyRow{Hour: h, Counts: counts})
	}

	return &HourlySummary{EventTypes: eventTypes, Rows: rows}
}

// HourlySummary is the tabular rollup of one run: one row per hour bucket, ascending,
// and one count per event type, aligned with EventTypes (sorted).
//
// Example CSV rendering:
//
//	hour,click_event_count,view_event_count
//	2025-05-07T10:00:00,1,1
//	2025-05-07T11:00:00,1,0
type HourlySummary struct {
	EventTypes []string
	Rows       []HourlyRow
}

type HourlyRow struct {
	Hour   string
	Counts []int64
}

// Columns returns the header: hour followed by one count column per event type.
func (s *HourlySummary) Columns() []string {
	columns := make([]string, 0, len(s.EventTypes)+1)
	columns = append(columns, HourColumn)
	for _, t := range s.EventTypes {
		columns = append(columns, CountColumn(t))
	}
	return columns
}

// Count returns the count of eventType in row, 0 when the type is unknown.
func (s *HourlySummary) Count(row HourlyRow, eventType string) int64 {
	for i, t := range s.EventTypes {
		if t == eventType {
			return row.Counts[i]
		}
	}
	return 0
}

// Row returns the row of hour, if any.
func (s *HourlySummary) Row(hour string) (HourlyRow, bool) {
	i := sort.Search(len(s.Rows), func(i int) bool { return s.Rows[i].Hour >= hour })
	if i < len(s.Rows) && s.Rows[i].Hour == hour {
		return s.Rows[i], true
	}
	return HourlyRow{}, false
}

func (s *HourlySummary) IsEmpty() bool {
	return len(s.Rows) == 0
}
