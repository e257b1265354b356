package models

import "time"

// RunWindow is the one-day window a rollup run processes.
type RunWindow struct {
	Date time.Time // midnight UTC of the processed day
}

// PriorDayWindow returns the window for the day before now (UTC).
func PriorDayWindow(now time.Time) RunWindow {
	return WindowForDate(now.UTC().Add(-24 * time.Hour))
}

// WindowForDate returns the window containing date, truncated to midnight UTC.
func WindowForDate(date time.Time) RunWindow {
	d := date.UTC()
	return RunWindow{Date: time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)}
}

// DateString renders the window day as YYYY-MM-DD.
func (w RunWindow) DateString() string {
	return w.Date.Format("2006-01-02")
}

// EventPrefix is the literal key prefix producers write the day's records under.
func (w RunWindow) EventPrefix() string {
	return w.Date.Format("events/2006/01/02/")
}

// SummaryKey is the deterministic key of the day's published summary.
func (w RunWindow) SummaryKey(format SummaryFormat) string {
	return w.Date.Format("summary/2006/01/02/") + "hourly_summary_" + w.DateString() + "." + format.Extension()
}
