package domain

import (
	"fmt"
	"time"
)

// Records persist dates as ISO-8601 strings; some collections carry full
// timestamps, attendance carries bare days.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a stored date string. A date that cannot be parsed is a
// data-quality failure of the source record: the caller must abort the
// statement rather than guess, since a broken sort order corrupts every
// balance after it.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateUnparsable, value)
}

// StartOfDay returns midnight at the beginning of t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// MonthsBetween returns the first day of every month from start through end
// inclusive. Returns nil when start is after end.
func MonthsBetween(start, end time.Time) []time.Time {
	if start.After(end) {
		return nil
	}
	var months []time.Time
	for m := StartOfMonth(start); !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
