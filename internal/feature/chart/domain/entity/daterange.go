package entity

import (
	"errors"
	"time"
)

// DateLayout is the calendar date format used by the chart form and the
// remote API timestamps.
const DateLayout = "2006-01-02"

// ErrEndBeforeStart is returned when a range's end date precedes its start date.
var ErrEndBeforeStart = errors.New("end date must be on or after the start date")

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateRange is an inclusive pair of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds an inclusive date range, rejecting end < start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, ErrEndBeforeStart
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether d falls inside the range, both endpoints inclusive.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}
