package entity

import (
	"time"

	domainerrors "restaurant/internal/domain/errors"
)

// DateTimeRange is an inclusive [Start, End] time window.
type DateTimeRange struct {
	start time.Time
	end   time.Time
}

// NewDateTimeRange validates that start does not come after end.
func NewDateTimeRange(start, end time.Time) (DateTimeRange, error) {
	if start.After(end) {
		return DateTimeRange{}, domainerrors.NewValidationError("start_date", "start_date must be before end_date")
	}

	return DateTimeRange{start: start.UTC(), end: end.UTC()}, nil
}

// LastDays returns the window covering the given number of days up to now.
func LastDays(now time.Time, days int) DateTimeRange {
	now = now.UTC()

	return DateTimeRange{start: now.AddDate(0, 0, -days), end: now}
}

// Start returns the lower bound.
func (r DateTimeRange) Start() time.Time {
	return r.start
}

// End returns the upper bound.
func (r DateTimeRange) End() time.Time {
	return r.end
}

// Contains reports whether t lies inside the window, bounds included.
func (r DateTimeRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}
