package services

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// toInstant combines an "HH:MM" wall-clock value with a calendar date,
// zeroing seconds and below. "24:00" is accepted as midnight at the end
// of the reference day.
func toInstant(clock string, ref time.Time) (time.Time, error) {
	if clock == "24:00" {
		return time.Date(ref.Year(), ref.Month(), ref.Day()+1, 0, 0, 0, 0, ref.Location()), nil
	}
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour(), t.Minute(), 0, 0, ref.Location()), nil
}

// resolveWindow turns a start/end clock pair into absolute instants on the
// reference date, with end strictly after start. A naive end at or before
// the start means the window crosses midnight and ends on the following
// calendar day; overnight windows carry no dedicated flag.
func resolveWindow(startClock, endClock string, ref time.Time) (time.Time, time.Time, error) {
	start, err := toInstant(startClock, ref)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := toInstant(endClock, ref)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

// durationHours returns the elapsed time between two instants in hours.
// Always positive for a correctly resolved window.
func durationHours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// dayStart returns midnight of t's calendar day.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func formatClock(t time.Time) string {
	return t.Format(clockLayout)
}
