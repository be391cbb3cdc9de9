// Package timewindow computes the (date, duration) pair for a daily
// time log: the calendar day before "now" in a given time zone, and
// the elapsed time between two wall-clock instants on that day.
package timewindow

import (
	"fmt"
	"time"
)

// Window is the computed target of a time log.
type Window struct {
	// Date is the day the time is logged against, zero-padded
	// "MM-DD-YYYY" (the Zoho Projects date format).
	Date string
	// Hours is the logged duration as zero-padded "HH:MM".
	Hours string
}

// parseClock parses a 24-hour "HH:MM" wall-clock string.
func parseClock(s string) (hour, min int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q (want HH:MM): %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// ComputeAt derives the window for the calendar day preceding now.
// now carries the location the computation happens in; the result is
// deterministic for a given now and clock pair.
func ComputeAt(now time.Time, startClock, endClock string) (Window, error) {
	startHour, startMin, err := parseClock(startClock)
	if err != nil {
		return Window{}, err
	}
	endHour, endMin, err := parseClock(endClock)
	if err != nil {
		return Window{}, err
	}

	// AddDate subtracts a calendar day, not 24 hours, so the date stays
	// correct across daylight-saving transitions.
	yesterday := now.AddDate(0, 0, -1)

	loc := now.Location()
	start := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), startHour, startMin, 0, 0, loc)
	end := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), endHour, endMin, 0, 0, loc)

	if !end.After(start) {
		return Window{}, fmt.Errorf("end time %s must be after start time %s", endClock, startClock)
	}

	totalMinutes := int(end.Sub(start).Minutes())
	return Window{
		Date:  yesterday.Format("01-02-2006"),
		Hours: fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60),
	}, nil
}

// Compute resolves the current time in the named IANA zone and derives
// the window for yesterday there.
func Compute(tzName, startClock, endClock string) (Window, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return Window{}, fmt.Errorf("invalid timezone %q: %w", tzName, err)
	}
	return ComputeAt(time.Now().In(loc), startClock, endClock)
}
