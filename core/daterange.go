package core

import (
	"fmt"
	"time"

	"github.com/contribs-dev/contribs/internal/contract"
	"github.com/contribs-dev/contribs/schema"
)

// DateRange produces every calendar day label from start through end,
// inclusive on both sides. The end boundary is normalized to the last instant
// of its day before iterating, so an end date with a zero time-of-day still
// includes that whole day. Fails with ErrInvalidRange when the start day is
// strictly after the end day.
func DateRange(start, end time.Time) ([]string, error) {
	start = startOfDay(start)
	end = endOfDay(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", contract.ErrInvalidRange,
			start.Format(schema.DateFormat), end.Format(schema.DateFormat))
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(schema.DateFormat))
	}
	return days, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
