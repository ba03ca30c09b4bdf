package leave

import (
	"errors"
	"time"
)

// CalculateDays returns the inclusive day count between start and end.
func CalculateDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// SpanDates lists every calendar day of an inclusive leave range.
func SpanDates(start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}
	dates := make([]time.Time, 0, 4)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}
	return dates
}
