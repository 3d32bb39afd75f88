package utils

import (
	"time"

	"carrental-backend/internal/domain"
)

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time at
// midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// truncateToDate drops the time-of-day portion so day arithmetic is not
// affected by clock components or zones.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LeaseDays returns the number of chargeable days between start and end.
// Both the start and the end date are included, so a same-day lease counts
// as one day. Returns ErrInvalidDateRange when end precedes start.
func LeaseDays(start, end time.Time) (int32, error) {
	s := truncateToDate(start)
	e := truncateToDate(end)
	if e.Before(s) {
		return 0, domain.ErrInvalidDateRange
	}
	return int32(e.Sub(s).Hours()/24) + 1, nil
}

// LeaseTotalCents computes the total lease cost as dailyRateCents times the
// inclusive day count. This is a pure derivation; nothing is persisted.
func LeaseTotalCents(dailyRateCents int32, start, end time.Time) (int32, error) {
	days, err := LeaseDays(start, end)
	if err != nil {
		return 0, err
	}
	return dailyRateCents * days, nil
}
