package report

import (
	"strings"
	"time"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// DayStart returns midnight of t's calendar day in tz.
func DayStart(t time.Time, tz *time.Location) time.Time {
	local := t.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz)
}

// NextDayStart returns midnight of the following day in tz.
func NextDayStart(t time.Time, tz *time.Location) time.Time {
	// AddDate handles DST correctly, Add(24h) does not
	next := DayStart(t, tz).AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, tz)
}

// MonthStart returns midnight of the first day of t's month in tz.
func MonthStart(t time.Time, tz *time.Location) time.Time {
	local := t.In(tz)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, tz)
}

// ParseDay parses "YYYY-MM-DD" as a calendar day in tz and returns its
// [from, to) bounds.
func ParseDay(s string, tz *time.Location) (from, to time.Time, err error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), tz)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return d, NextDayStart(d, tz), nil
}

// ParseMonth parses "YYYY-MM" as a calendar month in tz and returns its
// [from, to) bounds.
func ParseMonth(s string, tz *time.Location) (from, to time.Time, err error) {
	m, err := time.ParseInLocation(monthLayout, strings.TrimSpace(s), tz)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("month", "must be YYYY-MM")
	}
	return m, m.AddDate(0, 1, 0), nil
}

// FormatDay renders t as the day key used by ParseDay.
func FormatDay(t time.Time, tz *time.Location) string {
	return t.In(tz).Format(dateLayout)
}

// FormatMonth renders t as the month key used by ParseMonth.
func FormatMonth(t time.Time, tz *time.Location) string {
	return t.In(tz).Format(monthLayout)
}
