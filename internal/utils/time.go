package utils

import (
	"fmt"
	"time"

	"github.com/arogowski/vitalog/internal/constants"
)

// ParseDateOnly parses a date string (YYYY-MM-DD) at local midnight. It is
// strict: anything that is not a bare calendar day is an error.
func ParseDateOnly(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// StartOfDay returns local midnight on t's calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// EndOfDay returns 23:59:59.999 local on t's calendar day, making date
// bounds calendar-day inclusive.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// DaysBack returns the inclusive local-day range covering the last n
// calendar days ending today.
func DaysBack(n int) (from, to time.Time) {
	now := time.Now()
	to = EndOfDay(now)
	from = StartOfDay(now.AddDate(0, 0, -(n - 1)))
	return from, to
}

// DayKey buckets a timestamp into its local calendar day (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// FormatShortStamp renders a compact timestamp label (DD.MM HH:MM).
func FormatShortStamp(t time.Time) string {
	return t.Local().Format(constants.ShortStampFormat)
}

// FormatWhen renders an entry timestamp for display, minute precision.
func FormatWhen(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// NowStamp returns the current time in the storage timestamp format.
func NowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
