// Package biztime provides business-timezone date calculations. Storage and
// transport use UTC; the business timezone only decides where day and month
// boundaries fall for statistics and for the dashboard's days-remaining math.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when no timezone is configured.
const DefaultTimezone = "UTC"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init sets the business timezone. Call once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone, initializing with the default if
// Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to initialize default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current date at midnight in the business timezone.
func Today() time.Time {
	return StartOfDay(time.Now())
}

// StartOfDay strips the time of day in the business timezone.
func StartOfDay(t time.Time) time.Time {
	bt := t.In(Location())
	return time.Date(bt.Year(), bt.Month(), bt.Day(), 0, 0, 0, 0, Location())
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	bt := t.In(Location())
	return time.Date(bt.Year(), bt.Month(), 1, 0, 0, 0, 0, Location())
}

// MonthsAgo returns the first day of the month n months before t's month.
func MonthsAgo(t time.Time, n int) time.Time {
	return StartOfMonth(t).AddDate(0, -n, 0)
}

// SameMonth reports whether a and b fall in the same calendar month of the
// same year in the business timezone.
func SameMonth(a, b time.Time) bool {
	ab := a.In(Location())
	bb := b.In(Location())
	return ab.Year() == bb.Year() && ab.Month() == bb.Month()
}

// DaysBetween returns the calendar-day difference from a to b in the
// business timezone. The result is negative when b is before a. Both dates
// are re-anchored at UTC midnight before subtracting, so a DST-shortened
// 23-hour day still counts as a full day.
func DaysBetween(a, b time.Time) int {
	ab := a.In(Location())
	bb := b.In(Location())
	ua := time.Date(ab.Year(), ab.Month(), ab.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(bb.Year(), bb.Month(), bb.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD string as business-timezone midnight.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD in the business timezone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format("2006-01-02")
}
