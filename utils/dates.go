// utils/dates.go
package utils

import (
	"math"
	"time"
)

// DateLayout is the calendar date format used on customers and orders.
const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// ParseDate reads a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WithinDays reports whether date lies in [from, from+days] at day
// granularity. A negative days looks backwards: [from+days, from].
func WithinDays(date, from time.Time, days int) bool {
	d := DaysBetween(from, date)
	if days < 0 {
		return d >= days && d <= 0
	}
	return d >= 0 && d <= days
}
