package domain

import (
	"fmt"
	"time"
)

// CalDate is a calendar day (year, month, day) with no time-of-day
// significance. It is the only map key used for day-scoped state; the
// ISO YYYY-MM-DD derivation lives here and nowhere else.
type CalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalDate builds a CalDate from explicit components.
func NewCalDate(year int, month time.Month, day int) CalDate {
	return CalDate{Year: year, Month: month, Day: day}
}

// DateOf truncates t to its local calendar day.
func DateOf(t time.Time) CalDate {
	y, m, d := t.Date()
	return CalDate{Year: y, Month: m, Day: d}
}

// ParseCalDate parses a YYYY-MM-DD string.
func ParseCalDate(s string) (CalDate, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return CalDate{}, fmt.Errorf("parsing calendar date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Key returns the canonical YYYY-MM-DD form used for equality, sorting
// and store lookups.
func (d CalDate) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d CalDate) String() string { return d.Key() }

// Midnight returns the date at 00:00:00 local time.
func (d CalDate) Midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// DayBounds returns the [00:00:00, 23:59:59] local-time window that scopes
// every store operation on a single day.
func (d CalDate) DayBounds() (start, end time.Time) {
	start = d.Midnight()
	end = time.Date(d.Year, d.Month, d.Day, 23, 59, 59, 0, time.Local)
	return start, end
}

// ActivityWindow returns the derived 09:00-17:00 window stamped on
// scheduled activities.
func (d CalDate) ActivityWindow() (start, end time.Time) {
	start = time.Date(d.Year, d.Month, d.Day, 9, 0, 0, 0, time.Local)
	end = time.Date(d.Year, d.Month, d.Day, 17, 0, 0, 0, time.Local)
	return start, end
}

// AddDays returns the date n calendar days later (negative n goes back).
// Normalization is delegated to time.Date.
func (d CalDate) AddDays(n int) CalDate {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.Local))
}

// Weekday returns the Monday-indexed weekday (0=Mon .. 6=Sun).
func (d CalDate) Weekday() int {
	return (int(d.Midnight().Weekday()) + 6) % 7
}

// Before reports whether d is strictly earlier than other.
func (d CalDate) Before(other CalDate) bool {
	return d.Key() < other.Key()
}
