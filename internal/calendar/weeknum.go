package calendar

import (
	"math"
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
)

// WeekNumber returns the week-of-year for the given date: days elapsed
// since Jan 1 plus Jan 1's weekday offset, divided by 7 and rounded up.
// This is a deliberate approximation, not strict ISO 8601 week numbering;
// it matches what the calendar has always displayed in its gutter.
func WeekNumber(date domain.CalDate) int {
	jan1 := time.Date(date.Year, time.January, 1, 0, 0, 0, 0, time.Local)
	// Rounded so DST-shortened days still count as whole days.
	pastDays := math.Round(date.Midnight().Sub(jan1).Hours() / 24)
	// Sunday-based weekday of Jan 1, offset by one so the first partial
	// week always counts as week 1.
	return int(math.Ceil((pastDays + float64(jan1.Weekday()) + 1) / 7))
}
