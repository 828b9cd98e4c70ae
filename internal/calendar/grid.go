// Package calendar holds the pure date math behind the custody calendar:
// month-grid construction, week numbering and the projection of weekly
// custody schedules onto concrete days. Nothing here touches the store.
package calendar

import (
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
)

// Cell is one day slot in a rendered month grid.
type Cell struct {
	Date           domain.CalDate
	InCurrentMonth bool
}

// WeekRow is exactly seven cells, Monday first.
type WeekRow [7]Cell

// MonthGrid is a month partitioned into full weeks. The first and last
// rows may be padded with adjacent-month days; there are never partial
// rows.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks []WeekRow
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// BuildMonthGrid partitions a month into Monday-first week rows. Days
// borrowed from the previous month appear only when the month does not
// start on Monday; next-month days only fill out a trailing partial week.
func BuildMonthGrid(year int, month time.Month) MonthGrid {
	first := domain.NewCalDate(year, month, 1)
	daysInMonth := DaysInMonth(year, month)

	startingDayOfWeek := first.Weekday()

	cells := make([]Cell, 0, startingDayOfWeek+daysInMonth+6)
	for i := startingDayOfWeek; i > 0; i-- {
		cells = append(cells, Cell{Date: first.AddDays(-i), InCurrentMonth: false})
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, Cell{Date: domain.NewCalDate(year, month, day), InCurrentMonth: true})
	}
	last := domain.NewCalDate(year, month, daysInMonth)
	for next := 1; len(cells)%7 != 0; next++ {
		cells = append(cells, Cell{Date: last.AddDays(next), InCurrentMonth: false})
	}

	grid := MonthGrid{Year: year, Month: month}
	for i := 0; i < len(cells); i += 7 {
		var row WeekRow
		copy(row[:], cells[i:i+7])
		grid.Weeks = append(grid.Weeks, row)
	}
	return grid
}
