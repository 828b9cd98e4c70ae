package calendar

import (
	"testing"
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid_AllRowsHaveSevenCells(t *testing.T) {
	for year := 2020; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := BuildMonthGrid(year, month)
			for i, row := range grid.Weeks {
				assert.Len(t, row, 7, "%d-%02d row %d", year, month, i)
			}
			total := len(grid.Weeks) * 7
			assert.Zero(t, total%7)
		}
	}
}

func TestBuildMonthGrid_CurrentMonthCellCount(t *testing.T) {
	for year := 2020; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := BuildMonthGrid(year, month)
			count := 0
			for _, row := range grid.Weeks {
				for _, cell := range row {
					if cell.InCurrentMonth {
						count++
					}
				}
			}
			assert.Equal(t, DaysInMonth(year, month), count, "%d-%02d", year, month)
		}
	}
}

func TestBuildMonthGrid_MonthStartingOnMonday_NoLeadingPadding(t *testing.T) {
	// April 2024 starts on a Monday.
	grid := BuildMonthGrid(2024, time.April)
	first := grid.Weeks[0][0]
	assert.True(t, first.InCurrentMonth)
	assert.Equal(t, domain.NewCalDate(2024, time.April, 1), first.Date)
}

func TestBuildMonthGrid_LeadingPaddingFromPreviousMonth(t *testing.T) {
	// March 2024 starts on a Friday: four leading padding days (Mon-Thu).
	grid := BuildMonthGrid(2024, time.March)
	row := grid.Weeks[0]

	for i := 0; i < 4; i++ {
		assert.False(t, row[i].InCurrentMonth, "cell %d should be padding", i)
		assert.Equal(t, time.February, row[i].Date.Month)
	}
	assert.True(t, row[4].InCurrentMonth)
	assert.Equal(t, domain.NewCalDate(2024, time.March, 1), row[4].Date)
	assert.Equal(t, domain.NewCalDate(2024, time.February, 26), row[0].Date)
}

func TestBuildMonthGrid_TrailingPaddingCompletesLastWeek(t *testing.T) {
	// March 2024 ends on a Sunday; the last row needs no trailing padding.
	grid := BuildMonthGrid(2024, time.March)
	last := grid.Weeks[len(grid.Weeks)-1]
	assert.Equal(t, domain.NewCalDate(2024, time.March, 31), last[6].Date)
	assert.True(t, last[6].InCurrentMonth)

	// May 2024 ends on a Friday: Saturday and Sunday spill into June.
	grid = BuildMonthGrid(2024, time.May)
	last = grid.Weeks[len(grid.Weeks)-1]
	assert.True(t, last[4].InCurrentMonth)
	assert.False(t, last[5].InCurrentMonth)
	assert.False(t, last[6].InCurrentMonth)
	assert.Equal(t, domain.NewCalDate(2024, time.June, 1), last[5].Date)
}

func TestBuildMonthGrid_ExactWeeksNoExtraRow(t *testing.T) {
	// February 2021: starts Monday, 28 days, exactly four full weeks.
	grid := BuildMonthGrid(2021, time.February)
	require.Len(t, grid.Weeks, 4)
	for _, row := range grid.Weeks {
		for _, cell := range row {
			assert.True(t, cell.InCurrentMonth)
		}
	}
}

func TestBuildMonthGrid_CellsAreMondayFirst(t *testing.T) {
	grid := BuildMonthGrid(2024, time.March)
	for _, row := range grid.Weeks {
		for i, cell := range row {
			assert.Equal(t, i, cell.Date.Weekday())
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}
