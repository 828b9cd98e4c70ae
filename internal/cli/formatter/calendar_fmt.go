package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tanudin/Happy-Child/internal/calendar"
	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// CustodyBar is the custody marker for one day: which parent holds the
// day and whether the day opens or closes a run of consecutive weekdays
// assigned to them.
type CustodyBar struct {
	ParentName string
	ParentType domain.ParentType
	Color      string
	IsFirst    bool
	IsLast     bool
}

// CellView is everything the renderer needs to draw one day cell.
type CellView struct {
	Date           domain.CalDate
	InCurrentMonth bool
	IsToday        bool
	Activity       string
	HasActivity    bool
	Custody        *CustodyBar
}

// WeekView is one rendered row: a week number and its seven cells.
type WeekView struct {
	Number int
	Cells  [7]CellView
}

// MonthView is the fully resolved month, ready for rendering.
type MonthView struct {
	Year  int
	Month time.Month
	Weeks []WeekView
}

// BuildMonthView resolves a month grid against the selected activities
// and custody schedules. Pure: activity lookups go through the supplied
// function and nothing is fetched here, so the same inputs always yield
// the same view.
func BuildMonthView(grid calendar.MonthGrid, activity func(domain.CalDate) (string, bool), schedules []*domain.CustodySchedule, today domain.CalDate) MonthView {
	view := MonthView{
		Year:  grid.Year,
		Month: grid.Month,
		Weeks: make([]WeekView, len(grid.Weeks)),
	}

	for i, row := range grid.Weeks {
		week := WeekView{Number: calendar.WeekNumber(row[0].Date)}
		for j, cell := range row {
			cv := CellView{
				Date:           cell.Date,
				InCurrentMonth: cell.InCurrentMonth,
				IsToday:        cell.Date == today,
			}
			if name, ok := activity(cell.Date); ok {
				cv.Activity = name
				cv.HasActivity = true
			}
			if s := calendar.RecurringFor(cell.Date, schedules); s != nil {
				pos := calendar.RunPositionFor(cell.Date, s)
				cv.Custody = &CustodyBar{
					ParentName: s.ParentName,
					ParentType: s.ParentType,
					Color:      s.Color,
					IsFirst:    pos.IsFirst,
					IsLast:     pos.IsLast,
				}
			}
			week.Cells[j] = cv
		}
		view.Weeks[i] = week
	}
	return view
}

const cellWidth = 5

// RenderMonth draws the month as a text grid with a week-number gutter.
// The cursor cell, if it lies inside the view, is rendered inverted.
func RenderMonth(view MonthView, cursor domain.CalDate) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", view.Month, view.Year)
	b.WriteString(StyleHeader.Render(title))
	b.WriteString("\n")

	b.WriteString(StyleDim.Render(fmt.Sprintf("%3s ", "W")))
	for _, name := range weekdayShort {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%*s", cellWidth, name)))
	}
	b.WriteString("\n")

	for _, week := range view.Weeks {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%3d ", week.Number)))
		for _, cell := range week.Cells {
			b.WriteString(renderCell(cell, cell.Date == cursor))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderCell draws one fixed-width day cell. Custody runs read as bars:
// the opening day gets a left edge, the closing day a right edge, and
// interior days a plain colored day number.
func renderCell(cell CellView, isCursor bool) string {
	day := fmt.Sprintf("%2d", cell.Date.Day)
	marker := " "
	if cell.HasActivity {
		marker = "•"
	}

	left, right := " ", " "
	if cell.Custody != nil {
		if cell.Custody.IsFirst {
			left = "▏"
		}
		if cell.Custody.IsLast {
			right = "▕"
		}
	}

	body := day + marker

	var style lipgloss.Style
	switch {
	case isCursor:
		style = StyleCursor
	case !cell.InCurrentMonth:
		style = StyleDim
	case cell.Custody != nil:
		style = custodyBarStyle(cell.Custody)
	default:
		style = StyleFg
	}
	if cell.IsToday && !isCursor {
		style = style.Bold(true).Underline(true)
	}

	return left + style.Render(body) + right
}

func custodyBarStyle(bar *CustodyBar) lipgloss.Style {
	if bar.Color != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color))
	}
	return ParentStyle(bar.ParentType)
}

// Legend lists each schedule's parent with its color swatch.
func Legend(schedules []*domain.CustodySchedule) string {
	if len(schedules) == 0 {
		return ""
	}
	parts := make([]string, 0, len(schedules))
	for _, s := range schedules {
		parts = append(parts, fmt.Sprintf("%s %s", scheduleStyle(s).Render("■"), s.ParentName))
	}
	return strings.Join(parts, "  ")
}
