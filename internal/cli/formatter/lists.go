package formatter

import (
	"fmt"
	"strings"

	"github.com/Tanudin/Happy-Child/internal/domain"
)

var weekdayShort = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// FormatWeekdays renders Monday-indexed weekdays as "Mon, Tue, Fri".
func FormatWeekdays(days []int) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d < 7 {
			names = append(names, weekdayShort[d])
		}
	}
	return strings.Join(names, ", ")
}

// FormatChildList renders children one per line with a short ID prefix.
func FormatChildList(children []*domain.Child) string {
	var b strings.Builder
	b.WriteString(Header("Children"))
	b.WriteString("\n")

	for _, c := range children {
		shortID := c.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		line := fmt.Sprintf("%s  %s", StyleDim.Render(shortID), StyleBold.Render(c.Name))
		if c.BirthDate != nil {
			line += StyleDim.Render(fmt.Sprintf("  born %s", c.BirthDate.Key()))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatScheduleList renders custody schedules one per line.
func FormatScheduleList(schedules []*domain.CustodySchedule) string {
	var b strings.Builder
	b.WriteString(Header("Custody schedules"))
	b.WriteString("\n")

	for _, s := range schedules {
		shortID := s.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		style := scheduleStyle(s)
		b.WriteString(fmt.Sprintf("%s  %s %s  %s\n",
			StyleDim.Render(shortID),
			style.Render("●"),
			StyleBold.Render(fmt.Sprintf("%s (%s)", s.ParentName, s.ParentType)),
			FormatWeekdays(s.SortedDays())))
	}
	return strings.TrimRight(b.String(), "\n")
}
