package calendar

import "github.com/Tanudin/Happy-Child/internal/domain"

// RunPosition describes where a date sits inside a maximal run of
// consecutive weekdays covered by the same custody schedule. It only
// drives the rendering of merged custody bars: a first edge rounds and
// pads the left side, a last edge the right, both mean an isolated
// single-day bar and neither means an interior segment.
type RunPosition struct {
	IsFirst bool
	IsLast  bool
}

// RecurringFor resolves the custody schedule active on the given date.
// Schedules are matched on the Monday-indexed weekday in input order.
// Overlapping weekday sets are rejected at write time, so at most one
// schedule can match; first-match is kept as a safety net for data that
// predates that check.
func RecurringFor(date domain.CalDate, schedules []*domain.CustodySchedule) *domain.CustodySchedule {
	weekday := date.Weekday()
	for _, s := range schedules {
		if s.ContainsWeekday(weekday) {
			return s
		}
	}
	return nil
}

// RunPositionFor computes the run boundaries of date within schedule.
// Runs are over weekday indices, not calendar dates: {Mon,Tue,Wed} is one
// run regardless of which week the date falls in. Returns the zero value
// when the schedule does not cover the date's weekday.
func RunPositionFor(date domain.CalDate, schedule *domain.CustodySchedule) RunPosition {
	if schedule == nil {
		return RunPosition{}
	}
	weekday := date.Weekday()
	sorted := schedule.SortedDays()

	idx := -1
	for i, d := range sorted {
		if d == weekday {
			idx = i
			break
		}
	}
	if idx == -1 {
		return RunPosition{}
	}

	return RunPosition{
		IsFirst: idx == 0 || sorted[idx-1] != weekday-1,
		IsLast:  idx == len(sorted)-1 || sorted[idx+1] != weekday+1,
	}
}
