package domain

import (
	"fmt"
	"sort"
	"time"
)

// CustodySchedule is a recurring weekly custody assignment: the named
// parent has the child on the listed weekdays, every week. Weekdays are
// Monday-indexed (0=Mon .. 6=Sun). Schedules carry no end date and no
// per-date exceptions.
type CustodySchedule struct {
	ID         string
	ChildID    string
	UserID     string
	DaysOfWeek []int
	ParentName string
	ParentType ParentType
	Color      string
	CreatedAt  time.Time
}

// Validate checks the fields a schedule needs before it may be persisted.
func (s *CustodySchedule) Validate() error {
	if len(s.DaysOfWeek) == 0 {
		return fmt.Errorf("custody schedule needs at least one weekday")
	}
	for _, d := range s.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("weekday index %d out of range 0-6", d)
		}
	}
	if s.ParentName == "" {
		return fmt.Errorf("parent name is required")
	}
	if !ValidParentTypes[string(s.ParentType)] {
		return fmt.Errorf("parent type %q must be one of mom, dad", s.ParentType)
	}
	return nil
}

// ContainsWeekday reports whether the schedule covers the given
// Monday-indexed weekday.
func (s *CustodySchedule) ContainsWeekday(weekday int) bool {
	for _, d := range s.DaysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}

// SortedDays returns the weekday set in ascending order without mutating
// the schedule.
func (s *CustodySchedule) SortedDays() []int {
	days := make([]int, len(s.DaysOfWeek))
	copy(days, s.DaysOfWeek)
	sort.Ints(days)
	return days
}

// OverlapsWith reports whether two schedules claim any common weekday.
// Overlap is rejected at write time so resolution never depends on fetch
// order.
func (s *CustodySchedule) OverlapsWith(other *CustodySchedule) bool {
	for _, d := range s.DaysOfWeek {
		if other.ContainsWeekday(d) {
			return true
		}
	}
	return false
}
