package domain

import "time"

// ScheduledActivity is a one-off calendar event for a child. At most one
// activity exists per child per calendar day; create and update both go
// through the day-range replace path in the store.
type ScheduledActivity struct {
	ID           string
	ChildID      string
	UserID       string
	StartTime    time.Time
	EndTime      time.Time
	EventType    EventType
	ActivityName string
	Location     string
	Notes        string
	CreatedAt    time.Time
}

// Date returns the calendar day the activity falls on.
func (a *ScheduledActivity) Date() CalDate {
	return DateOf(a.StartTime)
}
