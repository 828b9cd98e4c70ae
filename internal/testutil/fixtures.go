package testutil

import (
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/google/uuid"
)

// TestUserID is the opaque user identifier stamped on fixture records.
const TestUserID = "user-test"

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithEmail(email string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Email = email
	}
}

func NewTestProfile(name string, opts ...ProfileOption) *domain.UserProfile {
	p := &domain.UserProfile{
		UserID:      TestUserID,
		DisplayName: name,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Child options
type ChildOption func(*domain.Child)

func WithBirthDate(d domain.CalDate) ChildOption {
	return func(c *domain.Child) {
		c.BirthDate = &d
	}
}

func NewTestChild(name string, opts ...ChildOption) *domain.Child {
	c := &domain.Child{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Activity options
type ActivityOption func(*domain.ScheduledActivity)

func WithLocation(loc string) ActivityOption {
	return func(a *domain.ScheduledActivity) {
		a.Location = loc
	}
}

func WithNotes(notes string) ActivityOption {
	return func(a *domain.ScheduledActivity) {
		a.Notes = notes
	}
}

// NewTestActivity builds a scheduled activity on the given day with the
// derived 09:00-17:00 window.
func NewTestActivity(childID string, date domain.CalDate, name string, opts ...ActivityOption) *domain.ScheduledActivity {
	start, end := date.ActivityWindow()
	a := &domain.ScheduledActivity{
		ID:           uuid.New().String(),
		ChildID:      childID,
		UserID:       TestUserID,
		StartTime:    start,
		EndTime:      end,
		EventType:    domain.EventScheduled,
		ActivityName: name,
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Schedule options
type ScheduleOption func(*domain.CustodySchedule)

func WithColor(color string) ScheduleOption {
	return func(s *domain.CustodySchedule) {
		s.Color = color
	}
}

func WithParentType(pt domain.ParentType) ScheduleOption {
	return func(s *domain.CustodySchedule) {
		s.ParentType = pt
	}
}

func NewTestSchedule(childID string, days []int, parentName string, opts ...ScheduleOption) *domain.CustodySchedule {
	s := &domain.CustodySchedule{
		ID:         uuid.New().String(),
		ChildID:    childID,
		UserID:     TestUserID,
		DaysOfWeek: days,
		ParentName: parentName,
		ParentType: domain.ParentMom,
		Color:      "#4285f4",
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
