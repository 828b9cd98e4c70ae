// Package repository implements persistence for the calendar's two
// collections, calendar_events and custody_schedules, plus the children
// registry and the local user profile.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
)

// ErrNotFound is wrapped by repositories when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// EventRepo is the store adapter for one-off scheduled activities.
// Day-scoped operations always use the [00:00:00, 23:59:59] local-time
// bounds of a single calendar day; month fetches use an inclusive range
// filter on start_time.
type EventRepo interface {
	Insert(ctx context.Context, e *domain.ScheduledActivity) error
	InsertBatch(ctx context.Context, events []*domain.ScheduledActivity) error
	ListByChildRange(ctx context.Context, childID string, from, to time.Time) ([]*domain.ScheduledActivity, error)
	UpdateDayRange(ctx context.Context, childID string, start, end time.Time, activityName, notes string) error
	DeleteDayRange(ctx context.Context, childID string, start, end time.Time) error
}

// CustodyRepo stores recurring weekly custody schedules. Schedules are
// month-independent, so lookups filter on child only.
type CustodyRepo interface {
	Insert(ctx context.Context, s *domain.CustodySchedule) error
	ListByChild(ctx context.Context, childID string) ([]*domain.CustodySchedule, error)
	Delete(ctx context.Context, id string) error
}

type ChildRepo interface {
	Create(ctx context.Context, c *domain.Child) error
	GetByID(ctx context.Context, id string) (*domain.Child, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Child, error)
	Delete(ctx context.Context, id string) error
}

// UserProfileRepo holds the single locally signed-in user.
type UserProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
