// Package service holds the use cases behind the custody calendar: the
// event store adapter operations, custody schedule management, the
// children registry and the identity collaborator.
package service

import (
	"context"

	"github.com/Tanudin/Happy-Child/internal/domain"
)

// Pick is one date/activity pair from a multi-select session, handed to
// ConfirmAll in bulk.
type Pick struct {
	Date     domain.CalDate
	Activity string
}

// EventService is the calendar's store adapter for one-off activities.
// Every operation is scoped to a child; day-scoped mutations use the
// day's [00:00:00, 23:59:59] bounds. Failures surface to the caller and
// are never retried here.
type EventService interface {
	// FetchMonth returns the child's activities with a start time inside
	// the given month, both ends inclusive.
	FetchMonth(ctx context.Context, childID string, year int, month int) ([]*domain.ScheduledActivity, error)
	// UpsertActivity replaces whatever is persisted for the day with a
	// fresh record; create and update share this path.
	UpsertActivity(ctx context.Context, childID string, date domain.CalDate, activityName string) error
	// RenameActivity edits the persisted activity name in place.
	RenameActivity(ctx context.Context, childID string, date domain.CalDate, activityName string) error
	// DeleteActivity removes the day's persisted record.
	DeleteActivity(ctx context.Context, childID string, date domain.CalDate) error
	// ConfirmAll finalizes a batch of picks: one delete per day range,
	// then a single batch insert, all inside one store transaction.
	ConfirmAll(ctx context.Context, childID string, picks []Pick) error
}

// CustodyService manages recurring weekly custody schedules.
type CustodyService interface {
	Create(ctx context.Context, s *domain.CustodySchedule) error
	ListByChild(ctx context.Context, childID string) ([]*domain.CustodySchedule, error)
	Delete(ctx context.Context, id string) error
}

type ChildService interface {
	Create(ctx context.Context, c *domain.Child) error
	GetByID(ctx context.Context, id string) (*domain.Child, error)
	List(ctx context.Context) ([]*domain.Child, error)
	Delete(ctx context.Context, id string) error
}

// IdentityService supplies the current user's opaque identifier. All
// writes stamp it; a missing profile is terminal for the attempted
// operation.
type IdentityService interface {
	CurrentUser(ctx context.Context) (*domain.UserProfile, error)
	Login(ctx context.Context, displayName, email string) (*domain.UserProfile, error)
}
