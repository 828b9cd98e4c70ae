package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/Tanudin/Happy-Child/internal/repository"
	"github.com/google/uuid"
)

type custodyService struct {
	schedules repository.CustodyRepo
	identity  IdentityService
}

func NewCustodyService(schedules repository.CustodyRepo, identity IdentityService) CustodyService {
	return &custodyService{schedules: schedules, identity: identity}
}

// Create validates and persists a new schedule. Weekday sets must not
// overlap an existing schedule for the child, so weekday resolution never
// depends on fetch order.
func (s *custodyService) Create(ctx context.Context, schedule *domain.CustodySchedule) error {
	if len(schedule.DaysOfWeek) == 0 {
		return &ValidationError{Field: "days of week", Reason: "select at least one day"}
	}
	if schedule.ParentName == "" {
		return &ValidationError{Field: "parent name", Reason: "must not be blank"}
	}
	if err := schedule.Validate(); err != nil {
		return &ValidationError{Field: "custody schedule", Reason: err.Error()}
	}

	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return err
	}

	existing, err := s.schedules.ListByChild(ctx, schedule.ChildID)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if schedule.OverlapsWith(other) {
			return &ValidationError{
				Field:  "days of week",
				Reason: fmt.Sprintf("already assigned to %s", other.ParentName),
			}
		}
	}

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	schedule.UserID = user.UserID
	schedule.CreatedAt = time.Now().UTC()
	return s.schedules.Insert(ctx, schedule)
}

func (s *custodyService) ListByChild(ctx context.Context, childID string) ([]*domain.CustodySchedule, error) {
	return s.schedules.ListByChild(ctx, childID)
}

func (s *custodyService) Delete(ctx context.Context, id string) error {
	return s.schedules.Delete(ctx, id)
}
