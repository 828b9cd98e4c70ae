package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Tanudin/Happy-Child/internal/db"
	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/Tanudin/Happy-Child/internal/repository"
	"github.com/google/uuid"
)

type eventService struct {
	events   repository.EventRepo
	children repository.ChildRepo
	identity IdentityService
	uow      db.UnitOfWork
}

func NewEventService(events repository.EventRepo, children repository.ChildRepo, identity IdentityService, uow db.UnitOfWork) EventService {
	return &eventService{events: events, children: children, identity: identity, uow: uow}
}

func (s *eventService) FetchMonth(ctx context.Context, childID string, year int, month int) ([]*domain.ScheduledActivity, error) {
	monthStart := domain.NewCalDate(year, time.Month(month), 1).Midnight()
	lastDay := calendarLastDay(year, time.Month(month))
	_, monthEnd := lastDay.DayBounds()
	return s.events.ListByChildRange(ctx, childID, monthStart, monthEnd)
}

// UpsertActivity deletes anything persisted inside the day's bounds and
// inserts a fresh record, so creating and updating share one path.
func (s *eventService) UpsertActivity(ctx context.Context, childID string, date domain.CalDate, activityName string) error {
	activityName = strings.TrimSpace(activityName)
	if activityName == "" {
		return &ValidationError{Field: "activity name", Reason: "must not be blank"}
	}
	activity, err := s.buildActivity(ctx, childID, date, activityName)
	if err != nil {
		return err
	}

	start, end := date.DayBounds()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvents := repository.NewSQLiteEventRepo(tx)
		if err := txEvents.DeleteDayRange(ctx, childID, start, end); err != nil {
			return err
		}
		return txEvents.Insert(ctx, activity)
	})
}

func (s *eventService) RenameActivity(ctx context.Context, childID string, date domain.CalDate, activityName string) error {
	activityName = strings.TrimSpace(activityName)
	if activityName == "" {
		return &ValidationError{Field: "activity name", Reason: "must not be blank"}
	}
	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return err
	}
	start, end := date.DayBounds()
	notes := fmt.Sprintf("%s scheduled for %s", activityName, child.Name)
	return s.events.UpdateDayRange(ctx, childID, start, end, activityName, notes)
}

func (s *eventService) DeleteActivity(ctx context.Context, childID string, date domain.CalDate) error {
	start, end := date.DayBounds()
	return s.events.DeleteDayRange(ctx, childID, start, end)
}

// ConfirmAll issues one delete per picked day range, then a single batch
// insert of all picks, in that order. The whole sequence runs inside one
// transaction so a mid-batch store failure rolls back the earlier
// deletes instead of leaving them half applied.
func (s *eventService) ConfirmAll(ctx context.Context, childID string, picks []Pick) error {
	if len(picks) == 0 {
		return &ValidationError{Field: "selection", Reason: "no dates selected"}
	}
	batch := make([]*domain.ScheduledActivity, 0, len(picks))
	for _, pick := range picks {
		activity, err := s.buildActivity(ctx, childID, pick.Date, pick.Activity)
		if err != nil {
			return err
		}
		batch = append(batch, activity)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvents := repository.NewSQLiteEventRepo(tx)
		for _, pick := range picks {
			start, end := pick.Date.DayBounds()
			if err := txEvents.DeleteDayRange(ctx, childID, start, end); err != nil {
				return err
			}
		}
		return txEvents.InsertBatch(ctx, batch)
	})
}

// buildActivity assembles a persisted record with the derived 09:00-17:00
// window, stamped with the current user.
func (s *eventService) buildActivity(ctx context.Context, childID string, date domain.CalDate, activityName string) (*domain.ScheduledActivity, error) {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return nil, err
	}

	start, end := date.ActivityWindow()
	return &domain.ScheduledActivity{
		ID:           uuid.New().String(),
		ChildID:      childID,
		UserID:       user.UserID,
		StartTime:    start,
		EndTime:      end,
		EventType:    domain.EventScheduled,
		ActivityName: activityName,
		Location:     "",
		Notes:        fmt.Sprintf("%s scheduled for %s", activityName, child.Name),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// calendarLastDay returns the last day of the month.
func calendarLastDay(year int, month time.Month) domain.CalDate {
	return domain.DateOf(time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local))
}
