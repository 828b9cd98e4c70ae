package service

import (
	"context"
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/Tanudin/Happy-Child/internal/repository"
	"github.com/google/uuid"
)

type childService struct {
	children repository.ChildRepo
	identity IdentityService
}

func NewChildService(children repository.ChildRepo, identity IdentityService) ChildService {
	return &childService{children: children, identity: identity}
}

func (s *childService) Create(ctx context.Context, c *domain.Child) error {
	if c.Name == "" {
		return &ValidationError{Field: "child name", Reason: "must not be blank"}
	}
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.UserID = user.UserID
	c.CreatedAt = time.Now().UTC()
	return s.children.Create(ctx, c)
}

func (s *childService) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	return s.children.GetByID(ctx, id)
}

// List returns the current user's children.
func (s *childService) List(ctx context.Context) ([]*domain.Child, error) {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.children.ListByUser(ctx, user.UserID)
}

func (s *childService) Delete(ctx context.Context, id string) error {
	return s.children.Delete(ctx, id)
}
