package service

import (
	"context"
	"errors"
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
	"github.com/Tanudin/Happy-Child/internal/repository"
	"github.com/google/uuid"
)

type identityService struct {
	profiles repository.UserProfileRepo
}

func NewIdentityService(profiles repository.UserProfileRepo) IdentityService {
	return &identityService{profiles: profiles}
}

func (s *identityService) CurrentUser(ctx context.Context) (*domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoCurrentUser
		}
		return nil, err
	}
	return p, nil
}

// Login creates or replaces the local profile, minting a fresh opaque id.
func (s *identityService) Login(ctx context.Context, displayName, email string) (*domain.UserProfile, error) {
	if displayName == "" {
		return nil, &ValidationError{Field: "display name", Reason: "must not be blank"}
	}
	p := &domain.UserProfile{
		UserID:      uuid.New().String(),
		DisplayName: displayName,
		Email:       email,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
