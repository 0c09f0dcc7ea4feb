package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/job-board/internal/domain"
)

// ProfileInput holds validated profile form values. Skills are already split
// and trimmed.
type ProfileInput struct {
	Email     string
	Name      string
	Skills    []string
	Education string
	Role      domain.Role // defaults to job seeker
}

// ProfileService handles profile edits and subscription changes.
type ProfileService struct {
	store domain.Store
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store domain.Store) *ProfileService {
	return &ProfileService{store: store}
}

// Get returns the user with the given email.
func (s *ProfileService) Get(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.store.Users().Find(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user in registration order.
func (s *ProfileService) List(ctx context.Context) ([]domain.User, error) {
	return s.store.Users().All(ctx)
}

// Save creates or updates the profile for in.Email. An existing user keeps
// their subscription; a new user starts on the free plan.
func (s *ProfileService) Save(ctx context.Context, in ProfileInput) (*domain.User, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrInvalidInput)
	}
	role := in.Role
	if role == domain.RoleUnset {
		role = domain.RoleJobSeeker
	}

	user, err := s.store.Users().Find(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		user = domain.User{Email: email, Subscription: domain.SubscriptionFree}
	default:
		return nil, fmt.Errorf("get user: %w", err)
	}

	user.Name = in.Name
	user.Skills = in.Skills
	user.Education = in.Education
	user.Role = role

	if err := s.store.Users().Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return &user, nil
}

// Subscribe moves the user onto plan. Payment is not processed.
func (s *ProfileService) Subscribe(ctx context.Context, email string, plan domain.Subscription) (*domain.User, error) {
	if _, err := domain.ParseSubscription(string(plan)); err != nil {
		return nil, err
	}

	user, err := s.store.Users().Find(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	user.Subscription = plan
	if err := s.store.Users().Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("update subscription: %w", err)
	}
	return &user, nil
}
