package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/job-board/internal/domain"
)

// ApplicationService records job applications from paid subscribers.
type ApplicationService struct {
	store domain.Store
	jobs  *JobService
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(store domain.Store, jobs *JobService) *ApplicationService {
	return &ApplicationService{store: store, jobs: jobs}
}

// Apply records that applicantEmail applied to jobID. The applicant's
// subscription is read from the live user record.
func (s *ApplicationService) Apply(ctx context.Context, applicantEmail string, jobID int64) (*domain.Application, error) {
	user, err := s.store.Users().Find(ctx, domain.NormalizeEmail(applicantEmail))
	if err != nil {
		return nil, fmt.Errorf("get applicant: %w", err)
	}
	if !user.IsPaid() {
		return nil, domain.ErrSubscriptionRequired
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	app := domain.Application{JobID: jobID, ApplicantEmail: user.Email}
	if err := s.store.Applications().Append(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	return &app, nil
}

// List returns every application in submission order.
func (s *ApplicationService) List(ctx context.Context) ([]domain.Application, error) {
	return s.store.Applications().All(ctx)
}

// ListByApplicant returns the applications submitted by email.
func (s *ApplicationService) ListByApplicant(ctx context.Context, email string) ([]domain.Application, error) {
	apps, err := s.store.Applications().All(ctx)
	if err != nil {
		return nil, err
	}
	email = domain.NormalizeEmail(email)
	out := make([]domain.Application, 0, len(apps))
	for _, a := range apps {
		if a.ApplicantEmail == email {
			out = append(out, a)
		}
	}
	return out, nil
}
