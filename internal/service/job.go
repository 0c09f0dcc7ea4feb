package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/msomdec/job-board/internal/domain"
)

// PostJobInput holds validated job form values. Skills are already split
// and trimmed.
type PostJobInput struct {
	Title       string
	Company     string
	Description string
	Skills      []string
	Salary      string
	Location    string
}

// JobService handles job posting, listing and matching.
type JobService struct {
	store domain.Store
	now   func() time.Time

	// mu serializes id assignment within this process.
	mu sync.Mutex
}

// NewJobService creates a new JobService.
func NewJobService(store domain.Store) *JobService {
	return &JobService{store: store, now: time.Now}
}

// Post creates a job owned by employerEmail. The employer must exist.
// Job ids are creation times in milliseconds, bumped past the newest id
// when the clock has not moved on.
func (s *JobService) Post(ctx context.Context, employerEmail string, in PostJobInput) (*domain.Job, error) {
	if in.Title == "" || in.Company == "" {
		return nil, fmt.Errorf("%w: job title and company are required", domain.ErrInvalidInput)
	}

	employerEmail = domain.NormalizeEmail(employerEmail)
	if _, err := s.store.Users().Find(ctx, employerEmail); err != nil {
		return nil, fmt.Errorf("get employer: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.store.Jobs().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	id := s.now().UnixMilli()
	for _, j := range jobs {
		if j.ID >= id {
			id = j.ID + 1
		}
	}

	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}
	job := domain.Job{
		ID:            id,
		Title:         in.Title,
		Company:       in.Company,
		Description:   in.Description,
		Skills:        skills,
		Salary:        in.Salary,
		Location:      in.Location,
		EmployerEmail: employerEmail,
	}
	if err := s.store.Jobs().Append(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return &job, nil
}

// GetByID returns a job by id.
func (s *JobService) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := s.store.Jobs().Find(ctx, strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns every job in posting order.
func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.store.Jobs().All(ctx)
}

// ListByEmployer returns the jobs posted by employerEmail.
func (s *JobService) ListByEmployer(ctx context.Context, employerEmail string) ([]domain.Job, error) {
	jobs, err := s.store.Jobs().All(ctx)
	if err != nil {
		return nil, err
	}
	employerEmail = domain.NormalizeEmail(employerEmail)
	posted := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.EmployerEmail == employerEmail {
			posted = append(posted, j)
		}
	}
	return posted, nil
}

// Matches reads the current jobs and matches them against skills.
func (s *JobService) Matches(ctx context.Context, skills []string) (MatchResult, error) {
	jobs, err := s.store.Jobs().All(ctx)
	if err != nil {
		return MatchResult{}, err
	}
	return MatchJobs(skills, jobs), nil
}
