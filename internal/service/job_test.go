package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
	"github.com/msomdec/job-board/internal/store"
)

func seedUser(t *testing.T, st *store.Store, email string, plan domain.Subscription) {
	t.Helper()
	u := domain.User{Email: email, Name: "Test", Role: domain.RoleJobSeeker, Subscription: plan}
	if err := st.Users().Upsert(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func postJob(t *testing.T, jobs *service.JobService, employer, title string, skills ...string) *domain.Job {
	t.Helper()
	job, err := jobs.Post(context.Background(), employer, service.PostJobInput{
		Title:   title,
		Company: "Acme",
		Skills:  skills,
		Salary:  "100k",
	})
	if err != nil {
		t.Fatalf("Post %s: %v", title, err)
	}
	return job
}

func TestJobService_Post_Success(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "boss@example.com", domain.SubscriptionFree)
	jobs := service.NewJobService(st)
	ctx := context.Background()

	job, err := jobs.Post(ctx, "Boss@Example.com", service.PostJobInput{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Build things",
		Skills:      []string{"Go", "SQL"},
		Salary:      "100k",
		Location:    "Remote",
	})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if job.ID <= 0 {
		t.Fatal("expected job ID to be set")
	}
	if job.EmployerEmail != "boss@example.com" {
		t.Fatalf("expected normalized employer email, got %q", job.EmployerEmail)
	}

	got, err := jobs.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Backend Engineer" || len(got.Skills) != 2 {
		t.Fatalf("unexpected stored job %+v", got)
	}
}

func TestJobService_Post_UnknownEmployer(t *testing.T) {
	jobs := service.NewJobService(newTestStore(t))

	_, err := jobs.Post(context.Background(), "ghost@example.com", service.PostJobInput{Title: "T", Company: "C"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobService_Post_RequiredFields(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "boss@example.com", domain.SubscriptionFree)
	jobs := service.NewJobService(st)

	for _, in := range []service.PostJobInput{{Company: "C"}, {Title: "T"}} {
		if _, err := jobs.Post(context.Background(), "boss@example.com", in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestJobService_IDsAreMonotonic(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "boss@example.com", domain.SubscriptionFree)
	jobs := service.NewJobService(st)

	// A frozen clock forces the id past the previous one.
	frozen := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	jobs.SetClock(func() time.Time { return frozen })

	first := postJob(t, jobs, "boss@example.com", "One")
	second := postJob(t, jobs, "boss@example.com", "Two")

	if first.ID != frozen.UnixMilli() {
		t.Fatalf("expected first id %d, got %d", frozen.UnixMilli(), first.ID)
	}
	if second.ID != first.ID+1 {
		t.Fatalf("expected second id %d, got %d", first.ID+1, second.ID)
	}
}

func TestJobService_ListByEmployer(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "a@example.com", domain.SubscriptionFree)
	seedUser(t, st, "b@example.com", domain.SubscriptionFree)
	jobs := service.NewJobService(st)
	ctx := context.Background()

	postJob(t, jobs, "a@example.com", "A1")
	postJob(t, jobs, "b@example.com", "B1")
	postJob(t, jobs, "a@example.com", "A2")

	posted, err := jobs.ListByEmployer(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("ListByEmployer: %v", err)
	}
	if len(posted) != 2 || posted[0].Title != "A1" || posted[1].Title != "A2" {
		t.Fatalf("unexpected jobs %+v", posted)
	}

	all, err := jobs.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(all))
	}
}

func TestJobService_Matches(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "boss@example.com", domain.SubscriptionFree)
	jobs := service.NewJobService(st)

	postJob(t, jobs, "boss@example.com", "Python dev", "Python")
	postJob(t, jobs, "boss@example.com", "Data dev", "Python", "SQL", "Spark")
	postJob(t, jobs, "boss@example.com", "Java dev", "Java")

	res, err := jobs.Matches(context.Background(), []string{"Python", "SQL"})
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if len(res.Recommended) != 2 {
		t.Fatalf("expected 2 recommended, got %d", len(res.Recommended))
	}
	if len(res.Shortlisted) != 1 || res.Shortlisted[0].Title != "Python dev" {
		t.Fatalf("expected only Python dev shortlisted, got %+v", res.Shortlisted)
	}
}
