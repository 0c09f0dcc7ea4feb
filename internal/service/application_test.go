package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
)

func TestApplicationService_Apply_FreeUserRejected(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "boss@example.com", domain.SubscriptionFree)
	seedUser(t, st, "free@example.com", domain.SubscriptionFree)
	jobs := service.NewJobService(st)
	apps := service.NewApplicationService(st, jobs)
	ctx := context.Background()

	job := postJob(t, jobs, "boss@example.com", "Role")

	_, err := apps.Apply(ctx, "free@example.com", job.ID)
	if !errors.Is(err, domain.ErrSubscriptionRequired) {
		t.Fatalf("expected ErrSubscriptionRequired, got %v", err)
	}

	all, err := apps.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no applications, got %d", len(all))
	}
}

func TestApplicationService_Apply_PaidUser(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "boss@example.com", domain.SubscriptionFree)
	seedUser(t, st, "paid@example.com", domain.SubscriptionPaid)
	jobs := service.NewJobService(st)
	apps := service.NewApplicationService(st, jobs)
	ctx := context.Background()

	job := postJob(t, jobs, "boss@example.com", "Role")

	app, err := apps.Apply(ctx, "paid@example.com", job.ID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	all, err := apps.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly 1 application, got %d", len(all))
	}
	if all[0] != *app || all[0].JobID != job.ID || all[0].ApplicantEmail != "paid@example.com" {
		t.Fatalf("unexpected application %+v", all[0])
	}
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "boss@example.com", domain.SubscriptionFree)
	seedUser(t, st, "paid@example.com", domain.SubscriptionPaid)
	jobs := service.NewJobService(st)
	apps := service.NewApplicationService(st, jobs)
	ctx := context.Background()

	job := postJob(t, jobs, "boss@example.com", "Role")
	if _, err := apps.Apply(ctx, "paid@example.com", job.ID); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	if _, err := apps.Apply(ctx, "paid@example.com", job.ID); !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}

	mine, err := apps.ListByApplicant(ctx, "paid@example.com")
	if err != nil {
		t.Fatalf("ListByApplicant: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 application, got %d", len(mine))
	}
}

func TestApplicationService_Apply_UnknownJob(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "paid@example.com", domain.SubscriptionPaid)
	apps := service.NewApplicationService(st, service.NewJobService(st))

	if _, err := apps.Apply(context.Background(), "paid@example.com", 424242); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_UnknownApplicant(t *testing.T) {
	st := newTestStore(t)
	apps := service.NewApplicationService(st, service.NewJobService(st))

	if _, err := apps.Apply(context.Background(), "ghost@example.com", 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
