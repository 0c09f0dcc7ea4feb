package store_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/repository/memory"
	"github.com/msomdec/job-board/internal/store"
)

var _ domain.Store = (*store.Store)(nil)

func newTestStore(t *testing.T) (*store.Store, *memory.DB) {
	t.Helper()
	db := memory.New()
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return store.New(db), db
}

func TestCollection_AllEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	users, err := s.Users().All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if users == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(users) != 0 {
		t.Fatalf("expected 0 users, got %d", len(users))
	}
}

func TestCollection_UserRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	want := domain.User{
		Email:        "ada@example.com",
		Name:         "Ada",
		Role:         domain.RoleJobSeeker,
		Subscription: domain.SubscriptionPaid,
		Skills:       []string{"Python", "SQL"},
		Education:    "BSc",
	}
	if err := s.Users().Upsert(ctx, want); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := s.Users().Find(ctx, want.Email)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestCollection_UpsertExistingKeepsPosition(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if err := s.Users().Upsert(ctx, domain.User{Email: email, Subscription: domain.SubscriptionFree}); err != nil {
			t.Fatalf("Upsert %s: %v", email, err)
		}
	}

	if err := s.Users().Upsert(ctx, domain.User{Email: "b@example.com", Name: "Bea", Subscription: domain.SubscriptionPaid}); err != nil {
		t.Fatalf("Upsert existing: %v", err)
	}

	users, err := s.Users().All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected length unchanged at 3, got %d", len(users))
	}
	if users[1].Email != "b@example.com" || users[1].Name != "Bea" || !users[1].IsPaid() {
		t.Fatalf("expected updated b@example.com at index 1, got %+v", users[1])
	}
}

func TestCollection_UpsertNewAppends(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Users().Upsert(ctx, domain.User{Email: "a@example.com", Subscription: domain.SubscriptionFree}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := s.Users().Upsert(ctx, domain.User{Email: "z@example.com", Subscription: domain.SubscriptionFree}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	users, err := s.Users().All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(users) != 2 || users[1].Email != "z@example.com" {
		t.Fatalf("expected z@example.com appended, got %+v", users)
	}
}

func TestCollection_PutOverwrites(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first := []domain.Job{
		{ID: 1, Title: "A", Company: "X", EmployerEmail: "e@example.com"},
		{ID: 2, Title: "B", Company: "X", EmployerEmail: "e@example.com"},
	}
	if err := s.Jobs().Put(ctx, first); err != nil {
		t.Fatalf("Put: %v", err)
	}
	second := []domain.Job{{ID: 3, Title: "C", Company: "Y", EmployerEmail: "e@example.com", Skills: []string{"Go"}}}
	if err := s.Jobs().Put(ctx, second); err != nil {
		t.Fatalf("Put: %v", err)
	}

	jobs, err := s.Jobs().All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if !reflect.DeepEqual(jobs, second) {
		t.Fatalf("expected %+v, got %+v", second, jobs)
	}
}

func TestCollection_PutRejectsDuplicateKeys(t *testing.T) {
	s, _ := newTestStore(t)

	jobs := []domain.Job{
		{ID: 1, Title: "A", Company: "X", EmployerEmail: "e@example.com"},
		{ID: 1, Title: "B", Company: "X", EmployerEmail: "e@example.com"},
	}
	err := s.Jobs().Put(context.Background(), jobs)
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestCollection_AppendDuplicate(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	app := domain.Application{JobID: 7, ApplicantEmail: "a@example.com"}
	if err := s.Applications().Append(ctx, app); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Applications().Append(ctx, app); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	apps, err := s.Applications().All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}
}

func TestCollection_ValidatesAtBoundary(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		op   func() error
	}{
		{"user without email", func() error { return s.Users().Upsert(ctx, domain.User{Subscription: domain.SubscriptionFree}) }},
		{"user with unknown role", func() error {
			return s.Users().Upsert(ctx, domain.User{Email: "a@example.com", Role: "admin", Subscription: domain.SubscriptionFree})
		}},
		{"user with unknown plan", func() error {
			return s.Users().Upsert(ctx, domain.User{Email: "a@example.com", Subscription: "gold"})
		}},
		{"job without title", func() error {
			return s.Jobs().Append(ctx, domain.Job{ID: 1, Company: "X", EmployerEmail: "e@example.com"})
		}},
		{"job without id", func() error {
			return s.Jobs().Append(ctx, domain.Job{Title: "T", Company: "X", EmployerEmail: "e@example.com"})
		}},
		{"application without applicant", func() error {
			return s.Applications().Append(ctx, domain.Application{JobID: 1})
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.op(); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCollection_FindNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Users().Find(context.Background(), "nobody@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCollection_CorruptRecord(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	if err := db.Records().Insert(ctx, domain.CollectionUsers, domain.RawRecord{Key: "x", Data: []byte("{not json")}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := s.Users().All(ctx); !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestJSONValues(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	want := domain.CVUpload{Name: "cv.pdf", Size: 1024, LastModified: 1700000000000}
	key := domain.CVValueKey("a@example.com")
	if err := store.SetJSON(ctx, s.Values(), key, want); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	var got domain.CVUpload
	if err := store.GetJSON(ctx, s.Values(), key, &got); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	var missing domain.CVUpload
	if err := store.GetJSON(ctx, s.Values(), domain.CVValueKey("b@example.com"), &missing); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
