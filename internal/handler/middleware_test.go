package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/handler"
	"github.com/msomdec/job-board/internal/repository/sqlite"
	"github.com/msomdec/job-board/internal/service"
	"github.com/msomdec/job-board/internal/store"
)

const testSessionSecret = "test-secret-for-handler-tests-0123456789"

func newTestServices(t *testing.T) handler.Services {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	st := store.New(db)
	jobs := service.NewJobService(st)
	return handler.Services{
		Sessions:     service.NewSessionService(st, testSessionSecret),
		Profiles:     service.NewProfileService(st),
		Jobs:         jobs,
		Applications: service.NewApplicationService(st, jobs),
		CVs:          service.NewCVService(st),
	}
}

func loginToken(t *testing.T, svc handler.Services, email string) string {
	t.Helper()
	res, err := svc.Sessions.Login(context.Background(), email)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return res.Token
}

func TestRequireAuth_ValidSession(t *testing.T) {
	svc := newTestServices(t)
	token := loginToken(t, svc, "valid@example.com")

	var gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := handler.UserFromContext(r.Context()); user != nil {
			gotUser = user.Email
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	w := httptest.NewRecorder()

	handler.RequireAuth(svc.Sessions)(inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != "valid@example.com" {
		t.Fatalf("expected user valid@example.com, got %q", gotUser)
	}
}

func TestRequireAuth_SeesLiveUser(t *testing.T) {
	svc := newTestServices(t)
	token := loginToken(t, svc, "live@example.com")

	// The token was issued while the user was on the free plan.
	if _, err := svc.Profiles.Subscribe(context.Background(), "live@example.com", domain.SubscriptionPaid); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	var paid bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paid = handler.UserFromContext(r.Context()).IsPaid()
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	handler.RequireAuth(svc.Sessions)(inner).ServeHTTP(httptest.NewRecorder(), req)

	if !paid {
		t.Fatal("expected the session to resolve to the current subscription")
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	svc := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.RequireAuth(svc.Sessions)(inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	svc := newTestServices(t)
	token := loginToken(t, svc, "tamper@example.com")

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	for _, value := range []string{"invalid.jwt.token", token[:len(token)-4] + "AAAA"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: value})
		w := httptest.NewRecorder()

		handler.RequireAuth(svc.Sessions)(inner).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("token %q: expected 401, got %d", value, w.Code)
		}
	}
}

func TestOptionalAuth_WithoutToken(t *testing.T) {
	svc := newTestServices(t)

	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if handler.UserFromContext(r.Context()) != nil {
			t.Fatal("expected nil user in context for anonymous request")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.OptionalAuth(svc.Sessions)(inner).ServeHTTP(w, req)

	if !called || w.Code != http.StatusOK {
		t.Fatalf("expected inner handler to run with 200, got %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	limited := handler.RateLimit(service.NewTokenBucket(ctx, 0, 2))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, req)
		codes[i] = w.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 200, 200, 429, got %v", codes)
	}
}
