package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/msomdec/job-board/internal/service"
)

// Services are the application services the routes call.
type Services struct {
	Sessions     *service.SessionService
	Profiles     *service.ProfileService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	CVs          *service.CVService
}

type Options struct {
	CookieSecure bool
	CORSOrigins  []string
	// LoginLimiter throttles POST /login per client IP. Nil disables it.
	LoginLimiter *service.TokenBucket
}

// NewRouter sets up all HTTP routes.
func NewRouter(svc Services, opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)

	authHandler := NewAuthHandler(svc.Sessions, opts.CookieSecure)
	pageHandler := NewPageHandler(svc.Profiles, svc.Jobs, svc.CVs)
	profileHandler := NewProfileHandler(svc.Profiles, svc.CVs, authHandler)
	jobHandler := NewJobHandler(svc.Jobs, svc.Applications, svc.Profiles)

	r.Get("/healthz", HandleHealthz)

	r.Group(func(r chi.Router) {
		r.Use(OptionalAuth(svc.Sessions))

		r.Get("/", pageHandler.HandlePage)
		r.Get("/views/{view}", pageHandler.HandleView)

		r.With(limit(opts.LoginLimiter)...).Post("/login", authHandler.HandleLogin)
		r.Post("/logout", authHandler.HandleLogout)
		r.Post("/profile", profileHandler.HandleSaveProfile)
		r.Post("/subscribe", profileHandler.HandleSubscribe)
		r.Post("/cv", profileHandler.HandleUploadCV)
		r.Get("/cv", profileHandler.HandleDownloadCV)
		r.Post("/jobs", jobHandler.HandlePostJob)
		r.Post("/jobs/{id}/apply", jobHandler.HandleApply)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		r.Get("/jobs", jobHandler.HandleListJobs)
		r.Get("/admin/stats", jobHandler.HandleAdminStats)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(svc.Sessions))
			r.Get("/me", authHandler.HandleMe)
			r.Get("/jobs/matches", jobHandler.HandleMatches)
			r.Post("/jobs/{id}/apply", jobHandler.HandleAPIApply)
		})
	})

	return r
}

func limit(tb *service.TokenBucket) []func(http.Handler) http.Handler {
	if tb == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{RateLimit(tb)}
}
