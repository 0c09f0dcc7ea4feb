package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
	"github.com/msomdec/job-board/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

// PageHandler renders views as full pages and as SSE patches.
type PageHandler struct {
	profiles *service.ProfileService
	jobs     *service.JobService
	cvs      *service.CVService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(profiles *service.ProfileService, jobs *service.JobService, cvs *service.CVService) *PageHandler {
	return &PageHandler{profiles: profiles, jobs: jobs, cvs: cvs}
}

// HandlePage renders the full document for ?view=, showing ?notice=.
// GET /
func (h *PageHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	v, err := domain.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	user := UserFromContext(r.Context())
	data, err := h.loadPageData(r.Context(), v, user)
	if err != nil {
		handlePageError(w, err)
		return
	}

	slots := view.Slots{}
	if err := view.NewPresenter(slots).RenderView(r.Context(), v, data); err != nil {
		handlePageError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := view.Layout(user, v, r.URL.Query().Get("notice"), view.Page(v, data, slots))
	if err := page.Render(r.Context(), w); err != nil {
		slog.Error("render page", "view", v, "error", err)
	}
}

// HandleView switches the browser to another view. The page skeleton is
// patched into #page first, then each list is patched with fresh data.
// GET /views/{view}
func (h *PageHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	v, err := domain.ParseView(chi.URLParam(r, "view"))
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	data, err := h.loadPageData(r.Context(), v, UserFromContext(r.Context()))
	if err != nil {
		handlePageError(w, err)
		return
	}

	sse := datastar.NewSSE(w, r)

	if err := sse.PatchElementTempl(
		view.Page(v, data, view.Slots{}),
		datastar.WithSelectorID("page"),
		datastar.WithModeInner(),
	); err != nil {
		slog.Error("patch page", "view", v, "error", err)
		return
	}

	// Replace nav and notice by id.
	sse.PatchElementTempl(view.Nav(v))
	sse.PatchElementTempl(view.Notice(""))

	if err := view.NewPresenter(view.NewSSESurface(sse)).RenderView(r.Context(), v, data); err != nil {
		slog.Error("patch view lists", "view", v, "error", err)
	}
}

// loadPageData reads what view v shows. Nothing is cached between
// requests.
func (h *PageHandler) loadPageData(ctx context.Context, v domain.View, user *domain.User) (view.PageData, error) {
	data := view.PageData{User: user}

	switch v {
	case domain.ViewProfile:
		if user == nil {
			return data, nil
		}
		cv, err := h.cvs.Get(ctx, user.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return data, fmt.Errorf("get CV: %w", err)
		}
		data.CV = cv

	case domain.ViewJobs:
		if user == nil {
			return data, nil
		}
		matches, err := h.jobs.Matches(ctx, user.Skills)
		if err != nil {
			return data, fmt.Errorf("match jobs: %w", err)
		}
		data.Recommended = matches.Recommended
		data.Shortlisted = matches.Shortlisted

	case domain.ViewEmployer:
		if user == nil {
			return data, nil
		}
		posted, err := h.jobs.ListByEmployer(ctx, user.Email)
		if err != nil {
			return data, fmt.Errorf("list posted jobs: %w", err)
		}
		data.PostedJobs = posted

	case domain.ViewAdmin:
		users, err := h.profiles.List(ctx)
		if err != nil {
			return data, fmt.Errorf("list users: %w", err)
		}
		jobs, err := h.jobs.List(ctx)
		if err != nil {
			return data, fmt.Errorf("list jobs: %w", err)
		}
		data.Users = users
		data.Jobs = jobs
		data.Stats = service.ComputeAdminStats(users, jobs)
	}
	return data, nil
}

func handlePageError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrStorageUnavailable) {
		slog.Error("storage unavailable", "error", err)
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}
	slog.Error("load page", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
