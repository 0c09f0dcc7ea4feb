package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
	"github.com/msomdec/job-board/internal/view"
)

// JobHandler handles job posting, applications and the job JSON API.
type JobHandler struct {
	jobs         *service.JobService
	applications *service.ApplicationService
	profiles     *service.ProfileService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs *service.JobService, applications *service.ApplicationService, profiles *service.ProfileService) *JobHandler {
	return &JobHandler{jobs: jobs, applications: applications, profiles: profiles}
}

// HandlePostJob posts a job owned by the signed-in user.
// POST /jobs
func (h *JobHandler) HandlePostJob(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		redirectNotice(w, r, domain.ViewEmployer, view.NoticeLoginRequired)
		return
	}

	_, err := h.jobs.Post(r.Context(), user.Email, service.PostJobInput{
		Title:       r.FormValue("jobTitle"),
		Company:     r.FormValue("companyName"),
		Description: r.FormValue("jobDescription"),
		Skills:      domain.ParseSkills(r.FormValue("skillsRequired")),
		Salary:      r.FormValue("salary"),
		Location:    r.FormValue("location"),
	})
	if err != nil {
		redirectNotice(w, r, domain.ViewEmployer, noticeForError("post job", err))
		return
	}
	redirectNotice(w, r, domain.ViewEmployer, view.NoticeJobPosted)
}

// HandleApply applies the signed-in user to a job.
// POST /jobs/{id}/apply
func (h *JobHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		redirectNotice(w, r, domain.ViewJobs, view.NoticeLoginRequired)
		return
	}

	jobID, err := jobIDParam(r)
	if err != nil {
		redirectNotice(w, r, domain.ViewJobs, view.NoticeJobNotFound)
		return
	}

	if _, err := h.applications.Apply(r.Context(), user.Email, jobID); err != nil {
		notice := view.NoticeJobNotFound
		if !errors.Is(err, domain.ErrNotFound) {
			notice = noticeForError("apply for job", err)
		}
		redirectNotice(w, r, domain.ViewJobs, notice)
		return
	}
	redirectNotice(w, r, domain.ViewJobs, view.NoticeApplied)
}

// HandleListJobs returns every job.
// GET /api/jobs
// Response: {"jobs": [...]}
func (h *JobHandler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List(r.Context())
	if err != nil {
		writeServiceError(w, "list jobs", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": toJobDTOs(jobs)})
}

// HandleMatches matches the jobs against the signed-in user's skills.
// GET /api/jobs/matches
// Response: {"recommended": [...], "shortlisted": [...]}
func (h *JobHandler) HandleMatches(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	matches, err := h.jobs.Matches(r.Context(), user.Skills)
	if err != nil {
		writeServiceError(w, "match jobs", err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchesDTO(matches))
}

// HandleAPIApply applies the signed-in user to a job.
// POST /api/jobs/{id}/apply
// Response: 201 {"application": {...}}
func (h *JobHandler) HandleAPIApply(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	jobID, err := jobIDParam(r)
	if err != nil {
		writeServiceError(w, "apply for job", err)
		return
	}

	app, err := h.applications.Apply(r.Context(), user.Email, jobID)
	if err != nil {
		writeServiceError(w, "apply for job", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"application": toApplicationDTO(app)})
}

// HandleAdminStats returns the admin dashboard counts.
// GET /api/admin/stats
func (h *JobHandler) HandleAdminStats(w http.ResponseWriter, r *http.Request) {
	users, err := h.profiles.List(r.Context())
	if err != nil {
		writeServiceError(w, "list users", err)
		return
	}
	jobs, err := h.jobs.List(r.Context())
	if err != nil {
		writeServiceError(w, "list jobs", err)
		return
	}
	writeJSON(w, http.StatusOK, service.ComputeAdminStats(users, jobs))
}

func jobIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid job id", domain.ErrInvalidInput)
	}
	return id, nil
}
