package handler

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
	"github.com/msomdec/job-board/internal/view"
)

// maxUploadBytes bounds the multipart body of a CV upload.
const maxUploadBytes = 6 << 20

// ProfileHandler handles profile edits, subscriptions and CV uploads.
type ProfileHandler struct {
	profiles *service.ProfileService
	cvs      *service.CVService
	auth     *AuthHandler
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService, cvs *service.CVService, auth *AuthHandler) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, cvs: cvs, auth: auth}
}

// HandleSaveProfile saves the profile form and signs in as the saved user.
// POST /profile
func (h *ProfileHandler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	role, err := domain.ParseRole(r.FormValue("role"))
	if err != nil {
		redirectNotice(w, r, domain.ViewProfile, view.NoticeInvalidInput)
		return
	}

	user, err := h.profiles.Save(r.Context(), service.ProfileInput{
		Email:     r.FormValue("email"),
		Name:      r.FormValue("name"),
		Skills:    domain.ParseSkills(r.FormValue("skills")),
		Education: r.FormValue("education"),
		Role:      role,
	})
	if err != nil {
		redirectNotice(w, r, domain.ViewProfile, noticeForError("save profile", err))
		return
	}

	if err := h.auth.loginAs(w, user.Email); err != nil {
		slog.Error("issue session", "error", err)
		redirectNotice(w, r, domain.ViewProfile, view.NoticeError)
		return
	}
	redirectNotice(w, r, domain.ViewJobs, view.NoticeProfileSaved)
}

// HandleSubscribe moves the signed-in user onto the submitted plan.
// POST /subscribe
func (h *ProfileHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		redirectNotice(w, r, domain.ViewSubscribe, view.NoticeLoginRequired)
		return
	}

	plan := r.FormValue("plan")
	if plan == "" {
		plan = string(domain.SubscriptionPaid)
	}
	if _, err := h.profiles.Subscribe(r.Context(), user.Email, domain.Subscription(plan)); err != nil {
		redirectNotice(w, r, domain.ViewSubscribe, noticeForError("subscribe", err))
		return
	}
	redirectNotice(w, r, domain.ViewSubscribe, view.NoticeSubscribed)
}

// HandleUploadCV stores the CV in the multipart field "cv".
// POST /cv
func (h *ProfileHandler) HandleUploadCV(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		redirectNotice(w, r, domain.ViewProfile, view.NoticeLoginRequired)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("cv")
	if err != nil {
		redirectNotice(w, r, domain.ViewProfile, view.NoticeInvalidInput)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		redirectNotice(w, r, domain.ViewProfile, view.NoticeInvalidInput)
		return
	}

	lastModified, err := strconv.ParseInt(r.FormValue("lastModified"), 10, 64)
	if err != nil {
		lastModified = time.Now().UnixMilli()
	}

	_, err = h.cvs.Upload(r.Context(), user.Email, header.Filename, header.Header.Get("Content-Type"), lastModified, data)
	if err != nil {
		redirectNotice(w, r, domain.ViewProfile, noticeForError("upload CV", err))
		return
	}
	redirectNotice(w, r, domain.ViewProfile, view.NoticeCVUploaded)
}

// HandleDownloadCV sends the signed-in user's CV.
// GET /cv
func (h *ProfileHandler) HandleDownloadCV(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	data, cv, err := h.cvs.File(r.Context(), user.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("get CV", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	contentType := cv.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": cv.Name}))
	w.Write(data)
}
