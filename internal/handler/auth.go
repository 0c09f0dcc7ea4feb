package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/service"
	"github.com/msomdec/job-board/internal/view"
)

// AuthHandler handles email login and logout.
type AuthHandler struct {
	sessions     *service.SessionService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *service.SessionService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookieSecure: cookieSecure}
}

// HandleLogin logs in or registers the submitted email.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	res, err := h.sessions.Login(r.Context(), r.FormValue("email"))
	if err != nil {
		redirectNotice(w, r, domain.ViewHome, noticeForError("login user", err))
		return
	}

	h.setSession(w, res.Token)
	if res.Registered {
		slog.Info("user registered", "email", res.User.Email)
		redirectNotice(w, r, domain.ViewProfile, view.NoticeRegistered)
		return
	}
	redirectNotice(w, r, domain.ViewHome, view.NoticeWelcomeBack)
}

// HandleLogout clears the session cookie.
// POST /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	redirectNotice(w, r, domain.ViewHome, view.NoticeLoggedOut)
}

// HandleMe returns the currently authenticated user.
// GET /api/me
// Response: {"user": {...}} or 401
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

// loginAs points the session at email.
func (h *AuthHandler) loginAs(w http.ResponseWriter, email string) error {
	token, err := h.sessions.IssueToken(email)
	if err != nil {
		return err
	}
	h.setSession(w, token)
	return nil
}

func (h *AuthHandler) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})
}
