package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/view"
)

// redirectNotice sends the browser back to a view with a notice to show.
func redirectNotice(w http.ResponseWriter, r *http.Request, v domain.View, notice string) {
	q := url.Values{}
	q.Set("view", string(v))
	if notice != "" {
		q.Set("notice", notice)
	}
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}

// noticeForError picks the notice for a failed form action. Unexpected
// errors are logged.
func noticeForError(op string, err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return view.NoticeInvalidInput
	case errors.Is(err, domain.ErrSubscriptionRequired):
		return view.NoticePaidRequired
	case errors.Is(err, domain.ErrDuplicateApplication):
		return view.NoticeAlreadyApplied
	case errors.Is(err, domain.ErrUnauthorized):
		return view.NoticeLoginRequired
	default:
		slog.Error(op, "error", err)
		return view.NoticeError
	}
}
