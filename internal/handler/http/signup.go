package http

import (
	"net/http"

	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/internal/utils"
)

// signupForm serves the signup form scaffolding: a CSRF token and fresh
// honeypot fields.
func (h *Handler) signupForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := h.csrf.Issue(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.signupForm").Msg("error issuing CSRF token")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"status":    "idle",
		"csrfToken": token,
		"honeypot":  h.honeypot.Fields(),
	}, http.StatusOK)
}

// signup runs the guard half of the pipeline and redirects home. Account
// creation itself is not wired up; the route exists to protect the form
// with the same CSRF and honeypot checks as every other mutation.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.decodeGuarded(w, r, true); !ok {
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
