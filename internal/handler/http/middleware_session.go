package http

import (
	"context"
	"net/http"

	"github.com/TituxMetal/epicweb-notes-app/internal/utils"
)

// withSession decodes the session cookie and threads the session through
// the request context. Requests without a valid session get a fresh
// anonymous one, minted and set on the response, so every downstream
// handler can rely on a session being present. A tampered cookie is
// replaced the same way, never trusted.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.session.Read(r)
		if !ok {
			session = h.session.New()
			if err := h.session.Write(w, session); err != nil {
				h.writeError(w, r, err)
				return
			}
		}

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
