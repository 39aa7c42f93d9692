package http

import (
	"net/http"

	"github.com/TituxMetal/epicweb-notes-app/internal/cookies"
	"github.com/TituxMetal/epicweb-notes-app/internal/utils"
	"github.com/TituxMetal/epicweb-notes-app/models"
)

// switchTheme persists the light/dark preference in the theme cookie and
// sends the browser back where it came from.
func (h *Handler) switchTheme(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decodeGuarded(w, r, false)
	if !ok {
		return
	}

	theme := models.Theme(form.Value("theme"))
	if !theme.Valid() {
		utils.WriteJSON(w, map[string]string{
			"status":  "error",
			"message": "Invalid theme received",
		}, http.StatusBadRequest)
		return
	}

	cookies.WriteTheme(w, theme)

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// root serves the page-shell payload: the theme preference and the
// pending flash notification, if any. Popping the toast here clears it,
// so a refresh never redelivers it.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"status": "idle",
		"theme":  cookies.ReadTheme(r),
	}
	if toast := h.toast.Pop(w, r); toast != nil {
		payload["toast"] = toast
	}

	utils.WriteJSON(w, payload, http.StatusOK)
}
