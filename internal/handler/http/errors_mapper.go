package http

import (
	"errors"
	"net/http"

	"github.com/TituxMetal/epicweb-notes-app/internal/cookies"
	"github.com/TituxMetal/epicweb-notes-app/internal/forms"
	"github.com/TituxMetal/epicweb-notes-app/internal/service"
	"github.com/TituxMetal/epicweb-notes-app/internal/store"
	"github.com/TituxMetal/epicweb-notes-app/internal/utils"
)

var errorStatusMap = map[error]int{
	forms.ErrMalformedBody:   http.StatusBadRequest,
	forms.ErrBotDetected:     http.StatusBadRequest,
	forms.ErrPayloadTooLarge: http.StatusRequestEntityTooLarge,

	cookies.ErrInvalidCSRF: http.StatusForbidden,

	service.ErrInvalidChange: http.StatusBadRequest,
	service.ErrForbidden:     http.StatusForbidden,
	service.ErrNoteNotFound:  http.StatusNotFound,
	service.ErrImageNotFound: http.StatusNotFound,
	service.ErrUserNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage picks the client-facing text for an error. Bot detections
// read as a generic bad request on purpose, and anything unmapped stays a
// generic server error so internals never leak.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, cookies.ErrInvalidCSRF):
		return "Invalid CSRF token"
	case errors.Is(err, forms.ErrBotDetected):
		return "Form not submitted properly"
	case errors.Is(err, forms.ErrPayloadTooLarge):
		return "Uploaded file is too large"
	case errors.Is(err, forms.ErrMalformedBody):
		return "Malformed form submission"
	case errors.Is(err, service.ErrForbidden):
		return "You are not allowed to do that"
	case errors.Is(err, service.ErrInvalidChange):
		return "Invalid form submission"
	case errors.Is(err, service.ErrNoteNotFound),
		errors.Is(err, service.ErrImageNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return "Not found"
	default:
		return "Something went wrong"
	}
}

// writeError maps err onto its HTTP status and writes a JSON error body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	utils.WriteJSON(w, map[string]string{
		"status":  "error",
		"message": errorMessage(err),
	}, statusFromError(err))
}

// writeNotFound writes a friendly 404 body naming the missing resource.
func (h *Handler) writeNotFound(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, map[string]string{
		"status":  "error",
		"message": message,
	}, http.StatusNotFound)
}
