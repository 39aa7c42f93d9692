// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TituxMetal/epicweb-notes-app/internal/forms"
	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/internal/service"
	"github.com/TituxMetal/epicweb-notes-app/internal/utils"
	"github.com/TituxMetal/epicweb-notes-app/models"
)

// getNote serves one note with its image metadata.
func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "noteID")

	note, err := h.services.NoteService.GetNote(r.Context(), noteID)
	if errors.Is(err, service.ErrNoteNotFound) {
		h.writeNotFound(w, fmt.Sprintf("No note with the id %q exists", noteID))
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"status": "idle",
		"note":   note,
	}, http.StatusOK)
}

// listNotes serves the owner's note listing (id and title only).
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	owner, err := h.services.UserService.FindByUsername(r.Context(), username)
	if errors.Is(err, service.ErrUserNotFound) {
		h.writeNotFound(w, fmt.Sprintf("No user with the username %q exists", username))
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), owner.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	listing := make([]map[string]string, 0, len(notes))
	for _, note := range notes {
		listing = append(listing, map[string]string{"id": note.ID, "title": note.Title})
	}

	utils.WriteJSON(w, map[string]any{
		"status": "idle",
		"owner":  owner,
		"notes":  listing,
	}, http.StatusOK)
}

// editNoteForm serves everything a client needs to render the editor:
// the current note value, a CSRF token, and fresh honeypot fields.
func (h *Handler) editNoteForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, "noteID")

	note, err := h.services.NoteService.GetNote(r.Context(), noteID)
	if errors.Is(err, service.ErrNoteNotFound) {
		h.writeNotFound(w, fmt.Sprintf("No note with the id %q exists", noteID))
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.csrf.Issue(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.editNoteForm").Msg("error issuing CSRF token")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"status":    "idle",
		"note":      note,
		"csrfToken": token,
		"honeypot":  h.honeypot.Fields(),
	}, http.StatusOK)
}

// editNote runs the full mutation pipeline for the note editor form.
func (h *Handler) editNote(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decodeGuarded(w, r, true)
	if !ok {
		return
	}

	username := chi.URLParam(r, "username")
	noteID := chi.URLParam(r, "noteID")

	submission := forms.ParseNoteEditor(form, h.maxUploadSize)
	switch submission.Result() {
	case forms.Intermediate:
		utils.WriteJSON(w, map[string]any{"status": "idle", "submission": submission}, http.StatusOK)

	case forms.Rejected:
		utils.WriteJSON(w, map[string]any{"status": "error", "submission": submission}, http.StatusBadRequest)

	case forms.Accepted:
		note, err := h.services.NoteService.UpdateNote(r.Context(), h.actingUserID(r), noteID, submission.Value.ToChangeNote())
		if errors.Is(err, service.ErrNoteNotFound) {
			h.writeNotFound(w, fmt.Sprintf("No note with the id %q exists", noteID))
			return
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		http.Redirect(w, r, notePath(username, note.ID), http.StatusSeeOther)
	}
}

// createNote runs the full mutation pipeline for a fresh note.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decodeGuarded(w, r, true)
	if !ok {
		return
	}

	username := chi.URLParam(r, "username")

	submission := forms.ParseNoteEditor(form, h.maxUploadSize)
	switch submission.Result() {
	case forms.Intermediate:
		utils.WriteJSON(w, map[string]any{"status": "idle", "submission": submission}, http.StatusOK)

	case forms.Rejected:
		utils.WriteJSON(w, map[string]any{"status": "error", "submission": submission}, http.StatusBadRequest)

	case forms.Accepted:
		note, err := h.services.NoteService.CreateNote(r.Context(), h.actingUserID(r), submission.Value.ToChangeNote())
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		http.Redirect(w, r, notePath(username, note.ID), http.StatusSeeOther)
	}
}

// deleteNote handles the urlencoded delete form posted to the note view.
func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decodeGuarded(w, r, false)
	if !ok {
		return
	}

	if form.Value(forms.FieldIntent) != "delete" {
		h.writeError(w, r, service.ErrInvalidChange)
		return
	}

	username := chi.URLParam(r, "username")
	noteID := chi.URLParam(r, "noteID")

	err := h.services.NoteService.DeleteNote(r.Context(), h.actingUserID(r), noteID)
	if errors.Is(err, service.ErrNoteNotFound) {
		h.writeNotFound(w, fmt.Sprintf("No note with the id %q exists", noteID))
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.toast.Stash(w, models.Toast{
		Kind:        models.ToastSuccess,
		Title:       "Note deleted",
		Description: "Your note has been deleted",
	}); err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%s/notes", username), http.StatusSeeOther)
}

func notePath(username, noteID string) string {
	return fmt.Sprintf("/users/%s/notes/%s", username, noteID)
}
