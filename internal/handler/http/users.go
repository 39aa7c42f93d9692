// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TituxMetal/epicweb-notes-app/internal/service"
	"github.com/TituxMetal/epicweb-notes-app/internal/utils"
)

// searchUsers serves the user search. An explicitly empty search param
// redirects back to the bare listing URL, matching how the search form
// clears itself.
func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("search")
	if query.Has("search") && search == "" {
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}

	users, err := h.services.UserService.Search(r.Context(), search)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"status": "idle",
		"users":  users,
	}, http.StatusOK)
}

// userProfile serves one user's public profile.
func (h *Handler) userProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.services.UserService.FindByUsername(r.Context(), username)
	if errors.Is(err, service.ErrUserNotFound) {
		h.writeNotFound(w, fmt.Sprintf("No user with the username %q exists", username))
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"status": "idle",
		"user":   user,
	}, http.StatusOK)
}
