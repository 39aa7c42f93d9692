// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/internal/service"
)

// serveImage streams one image blob. Responses are cacheable forever:
// image IDs change whenever the binary changes, so a URL never serves
// two different payloads.
func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	imageID := chi.URLParam(r, "imageID")

	image, err := h.services.NoteService.GetImage(r.Context(), imageID)
	if errors.Is(err, service.ErrImageNotFound) {
		h.writeNotFound(w, "Not found")
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeImageBlob(w, image.ID, image.ContentType, image.Blob, log, "*Handler.serveImage")
}

// serveUserImage streams one avatar blob with the same immutable cache
// contract as note images.
func (h *Handler) serveUserImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	imageID := chi.URLParam(r, "imageID")

	image, err := h.services.UserService.GetImage(r.Context(), imageID)
	if errors.Is(err, service.ErrImageNotFound) {
		h.writeNotFound(w, "Not found")
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeImageBlob(w, image.ID, image.ContentType, image.Blob, log, "*Handler.serveUserImage")
}

func writeImageBlob(w http.ResponseWriter, id, contentType string, blob []byte, log *logger.Logger, caller string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob)))
	w.Header().Set("Content-Disposition", `inline; filename="`+id+`"`)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	if _, err := w.Write(blob); err != nil {
		log.Err(err).Str("func", caller).Msg("error writing image response")
	}
}
