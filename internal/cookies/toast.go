// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cookies

import (
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/TituxMetal/epicweb-notes-app/internal/crypto"
	"github.com/TituxMetal/epicweb-notes-app/internal/utils"
	"github.com/TituxMetal/epicweb-notes-app/models"
)

// ToastCookieName is the name of the signed and encrypted flash cookie.
const ToastCookieName = "en-toast"

// ToastCodec carries one-shot flash notifications across a redirect.
//
// Stash writes the notification into the toast cookie; the very next Pop
// returns it and clears the cookie, so a refresh never redelivers it.
// Stashing twice before a Pop overwrites: at most one toast is pending.
type ToastCodec struct {
	codecs []securecookie.Codec
	uuid   *utils.UUIDGenerator
	secure bool
}

// NewToastCodec constructs a ToastCodec from the ordered secret list.
func NewToastCodec(secrets []string, ring crypto.KeyRing, secure bool) (*ToastCodec, error) {
	codecs, err := buildCodecs(secrets, ring)
	if err != nil {
		return nil, err
	}

	return &ToastCodec{
		codecs: codecs,
		uuid:   utils.NewUUIDGenerator(),
		secure: secure,
	}, nil
}

// Stash fills in the toast's defaults (fresh ID, kind "message"), encodes
// it, and sets the toast cookie on the response. The caller is expected to
// redirect immediately afterwards.
func (c *ToastCodec) Stash(w http.ResponseWriter, toast models.Toast) error {
	if toast.ID == "" {
		toast.ID = c.uuid.Generate()
	}
	if toast.Kind == "" {
		toast.Kind = models.ToastMessage
	}

	encoded, err := securecookie.EncodeMulti(ToastCookieName, toast, c.codecs...)
	if err != nil {
		return err
	}

	http.SetCookie(w, secureCookie(ToastCookieName, encoded, c.secure))
	return nil
}

// Pop returns the pending toast, if any, and clears the cookie so the
// message is delivered exactly once. A missing, corrupt, or malformed
// cookie yields nil without an error: a bad toast cookie must never break
// page rendering.
func (c *ToastCodec) Pop(w http.ResponseWriter, r *http.Request) *models.Toast {
	cookie, err := r.Cookie(ToastCookieName)
	if err != nil {
		return nil
	}

	var toast models.Toast
	if err := securecookie.DecodeMulti(ToastCookieName, cookie.Value, &toast, c.codecs...); err != nil {
		return nil
	}
	if !toast.Valid() {
		return nil
	}

	http.SetCookie(w, clearingCookie(ToastCookieName, c.secure))
	return &toast
}
