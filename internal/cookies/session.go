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

// SessionCookieName is the name of the signed and encrypted session cookie.
const SessionCookieName = "en-session"

// SessionCodec encodes and decodes the session cookie. The session is the
// only server-trusted identity carrier; everything in it travels signed
// and encrypted inside the cookie itself.
type SessionCodec struct {
	codecs []securecookie.Codec
	uuid   *utils.UUIDGenerator
	secure bool
}

// NewSessionCodec constructs a SessionCodec from the ordered secret list.
func NewSessionCodec(secrets []string, ring crypto.KeyRing, secure bool) (*SessionCodec, error) {
	codecs, err := buildCodecs(secrets, ring)
	if err != nil {
		return nil, err
	}

	return &SessionCodec{
		codecs: codecs,
		uuid:   utils.NewUUIDGenerator(),
		secure: secure,
	}, nil
}

// Read decodes the session from the request's cookies. The second return
// value is false when the cookie is absent, expired, or fails
// verification; a tampered session is treated the same as no session.
func (c *SessionCodec) Read(r *http.Request) (models.Session, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return models.Session{}, false
	}

	var session models.Session
	if err := securecookie.DecodeMulti(SessionCookieName, cookie.Value, &session, c.codecs...); err != nil {
		return models.Session{}, false
	}
	if session.ID == "" {
		return models.Session{}, false
	}

	return session, true
}

// Write encodes session and sets it on the response.
func (c *SessionCodec) Write(w http.ResponseWriter, session models.Session) error {
	encoded, err := securecookie.EncodeMulti(SessionCookieName, session, c.codecs...)
	if err != nil {
		return err
	}

	http.SetCookie(w, secureCookie(SessionCookieName, encoded, c.secure))
	return nil
}

// New mints a fresh anonymous session.
func (c *SessionCodec) New() models.Session {
	return models.Session{ID: c.uuid.Generate()}
}

// Destroy clears the session cookie on the response.
func (c *SessionCodec) Destroy(w http.ResponseWriter) {
	http.SetCookie(w, clearingCookie(SessionCookieName, c.secure))
}
