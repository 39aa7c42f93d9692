// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cookies

import (
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/TituxMetal/epicweb-notes-app/internal/crypto"
)

// CSRFCookieName is the name of the cookie holding the anti-forgery token.
// It is separate from the session cookie and holds only the token.
const CSRFCookieName = "csrf"

// CSRFCodec issues and validates the per-session anti-forgery token.
//
// Issue returns the requester's current token, minting one when absent;
// a token stays valid for the lifetime of its cookie, so a rendered form
// never goes stale in the user's tab. Validate compares the token echoed
// back by a form submission against the cookie in constant time.
type CSRFCodec struct {
	codecs []securecookie.Codec
	secure bool
}

// NewCSRFCodec constructs a CSRFCodec from the ordered secret list.
func NewCSRFCodec(secrets []string, ring crypto.KeyRing, secure bool) (*CSRFCodec, error) {
	codecs, err := buildCodecs(secrets, ring)
	if err != nil {
		return nil, err
	}

	return &CSRFCodec{codecs: codecs, secure: secure}, nil
}

// Issue returns the requester's CSRF token. When the request carries a
// valid CSRF cookie the existing token is reused; otherwise a fresh
// 256-bit token is minted and set on the response.
func (c *CSRFCodec) Issue(w http.ResponseWriter, r *http.Request) (string, error) {
	if token, ok := c.read(r); ok {
		return token, nil
	}

	token := hex.EncodeToString(securecookie.GenerateRandomKey(32))

	encoded, err := securecookie.EncodeMulti(CSRFCookieName, token, c.codecs...)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, secureCookie(CSRFCookieName, encoded, c.secure))
	return token, nil
}

// Validate checks the token submitted with a mutating request against the
// token bound to the requester's CSRF cookie. A missing cookie, a missing
// submitted token, and a mismatch all return the same [ErrInvalidCSRF];
// the caller must abort the mutation without revealing which check failed.
func (c *CSRFCodec) Validate(r *http.Request, submitted string) error {
	token, ok := c.read(r)
	if !ok || submitted == "" {
		return ErrInvalidCSRF
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(submitted)) != 1 {
		return ErrInvalidCSRF
	}

	return nil
}

func (c *CSRFCodec) read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CSRFCookieName)
	if err != nil {
		return "", false
	}

	var token string
	if err := securecookie.DecodeMulti(CSRFCookieName, cookie.Value, &token, c.codecs...); err != nil {
		return "", false
	}

	return token, token != ""
}
