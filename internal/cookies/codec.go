package cookies

import (
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/TituxMetal/epicweb-notes-app/internal/crypto"
)

// buildCodecs constructs one securecookie codec per configured secret.
// Encoding always uses the first codec; decoding tries each in order,
// which is what makes secret rotation safe (see securecookie.DecodeMulti).
func buildCodecs(secrets []string, ring crypto.KeyRing) ([]securecookie.Codec, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecrets
	}

	codecs := make([]securecookie.Codec, 0, len(secrets))
	for _, secret := range secrets {
		hashKey, blockKey, err := ring.DeriveKeys(secret)
		if err != nil {
			return nil, err
		}

		sc := securecookie.New(hashKey, blockKey)
		sc.SetSerializer(securecookie.JSONEncoder{})
		codecs = append(codecs, sc)
	}

	return codecs, nil
}

// secureCookie assembles an http.Cookie with the security flags shared by
// the session, toast, and CSRF cookies: httpOnly, SameSite=Lax, path-root,
// and Secure when the application runs in production.
func secureCookie(name, value string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
}

// clearingCookie returns a cookie that instructs the browser to drop the
// named cookie immediately.
func clearingCookie(name string, secure bool) *http.Cookie {
	c := secureCookie(name, "", secure)
	c.MaxAge = -1
	return c
}
