package cookies

import "errors"

// Sentinel errors returned by the cookie codecs. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoSecrets is returned when a codec is constructed with an empty
	// secret list.
	ErrNoSecrets = errors.New("no cookie secrets provided")

	// ErrInvalidCSRF is returned for every CSRF validation failure:
	// missing cookie, missing form field, or token mismatch. The three
	// cases are deliberately indistinguishable to the caller.
	ErrInvalidCSRF = errors.New("invalid CSRF token")
)
