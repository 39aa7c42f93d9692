package forms

import "errors"

// Sentinel errors returned by the decode and guard stages. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrPayloadTooLarge is returned when a single form part exceeds the
	// configured upload ceiling. The decode is aborted as soon as the
	// oversized part is detected.
	ErrPayloadTooLarge = errors.New("form part exceeds the upload limit")

	// ErrMalformedBody is returned when the request body cannot be
	// decoded as a form at all.
	ErrMalformedBody = errors.New("malformed form body")

	// ErrBotDetected is returned by the honeypot guard. Handlers must
	// surface it as a generic bad request without mentioning the
	// honeypot, so automated submitters get no signal about what
	// tripped them up.
	ErrBotDetected = errors.New("submission failed the honeypot check")
)
