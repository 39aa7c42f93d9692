// Package cookies implements the four independent cookies that carry all
// cross-request state of the application: the session cookie, the one-shot
// toast (flash) cookie, the CSRF token cookie, and the theme preference
// cookie.
//
// The session, toast, and CSRF cookies are signed and encrypted with
// gorilla/securecookie. Key material is derived from the configured secret
// list: the first secret signs new cookies, and every secret is tried when
// verifying, so secrets can be rotated without invalidating live sessions.
// The theme cookie is a plain value readable by the client before
// hydration.
//
// Each codec is an explicit value passed into the handlers that need it;
// there is no ambient cookie state.
package cookies
