package models

// Session is the server-trusted state carried by the signed and encrypted
// session cookie. It exists purely client-side (in the cookie); there is
// no server-side session table.
type Session struct {
	// ID is an opaque identifier minted when the session is first created.
	ID string `json:"id"`

	// UserID identifies the authenticated user, when any. Empty for
	// anonymous visitors.
	UserID string `json:"userId,omitempty"`
}
