package models

// ToastKind classifies a flash notification for rendering purposes.
type ToastKind string

// Allowed toast kinds. Anything else fails Toast.Valid and is treated as
// a corrupt cookie payload.
const (
	ToastSuccess ToastKind = "success"
	ToastMessage ToastKind = "message"
	ToastError   ToastKind = "error"
)

// Toast is a one-shot flash notification carried across a redirect in the
// toast session cookie. It is written by a mutation handler just before
// the redirect and consumed (read-then-cleared) by the very next page
// load. At most one toast is pending per session: a later Stash
// overwrites an earlier one.
type Toast struct {
	// ID uniquely identifies the notification so the client can
	// de-duplicate renders.
	ID string `json:"id"`

	// Kind is one of success, message, or error.
	Kind ToastKind `json:"type"`

	// Title is the optional heading.
	Title string `json:"title,omitempty"`

	// Description is the required message body.
	Description string `json:"description"`
}

// Valid reports whether the toast has the shape expected from a decoded
// cookie payload: a known kind and a non-empty description.
func (t Toast) Valid() bool {
	switch t.Kind {
	case ToastSuccess, ToastMessage, ToastError:
	default:
		return false
	}
	return t.Description != ""
}
