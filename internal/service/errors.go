package service

import "errors"

var (
	// ErrNoteNotFound is returned when the targeted note does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrImageNotFound is returned when the targeted image does not
	// exist, or when an update references an image ID that is not
	// attached to the note.
	ErrImageNotFound = errors.New("note image not found")

	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is returned when the acting user is not the owner of
	// the note being mutated.
	ErrForbidden = errors.New("user is not the owner of the note")

	// ErrInvalidChange is returned when a mutation payload is structurally
	// impossible, e.g. a create carrying existing-image updates.
	ErrInvalidChange = errors.New("invalid note change payload")
)
