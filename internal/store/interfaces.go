package store

import (
	"context"

	"github.com/TituxMetal/epicweb-notes-app/models"
)

// NoteChangeSet is the reconciled image plan for one note update,
// prepared by the service layer and applied atomically by the
// repository. All IDs are final: replacements already carry their fresh
// image ID.
type NoteChangeSet struct {
	// Note carries the target note ID and the new title and content.
	Note models.Note

	// KeepImageIDs lists every existing image ID that survives the
	// update, in either its original or replaced form. Images of the
	// note not listed here are deleted.
	KeepImageIDs []string

	// AltTextUpdates are existing images whose alt text changes while
	// the binary (and therefore the ID) stays.
	AltTextUpdates []models.ImageUpdate

	// Replacements are existing images whose binary is replaced. The row
	// keyed by OldID is rewritten in place with the new image, including
	// its new ID.
	Replacements []ImageReplacement

	// NewImages are appended to the note.
	NewImages []models.NoteImage
}

// ImageReplacement rewrites one image row: the row identified by OldID
// takes on the full content of Image, new ID included.
type ImageReplacement struct {
	OldID string
	Image models.NoteImage
}

// NoteRepository persists notes and their images. Mutations that touch
// more than one row run inside a single database transaction.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	ListNotesByOwner(ctx context.Context, ownerID string) ([]models.Note, error)
	UpdateNote(ctx context.Context, change NoteChangeSet) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
	GetImage(ctx context.Context, imageID string) (models.NoteImage, error)
}

// UserRepository reads user accounts and their avatars.
type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	GetUserImage(ctx context.Context, imageID string) (models.UserImage, error)
}
