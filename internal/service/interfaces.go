package service

import (
	"context"

	"github.com/TituxMetal/epicweb-notes-app/models"
)

// NoteService owns the note aggregate: reads, and the create/update/delete
// mutations with their ownership checks.
type NoteService interface {
	CreateNote(ctx context.Context, ownerID string, change models.ChangeNote) (models.Note, error)
	UpdateNote(ctx context.Context, actingUserID, noteID string, change models.ChangeNote) (models.Note, error)
	DeleteNote(ctx context.Context, actingUserID, noteID string) error

	GetNote(ctx context.Context, noteID string) (models.Note, error)
	ListNotes(ctx context.Context, ownerID string) ([]models.Note, error)
	GetImage(ctx context.Context, imageID string) (models.NoteImage, error)
}

// UserService reads user accounts for the profile and search pages, and
// serves their avatar images.
type UserService interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	Search(ctx context.Context, query string) ([]models.User, error)
	GetImage(ctx context.Context, imageID string) (models.UserImage, error)
}
