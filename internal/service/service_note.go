// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/internal/store"
	"github.com/TituxMetal/epicweb-notes-app/internal/utils"
	"github.com/TituxMetal/epicweb-notes-app/models"
)

// noteService implements [NoteService] on top of the note repository.
//
// Every mutation authorizes first: the note must exist and the acting
// user must own it, in that order, so a missing note reads as
// [ErrNoteNotFound] and a foreign note as [ErrForbidden]. The repository
// applies each mutation in a single transaction.
//
// Concurrent updates to the same note are last-write-wins: there is no
// version or last-modified check, so two tabs editing the same note
// silently overwrite each other. Known gap, kept as-is.
type noteService struct {
	notes  store.NoteRepository
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewNoteService constructs a [NoteService] backed by the given
// repository.
func NewNoteService(notes store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		notes:  notes,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// CreateNote persists a new note owned by ownerID. The change may carry
// new images only; existing-image updates on a create are rejected with
// [ErrInvalidChange].
func (s *noteService) CreateNote(ctx context.Context, ownerID string, change models.ChangeNote) (models.Note, error) {
	if ownerID == "" {
		return models.Note{}, ErrForbidden
	}
	if len(change.ImageUpdates) > 0 {
		return models.Note{}, ErrInvalidChange
	}

	note := models.Note{
		ID:      s.uuid.Generate(),
		OwnerID: ownerID,
		Title:   change.Title,
		Content: change.Content,
	}
	for _, image := range change.NewImages {
		note.Images = append(note.Images, models.NoteImage{
			ID:          s.uuid.Generate(),
			NoteID:      note.ID,
			AltText:     image.AltText,
			ContentType: image.ContentType,
			Blob:        image.Blob,
		})
	}

	created, err := s.notes.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}

	return created, nil
}

// UpdateNote rewrites the note and reconciles its image set.
//
// The validated change is turned into an explicit plan: image updates
// without a new binary keep their ID and only change alt text; updates
// carrying a binary are replacements and receive a fresh ID, because
// image URLs are served with immutable far-future cache headers and must
// change identity together with their content. Existing images absent
// from the change are deleted, and new images are appended.
func (s *noteService) UpdateNote(ctx context.Context, actingUserID, noteID string, change models.ChangeNote) (models.Note, error) {
	if err := s.authorize(ctx, actingUserID, noteID); err != nil {
		return models.Note{}, err
	}

	changeSet := store.NoteChangeSet{
		Note: models.Note{ID: noteID, Title: change.Title, Content: change.Content},
	}

	for _, update := range change.ImageUpdates {
		changeSet.KeepImageIDs = append(changeSet.KeepImageIDs, update.ID)

		if update.Blob == nil {
			changeSet.AltTextUpdates = append(changeSet.AltTextUpdates, update)
			continue
		}

		changeSet.Replacements = append(changeSet.Replacements, store.ImageReplacement{
			OldID: update.ID,
			Image: models.NoteImage{
				ID:          s.uuid.Generate(),
				NoteID:      noteID,
				AltText:     update.AltText,
				ContentType: update.ContentType,
				Blob:        update.Blob,
			},
		})
	}

	for _, image := range change.NewImages {
		changeSet.NewImages = append(changeSet.NewImages, models.NoteImage{
			ID:          s.uuid.Generate(),
			NoteID:      noteID,
			AltText:     image.AltText,
			ContentType: image.ContentType,
			Blob:        image.Blob,
		})
	}

	updated, err := s.notes.UpdateNote(ctx, changeSet)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}

	return updated, nil
}

// DeleteNote removes the note and all of its images.
func (s *noteService) DeleteNote(ctx context.Context, actingUserID, noteID string) error {
	if err := s.authorize(ctx, actingUserID, noteID); err != nil {
		return err
	}

	if err := s.notes.DeleteNote(ctx, noteID); err != nil {
		return mapStoreError(err)
	}

	return nil
}

// GetNote returns the note with its image metadata.
func (s *noteService) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}

	return note, nil
}

// ListNotes returns the owner's notes, most recently updated first.
func (s *noteService) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	notes, err := s.notes.ListNotesByOwner(ctx, ownerID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return notes, nil
}

// GetImage returns one image including its blob.
func (s *noteService) GetImage(ctx context.Context, imageID string) (models.NoteImage, error) {
	image, err := s.notes.GetImage(ctx, imageID)
	if err != nil {
		return models.NoteImage{}, mapStoreError(err)
	}

	return image, nil
}

// authorize verifies that the note exists and that actingUserID owns it.
// Existence is checked first: a missing note is [ErrNoteNotFound] even
// for an anonymous caller.
func (s *noteService) authorize(ctx context.Context, actingUserID, noteID string) error {
	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		return mapStoreError(err)
	}

	if actingUserID == "" || note.OwnerID != actingUserID {
		return ErrForbidden
	}

	return nil
}

// mapStoreError translates repository sentinels into service sentinels.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		return ErrNoteNotFound
	case errors.Is(err, store.ErrImageNotFound):
		return ErrImageNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	default:
		return err
	}
}
