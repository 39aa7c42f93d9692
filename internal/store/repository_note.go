// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It treats a note and its images as one aggregate: every mutation that
// touches both runs inside a single transaction, so a failure never
// leaves an orphaned note or a half-reconciled image set.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and its initial images as one
// transaction.
//
// Error handling:
//   - PostgreSQL foreign_key_violation on owner_id → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: cannot begin transaction")
		return models.Note{}, ErrBeginningTransaction
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, insertNote, note.ID, note.OwnerID, note.Title, note.Content)
	if err = row.Scan(&note.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: inserting note")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Note{}, ErrUserNotFound
		default:
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	for i := range note.Images {
		image := &note.Images[i]
		image.NoteID = note.ID
		if _, err = tx.ExecContext(ctx, insertImage, image.ID, note.ID, image.AltText, image.ContentType, image.Blob); err != nil {
			log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: inserting note image")
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: cannot commit transaction")
		return models.Note{}, ErrCommitingTransaction
	}

	return note, nil
}

// GetNote retrieves one note together with its image metadata. Image
// blobs are not loaded; they are served separately via GetImage.
func (r *noteRepository) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.db.QueryRowContext(ctx, getNote, noteID)
	if err := row.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error: scanning note row")
		return models.Note{}, errors.Join(ErrScanningRow, err)
	}

	images, err := r.loadImages(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}
	note.Images = images

	return note, nil
}

// ListNotesByOwner returns the owner's notes ordered by most recent
// update, without image metadata.
func (r *noteRepository) ListNotesByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listNotesByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotesByOwner").Msg("error: querying notes")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotesByOwner").Msg("error: scanning note rows")
			return nil, errors.Join(ErrScanningRow, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return notes, nil
}

// UpdateNote applies a reconciled change set in one transaction: the note
// row is rewritten, images absent from the surviving set are deleted,
// alt-text updates and binary replacements are applied in place, and new
// images are appended. The updated aggregate is re-read after commit.
//
// Error handling:
//   - note row missing → [ErrNoteNotFound]
//   - update/replacement targeting a missing image → [ErrImageNotFound]
func (r *noteRepository) UpdateNote(ctx context.Context, change NoteChangeSet) (models.Note, error) {
	log := logger.FromContext(ctx)
	noteID := change.Note.ID

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: cannot begin transaction")
		return models.Note{}, ErrBeginningTransaction
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, updateNote, change.Note.Title, change.Note.Content, noteID)
	if err = row.Scan(&change.Note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: updating note row")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = r.deleteDroppedImages(ctx, tx, noteID, change.KeepImageIDs); err != nil {
		return models.Note{}, err
	}

	for _, update := range change.AltTextUpdates {
		if err = execExpectingRow(ctx, tx, updateImageAltText, ErrImageNotFound, update.AltText, update.ID, noteID); err != nil {
			log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: updating image alt text")
			return models.Note{}, err
		}
	}

	for _, replacement := range change.Replacements {
		image := replacement.Image
		if err = execExpectingRow(ctx, tx, replaceImage, ErrImageNotFound,
			image.ID, image.AltText, image.ContentType, image.Blob, replacement.OldID, noteID); err != nil {
			log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: replacing image")
			return models.Note{}, err
		}
	}

	for _, image := range change.NewImages {
		if _, err = tx.ExecContext(ctx, insertImage, image.ID, noteID, image.AltText, image.ContentType, image.Blob); err != nil {
			log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: inserting note image")
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: cannot commit transaction")
		return models.Note{}, ErrCommitingTransaction
	}

	return r.GetNote(ctx, noteID)
}

// DeleteNote removes the note and all of its images in one transaction.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: cannot begin transaction")
		return ErrBeginningTransaction
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteNoteImages, noteID); err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: deleting note images")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = execExpectingRow(ctx, tx, deleteNote, ErrNoteNotFound, noteID); err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: deleting note")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: cannot commit transaction")
		return ErrCommitingTransaction
	}

	return nil
}

// GetImage retrieves one image including its binary blob.
func (r *noteRepository) GetImage(ctx context.Context, imageID string) (models.NoteImage, error) {
	log := logger.FromContext(ctx)

	var image models.NoteImage
	row := r.db.QueryRowContext(ctx, getImage, imageID)
	if err := row.Scan(&image.ID, &image.NoteID, &image.AltText, &image.ContentType, &image.Blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NoteImage{}, ErrImageNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetImage").Msg("error: scanning image row")
		return models.NoteImage{}, errors.Join(ErrScanningRow, err)
	}

	return image, nil
}

// deleteDroppedImages removes every image of the note whose ID is not in
// the surviving set. The query is built dynamically because the set size
// varies and an empty set means "delete all".
func (r *noteRepository) deleteDroppedImages(ctx context.Context, tx *sql.Tx, noteID string, keepIDs []string) error {
	log := logger.FromContext(ctx)

	builder := sq.Delete("note_images").
		Where(sq.Eq{"note_id": noteID}).
		PlaceholderFormat(sq.Dollar)
	if len(keepIDs) > 0 {
		builder = builder.Where(sq.NotEq{"id": keepIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.deleteDroppedImages").Msg("error: building delete query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*noteRepository.deleteDroppedImages").Msg("error: deleting dropped images")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// loadImages returns the note's image metadata ordered by insertion.
func (r *noteRepository) loadImages(ctx context.Context, noteID string) ([]models.NoteImage, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getNoteImages, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.loadImages").Msg("error: querying note images")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var images []models.NoteImage
	for rows.Next() {
		var image models.NoteImage
		if err = rows.Scan(&image.ID, &image.NoteID, &image.AltText, &image.ContentType); err != nil {
			log.Err(err).Str("func", "*noteRepository.loadImages").Msg("error: scanning image rows")
			return nil, errors.Join(ErrScanningRow, err)
		}
		images = append(images, image)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return images, nil
}

// execExpectingRow runs a DML statement that must affect at least one
// row, returning missing when it affected none.
func execExpectingRow(ctx context.Context, tx *sql.Tx, query string, missing error, args ...any) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return missing
	}

	return nil
}
