// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/TituxMetal/epicweb-notes-app/internal/logger"
	"github.com/TituxMetal/epicweb-notes-app/models"
)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &noteRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func noteRows(note models.Note) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "owner_id", "title", "content", "updated_at"}).
		AddRow(note.ID, note.OwnerID, note.Title, note.Content, note.UpdatedAt)
}

func imageMetaRows(images ...models.NoteImage) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "note_id", "alt_text", "content_type"})
	for _, image := range images {
		rows.AddRow(image.ID, image.NoteID, image.AltText, image.ContentType)
	}
	return rows
}

// ─────────────────────────────────────────────
// CreateNote
// ─────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	note := models.Note{
		ID:      "note-1",
		OwnerID: "user-1",
		Title:   "Basic Koala Facts",
		Content: "Koalas are fuzzy.",
		Images: []models.NoteImage{
			{ID: "img-1", AltText: "a koala", ContentType: "image/png", Blob: []byte("png")},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(note.ID, note.OwnerID, note.Title, note.Content).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectExec("INSERT INTO note_images").
		WithArgs("img-1", note.ID, "a koala", "image/png", []byte("png")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateNote(context.Background(), note)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.UpdatedAt.Equal(now) {
		t.Errorf("expected updated_at %v, got %v", now, created.UpdatedAt)
	}
	if created.Images[0].NoteID != note.ID {
		t.Errorf("expected image bound to note %s, got %s", note.ID, created.Images[0].NoteID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateNote_UnknownOwner(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.CreateNote(context.Background(), models.Note{ID: "note-1", OwnerID: "ghost"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateNote_ImageInsertFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	note := models.Note{
		ID:      "note-1",
		OwnerID: "user-1",
		Title:   "t",
		Content: "c",
		Images:  []models.NoteImage{{ID: "img-1", Blob: []byte("x")}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(note.ID, note.OwnerID, note.Title, note.Content).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
	mock.ExpectExec("INSERT INTO note_images").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if _, err := repo.CreateNote(context.Background(), note); err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// ─────────────────────────────────────────────
// GetNote / ListNotesByOwner
// ─────────────────────────────────────────────

func TestGetNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	note := models.Note{ID: "note-1", OwnerID: "user-1", Title: "t", Content: "c", UpdatedAt: time.Now()}
	image := models.NoteImage{ID: "img-1", NoteID: "note-1", AltText: "a koala", ContentType: "image/png"}

	mock.ExpectQuery("SELECT id, owner_id, title, content, updated_at").
		WithArgs(note.ID).
		WillReturnRows(noteRows(note))
	mock.ExpectQuery("SELECT id, note_id, alt_text, content_type").
		WithArgs(note.ID).
		WillReturnRows(imageMetaRows(image))

	got, err := repo.GetNote(context.Background(), note.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Images) != 1 || got.Images[0].ID != "img-1" {
		t.Errorf("expected one image img-1, got %+v", got.Images)
	}
	if got.Images[0].Blob != nil {
		t.Error("GetNote must not load image blobs")
	}
}

func TestGetNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner_id, title, content, updated_at").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetNote(context.Background(), "missing")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestListNotesByOwner_OrderPreserved(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "owner_id", "title", "content", "updated_at"}).
		AddRow("note-2", "user-1", "newest", "c", now).
		AddRow("note-1", "user-1", "older", "c", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, owner_id, title, content, updated_at").
		WithArgs("user-1").
		WillReturnRows(rows)

	notes, err := repo.ListNotesByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != "note-2" {
		t.Errorf("expected [note-2 note-1], got %+v", notes)
	}
}

// ─────────────────────────────────────────────
// UpdateNote
// ─────────────────────────────────────────────

func TestUpdateNote_ReconcilesImages(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	change := NoteChangeSet{
		Note:         models.Note{ID: "note-1", Title: "new title", Content: "new content"},
		KeepImageIDs: []string{"img-keep", "img-old"},
		AltTextUpdates: []models.ImageUpdate{
			{ID: "img-keep", AltText: "new alt"},
		},
		Replacements: []ImageReplacement{
			{OldID: "img-old", Image: models.NoteImage{ID: "img-new", AltText: "replaced", ContentType: "image/jpeg", Blob: []byte("jpg")}},
		},
		NewImages: []models.NoteImage{
			{ID: "img-added", AltText: "fresh", ContentType: "image/png", Blob: []byte("png")},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE notes").
		WithArgs(change.Note.Title, change.Note.Content, change.Note.ID).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectExec("DELETE FROM note_images").
		WithArgs("note-1", "img-keep", "img-old").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE note_images").
		WithArgs("new alt", "img-keep", "note-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE note_images").
		WithArgs("img-new", "replaced", "image/jpeg", []byte("jpg"), "img-old", "note-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO note_images").
		WithArgs("img-added", "note-1", "fresh", "image/png", []byte("png")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Post-commit aggregate re-read.
	updated := models.Note{ID: "note-1", OwnerID: "user-1", Title: "new title", Content: "new content", UpdatedAt: now}
	mock.ExpectQuery("SELECT id, owner_id, title, content, updated_at").
		WithArgs("note-1").
		WillReturnRows(noteRows(updated))
	mock.ExpectQuery("SELECT id, note_id, alt_text, content_type").
		WithArgs("note-1").
		WillReturnRows(imageMetaRows(
			models.NoteImage{ID: "img-keep", NoteID: "note-1", AltText: "new alt", ContentType: "image/png"},
			models.NoteImage{ID: "img-new", NoteID: "note-1", AltText: "replaced", ContentType: "image/jpeg"},
			models.NoteImage{ID: "img-added", NoteID: "note-1", AltText: "fresh", ContentType: "image/png"},
		))

	got, err := repo.UpdateNote(context.Background(), change)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Images) != 3 {
		t.Errorf("expected 3 images after reconcile, got %d", len(got.Images))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE notes").
		WithArgs("t", "c", "missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.UpdateNote(context.Background(), NoteChangeSet{
		Note: models.Note{ID: "missing", Title: "t", Content: "c"},
	})
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestUpdateNote_StaleImageID(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE notes").
		WithArgs("t", "c", "note-1").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
	mock.ExpectExec("DELETE FROM note_images").
		WithArgs("note-1", "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE note_images").
		WithArgs("alt", "gone", "note-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.UpdateNote(context.Background(), NoteChangeSet{
		Note:           models.Note{ID: "note-1", Title: "t", Content: "c"},
		KeepImageIDs:   []string{"gone"},
		AltTextUpdates: []models.ImageUpdate{{ID: "gone", AltText: "alt"}},
	})
	if !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

// ─────────────────────────────────────────────
// DeleteNote / GetImage
// ─────────────────────────────────────────────

func TestDeleteNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM note_images").
		WithArgs("note-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM notes").
		WithArgs("note-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteNote(context.Background(), "note-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM note_images").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM notes").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.DeleteNote(context.Background(), "missing"); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestGetImage_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "note_id", "alt_text", "content_type", "blob"}).
		AddRow("img-1", "note-1", "a koala", "image/png", []byte("png-bytes"))

	mock.ExpectQuery("SELECT id, note_id, alt_text, content_type, blob").
		WithArgs("img-1").
		WillReturnRows(rows)

	image, err := repo.GetImage(context.Background(), "img-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(image.Blob) != "png-bytes" {
		t.Errorf("expected blob to be loaded, got %q", image.Blob)
	}
}

func TestGetImage_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, note_id, alt_text, content_type, blob").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetImage(context.Background(), "missing"); !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}
