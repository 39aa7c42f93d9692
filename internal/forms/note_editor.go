// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"fmt"

	"github.com/TituxMetal/epicweb-notes-app/models"
)

// Field names submitted by the note editor form. Image fieldsets are
// indexed: images[0].id, images[0].file, images[0].altText, and so on.
const (
	FieldIntent  = "intent"
	FieldTitle   = "title"
	FieldContent = "content"
	FieldImages  = "images"
)

// imageScanLimit bounds the index scan for image fieldsets. Indices past
// the per-note maximum still parse so the count check can report them.
const imageScanLimit = 100

// ImageFieldset is one entry of the editor's repeatable image list.
// All three members are optional on the wire: an existing image arrives
// with its ID, a fresh upload with just a file, and an untouched slot
// with nothing at all.
type ImageFieldset struct {
	ID      string `json:"id,omitempty"`
	File    *File  `json:"-"`
	AltText string `json:"altText,omitempty"`
}

// NoteEditorValues is the typed value tree of a note editor submission.
type NoteEditorValues struct {
	Title   string          `json:"title"`
	Content string          `json:"content"`
	Images  []ImageFieldset `json:"images,omitempty"`
}

// ParseNoteEditor validates a decoded note editor form.
//
// Structural checks run first, then per-field constraints; every
// independent failure is collected so the client can render all errors at
// once. A missing intent counts as a plain submit — only an explicit
// non-submit intent makes the result intermediate.
func ParseNoteEditor(form *Form, maxImageSize int64) Submission[NoteEditorValues] {
	submission := Submission[NoteEditorValues]{Intent: form.Value(FieldIntent)}
	if submission.Intent == "" {
		submission.Intent = IntentSubmit
	}

	submission.Value.Title = form.Value(FieldTitle)
	submission.Value.Content = form.Value(FieldContent)
	checkRequiredString(&submission.Errors, FieldTitle, submission.Value.Title, models.TitleMaxLength)
	checkRequiredString(&submission.Errors, FieldContent, submission.Value.Content, models.ContentMaxLength)

	for index := 0; index < imageScanLimit; index++ {
		entry, ok := imageEntry(form, index)
		if !ok {
			break
		}
		submission.Value.Images = append(submission.Value.Images, entry)
	}

	if count := len(submission.Value.Images); count > models.MaxImagesPerNote {
		submission.Errors.AddField(FieldImages,
			fmt.Sprintf("Too many images; the maximum is %d", models.MaxImagesPerNote))
	}

	for index, entry := range submission.Value.Images {
		if entry.File != nil && entry.File.Size > maxImageSize {
			submission.Errors.AddField(fieldPath(FieldImages, index, "file"),
				"Image size must be less than 5MB")
		}
	}

	return submission
}

// imageEntry reads the indexed fieldset at the given position. The second
// return value is false when none of the entry's fields were submitted,
// which ends the scan.
func imageEntry(form *Form, index int) (ImageFieldset, bool) {
	idField := fieldPath(FieldImages, index, "id")
	fileField := fieldPath(FieldImages, index, "file")
	altField := fieldPath(FieldImages, index, "altText")

	if !form.Has(idField) && !form.Has(fileField) && !form.Has(altField) {
		return ImageFieldset{}, false
	}

	return ImageFieldset{
		ID:      form.Value(idField),
		File:    form.File(fileField),
		AltText: form.Value(altField),
	}, true
}

// ToChangeNote converts an accepted value tree into the mutation payload.
// Fieldsets carrying an ID become image updates; ID-less fieldsets with a
// file become new images; completely empty slots are dropped.
func (v NoteEditorValues) ToChangeNote() models.ChangeNote {
	change := models.ChangeNote{Title: v.Title, Content: v.Content}

	for _, entry := range v.Images {
		if entry.ID != "" {
			update := models.ImageUpdate{ID: entry.ID, AltText: entry.AltText}
			if entry.File != nil {
				update.Blob = entry.File.Data
				update.ContentType = entry.File.ContentType
			}
			change.ImageUpdates = append(change.ImageUpdates, update)
			continue
		}

		if entry.File != nil {
			change.NewImages = append(change.NewImages, models.NewImage{
				AltText:     entry.AltText,
				ContentType: entry.File.ContentType,
				Blob:        entry.File.Data,
			})
		}
	}

	return change
}
