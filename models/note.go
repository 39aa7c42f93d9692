package models

import "time"

// Field-size ceilings enforced by the note editor schema. A note holds at
// most MaxImagesPerNote images and each image blob is capped at
// MaxUploadSize bytes.
const (
	TitleMaxLength   = 100
	ContentMaxLength = 1000
	MaxImagesPerNote = 5
	MaxUploadSize    = 5 * 1024 * 1024 // 5MB
)

// Note is the aggregate root for a user's note. The note exclusively owns
// its image list: images are created, replaced, and deleted only through
// note mutations and never outlive the note.
type Note struct {
	// ID is the unique identifier of the note.
	ID string `json:"id"`

	// OwnerID is the ID of the user that owns the note. Only the owner
	// may mutate it.
	OwnerID string `json:"ownerId"`

	// Title is the note title, 1..100 characters.
	Title string `json:"title"`

	// Content is the note body, 1..1000 characters.
	Content string `json:"content"`

	// UpdatedAt is the time of the last successful mutation.
	UpdatedAt time.Time `json:"updatedAt"`

	// Images is the ordered list of images attached to the note.
	Images []NoteImage `json:"images"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteImage is an image attached to a note. Images are served with
// far-future immutable cache headers, so an image ID changes whenever its
// binary content changes.
type NoteImage struct {
	// ID is the unique identifier of the image. Regenerated when the
	// binary is replaced so that cached URLs never go stale.
	ID string `json:"id"`

	// NoteID is the ID of the owning note.
	NoteID string `json:"-"`

	// AltText is the optional accessibility description.
	AltText string `json:"altText,omitempty"`

	// ContentType is the MIME type of the blob (e.g. "image/png").
	ContentType string `json:"-"`

	// Blob holds the binary image content. Omitted from JSON; the bytes
	// are served via the image resource route.
	Blob []byte `json:"-"`
}

// TableName returns the name of the database table
// associated with the NoteImage model.
func (i NoteImage) TableName() string {
	return "note_images"
}

// NewImage describes an image to append to a note: a fresh binary payload
// plus optional alt text. Used by both create and update mutations.
type NewImage struct {
	AltText     string
	ContentType string
	Blob        []byte
}

// ImageUpdate describes a change to an existing image, keyed by its
// current ID. When Blob is nil only the alt text changes and the ID is
// kept; when Blob is non-nil the binary is replaced and the image is
// assigned a new ID.
type ImageUpdate struct {
	ID          string
	AltText     string
	ContentType string
	Blob        []byte
}

// ChangeNote carries the validated payload of a note mutation.
//
// On update, ImageUpdates is the complete surviving set of existing
// images: any image ID attached to the note but absent from ImageUpdates
// is deleted. NewImages are appended after the updates are applied.
// On create, ImageUpdates must be empty.
type ChangeNote struct {
	Title        string
	Content      string
	ImageUpdates []ImageUpdate
	NewImages    []NewImage
}
