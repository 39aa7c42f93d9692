package models

// User represents a registered account that owns notes.
// Within this application users are read-only: profile and search pages
// display them, and the signup flow that would create them is a stub.
type User struct {
	// ID is the internal unique identifier of the user.
	ID string `json:"id"`

	// Username is the unique handle shown in profile URLs.
	Username string `json:"username"`

	// Name is the optional display name. May be empty.
	Name string `json:"name,omitempty"`

	// ImageID is the optional identifier of the user's avatar image.
	// Empty when the user has no avatar.
	ImageID string `json:"imageId,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserImage is a user's avatar. Like note images it is addressed by an
// immutable ID and served with far-future cache headers; User.ImageID
// points at it.
type UserImage struct {
	// ID is the unique identifier of the avatar image.
	ID string `json:"id"`

	// UserID is the ID of the owning user.
	UserID string `json:"-"`

	// AltText is the optional accessibility description.
	AltText string `json:"altText,omitempty"`

	// ContentType is the MIME type of the blob (e.g. "image/jpeg").
	ContentType string `json:"-"`

	// Blob holds the binary image content, served via the user-images
	// resource route.
	Blob []byte `json:"-"`
}

// TableName returns the name of the database table
// associated with the UserImage model.
func (i UserImage) TableName() string {
	return "user_images"
}
