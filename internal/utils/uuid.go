package utils

import "github.com/google/uuid"

// UUIDGenerator mints the string identifiers used across the application:
// note, image, session, and toast IDs all come from here. IDs are UUIDv7
// so fresh rows sort after older ones in index order; when the monotonic
// source fails the generator degrades to a random v4.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh identifier.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}

	return uuid.NewString()
}
