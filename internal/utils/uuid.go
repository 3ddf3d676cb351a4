package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for sync runs.
type UUIDGenerator struct{}

// Generate returns a UUIDv7, falling back to a random UUIDv4 if the clock
// source fails.
func (UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
