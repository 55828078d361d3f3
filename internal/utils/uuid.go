package utils

import "github.com/google/uuid"

// UUIDGenerator mints the opaque identifiers used for verification tokens.
// Version 7 UUIDs are time-ordered, which keeps the tokens table index
// append-mostly.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a V7 UUID string, falling back to V4 in the unlikely case
// the clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
