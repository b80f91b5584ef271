package id

import "github.com/google/uuid"

// New generates a random (version 4) UUID string. Notification identifiers
// are read by the external dispatcher, which expects RFC 4122 UUIDs.
func New() string {
	return uuid.NewString()
}
