// Package id generates record identifiers.
package id

import "github.com/google/uuid"

// New returns a random (version 4) UUID string.
// It panics only if the system's random source fails.
func New() string {
	return uuid.NewString()
}
