// Package repositories defines the storage interfaces the services depend on
// and provides two interchangeable backends: a process-memory store and a
// GORM store (SQLite or PostgreSQL).
package repositories

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a looked-up record does not exist. Services
// translate it into the domain error for the resource at hand.
var ErrNotFound = errors.New("record not found")

// newID returns a UUIDv7 so that identifiers sort lexicographically in
// creation order; listings rely on that for chronological ordering.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
