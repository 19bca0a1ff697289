package repository

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a time-ordered UUIDv7 so that id order matches insertion
// order within a table.
func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// Now returns the current UTC time at microsecond precision, the finest
// resolution PostgreSQL timestamps store.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
