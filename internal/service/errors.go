package service

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors separating caller mistakes from storage failures. Handlers
// map these onto HTTP statuses; anything else is an internal error.
var (
	// ErrValidation marks a request missing or malforming a required field.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks an event creation whose time window overlaps an
	// existing event of the same user.
	ErrConflict = errors.New("time window conflict")

	// ErrNotFound marks an operation on a record that does not exist or
	// belongs to another user.
	ErrNotFound = errors.New("record not found")
)

// notFoundOr converts a gorm record miss into the service-level sentinel and
// passes everything else through.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
