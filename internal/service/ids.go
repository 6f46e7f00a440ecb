package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidID indicates the string is not a valid UUID
var ErrInvalidID = errors.New("invalid ID format")

// ValidateID checks that id is a UUID of any version. Rows get their IDs
// from Postgres defaults, so the version is not constrained.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return nil
}
