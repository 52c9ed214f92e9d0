package operator

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOperatorID     = errors.New("invalid operator id")
	ErrInvalidName           = errors.New("invalid operator name")

	ErrOperatorNotFound = errors.New("operator not found")
	ErrOperatorConflict = errors.New("operator already exists for this company")
	ErrOperatorInUse    = errors.New("operator is referenced by logbook entries and cannot be deleted")
)
