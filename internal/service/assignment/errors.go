package assignment

import "errors"

var (
	ErrInvalidUnitID     = errors.New("invalid unit id")
	ErrInvalidOperatorID = errors.New("invalid operator id")

	// ErrOperatorAlreadyAssigned is wrapped with the number of the unit the
	// operator currently drives, so Conflict responses can name it.
	ErrOperatorAlreadyAssigned = errors.New("operator is already assigned to another unit")
)
