package fuellog

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUnitNumber     = errors.New("invalid unit number")

	// ErrReferenceNotFound is wrapped with the list of names (company, unit,
	// operator) that could not be resolved, mirroring the field terminal's
	// "make sure they are registered" message.
	ErrReferenceNotFound = errors.New("referenced records not found")
)
