package unit

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUnitID         = errors.New("invalid unit id")
	ErrInvalidUnitNumber     = errors.New("invalid unit number")
	ErrInvalidInterval       = errors.New("invalid maintenance interval")

	ErrUnitNotFound    = errors.New("unit not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrUnitConflict    = errors.New("unit number already exists for this company")
	ErrUnitInUse       = errors.New("unit has logbook entries and cannot be deleted")
)
