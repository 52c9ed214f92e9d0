package maintenance

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUnitID         = errors.New("invalid unit id")
	ErrInvalidServiceKm      = errors.New("invalid service distance")
)
