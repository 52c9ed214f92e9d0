package compliance

import "errors"

var ErrInvalidUnitID = errors.New("invalid unit id")
