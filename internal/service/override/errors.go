package override

import "errors"

var (
	ErrInvalidUnitID = errors.New("invalid unit id")
	ErrInvalidCode   = errors.New("invalid authorization code")

	// ErrTokenRejected covers every redemption failure (wrong code, expired,
	// already used, unit mismatch) so responses never reveal which condition
	// a guessed code tripped.
	ErrTokenRejected = errors.New("authorization code rejected")
)
