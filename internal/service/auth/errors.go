package auth

import "errors"

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidUserType    = errors.New("invalid user type")

	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("incorrect password")
	ErrUserConflict    = errors.New("username already taken")
)
