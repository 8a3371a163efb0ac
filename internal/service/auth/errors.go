package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrMissingField       = errors.New("required field is missing")
	ErrNotFound           = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
