package accounts

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
