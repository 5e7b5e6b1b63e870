package services

import "errors"

// Error taxonomy shared by the account and meal services. Handlers map
// these onto HTTP statuses; anything else is an internal error.
var (
	ErrMissingField       = errors.New("missing required fields")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidDateTime    = errors.New("date_time must match format YYYY-MM-DD HH:MM:SS")
)
