package apperrors

import "errors"

// Sentinel errors shared across repository, service and handler layers.
// Handlers map these to HTTP status codes with errors.Is; lower layers wrap
// them with fmt.Errorf("%w: ...") to keep detail for logs.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrInvalidToken     = errors.New("invalid token")
	ErrConflict         = errors.New("already exists")
	ErrValidation       = errors.New("invalid input")
)
