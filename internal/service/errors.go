package service

import "errors"

// Error kinds surfaced to the request boundary. Handlers map them onto
// status codes; everything else is treated as an internal failure.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidation       = errors.New("validation failed")
)
