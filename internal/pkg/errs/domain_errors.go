package errs

import "errors"

// Category marks shared by every layer. Package sentinels are marked with one of
// these so the HTTP layer can map them without importing every package.
var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrTransport   = errors.New("transport error")
	ErrPersistence = errors.New("persistence error")
)
