package port

import "errors"

// Repository implementations wrap one of these so callers can classify failures
// with errors.Is without knowing the storage backend.
var (
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failure")
	ErrDuplicated  = errors.New("duplicated")
	ErrDatabase    = errors.New("database error")
)
