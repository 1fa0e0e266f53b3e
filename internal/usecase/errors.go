package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidQuery          = errors.New("invalid query")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
