package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrListNotFound is returned when a list is not found
	ErrListNotFound = errors.New("list not found")
)
