package apperrors

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrNoActiveSession     = errors.New("no active session")
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrTaskNameRequired    = errors.New("task name is required")
)
