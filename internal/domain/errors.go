package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrNotRegistered     = errors.New("not registered for this event")
	ErrAlreadyCompleted  = errors.New("quiz already completed for this event")
	ErrTemplateNotFound  = errors.New("no quiz template for this event")
	ErrValidation        = errors.New("validation failed")
)
