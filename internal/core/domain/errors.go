package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrValidation   = errors.New("validation failed")

	ErrEmptyTitle    = fmt.Errorf("%w: title is required", ErrValidation)
	ErrInvalidStatus = fmt.Errorf("%w: status must be one of pending, in-progress, completed", ErrValidation)
)
