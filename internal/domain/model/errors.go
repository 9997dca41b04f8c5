package model

import (
	"errors"
	"strings"
)

var (
	// ErrValidation matches any *ValidationError.
	ErrValidation = errors.New("complete all fields correctly")

	// ErrDuplicateEmail is returned when registering an email that already
	// has a record.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrInvalidCredentials is returned when no record matches both the
	// email and the password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidTransition is returned when an event is not defined for the
	// current screen.
	ErrInvalidTransition = errors.New("invalid screen transition")
)

// ValidationError lists the registration fields that were empty or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Is lets errors.Is(err, ErrValidation) match a *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
