package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidProperty  = errors.New("invalid property")
)

// ValidationError describes a malformed or out-of-range field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidProperty
}
