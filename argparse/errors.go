// Package argparse implements an argparse-style command-line parser on top
// of its own open-addressing hash map and growable array primitives.
// Arguments are registered into a Registry, a Matcher scans an argv token
// slice against it, and all parse problems are accumulated into a
// Diagnostics set instead of aborting the scan.
package argparse

import (
	"errors"

	"github.com/dzonerzy/go-argparse/internal/growarray"
	"github.com/dzonerzy/go-argparse/internal/keytable"
)

// Status is the coarse outcome code of an operation.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusAllocationFailure
	StatusIsEmpty
	StatusOutOfBounds
	StatusIsNull
	StatusAlreadyExists
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusAllocationFailure:
		return "allocation_failure"
	case StatusIsEmpty:
		return "is_empty"
	case StatusOutOfBounds:
		return "out_of_bounds"
	case StatusIsNull:
		return "is_null"
	case StatusAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// ErrorType represents error categories for registration and lookup.
type ErrorType string

const (
	ErrorTypeMissingName     ErrorType = "missing_name"
	ErrorTypeBadShortName    ErrorType = "bad_short_name"
	ErrorTypeBadLongName     ErrorType = "bad_long_name"
	ErrorTypeMixedNames      ErrorType = "mixed_positional_optional"
	ErrorTypeAlreadyExists   ErrorType = "already_exists"
	ErrorTypeEmptyKey        ErrorType = "empty_key"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeRegistryEmpty   ErrorType = "registry_empty"
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	ErrorTypeParseFailed     ErrorType = "parse_failed"
)

// ArgError represents a registration, lookup, or parse failure.
type ArgError struct {
	Type    ErrorType
	Message string
	Key     string
}

func (e *ArgError) Error() string {
	return e.Message
}

// NewArgError creates an ArgError with the given type and message.
func NewArgError(typ ErrorType, message string) *ArgError {
	return &ArgError{
		Type:    typ,
		Message: message,
	}
}

// WithKey records the argument key the error refers to.
func (e *ArgError) WithKey(key string) *ArgError {
	e.Key = key
	return e
}

// StatusOf maps an error to its Status code. Nil maps to StatusSuccess.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}

	var argErr *ArgError
	if errors.As(err, &argErr) {
		switch argErr.Type {
		case ErrorTypeAlreadyExists:
			return StatusAlreadyExists
		case ErrorTypeRegistryEmpty:
			return StatusIsEmpty
		case ErrorTypeMissingName, ErrorTypeBadShortName, ErrorTypeBadLongName,
			ErrorTypeMixedNames, ErrorTypeEmptyKey, ErrorTypeNotFound,
			ErrorTypeInvalidArgument, ErrorTypeParseFailed:
			return StatusFailure
		}
		return StatusFailure
	}

	switch {
	case errors.Is(err, keytable.ErrExists):
		return StatusAlreadyExists
	case errors.Is(err, keytable.ErrEmpty), errors.Is(err, growarray.ErrEmpty):
		return StatusIsEmpty
	case errors.Is(err, growarray.ErrOutOfBounds):
		return StatusOutOfBounds
	case errors.Is(err, growarray.ErrNilInput):
		return StatusIsNull
	}

	return StatusFailure
}
