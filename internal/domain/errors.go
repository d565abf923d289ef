package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation kinds
	ErrMsgInvalidType  = "invalid type"
	ErrMsgInvalidValue = "invalid value"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Construction errors. Constructors return a *ValidationError wrapping one of
// the kind sentinels, so callers can use errors.Is(err, domain.ErrInvalidType).
var (
	// ErrInvalidType reports a value of the wrong shape (not a mapping, a
	// non-integer quantity, a missing item).
	ErrInvalidType = errors.New(ErrMsgInvalidType)

	// ErrInvalidValue reports a value of the right shape but out of range.
	ErrInvalidValue = errors.New(ErrMsgInvalidValue)

	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ValidationError is returned by Item, Recipe and Database constructors.
type ValidationError struct {
	Kind  error  // ErrInvalidType or ErrInvalidValue
	Field string // offending field, e.g. "inputs" or "sell_value"
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalidType(field, format string, args ...interface{}) error {
	return &ValidationError{Kind: ErrInvalidType, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func invalidValue(field, format string, args ...interface{}) error {
	return &ValidationError{Kind: ErrInvalidValue, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// InvalidType builds an ErrInvalidType validation error for packages that
// validate domain values they assemble themselves.
func InvalidType(field, format string, args ...interface{}) error {
	return invalidType(field, format, args...)
}

// InvalidValue builds an ErrInvalidValue validation error.
func InvalidValue(field, format string, args ...interface{}) error {
	return invalidValue(field, format, args...)
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
