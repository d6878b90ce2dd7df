package todo

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed structured input, e.g. an unparseable
// reorder payload or a non-numeric cost string.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports a missing or unacceptable required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvalidInput reports whether err is (or wraps) ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
