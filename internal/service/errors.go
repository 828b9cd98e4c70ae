package service

import (
	"errors"
	"fmt"
)

// ErrNoCurrentUser is returned when an operation needs a signed-in user
// and the local profile is missing. Callers treat it as terminal for the
// attempted operation; nothing retries.
var ErrNoCurrentUser = errors.New("no current user (run `happychild login` first)")

// ValidationError marks input rejected before any store call was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
