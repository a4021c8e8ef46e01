package registration

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrInvalidCharacters     = errors.New("special characters are not allowed")
	ErrRequired              = errors.New("this field is required")
	ErrDuplicateRegistration = errors.New("you have already registered for this event")
	ErrEventNotOpen          = errors.New("this event is not open for registration")
)

// FieldError scopes a validation failure to a single form field.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every violation found in one submission.
// Checks are additive, not short-circuiting, so the form can surface all
// problems together.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, fe := range ve {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Is reports whether any collected violation matches target, so callers
// can use errors.Is against the sentinel errors above.
func (ve ValidationErrors) Is(target error) bool {
	for _, fe := range ve {
		if errors.Is(fe.Err, target) {
			return true
		}
	}
	return false
}
