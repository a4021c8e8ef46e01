package registration

import (
	"errors"
	"net/mail"
	"regexp"
	"time"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/catalog"
)

// Input is a visitor's registration submission.
type Input struct {
	FullName    string
	Email       string
	CollegeName string
	Department  string
	EventID     uint
}

// Only letters, digits and spaces are allowed in the free-text fields.
var allowedChars = regexp.MustCompile(`^[a-zA-Z0-9 ]*$`)

// Validator runs every submission-time check: field constraints, email
// grammar, the registration window re-check, and the duplicate rule.
type Validator struct {
	catalog *catalog.Catalog
	store   *Store
}

func NewValidator(c *catalog.Catalog, s *Store) *Validator {
	return &Validator{catalog: c, store: s}
}

// Validate returns nil when the submission is acceptable, or a
// ValidationErrors collecting every violation. The window check runs
// against the catalog at submission time rather than trusting whatever
// the form rendered earlier; time may have advanced since page load.
func (v *Validator) Validate(input Input, now time.Time) error {
	var verrs ValidationErrors

	fields := map[string]string{
		"full_name":    input.FullName,
		"college_name": input.CollegeName,
		"department":   input.Department,
	}
	for _, field := range []string{"full_name", "college_name", "department"} {
		value := fields[field]
		if value == "" {
			verrs = append(verrs, FieldError{Field: field, Err: ErrRequired})
			continue
		}
		if !allowedChars.MatchString(value) {
			verrs = append(verrs, FieldError{Field: field, Err: ErrInvalidCharacters})
		}
	}

	if input.Email == "" {
		verrs = append(verrs, FieldError{Field: "email", Err: ErrRequired})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		verrs = append(verrs, FieldError{Field: "email", Err: ErrInvalidEmail})
	}

	event, err := v.catalog.GetEvent(input.EventID)
	switch {
	case errors.Is(err, catalog.ErrEventNotFound):
		verrs = append(verrs, FieldError{Field: "event_name", Err: ErrEventNotOpen})
	case err != nil:
		return err
	case !event.Open(now):
		verrs = append(verrs, FieldError{Field: "event_name", Err: ErrEventNotOpen})
	}

	if input.Email != "" {
		exists, err := v.store.ExistsByEmailAndEvent(input.Email, input.EventID)
		if err != nil {
			return err
		}
		if exists {
			verrs = append(verrs, FieldError{Field: "email", Err: ErrDuplicateRegistration})
		}
	}

	if len(verrs) > 0 {
		return verrs
	}
	return nil
}
