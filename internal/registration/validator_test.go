package registration

import (
	"errors"
	"testing"

	"github.com/aashiiiaggarwal/event-registration-fossee/internal/catalog"
	"github.com/aashiiiaggarwal/event-registration-fossee/internal/models"
)

func newValidator(t *testing.T) (*Validator, *catalog.Catalog, *Store) {
	t.Helper()
	db := newTestDB(t)
	c := catalog.New(db)
	store := NewStore(db)
	return NewValidator(c, store), c, store
}

func validInput(eventID uint) Input {
	return Input{
		FullName:    "Jane Roe",
		Email:       "jane@x.com",
		CollegeName: "MIT",
		Department:  "CS",
		EventID:     eventID,
	}
}

func fieldsWith(err error, target error) []string {
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	var fields []string
	for _, fe := range verrs {
		if errors.Is(fe.Err, target) {
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

func TestValidate_OK(t *testing.T) {
	v, c, _ := newValidator(t)
	eventID := seedEvent(t, c, "AI Day", day(20))

	if err := v.Validate(validInput(eventID), day(5)); err != nil {
		t.Fatalf("expected valid input to pass, got %v", err)
	}

	// Digits and spaces are allowed in the text fields.
	input := validInput(eventID)
	input.FullName = "John Doe 2"
	if err := v.Validate(input, day(5)); err != nil {
		t.Errorf("expected 'John Doe 2' to pass, got %v", err)
	}
}

func TestValidate_InvalidCharacters(t *testing.T) {
	v, c, _ := newValidator(t)
	eventID := seedEvent(t, c, "AI Day", day(20))

	input := validInput(eventID)
	input.FullName = "John_Doe!"
	err := v.Validate(input, day(5))
	if err == nil {
		t.Fatal("expected validation failure")
	}
	fields := fieldsWith(err, ErrInvalidCharacters)
	if len(fields) != 1 || fields[0] != "full_name" {
		t.Errorf("expected ErrInvalidCharacters on full_name, got %v", err)
	}
}

func TestValidate_InvalidEmail(t *testing.T) {
	v, c, _ := newValidator(t)
	eventID := seedEvent(t, c, "AI Day", day(20))

	input := validInput(eventID)
	input.Email = "not-an-address"
	err := v.Validate(input, day(5))
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestValidate_Duplicate(t *testing.T) {
	v, c, store := newValidator(t)
	aiDay := seedEvent(t, c, "AI Day", day(20))
	goDay := seedEvent(t, c, "Go Day", day(21))

	if _, err := store.Insert(models.Registration{
		EventID: aiDay, Email: "a@x.com",
		FullName: "Alice A", CollegeName: "MIT", Department: "CS",
	}, day(4)); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	input := validInput(aiDay)
	input.Email = "a@x.com"
	err := v.Validate(input, day(5))
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Errorf("expected ErrDuplicateRegistration, got %v", err)
	}

	// Same email, different event passes.
	input.EventID = goDay
	if err := v.Validate(input, day(5)); err != nil {
		t.Errorf("expected same email on another event to pass, got %v", err)
	}
}

func TestValidate_EventNotOpen(t *testing.T) {
	v, c, _ := newValidator(t)
	eventID := seedEvent(t, c, "AI Day", day(20))

	// Window is day 1..10; day 12 is past it. The check runs against the
	// catalog at submission time, however the form was rendered.
	err := v.Validate(validInput(eventID), day(12))
	if !errors.Is(err, ErrEventNotOpen) {
		t.Errorf("expected ErrEventNotOpen after window, got %v", err)
	}

	// Unknown event id is reported the same way.
	err = v.Validate(validInput(eventID+100), day(5))
	if !errors.Is(err, ErrEventNotOpen) {
		t.Errorf("expected ErrEventNotOpen for unknown event, got %v", err)
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	v, c, _ := newValidator(t)
	eventID := seedEvent(t, c, "AI Day", day(20))

	input := Input{
		FullName:    "Jane_Roe!",
		Email:       "broken",
		CollegeName: "M.I.T.",
		Department:  "",
		EventID:     eventID,
	}
	err := v.Validate(input, day(5))
	if err == nil {
		t.Fatal("expected validation failure")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	// Bad name, bad college, missing department, bad email: all reported
	// together, not just the first.
	if len(verrs) != 4 {
		t.Errorf("expected 4 violations, got %d: %v", len(verrs), verrs)
	}
	if !errors.Is(err, ErrInvalidEmail) || !errors.Is(err, ErrInvalidCharacters) || !errors.Is(err, ErrRequired) {
		t.Errorf("missing expected violations in %v", verrs)
	}
}
