// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package phonebook

import (
	"fmt"
	"unicode/utf8"

	"github.com/satori/go.uuid"
)

const (
	// MinNameLength is the shortest allowed entry name.
	MinNameLength = 3

	// MinNumberLength is the shortest allowed phone number.
	MinNumberLength = 8
)

// Validate checks an entry input against the creation-time
// constraints.  Lengths are counted in characters, not bytes.  This
// does not check name uniqueness, which requires the store.
func Validate(in EntryInput) error {
	if in.Name == "" && in.Number == "" {
		return ErrContentMissing
	}
	if err := checkField("name", in.Name, MinNameLength); err != nil {
		return err
	}
	return checkField("number", in.Number, MinNumberLength)
}

func checkField(field, value string, min int) error {
	if value == "" {
		return ValidationError{
			Field:   field,
			Message: field + " missing",
		}
	}
	if utf8.RuneCountInString(value) < min {
		return ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %d characters long", field, min),
		}
	}
	return nil
}

// NewID generates a fresh entry ID.
func NewID() string {
	return uuid.NewV4().String()
}

// ParseID checks that id is in the format NewID() produces and returns
// its canonical form.  Returns ErrMalformedID if not.
func ParseID(id string) (string, error) {
	u, err := uuid.FromString(id)
	if err != nil {
		return "", ErrMalformedID
	}
	return u.String(), nil
}

// ValidateUpdate checks an entry input for UpdateEntry().  The full
// Validate() checks only run if opts.ValidateOnUpdate is set; an
// entirely empty input is always rejected.
func ValidateUpdate(opts Options, in EntryInput) error {
	if opts.ValidateOnUpdate {
		return Validate(in)
	}
	if in == (EntryInput{}) {
		return ErrContentMissing
	}
	return nil
}
