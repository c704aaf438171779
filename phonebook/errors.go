// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package phonebook

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned from Create() and UpdateEntry() if
// another entry already has the requested name.
var ErrDuplicateName = errors.New("name must be unique")

// ErrContentMissing is returned when a create or update request has
// no content at all.
var ErrContentMissing = errors.New("content missing")

// ErrMalformedID is returned from functions that take an entry ID if
// the ID is not in the format the store assigns.
var ErrMalformedID = errors.New("malformatted id")

// ErrNoSuchEntry is returned by Phonebook.Entry() and similar
// functions that want to look up an entry, but cannot find it.
type ErrNoSuchEntry struct {
	ID string
}

func (err ErrNoSuchEntry) Error() string {
	return fmt.Sprintf("No such entry %v", err.ID)
}

// ValidationError is returned when an entry field is missing or does
// not satisfy its constraints.
type ValidationError struct {
	// Field names the offending field, "name" or "number".
	Field string

	// Message is a human-readable description of the problem.
	Message string
}

func (err ValidationError) Error() string {
	return err.Message
}
