// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package phonebook defines an abstract API to a phonebook: a
// collection of contact entries, each with a name and a phone number.
//
// Applications will generally get an implementation of Phonebook from
// one of the backend packages (memory, postgres, restclient), usually
// by way of the backend package, and pass it around as the interface.
//
// Entries are plain values.  An Entry returned from one call is a
// snapshot; changing it does not change the stored record, and a
// later update through the Phonebook is not reflected in it.
package phonebook

import (
	"context"
)

// Phonebook is the principal interface to the phonebook system.
// Implementations of this interface provide a specific database
// backend, RPC system, or other way to store entries.
//
// Every implementation enforces the same constraints: names are at
// least MinNameLength characters, numbers at least MinNumberLength
// characters, and no two entries share a name.  All methods are safe
// to call from multiple goroutines.
type Phonebook interface {
	// Create validates and stores a new entry.  On success the
	// returned Entry carries a newly assigned ID.  Returns a
	// ValidationError if the input is too short or missing
	// fields, or ErrDuplicateName if an entry with the same
	// name already exists.  Nothing is stored on failure.
	Create(ctx context.Context, in EntryInput) (Entry, error)

	// Entries returns every stored entry, in the order they were
	// created.  This may be an empty slice.
	Entries(ctx context.Context) ([]Entry, error)

	// Entry retrieves a single entry by its ID.  Returns
	// ErrMalformedID if id could not possibly name an entry, or
	// ErrNoSuchEntry if it is well-formed but absent.
	Entry(ctx context.Context, id string) (Entry, error)

	// UpdateEntry replaces the name and number of an existing
	// entry and returns the updated record.  Length validation
	// only runs if the backend was created with
	// Options.ValidateOnUpdate; the name uniqueness constraint
	// always applies.  Returns ErrMalformedID or ErrNoSuchEntry
	// as Entry() does.
	UpdateEntry(ctx context.Context, id string, in EntryInput) (Entry, error)

	// DeleteEntry removes an entry.  Deleting an entry that does
	// not exist is not an error.  Returns ErrMalformedID if id
	// is not well-formed.
	DeleteEntry(ctx context.Context, id string) error

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)
}

// Entry is a single stored contact record.
type Entry struct {
	// ID is the identifier assigned by the store on creation.  It
	// never changes and is never reused.
	ID string

	// Name is the contact's name.  It is unique across the
	// phonebook.
	Name string

	// Number is the contact's phone number.  Its format is not
	// checked beyond its length.
	Number string
}

// EntryInput is the client-provided part of an entry, used to create
// or replace one.
type EntryInput struct {
	Name   string
	Number string
}

// Options holds behavior switches shared by all backends.
type Options struct {
	// ValidateOnUpdate runs the creation-time length checks on
	// UpdateEntry as well.  Historically updates were not
	// validated, so this defaults to false.
	ValidateOnUpdate bool
}
