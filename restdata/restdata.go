// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  Generally JSON encodings of
// these are passed across the wire as plain application/json.
//
// API Usage
//
// The phonebook resource lives under /api/entries:
//
//     GET    /api/entries          list every Entry, as a JSON array
//     POST   /api/entries          create an Entry from an EntryInput
//     GET    /api/entries/{id}     retrieve one Entry
//     PUT    /api/entries/{id}     replace an Entry from an EntryInput
//     DELETE /api/entries/{id}     delete an Entry
//
// Entry identifiers are opaque strings assigned by the server.  The
// server's storage key is never exposed under any other name.
//
// A successful POST returns 200 OK with the created Entry, not 201;
// existing clients depend on this.  DELETE always returns 204 No
// Content, whether or not the entry existed.
//
// Errors
//
// Most errors are returned as encodings of the ErrorResponse type,
// whose "error" field is a human-readable message.  This can
// round-trip all of the phonebook package's errors but may return
// most other errors as plain strings that are not the same objects as
// other standard errors.  A GET of a missing entry returns 404 Not
// Found with no body at all.
//
// If Go server code panics, this should be captured and returned as
// an ErrorResponse with kind "panic".
package restdata

import (
	"github.com/diffeo/go-phonebook/phonebook"
)

// JSONMediaType is the MIME type for the JSON representation of this
// content.
const JSONMediaType = "application/json"

// V1JSONMediaType is a more specific MIME type for version 1 of the
// JSON representation.  It is accepted anywhere JSONMediaType is.
const V1JSONMediaType = "application/vnd.diffeo.phonebook.v1+json"

// Entry is the representation of a single phonebook entry.
type Entry struct {
	// ID is the server-assigned identifier of the entry.
	ID string `json:"id"`

	// Name is the contact's name.
	Name string `json:"name"`

	// Number is the contact's phone number.
	Number string `json:"number"`
}

// EntryInput is the body of a request to create or replace an entry.
type EntryInput struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// FromEntry fills in the representation of a phonebook entry.
func FromEntry(entry phonebook.Entry) Entry {
	return Entry{ID: entry.ID, Name: entry.Name, Number: entry.Number}
}

// ToEntry converts the representation back to a phonebook entry.
func (e Entry) ToEntry() phonebook.Entry {
	return phonebook.Entry{ID: e.ID, Name: e.Name, Number: e.Number}
}

// FromEntryInput fills in the representation of a request body.
func FromEntryInput(in phonebook.EntryInput) EntryInput {
	return EntryInput{Name: in.Name, Number: in.Number}
}

// ToEntryInput converts a request body to a phonebook entry input.
func (e EntryInput) ToEntryInput() phonebook.EntryInput {
	return phonebook.EntryInput{Name: e.Name, Number: e.Number}
}

// ErrorResponse can be a response to any method, generally accompanied
// by a failing HTTP status code.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`

	// Kind is a short machine-readable description of the
	// failure.  This may be the name or type of a phonebook API
	// error, the string "panic", or empty for some other kind of
	// error.
	Kind string `json:"kind,omitempty"`

	// Value is an extra parameter to the error if applicable,
	// such as the field that failed validation.
	Value string `json:"value,omitempty"`

	// Stack holds a formatted backtrace, if the method failed
	// due to a panic.
	Stack string `json:"stack,omitempty"`
}
