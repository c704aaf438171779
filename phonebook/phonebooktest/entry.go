// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package phonebooktest

import (
	"github.com/diffeo/go-phonebook/phonebook"
)

// TestEmpty checks that a new phonebook has no entries.
func (s *Suite) TestEmpty() {
	entries, err := s.Phonebook.Entries(s.Ctx)
	if s.NoError(err) {
		s.Empty(entries)
	}
	s.requireCount(s.Phonebook, 0)
}

// TestCreateRoundTrip creates an entry and reads it back.
func (s *Suite) TestCreateRoundTrip() {
	created := s.mustCreate(s.Phonebook, "Alice A", "12345678")
	s.Equal("Alice A", created.Name)
	s.Equal("12345678", created.Number)

	fetched, err := s.Phonebook.Entry(s.Ctx, created.ID)
	if s.NoError(err) {
		s.Equal(created, fetched)
	}

	entries, err := s.Phonebook.Entries(s.Ctx)
	if s.NoError(err) {
		s.Equal([]phonebook.Entry{created}, entries)
	}
}

// TestCreateInvalid checks that entries with short or missing fields
// are rejected and never stored.
func (s *Suite) TestCreateInvalid() {
	inputs := []struct {
		In    phonebook.EntryInput
		Field string
	}{
		{phonebook.EntryInput{Name: "Al", Number: "1234567"}, "name"},
		{phonebook.EntryInput{Name: "Al", Number: "12345678"}, "name"},
		{phonebook.EntryInput{Name: "Alice", Number: "1234567"}, "number"},
		{phonebook.EntryInput{Number: "12345678"}, "name"},
		{phonebook.EntryInput{Name: "Alice"}, "number"},
	}
	for _, input := range inputs {
		_, err := s.Phonebook.Create(s.Ctx, input.In)
		var verr phonebook.ValidationError
		if s.ErrorAs(err, &verr, "%+v", input.In) {
			s.Equal(input.Field, verr.Field)
		}
	}

	_, err := s.Phonebook.Create(s.Ctx, phonebook.EntryInput{})
	s.ErrorIs(err, phonebook.ErrContentMissing)

	s.requireCount(s.Phonebook, 0)
}

// TestCreateDuplicate checks that two entries cannot share a name.
func (s *Suite) TestCreateDuplicate() {
	first := s.mustCreate(s.Phonebook, "Alice A", "12345678")

	_, err := s.Phonebook.Create(s.Ctx, phonebook.EntryInput{
		Name:   "Alice A",
		Number: "87654321",
	})
	s.ErrorIs(err, phonebook.ErrDuplicateName)

	entries, err := s.Phonebook.Entries(s.Ctx)
	if s.NoError(err) {
		s.Equal([]phonebook.Entry{first}, entries)
	}

	// Uniqueness is exact-match
	s.mustCreate(s.Phonebook, "alice a", "87654321")
	s.requireCount(s.Phonebook, 2)
}

// TestEntriesOrder checks that entries are listed in creation order.
func (s *Suite) TestEntriesOrder() {
	names := []string{"Arto Hellas", "Ada Lovelace", "Dan Abramov", "Mary Poppendieck"}
	var created []phonebook.Entry
	for _, name := range names {
		created = append(created, s.mustCreate(s.Phonebook, name, "040-123456"))
	}

	entries, err := s.Phonebook.Entries(s.Ctx)
	if s.NoError(err) {
		s.Equal(created, entries)
	}
	s.requireCount(s.Phonebook, len(names))
}

// TestEntryMissing checks lookups of absent and malformed IDs.
func (s *Suite) TestEntryMissing() {
	id := phonebook.NewID()
	_, err := s.Phonebook.Entry(s.Ctx, id)
	s.Equal(phonebook.ErrNoSuchEntry{ID: id}, err)

	_, err = s.Phonebook.Entry(s.Ctx, "not-an-id")
	s.Equal(phonebook.ErrMalformedID, err)
}

// TestDeleteIdempotent checks that deleting an entry twice is fine.
func (s *Suite) TestDeleteIdempotent() {
	keep := s.mustCreate(s.Phonebook, "Ada Lovelace", "39-44-5323523")
	entry := s.mustCreate(s.Phonebook, "Alice A", "12345678")

	s.NoError(s.Phonebook.DeleteEntry(s.Ctx, entry.ID))
	s.NoError(s.Phonebook.DeleteEntry(s.Ctx, entry.ID))
	s.NoError(s.Phonebook.DeleteEntry(s.Ctx, phonebook.NewID()))

	_, err := s.Phonebook.Entry(s.Ctx, entry.ID)
	s.Equal(phonebook.ErrNoSuchEntry{ID: entry.ID}, err)

	entries, err := s.Phonebook.Entries(s.Ctx)
	if s.NoError(err) {
		s.Equal([]phonebook.Entry{keep}, entries)
	}

	s.Equal(phonebook.ErrMalformedID, s.Phonebook.DeleteEntry(s.Ctx, "not-an-id"))
}

// TestDeleteFreesName checks that a deleted entry's name can be
// reused, but its ID is not.
func (s *Suite) TestDeleteFreesName() {
	first := s.mustCreate(s.Phonebook, "Alice A", "12345678")
	s.Require().NoError(s.Phonebook.DeleteEntry(s.Ctx, first.ID))

	second := s.mustCreate(s.Phonebook, "Alice A", "12345678")
	s.NotEqual(first.ID, second.ID)
	s.requireCount(s.Phonebook, 1)
}
