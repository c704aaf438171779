// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package phonebooktest

import (
	"github.com/diffeo/go-phonebook/phonebook"
)

// TestUpdate replaces an entry's fields.
func (s *Suite) TestUpdate() {
	entry := s.mustCreate(s.Phonebook, "Alice A", "12345678")

	updated, err := s.Phonebook.UpdateEntry(s.Ctx, entry.ID, phonebook.EntryInput{
		Name:   "Alice B",
		Number: "87654321",
	})
	if s.NoError(err) {
		s.Equal(phonebook.Entry{ID: entry.ID, Name: "Alice B", Number: "87654321"}, updated)
	}

	fetched, err := s.Phonebook.Entry(s.Ctx, entry.ID)
	if s.NoError(err) {
		s.Equal(updated, fetched)
	}

	// The old name is free again
	s.mustCreate(s.Phonebook, "Alice A", "12345678")
	s.requireCount(s.Phonebook, 2)
}

// TestUpdateKeepsOrder checks that updating does not move an entry.
func (s *Suite) TestUpdateKeepsOrder() {
	first := s.mustCreate(s.Phonebook, "Arto Hellas", "040-123456")
	second := s.mustCreate(s.Phonebook, "Ada Lovelace", "39-44-5323523")

	first, err := s.Phonebook.UpdateEntry(s.Ctx, first.ID, phonebook.EntryInput{
		Name:   first.Name,
		Number: "040-654321",
	})
	s.Require().NoError(err)

	entries, err := s.Phonebook.Entries(s.Ctx)
	if s.NoError(err) {
		s.Equal([]phonebook.Entry{first, second}, entries)
	}
}

// TestUpdateUnvalidated checks that, by default, updates skip the
// length checks.
func (s *Suite) TestUpdateUnvalidated() {
	entry := s.mustCreate(s.Phonebook, "Alice A", "12345678")

	updated, err := s.Phonebook.UpdateEntry(s.Ctx, entry.ID, phonebook.EntryInput{
		Name:   "Al",
		Number: "123",
	})
	if s.NoError(err) {
		s.Equal("Al", updated.Name)
		s.Equal("123", updated.Number)
	}
}

// TestUpdateValidated checks the ValidateOnUpdate option.
func (s *Suite) TestUpdateValidated() {
	pb := s.New(s.T(), phonebook.Options{ValidateOnUpdate: true})
	entry := s.mustCreate(pb, "Alice A", "12345678")

	_, err := pb.UpdateEntry(s.Ctx, entry.ID, phonebook.EntryInput{
		Name:   "Al",
		Number: "12345678",
	})
	var verr phonebook.ValidationError
	if s.ErrorAs(err, &verr) {
		s.Equal("name", verr.Field)
	}

	fetched, err := pb.Entry(s.Ctx, entry.ID)
	if s.NoError(err) {
		s.Equal(entry, fetched)
	}
}

// TestUpdateDuplicate checks that an update cannot take another
// entry's name, but can keep its own.
func (s *Suite) TestUpdateDuplicate() {
	alice := s.mustCreate(s.Phonebook, "Alice A", "12345678")
	bob := s.mustCreate(s.Phonebook, "Bob B", "87654321")

	_, err := s.Phonebook.UpdateEntry(s.Ctx, bob.ID, phonebook.EntryInput{
		Name:   alice.Name,
		Number: bob.Number,
	})
	s.ErrorIs(err, phonebook.ErrDuplicateName)

	fetched, err := s.Phonebook.Entry(s.Ctx, bob.ID)
	if s.NoError(err) {
		s.Equal(bob, fetched)
	}

	_, err = s.Phonebook.UpdateEntry(s.Ctx, alice.ID, phonebook.EntryInput{
		Name:   alice.Name,
		Number: "11112222",
	})
	s.NoError(err)
}

// TestUpdateMissing checks updates of absent and malformed IDs.
func (s *Suite) TestUpdateMissing() {
	in := phonebook.EntryInput{Name: "Alice A", Number: "12345678"}
	id := phonebook.NewID()
	_, err := s.Phonebook.UpdateEntry(s.Ctx, id, in)
	s.Equal(phonebook.ErrNoSuchEntry{ID: id}, err)

	_, err = s.Phonebook.UpdateEntry(s.Ctx, "not-an-id", in)
	s.Equal(phonebook.ErrMalformedID, err)

	s.requireCount(s.Phonebook, 0)
}
