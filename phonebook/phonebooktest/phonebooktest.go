// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package phonebooktest provides generic functional tests for the
// Phonebook interface.  A typical backend test module needs to wrap
// Suite to create its backend:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/diffeo/go-phonebook/phonebook"
//             "github.com/diffeo/go-phonebook/phonebook/phonebooktest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     // TestPhonebook runs the Phonebook generic tests.
//     func TestPhonebook(t *testing.T) {
//             suite.Run(t, &phonebooktest.Suite{
//                     New: func(t *testing.T, opts phonebook.Options) phonebook.Phonebook {
//                             return NewWithOptions(opts)
//                     },
//             })
//     }
package phonebooktest

import (
	"context"
	"testing"

	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic Phonebook backend test suite.
type Suite struct {
	suite.Suite

	// New creates an empty phonebook with the given options.  It
	// is called before every test.  If the backend holds
	// resources it should register their release with t.Cleanup.
	New func(t *testing.T, opts phonebook.Options) phonebook.Phonebook

	// Phonebook is the backend under test, created with default
	// options by SetupTest.
	Phonebook phonebook.Phonebook

	// Ctx is the context passed to every backend call.
	Ctx context.Context
}

// SetupTest creates a fresh, empty backend for each test.
func (s *Suite) SetupTest() {
	s.Ctx = context.Background()
	s.Phonebook = s.New(s.T(), phonebook.Options{})
}

// mustCreate creates an entry or fails the test immediately.
func (s *Suite) mustCreate(pb phonebook.Phonebook, name, number string) phonebook.Entry {
	entry, err := pb.Create(s.Ctx, phonebook.EntryInput{Name: name, Number: number})
	s.Require().NoError(err)
	s.Require().NotEmpty(entry.ID)
	return entry
}

// requireCount checks the number of entries in pb.
func (s *Suite) requireCount(pb phonebook.Phonebook, expected int) {
	count, err := pb.Count(s.Ctx)
	s.Require().NoError(err)
	s.Equal(expected, count)

	entries, err := pb.Entries(s.Ctx)
	s.Require().NoError(err)
	s.Len(entries, expected)
}
