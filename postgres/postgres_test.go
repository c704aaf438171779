// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"os"
	"testing"

	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/diffeo/go-phonebook/phonebook/phonebooktest"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TestPhonebook runs the generic phonebook tests against a real
// database.  Set PHONEBOOK_TEST_POSTGRES to a connection string to
// enable it, or to "-" to take every parameter from the libpq
// environment variables described in
// http://www.postgresql.org/docs/current/static/libpq-envars.html.
// The entries table is truncated before every test.
func TestPhonebook(t *testing.T) {
	connectionString, present := os.LookupEnv("PHONEBOOK_TEST_POSTGRES")
	if !present {
		t.Skip("PHONEBOOK_TEST_POSTGRES not set")
	}
	if connectionString == "-" {
		connectionString = ""
	}
	suite.Run(t, &phonebooktest.Suite{
		New: func(t *testing.T, opts phonebook.Options) phonebook.Phonebook {
			pb, err := NewWithOptions(connectionString, opts)
			require.NoError(t, err)
			db := pb.(*pgPhonebook).db
			t.Cleanup(func() { db.Close() })
			_, err = db.Exec("TRUNCATE " + entryTable)
			require.NoError(t, err)
			return pb
		},
	})
}
