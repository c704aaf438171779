// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

const (
	// SQL table names:
	entryTable = "entries"

	// SQL column names:
	entrySeq    = entryTable + ".seq"
	entryID     = entryTable + ".id"
	entryName   = entryTable + ".name"
	entryNumber = entryTable + ".number"

	// WHERE clause fragments:
	isEntry = entryID + "=$1"

	// PostgreSQL error codes, from Appendix A of the manual:
	sqlstateUniqueViolation      = "23505"
	sqlstateSerializationFailure = "40001"
)

// entryColumns lists the columns that make up a phonebook.Entry,
// in the order scanEntry() expects them.
var entryColumns = []string{entryID, entryName, entryNumber}
