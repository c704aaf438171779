// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	"github.com/rubenv/sql-migrate"
)

// This file maintains the database migration code.  See
// https://github.com/rubenv/sql-migrate for details of what goes in
// here.  This runs "outside" the normal phonebook flow, either at
// initial startup or from an external tool.

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1-entries",
			Up: []string{
				`CREATE TABLE entries(
					seq BIGSERIAL NOT NULL,
					id UUID PRIMARY KEY,
					name TEXT NOT NULL,
					number TEXT NOT NULL,
					CONSTRAINT entries_name_unique UNIQUE (name)
				)`,
				`CREATE INDEX entries_seq ON entries(seq)`,
			},
			Down: []string{
				`DROP TABLE entries`,
			},
		},
	},
}

// Upgrade upgrades a database to the latest database schema version.
func Upgrade(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Up)
	return err
}

// Drop clears a database by running all of the migrations in reverse,
// ultimately resulting in dropping all of the tables.
func Drop(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Down)
	return err
}
