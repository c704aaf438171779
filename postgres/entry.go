// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"context"
	"database/sql"

	"github.com/diffeo/go-phonebook/phonebook"
)

// scanEntry reads a row produced by a query for entryColumns.
func scanEntry(row interface{ Scan(...interface{}) error }) (entry phonebook.Entry, err error) {
	err = row.Scan(&entry.ID, &entry.Name, &entry.Number)
	return
}

// mapStoreError translates database errors into phonebook errors
// where a specific one applies.
func mapStoreError(err error) error {
	if isSQLState(err, sqlstateUniqueViolation) {
		return phonebook.ErrDuplicateName
	}
	return err
}

func (pb *pgPhonebook) Create(ctx context.Context, in phonebook.EntryInput) (phonebook.Entry, error) {
	if err := phonebook.Validate(in); err != nil {
		return phonebook.Entry{}, err
	}
	entry := phonebook.Entry{
		ID:     phonebook.NewID(),
		Name:   in.Name,
		Number: in.Number,
	}
	params := queryParams{}
	query := "INSERT INTO " + entryTable + "(id, name, number) VALUES (" +
		params.Param(entry.ID) + ", " +
		params.Param(entry.Name) + ", " +
		params.Param(entry.Number) + ")"
	err := execInTx(ctx, pb.db, query, params)
	if err != nil {
		return phonebook.Entry{}, mapStoreError(err)
	}
	return entry, nil
}

func (pb *pgPhonebook) Entries(ctx context.Context) ([]phonebook.Entry, error) {
	result := []phonebook.Entry{}
	query := buildSelect(entryColumns, []string{entryTable}, nil) +
		" ORDER BY " + entrySeq
	err := queryAndScan(ctx, pb.db, query, queryParams{}, func(rows *sql.Rows) error {
		entry, err := scanEntry(rows)
		if err == nil {
			result = append(result, entry)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (pb *pgPhonebook) Entry(ctx context.Context, id string) (entry phonebook.Entry, err error) {
	if id, err = phonebook.ParseID(id); err != nil {
		return
	}
	query := buildSelect(entryColumns, []string{entryTable}, []string{isEntry})
	err = withTx(ctx, pb.db, true, func(tx *sql.Tx) error {
		var err error
		entry, err = scanEntry(tx.QueryRowContext(ctx, query, id))
		if err == sql.ErrNoRows {
			return phonebook.ErrNoSuchEntry{ID: id}
		}
		return err
	})
	return
}

func (pb *pgPhonebook) UpdateEntry(ctx context.Context, id string, in phonebook.EntryInput) (entry phonebook.Entry, err error) {
	if id, err = phonebook.ParseID(id); err != nil {
		return
	}
	if err = phonebook.ValidateUpdate(pb.opts, in); err != nil {
		return
	}
	params := queryParams{}
	query := buildUpdate(entryTable, []string{
		"name=" + params.Param(in.Name),
		"number=" + params.Param(in.Number),
	}, []string{
		entryID + "=" + params.Param(id),
	}) + " RETURNING id, name, number"
	err = withTx(ctx, pb.db, false, func(tx *sql.Tx) error {
		var err error
		entry, err = scanEntry(tx.QueryRowContext(ctx, query, params...))
		if err == sql.ErrNoRows {
			return phonebook.ErrNoSuchEntry{ID: id}
		}
		return err
	})
	err = mapStoreError(err)
	return
}

func (pb *pgPhonebook) DeleteEntry(ctx context.Context, id string) (err error) {
	if id, err = phonebook.ParseID(id); err != nil {
		return
	}
	params := queryParams{}
	query := "DELETE FROM " + entryTable + " WHERE " + entryID + "=" + params.Param(id)
	return execInTx(ctx, pb.db, query, params)
}

func (pb *pgPhonebook) Count(ctx context.Context) (count int, err error) {
	query := buildSelect([]string{"COUNT(*)"}, []string{entryTable}, nil)
	err = withTx(ctx, pb.db, true, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query).Scan(&count)
	})
	return
}
