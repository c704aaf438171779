// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a Phonebook-compatible HTTP REST client
// that talks to the matching server in the "restserver" package.
//
// The server in github.com/diffeo/go-phonebook/cmd/phonebookd can
// run a compatible REST server.  Call New() with the base URL of that
// service; for instance,
//
//     pb, err := restclient.New("http://localhost:3001/")
package restclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/diffeo/go-phonebook/restdata"
)

const (
	entriesTemplate = "api/entries"
	entryTemplate   = "api/entries/{id}"
)

// errEmptyURL is returned from New() if it is not given a URL.
var errEmptyURL = errors.New("restclient: empty base URL")

// New creates a new Phonebook interface that speaks to an external
// REST server.
func New(baseURL string) (phonebook.Phonebook, error) {
	if baseURL == "" {
		return nil, errEmptyURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	// Relative templates resolve inside the base path only if it
	// ends in a slash.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &restPhonebook{
		resource: resource{URL: u, Client: http.DefaultClient},
	}, nil
}

type restPhonebook struct {
	resource
}

func (pb *restPhonebook) Create(ctx context.Context, in phonebook.EntryInput) (phonebook.Entry, error) {
	var out restdata.Entry
	err := pb.PostTo(ctx, entriesTemplate, map[string]interface{}{}, restdata.FromEntryInput(in), &out)
	if err != nil {
		return phonebook.Entry{}, err
	}
	return out.ToEntry(), nil
}

func (pb *restPhonebook) Entries(ctx context.Context) ([]phonebook.Entry, error) {
	var out []restdata.Entry
	err := pb.GetFrom(ctx, entriesTemplate, map[string]interface{}{}, &out)
	if err != nil {
		return nil, err
	}
	result := make([]phonebook.Entry, len(out))
	for i, entry := range out {
		result[i] = entry.ToEntry()
	}
	return result, nil
}

func (pb *restPhonebook) Entry(ctx context.Context, id string) (phonebook.Entry, error) {
	id, err := phonebook.ParseID(id)
	if err != nil {
		return phonebook.Entry{}, err
	}
	var out restdata.Entry
	err = pb.GetFrom(ctx, entryTemplate, map[string]interface{}{"id": id}, &out)
	if err != nil {
		// The server sends no body with a GET 404
		var httpErr ErrorHTTP
		if errors.As(err, &httpErr) && httpErr.Response.StatusCode == http.StatusNotFound {
			err = phonebook.ErrNoSuchEntry{ID: id}
		}
		return phonebook.Entry{}, err
	}
	return out.ToEntry(), nil
}

func (pb *restPhonebook) UpdateEntry(ctx context.Context, id string, in phonebook.EntryInput) (phonebook.Entry, error) {
	id, err := phonebook.ParseID(id)
	if err != nil {
		return phonebook.Entry{}, err
	}
	var out restdata.Entry
	err = pb.PutTo(ctx, entryTemplate, map[string]interface{}{"id": id}, restdata.FromEntryInput(in), &out)
	if err != nil {
		return phonebook.Entry{}, err
	}
	return out.ToEntry(), nil
}

func (pb *restPhonebook) DeleteEntry(ctx context.Context, id string) error {
	id, err := phonebook.ParseID(id)
	if err != nil {
		return err
	}
	return pb.DeleteAt(ctx, entryTemplate, map[string]interface{}{"id": id})
}

// Count is the length of the entry list; the REST API has no
// separate count resource.
func (pb *restPhonebook) Count(ctx context.Context) (int, error) {
	entries, err := pb.Entries(ctx)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
