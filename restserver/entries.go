// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-phonebook/restdata"
	"github.com/gorilla/mux"
)

// EntryList gets a list of all entries in the phonebook.
func (api *restAPI) EntryList(ctx *urlContext) (interface{}, error) {
	entries, err := api.Phonebook.Entries(ctx.Ctx)
	if err != nil {
		return nil, err
	}
	result := make([]restdata.Entry, len(entries))
	for i, entry := range entries {
		result[i] = restdata.FromEntry(entry)
	}
	return result, nil
}

// EntryPost creates a new entry.
func (api *restAPI) EntryPost(ctx *urlContext, in restdata.EntryInput) (interface{}, error) {
	entry, err := api.Phonebook.Create(ctx.Ctx, in.ToEntryInput())
	if err != nil {
		return nil, err
	}
	return restdata.FromEntry(entry), nil
}

// EntryGet retrieves a single entry.
func (api *restAPI) EntryGet(ctx *urlContext) (interface{}, error) {
	entry, err := api.Phonebook.Entry(ctx.Ctx, ctx.ID)
	if err != nil {
		return nil, err
	}
	return restdata.FromEntry(entry), nil
}

// EntryPut replaces the name and number of an entry.
func (api *restAPI) EntryPut(ctx *urlContext, in restdata.EntryInput) (interface{}, error) {
	entry, err := api.Phonebook.UpdateEntry(ctx.Ctx, ctx.ID, in.ToEntryInput())
	if err != nil {
		return nil, err
	}
	return restdata.FromEntry(entry), nil
}

// EntryDelete deletes an entry, if it exists.
func (api *restAPI) EntryDelete(ctx *urlContext) (interface{}, error) {
	return nil, api.Phonebook.DeleteEntry(ctx.Ctx, ctx.ID)
}

// PopulateEntries adds entry-specific routes to a router.  r should
// be rooted at the root of the phonebook URL tree, e.g. "/".
func (api *restAPI) PopulateEntries(r *mux.Router) {
	r.Path("/api/entries").Name("entries").Handler(&resourceHandler{
		Context: api.Context,
		Logger:  api.Config.Logger,
		Get:     api.EntryList,
		Post:    api.EntryPost,
	})
	r.Path("/api/entries/{id}").Name("entry").Handler(&resourceHandler{
		Context: api.Context,
		Logger:  api.Config.Logger,
		Get:     api.EntryGet,
		Put:     api.EntryPut,
		Delete:  api.EntryDelete,
	})
}
