// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"context"
	"net/http"

	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/gorilla/mux"
)

// urlContext holds all of the information and objects that can be
// extracted from URL parameters, plus the request's own context for
// passing to the backend.
type urlContext struct {
	// Ctx is the request context.  It is canceled if the client
	// goes away.
	Ctx context.Context

	// ID is the canonical form of the entry ID in the URL, if
	// there is one.
	ID string
}

func (api *restAPI) Context(req *http.Request) (ctx *urlContext, err error) {
	ctx = &urlContext{Ctx: req.Context()}
	vars := mux.Vars(req)

	if id, present := vars["id"]; present {
		ctx.ID, err = phonebook.ParseID(id)
	}

	return
}
