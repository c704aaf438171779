// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a Phonebook interface as a REST service.
// The restclient package is a matching client.
//
// The REST API itself is described in the restdata package.
//
// HTTP Considerations
//
// JSON is the only representation.  Clients may send an Accept:
// header naming application/json, text/json, or the versioned
// application/vnd.diffeo.phonebook.v1+json type; the response comes
// back in the requested type.  Request bodies must be sent with one
// of the same types.
//
// Every response carries permissive CORS headers, and preflight
// OPTIONS requests are answered directly.
//
// Middleware
//
// NewHandler wraps the router in a negroni chain:
//
//     recovery -> CORS -> access log -> metrics -> static files -> router
//
// Requests that match neither a static file nor a route get a 404
// with a JSON body {"error": "unknown endpoint"}.
//
// The following URLs are defined:
//
//     /api/entries
//     /api/entries/{id}
//     /info
package restserver
