// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a phonebook
// interface based on command-line flags.
package backend

import (
	"errors"
	"strings"

	"github.com/diffeo/go-phonebook/memory"
	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/diffeo/go-phonebook/postgres"
	"github.com/diffeo/go-phonebook/restclient"
)

// Backend describes user-visible parameters to store phonebook data.
// This implements the flag.Value interface, and so a typical use is
//
//     func main() {
//         backend := backend.Backend{Implementation: "memory"}
//         flag.Var(&backend, "backend", "impl:address of phonebook storage")
//         flag.Parse()
//         phonebook, err := backend.Phonebook()
//     }
type Backend struct {
	// Implementation holds the name of the implementation; for
	// instance, "memory".
	Implementation string

	// Address holds some backend-specific address, such as a
	// database connect string.
	Address string

	// Options are passed through to the created backend.  They
	// are not part of the string form.
	Options phonebook.Options
}

// Phonebook creates a new phonebook interface.  This generally should
// be only called once.  If the backend has in-process state, such as
// a database connection pool or an in-memory store, calling this
// multiple times will create multiple copies of that state.  In
// particular, if b.Implementation is "memory", multiple calls to this
// will create multiple independent phonebooks.
//
// The "http" and "https" implementations talk to a remote phonebook
// server, so a base URL like "http://localhost:3001" is itself a
// valid backend string.
func (b *Backend) Phonebook() (phonebook.Phonebook, error) {
	switch b.Implementation {
	case "memory":
		return memory.NewWithOptions(b.Options), nil
	case "postgres":
		return postgres.NewWithOptions(b.Address, b.Options)
	case "http", "https":
		return restclient.New(b.Implementation + "://" + strings.TrimPrefix(b.Address, "//"))
	default:
		return nil, errors.New("unknown phonebook backend " + b.Implementation)
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  Set checks to see if the provided
// implementation is any of the known implementations, and returns an
// appropriate error if not.
//
// This is part of the flag.Value interface.  Note that neither this
// nor Phonebook() validates the address part of the string before
// trying to connect.
func (b *Backend) Set(param string) error {
	parts := strings.SplitN(param, ":", 2)
	switch parts[0] {
	case "memory", "postgres", "http", "https":
	case "":
		return errors.New("must specify a backend type")
	default:
		return errors.New("unknown phonebook backend " + parts[0])
	}
	b.Implementation = parts[0]
	b.Address = ""
	if len(parts) == 2 {
		b.Address = parts[1]
	}
	return nil
}

// FromURL configures a backend from a database URL, as it might
// appear in a DATABASE_URL environment variable.  An empty string
// selects the in-memory backend.
func (b *Backend) FromURL(url string) error {
	switch {
	case url == "":
		b.Implementation = "memory"
		b.Address = ""
		return nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		b.Implementation = "postgres"
		b.Address = url
		return nil
	default:
		return b.Set(url)
	}
}
