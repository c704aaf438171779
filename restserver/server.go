// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// Config holds the optional parts of the HTTP service.  The zero
// value is usable.
type Config struct {
	// StaticDir names a directory of static assets.  GET requests
	// whose path names a file in this directory are answered with
	// that file instead of reaching the router.  Empty disables
	// static serving.
	StaticDir string

	// RequestLogger, if non-nil, receives one access log line per
	// request.
	RequestLogger *logrus.Logger

	// Logger receives error reports.  Defaults to the logrus
	// standard logger.
	Logger *logrus.Logger

	// Clock is the time source for /info and request timing.
	// Defaults to the real clock.
	Clock clock.Clock
}

func (cfg Config) withDefaults() Config {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return cfg
}

// NewRouter creates a new HTTP handler that processes all phonebook
// requests, with no surrounding middleware.  All phonebook resources
// are under the URL path root, e.g. /api/entries.  For more control
// over this setup, create a mux.Router and call PopulateRouter
// instead.
func NewRouter(pb phonebook.Phonebook, cfg Config) *mux.Router {
	r := mux.NewRouter()
	PopulateRouter(r, pb, cfg)
	r.NotFoundHandler = http.HandlerFunc(unknownEndpoint)
	return r
}

// NewHandler creates the complete HTTP service: the phonebook router
// wrapped in the standard middleware chain.  extra handlers, such as
// a metrics endpoint, may be mounted on the returned router before
// serving.
func NewHandler(pb phonebook.Phonebook, cfg Config) (*negroni.Negroni, *mux.Router) {
	cfg = cfg.withDefaults()
	r := NewRouter(pb, cfg)

	recovery := negroni.NewRecovery()
	recovery.Logger = cfg.Logger
	recovery.PrintStack = false

	n := negroni.New()
	n.Use(recovery)
	n.Use(negroni.HandlerFunc(cors))
	if cfg.RequestLogger != nil {
		n.Use(&accessLog{Logger: cfg.RequestLogger, Clock: cfg.Clock})
	}
	n.Use(&requestMetrics{Clock: cfg.Clock})
	if cfg.StaticDir != "" {
		n.Use(negroni.NewStatic(http.Dir(cfg.StaticDir)))
	}
	n.UseHandler(r)
	return n, r
}

// PopulateRouter adds phonebook routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the phonebook interface under a subpath:
//
//     r := mux.NewRouter()
//     s := r.PathPrefix("/phonebook").Subrouter()
//     PopulateRouter(s, memory.New(), restserver.Config{})
func PopulateRouter(r *mux.Router, pb phonebook.Phonebook, cfg Config) {
	api := &restAPI{Phonebook: pb, Router: r, Config: cfg.withDefaults()}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the phonebook REST API.
type restAPI struct {
	Phonebook phonebook.Phonebook
	Router    *mux.Router
	Config    Config
}

// PopulateRouter adds all phonebook URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.PopulateEntries(r)
	r.Path("/info").Name("info").HandlerFunc(api.Info)
}
