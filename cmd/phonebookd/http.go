// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/diffeo/go-phonebook/restserver"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// shutdownTimeout bounds how long in-flight requests get to finish
// after a shutdown signal.
const shutdownTimeout = 10 * time.Second

// HTTP serves the phonebook REST API.
type HTTP struct {
	Phonebook phonebook.Phonebook
	Addr      string
	Port      string
	Config    restserver.Config
}

// Handler builds the complete HTTP handler, including the Prometheus
// metrics endpoint.
func (h *HTTP) Handler() http.Handler {
	n, r := restserver.NewHandler(h.Phonebook, h.Config)
	r.Handle("/metrics", promhttp.Handler())
	return n
}

// Serve runs an HTTP server on the configured address until ctx is
// canceled, then shuts it down cleanly.
func (h *HTTP) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:    h.Addr,
		Handler: h.Handler(),
	}

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()
	logrus.Infof("Server running on port %v", h.Port)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := server.Shutdown(shutdownCtx)
	if serveErr := <-errs; !errors.Is(serveErr, http.ErrServerClosed) && err == nil {
		err = serveErr
	}
	return err
}
