// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command phonebookd runs the phonebook REST service.
//
// The listening port must be given, either as --port or in the PORT
// environment variable.  Storage is in memory unless DATABASE_URL
// names a PostgreSQL database:
//
//     PORT=3001 DATABASE_URL=postgres://localhost/phonebook phonebookd
package main

import (
	"context"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diffeo/go-phonebook/config"
	"github.com/diffeo/go-phonebook/restserver"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// observeInterval is how often the entries gauge is refreshed.
const observeInterval = 15 * time.Second

func main() {
	app := cli.NewApp()
	app.Name = "phonebookd"
	app.Usage = "serve the phonebook REST API"
	app.Flags = config.Flags()
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("phonebookd failed")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logrus.SetLevel(level)

	storage, err := cfg.StorageBackend()
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"backend": storage.Implementation,
		"address": redact(storage.Address),
	}).Info("connecting to")
	pb, err := storage.Phonebook()
	if err != nil {
		logrus.WithError(err).Error("error connecting to backend")
		return err
	}

	var reqLogger *logrus.Logger
	if cfg.LogRequests {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.InfoLevel,
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go observe(ctx, pb, observeInterval)

	server := HTTP{
		Phonebook: pb,
		Addr:      cfg.Addr(),
		Port:      cfg.Port,
		Config: restserver.Config{
			StaticDir:     cfg.StaticDir,
			RequestLogger: reqLogger,
			Logger:        logrus.StandardLogger(),
		},
	}
	return server.Serve(ctx)
}

// redact hides any password in a backend address.
func redact(address string) string {
	u, err := url.Parse(address)
	if err != nil || u.User == nil {
		return address
	}
	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
