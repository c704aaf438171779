// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command phonebook lists or adds phonebook entries directly against
// a storage backend.
//
//     phonebook --database-url postgres://localhost/phonebook list
//     phonebook --database-url postgres://localhost/phonebook add "Arto Vihavainen" 045-1232456
//
// With no command, phonebook lists the entries.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/diffeo/go-phonebook/backend"
	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/fatih/color"
	"github.com/urfave/cli"
)

var errMissingArguments = errors.New("usage: phonebook add NAME NUMBER")

type seed struct {
	Phonebook phonebook.Phonebook
	Out       io.Writer
}

func (s *seed) list(ctx context.Context) error {
	entries, err := s.Phonebook.Entries(ctx)
	if err != nil {
		return err
	}
	_, _ = color.New(color.Bold).Fprintln(s.Out, "Phonebook:")
	for _, entry := range entries {
		fmt.Fprintf(s.Out, "%v %v\n", entry.Name, color.CyanString(entry.Number))
	}
	return nil
}

func (s *seed) add(ctx context.Context, name, number string) error {
	entry, err := s.Phonebook.Create(ctx, phonebook.EntryInput{Name: name, Number: number})
	if err != nil {
		return err
	}
	_, _ = color.New(color.FgGreen).Fprintf(s.Out, "Added %v number %v to phonebook\n",
		entry.Name, entry.Number)
	return nil
}

// newApp builds the command line application.  If s has no
// phonebook yet, one is created from the flags before any command
// runs.
func newApp(s *seed) *cli.App {
	storage := backend.Backend{Implementation: "memory"}
	app := cli.NewApp()
	app.Name = "phonebook"
	app.Usage = "list or add phonebook entries"
	app.Writer = s.Out
	app.Flags = []cli.Flag{
		cli.GenericFlag{
			Name:  "backend",
			Value: &storage,
			Usage: "impl:[address] of phonebook backend",
		},
		cli.StringFlag{
			Name:   "database-url",
			Usage:  "PostgreSQL connection URL",
			EnvVar: "DATABASE_URL",
		},
	}
	app.Before = func(c *cli.Context) (err error) {
		if s.Phonebook != nil {
			return nil
		}
		if !c.IsSet("backend") {
			if err = storage.FromURL(c.String("database-url")); err != nil {
				return err
			}
		}
		s.Phonebook, err = storage.Phonebook()
		return err
	}
	list := func(c *cli.Context) error {
		return s.list(context.Background())
	}
	app.Action = list
	app.Commands = []cli.Command{
		{
			Name:   "list",
			Usage:  "print every entry",
			Action: list,
		},
		{
			Name:      "add",
			Usage:     "create an entry",
			ArgsUsage: "NAME NUMBER",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return errMissingArguments
				}
				return s.add(context.Background(), c.Args().Get(0), c.Args().Get(1))
			},
		},
	}
	return app
}

func main() {
	app := newApp(&seed{Out: color.Output})
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(1)
	}
}
