// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package config assembles the phonebook server configuration.
//
// Settings come from, in increasing order of precedence: built-in
// defaults, an optional YAML file named by --config, environment
// variables, and command-line flags.  The YAML file uses the same
// key names as the Config struct tags:
//
//     port: 3001
//     database_url: postgres://localhost/phonebook?sslmode=disable
//     static_dir: build
//     validate_on_update: true
//     log_requests: false
//     log_level: debug
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strconv"

	"github.com/diffeo/go-phonebook/backend"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

// ErrPortMissing is returned from Load() if no listening port was
// configured anywhere.
var ErrPortMissing = errors.New("no port configured (set PORT or --port)")

// Config holds the complete server configuration.
type Config struct {
	// Port is the TCP port to listen on.  It has no default.
	Port string `mapstructure:"port"`

	// DatabaseURL selects the PostgreSQL backend if set, and the
	// in-memory backend if not.
	DatabaseURL string `mapstructure:"database_url"`

	// Backend is an explicit "impl:address" backend string.  It
	// overrides DatabaseURL.
	Backend string `mapstructure:"backend"`

	// StaticDir holds static assets served ahead of the API.
	StaticDir string `mapstructure:"static_dir"`

	// ValidateOnUpdate applies the creation length checks to
	// updates too.
	ValidateOnUpdate bool `mapstructure:"validate_on_update"`

	// LogRequests turns on the per-request access log.
	LogRequests bool `mapstructure:"log_requests"`

	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		StaticDir:   "build",
		LogRequests: true,
		LogLevel:    "info",
	}
}

// Flags returns the command-line flags Load() reads.
func Flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML configuration file",
		},
		cli.StringFlag{
			Name:   "port",
			Usage:  "TCP port for the HTTP service",
			EnvVar: "PORT",
		},
		cli.StringFlag{
			Name:   "database-url",
			Usage:  "PostgreSQL connection URL; in-memory storage if unset",
			EnvVar: "DATABASE_URL",
		},
		cli.StringFlag{
			Name:   "backend",
			Usage:  "impl:[address] of the storage backend",
			EnvVar: "PHONEBOOK_BACKEND",
		},
		cli.StringFlag{
			Name:   "static-dir",
			Usage:  "directory of static assets",
			EnvVar: "PHONEBOOK_STATIC_DIR",
		},
		cli.BoolFlag{
			Name:   "validate-on-update",
			Usage:  "apply length checks to updates",
			EnvVar: "PHONEBOOK_VALIDATE_ON_UPDATE",
		},
		cli.BoolTFlag{
			Name:   "log-requests",
			Usage:  "log every request",
			EnvVar: "PHONEBOOK_LOG_REQUESTS",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "minimum log level",
			EnvVar: "PHONEBOOK_LOG_LEVEL",
		},
	}
}

// Load builds the configuration from the defaults, the file named
// by the "config" flag if any, and the flags and environment
// variables that were actually set.  The result is validated.
func Load(c *cli.Context) (Config, error) {
	cfg := Default()
	if filename := c.String("config"); filename != "" {
		if err := cfg.LoadFile(filename); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyFlags(c)
	return cfg, cfg.Validate()
}

// LoadFile reads a YAML file and overlays its settings on cfg.  Keys
// absent from the file leave cfg unchanged; unknown keys are an
// error.
func (cfg *Config) LoadFile(filename string) error {
	bytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	var raw map[string]interface{}
	if err = yaml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err = decoder.Decode(raw); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	return nil
}

// ApplyFlags overlays every flag or environment variable that was
// set on cfg.
func (cfg *Config) ApplyFlags(c *cli.Context) {
	stringFlags := map[string]*string{
		"port":         &cfg.Port,
		"database-url": &cfg.DatabaseURL,
		"backend":      &cfg.Backend,
		"static-dir":   &cfg.StaticDir,
		"log-level":    &cfg.LogLevel,
	}
	for name, field := range stringFlags {
		if c.IsSet(name) {
			*field = c.String(name)
		}
	}
	if c.IsSet("validate-on-update") {
		cfg.ValidateOnUpdate = c.Bool("validate-on-update")
	}
	if c.IsSet("log-requests") {
		cfg.LogRequests = c.BoolT("log-requests")
	}
}

// Validate checks that the configuration is complete and consistent.
func (cfg Config) Validate() error {
	if cfg.Port == "" {
		return ErrPortMissing
	}
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", cfg.Port)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	_, err = cfg.StorageBackend()
	return err
}

// Addr is the listen address for the HTTP server.
func (cfg Config) Addr() string {
	return ":" + cfg.Port
}

// Level parses LogLevel.
func (cfg Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(cfg.LogLevel)
}

// StorageBackend describes the configured storage.  An explicit
// Backend wins over DatabaseURL.
func (cfg Config) StorageBackend() (backend.Backend, error) {
	var b backend.Backend
	var err error
	if cfg.Backend != "" {
		err = b.Set(cfg.Backend)
	} else {
		err = b.FromURL(cfg.DatabaseURL)
	}
	b.Options.ValidateOnUpdate = cfg.ValidateOnUpdate
	return b, err
}
