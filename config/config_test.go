// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

// load runs Load() the way a command's action would, with the given
// command-line arguments.
func load(t *testing.T, args ...string) (Config, error) {
	var (
		cfg Config
		err error
	)
	app := cli.NewApp()
	app.Flags = Flags()
	app.Action = func(c *cli.Context) error {
		cfg, err = Load(c)
		return nil
	}
	require.NoError(t, app.Run(append([]string{"phonebookd"}, args...)))
	return cfg, err
}

func writeFile(t *testing.T, contents string) string {
	dir, err := ioutil.TempDir("", "phonebook-config")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	filename := filepath.Join(dir, "phonebook.yaml")
	require.NoError(t, ioutil.WriteFile(filename, []byte(contents), 0644))
	return filename
}

func TestDefaults(t *testing.T) {
	cfg, err := load(t, "--port", "3001")
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:        "3001",
		StaticDir:   "build",
		LogRequests: true,
		LogLevel:    "info",
	}, cfg)
	assert.Equal(t, ":3001", cfg.Addr())

	b, err := cfg.StorageBackend()
	require.NoError(t, err)
	assert.Equal(t, "memory", b.Implementation)
}

func TestPortMissing(t *testing.T) {
	_, err := load(t)
	assert.Equal(t, ErrPortMissing, err)
}

func TestPortInvalid(t *testing.T) {
	for _, port := range []string{"http", "0", "70000"} {
		_, err := load(t, "--port", port)
		assert.Error(t, err, port)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("PORT", "3002")
	t.Setenv("DATABASE_URL", "postgres://localhost/phonebook")
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "3002", cfg.Port)

	b, err := cfg.StorageBackend()
	require.NoError(t, err)
	assert.Equal(t, "postgres", b.Implementation)
	assert.Equal(t, "postgres://localhost/phonebook", b.Address)
}

func TestFile(t *testing.T) {
	filename := writeFile(t, `
port: 4000
static_dir: public
validate_on_update: true
log_requests: false
log_level: debug
`)
	cfg, err := load(t, "--config", filename)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:             "4000",
		StaticDir:        "public",
		ValidateOnUpdate: true,
		LogRequests:      false,
		LogLevel:         "debug",
	}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	b, err := cfg.StorageBackend()
	require.NoError(t, err)
	assert.True(t, b.Options.ValidateOnUpdate)
}

func TestPrecedence(t *testing.T) {
	filename := writeFile(t, "port: 4000\nstatic_dir: public\nlog_level: warn\n")
	t.Setenv("PORT", "4001")
	t.Setenv("PHONEBOOK_LOG_LEVEL", "error")
	cfg, err := load(t, "--config", filename, "--port", "4002")
	require.NoError(t, err)
	// flag beats environment beats file
	assert.Equal(t, "4002", cfg.Port)
	// environment beats file
	assert.Equal(t, "error", cfg.LogLevel)
	// file beats default
	assert.Equal(t, "public", cfg.StaticDir)
}

func TestFileUnknownKey(t *testing.T) {
	filename := writeFile(t, "port: 4000\ncolour: blue\n")
	_, err := load(t, "--config", filename)
	assert.Error(t, err)
}

func TestFileMissing(t *testing.T) {
	_, err := load(t, "--port", "3001", "--config", "/nonexistent/phonebook.yaml")
	assert.True(t, os.IsNotExist(err))
}

func TestBadLevel(t *testing.T) {
	_, err := load(t, "--port", "3001", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestExplicitBackend(t *testing.T) {
	cfg, err := load(t, "--port", "3001",
		"--database-url", "postgres://localhost/phonebook",
		"--backend", "memory")
	require.NoError(t, err)
	b, err := cfg.StorageBackend()
	require.NoError(t, err)
	assert.Equal(t, "memory", b.Implementation)

	_, err = load(t, "--port", "3001", "--backend", "mongodb:localhost")
	assert.Error(t, err)
}
