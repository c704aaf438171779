// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-phonebook/memory"
	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/diffeo/go-phonebook/restdata"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/urfave/negroni"
)

// ServerSuite drives the complete middleware chain over a memory
// backend.
type ServerSuite struct {
	suite.Suite
	Phonebook phonebook.Phonebook
	Clock     *clock.Mock
	Access    *test.Hook
	Errors    *test.Hook
	StaticDir string
	Handler   *negroni.Negroni
}

func TestServer(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	var err error
	s.StaticDir, err = ioutil.TempDir("", "phonebook-static")
	s.Require().NoError(err)
	err = ioutil.WriteFile(filepath.Join(s.StaticDir, "index.html"),
		[]byte("<h1>Phonebook</h1>\n"), 0644)
	s.Require().NoError(err)

	var accessLogger, errorLogger *logrus.Logger
	accessLogger, s.Access = test.NewNullLogger()
	errorLogger, s.Errors = test.NewNullLogger()

	s.Phonebook = memory.New()
	s.Clock = clock.NewMock()
	s.Handler, _ = NewHandler(s.Phonebook, Config{
		StaticDir:     s.StaticDir,
		RequestLogger: accessLogger,
		Logger:        errorLogger,
		Clock:         s.Clock,
	})
}

func (s *ServerSuite) ctx() context.Context {
	return context.Background()
}

func (s *ServerSuite) TearDownTest() {
	_ = os.RemoveAll(s.StaticDir)
}

// do sends a single request through the handler.  A non-empty body
// is sent as application/json.
func (s *ServerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", restdata.JSONMediaType)
	}
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	return rec
}

// create posts a valid entry and returns its ID.
func (s *ServerSuite) create(name, number string) string {
	entry, err := s.Phonebook.Create(s.ctx(), phonebook.EntryInput{Name: name, Number: number})
	s.Require().NoError(err)
	return entry.ID
}

func (s *ServerSuite) decodeEntry(rec *httptest.ResponseRecorder) restdata.Entry {
	var entry restdata.Entry
	err := restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, &entry)
	s.Require().NoError(err)
	return entry
}

func (s *ServerSuite) TestListEmpty() {
	rec := s.do(http.MethodGet, "/api/entries", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(restdata.JSONMediaType, rec.Header().Get("Content-Type"))
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *ServerSuite) TestList() {
	first := s.create("Arto Hellas", "040-123456")
	second := s.create("Ada Lovelace", "39-44-5323523")

	rec := s.do(http.MethodGet, "/api/entries", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[
		{"id":"`+first+`","name":"Arto Hellas","number":"040-123456"},
		{"id":"`+second+`","name":"Ada Lovelace","number":"39-44-5323523"}
	]`, rec.Body.String())
}

func (s *ServerSuite) TestCreate() {
	rec := s.do(http.MethodPost, "/api/entries", `{"name":"Alice","number":"12345678"}`)
	s.Equal(http.StatusOK, rec.Code)
	entry := s.decodeEntry(rec)
	s.NotEmpty(entry.ID)
	s.Equal("Alice", entry.Name)
	s.Equal("12345678", entry.Number)

	rec = s.do(http.MethodGet, "/api/entries/"+entry.ID, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(entry, s.decodeEntry(rec))
}

func (s *ServerSuite) TestCreateTooShort() {
	rec := s.do(http.MethodPost, "/api/entries", `{"name":"Al","number":"1234567"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "name must be at least 3 characters long")

	count, err := s.Phonebook.Count(s.ctx())
	s.NoError(err)
	s.Equal(0, count)
}

func (s *ServerSuite) TestCreateMissingField() {
	rec := s.do(http.MethodPost, "/api/entries", `{"name":"Alice"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"number missing","kind":"ValidationError","value":"number"}`,
		rec.Body.String())
}

func (s *ServerSuite) TestCreateEmptyBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/entries", nil)
	req.Header.Set("Content-Type", restdata.JSONMediaType)
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"content missing","kind":"ErrContentMissing"}`, rec.Body.String())
}

func (s *ServerSuite) TestCreateBadJSON() {
	rec := s.do(http.MethodPost, "/api/entries", `{"name":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestCreateWrongMediaType() {
	req := httptest.NewRequest(http.MethodPost, "/api/entries",
		strings.NewReader("name=Alice&number=12345678"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
}

func (s *ServerSuite) TestCreateDuplicate() {
	s.create("Alice", "12345678")
	rec := s.do(http.MethodPost, "/api/entries", `{"name":"Alice","number":"87654321"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"name must be unique","kind":"ErrDuplicateName"}`, rec.Body.String())
}

func (s *ServerSuite) TestGetMalformedID() {
	rec := s.do(http.MethodGet, "/api/entries/5", "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"malformatted id","kind":"ErrMalformedID"}`, rec.Body.String())
}

func (s *ServerSuite) TestGetMissing() {
	rec := s.do(http.MethodGet, "/api/entries/"+phonebook.NewID(), "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *ServerSuite) TestUpdate() {
	id := s.create("Alice", "12345678")
	rec := s.do(http.MethodPut, "/api/entries/"+id, `{"name":"Alice","number":"555"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"id":"`+id+`","name":"Alice","number":"555"}`, rec.Body.String())
}

func (s *ServerSuite) TestUpdateMissing() {
	id := phonebook.NewID()
	rec := s.do(http.MethodPut, "/api/entries/"+id, `{"name":"Alice","number":"12345678"}`)
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":"No such entry `+id+`","kind":"ErrNoSuchEntry","value":"`+id+`"}`,
		rec.Body.String())
}

func (s *ServerSuite) TestDelete() {
	id := s.create("Alice", "12345678")

	rec := s.do(http.MethodDelete, "/api/entries/"+id, "")
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())

	// Deleting again is still a success
	rec = s.do(http.MethodDelete, "/api/entries/"+id, "")
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/entries/"+id, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerSuite) TestDeleteMalformedID() {
	rec := s.do(http.MethodDelete, "/api/entries/not-an-id", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestUnknownEndpoint() {
	rec := s.do(http.MethodGet, "/api/people", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":"unknown endpoint"}`, rec.Body.String())
}

func (s *ServerSuite) TestInfo() {
	s.create("Alice", "12345678")
	s.create("Bob Smith", "87654321")
	s.Clock.Add(90 * time.Minute)

	rec := s.do(http.MethodGet, "/info", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	s.Contains(body, "<p>Phonebook has info for 2 people</p>")
	s.Contains(body, s.Clock.Now().Format(infoTimeFormat))
}

func (s *ServerSuite) TestCORS() {
	rec := s.do(http.MethodGet, "/api/entries", "")
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = s.do(http.MethodGet, "/nowhere", "")
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ServerSuite) TestPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/entries", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Contains(rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	s.Equal("content-type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func (s *ServerSuite) TestStatic() {
	rec := s.do(http.MethodGet, "/index.html", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("<h1>Phonebook</h1>\n", rec.Body.String())

	// The API is still reachable past the static handler
	rec = s.do(http.MethodGet, "/api/entries", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerSuite) TestAccessLog() {
	s.Access.Reset()
	s.do(http.MethodPost, "/api/entries", `{"name":"Alice","number":"12345678"}`)

	entry := s.Access.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(logrus.InfoLevel, entry.Level)
	s.Equal(http.MethodPost, entry.Data["method"])
	s.Equal("/api/entries", entry.Data["path"])
	s.Equal(http.StatusOK, entry.Data["status"])
	s.Equal(`{"name":"Alice","number":"12345678"}`, entry.Data["body"])

	// The handler still saw the whole body
	count, err := s.Phonebook.Count(s.ctx())
	s.NoError(err)
	s.Equal(1, count)

	// Expected client errors are not error-logged
	s.Empty(s.Errors.Entries)
}

func (s *ServerSuite) TestScenario() {
	// Validation failure
	rec := s.do(http.MethodPost, "/api/entries", `{"name":"Al","number":"1234567"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	// Valid creation
	rec = s.do(http.MethodPost, "/api/entries", `{"name":"Alice","number":"12345678"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	id := s.decodeEntry(rec).ID

	// Duplicate name
	rec = s.do(http.MethodPost, "/api/entries", `{"name":"Alice","number":"12345678"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "name must be unique")

	// Listing shows exactly the one entry
	rec = s.do(http.MethodGet, "/api/entries", "")
	s.JSONEq(`[{"id":"`+id+`","name":"Alice","number":"12345678"}]`, rec.Body.String())

	// Delete twice
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/entries/"+id, "").Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/entries/"+id, "").Code)

	rec = s.do(http.MethodGet, "/info", "")
	s.Contains(rec.Body.String(), "info for 0 people")
}

// TestNoRequestLogger checks that the access log is optional.
func TestNoRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler, router := NewHandler(memory.New(), Config{Logger: logger})
	require.NotNil(t, router.Get("entries"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/entries", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, hook.Entries)
}
