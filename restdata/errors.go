// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/diffeo/go-phonebook/phonebook"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

// Unwrap returns the embedded error.
func (e ErrNotFound) Unwrap() error {
	return e.Err
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadRequest is returned as an error when there is an error decoding
// HTTP headers or the request body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// Unwrap returns the embedded error.
func (e ErrBadRequest) Unwrap() error {
	return e.Err
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// StatusOf picks the HTTP status code for an error.  Errors that
// carry their own status keep it; the phonebook errors map to 400 or
// 404; anything else is a 500 Internal Server Error.
func StatusOf(err error) int {
	var withStatus ErrorStatus
	var noSuch phonebook.ErrNoSuchEntry
	var invalid phonebook.ValidationError
	switch {
	case errors.As(err, &withStatus):
		return withStatus.HTTPStatus()
	case errors.As(err, &noSuch):
		return http.StatusNotFound
	case errors.As(err, &invalid),
		errors.Is(err, phonebook.ErrDuplicateName),
		errors.Is(err, phonebook.ErrContentMissing),
		errors.Is(err, phonebook.ErrMalformedID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// FromError populates an ErrorResponse to fill in its fields based
// on an error value.  This remaps the well-known phonebook errors
// to specific e.Kind codes.
func (e *ErrorResponse) FromError(err error) {
	e.Error = err.Error()
	switch err {
	case phonebook.ErrDuplicateName:
		e.Kind = "ErrDuplicateName"
	case phonebook.ErrContentMissing:
		e.Kind = "ErrContentMissing"
	case phonebook.ErrMalformedID:
		e.Kind = "ErrMalformedID"
	}
	switch et := err.(type) {
	case phonebook.ErrNoSuchEntry:
		e.Kind = "ErrNoSuchEntry"
		e.Value = et.ID
	case phonebook.ValidationError:
		e.Kind = "ValidationError"
		e.Value = et.Field
	case ErrNotFound:
		// Discard this wrapper and return the embedded error
		e.FromError(et.Err)
	case ErrBadRequest:
		e.FromError(et.Err)
	}
}

// ToError converts e back to a phonebook error, if that is possible.
// If not, returns a plain error with e.Error text.
func (e *ErrorResponse) ToError() error {
	switch e.Kind {
	case "ErrDuplicateName":
		return phonebook.ErrDuplicateName
	case "ErrContentMissing":
		return phonebook.ErrContentMissing
	case "ErrMalformedID":
		return phonebook.ErrMalformedID
	case "ErrNoSuchEntry":
		return phonebook.ErrNoSuchEntry{ID: e.Value}
	case "ValidationError":
		return phonebook.ValidationError{Field: e.Value, Message: e.Error}
	default:
		return errors.New(e.Error)
	}
}

// FromPanic populates an error response based on a panic.  Typical use
// is:
//
//     defer func() {
//         if obj := recover(); obj != nil {
//             resp := restdata.ErrorResponse{}
//             resp.FromPanic(obj)
//             // write resp out as makes sense
//         }
//    }
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Kind = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Error = recoveredError.Error()
	} else {
		e.Error = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	len := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:len])
}
