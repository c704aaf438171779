// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"mime"

	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/ugorji/go/codec"
)

// IsJSON determines whether a media type (without parameters) is one
// of the JSON types this package understands.
func IsJSON(mediaType string) bool {
	switch mediaType {
	case "text/json", JSONMediaType, V1JSONMediaType:
		return true
	}
	return false
}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.  An empty
// body produces phonebook.ErrContentMissing, and a malformed one
// ErrBadRequest.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	if !IsJSON(mediaType) {
		return ErrUnsupportedMediaType{Type: mediaType}
	}

	json := &codec.JsonHandle{}
	decoder := codec.NewDecoder(r, json)
	err = decoder.Decode(out)
	if err == io.EOF {
		return phonebook.ErrContentMissing
	}
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	return nil
}

// Encode writes a restdata object as JSON.
func Encode(w io.Writer, in interface{}) error {
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoder(w, json)
	return encoder.Encode(in)
}
