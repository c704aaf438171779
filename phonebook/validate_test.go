// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package phonebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		Name  string
		In    EntryInput
		Field string
	}{
		{"ok", EntryInput{Name: "Alice A", Number: "12345678"}, ""},
		{"short name", EntryInput{Name: "Al", Number: "12345678"}, "name"},
		{"short both", EntryInput{Name: "Al", Number: "1234567"}, "name"},
		{"short number", EntryInput{Name: "Alice", Number: "1234567"}, "number"},
		{"no name", EntryInput{Number: "12345678"}, "name"},
		{"no number", EntryInput{Name: "Alice"}, "number"},
		{"multibyte", EntryInput{Name: "Åsa", Number: "040-1234"}, ""},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			err := Validate(test.In)
			if test.Field == "" {
				assert.NoError(t, err)
				return
			}
			var verr ValidationError
			if assert.ErrorAs(t, err, &verr) {
				assert.Equal(t, test.Field, verr.Field)
			}
		})
	}
}

func TestValidateEmpty(t *testing.T) {
	assert.Equal(t, ErrContentMissing, Validate(EntryInput{}))
}

func TestParseID(t *testing.T) {
	id := NewID()
	parsed, err := ParseID(id)
	if assert.NoError(t, err) {
		assert.Equal(t, id, parsed)
	}

	for _, bad := range []string{"", "5", "not-an-id", "5f5e9b0c2e1d"} {
		_, err = ParseID(bad)
		assert.Equal(t, ErrMalformedID, err, "%q", bad)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestValidateUpdate(t *testing.T) {
	short := EntryInput{Name: "Al", Number: "123"}
	assert.NoError(t, ValidateUpdate(Options{}, short))
	assert.Error(t, ValidateUpdate(Options{ValidateOnUpdate: true}, short))
	assert.Equal(t, ErrContentMissing, ValidateUpdate(Options{}, EntryInput{}))
}
