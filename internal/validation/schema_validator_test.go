package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": { "type": "string" },
		"age": { "type": "integer", "minimum": 0 }
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidatorFS(fstest.MapFS{
		"person.schema.json": {Data: []byte(personSchema)},
	})

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "/age"},
		{name: "below minimum", data: `{"name": "John", "age": -1}`, wantError: true, errorMsg: "minimum"},
		{name: "malformed JSON", data: `{"name": `, wantError: true, errorMsg: "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidatorFS(fstest.MapFS{})

	err := v.ValidateBytes([]byte(`{}`), "nope.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidatorFS(fstest.MapFS{
		"person.schema.json": {Data: []byte(personSchema)},
	})

	path := filepath.Join(t.TempDir(), "person.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Steve"}`), 0o644))

	assert.NoError(t, v.ValidateFile(path, "person.schema.json"))

	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), "person.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestBundledItemsSchema(t *testing.T) {
	v := NewSchemaValidator()

	valid := `{
		"version": "1.0",
		"items": [
			{
				"display_name": "&6Fireblade",
				"material": "DIAMOND_SWORD",
				"cooldown_seconds": 10,
				"lore": ["&7A blazing sword"],
				"ability": {"name": "ignite", "params": {"seconds": 4}}
			}
		]
	}`
	assert.NoError(t, v.ValidateBytes([]byte(valid), ItemsSchema))

	tests := map[string]string{
		"negative cooldown":   `{"version":"1.0","items":[{"display_name":"x","material":"STICK","cooldown_seconds":-1,"ability":{"name":"heal"}}]}`,
		"fractional cooldown": `{"version":"1.0","items":[{"display_name":"x","material":"STICK","cooldown_seconds":1.5,"ability":{"name":"heal"}}]}`,
		"missing ability":     `{"version":"1.0","items":[{"display_name":"x","material":"STICK","cooldown_seconds":1}]}`,
		"unknown field":       `{"version":"1.0","items":[{"display_name":"x","material":"STICK","cooldown_seconds":1,"ability":{"name":"heal"},"color":"red"}]}`,
		"no items":            `{"version":"1.0","items":[]}`,
		"string param":        `{"version":"1.0","items":[{"display_name":"x","material":"STICK","cooldown_seconds":1,"ability":{"name":"heal","params":{"amount":"lots"}}}]}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(data), ItemsSchema)
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), "schema validation failed"), err.Error())
		})
	}
}
