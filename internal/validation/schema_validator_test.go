package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("person.schema.json", []byte(personSchema)))

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
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, wantError: true, errorMsg: "minimum"},
		{name: "fractional integer", data: `{"name": "John", "age": 2.5}`, wantError: true, errorMsg: "/age"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, wantError: true, errorMsg: "parse JSON"},
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

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "missing.schema.json")
	assert.ErrorIs(t, err, ErrSchemaNotRegistered)
}

func TestSchemaValidator_InvalidSchema(t *testing.T) {
	err := NewSchemaValidator().Register("broken.schema.json", []byte(`{"type": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse schema")
}

func TestSchemaValidator_RegisterTwice(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("person.schema.json", []byte(personSchema)))
	require.NoError(t, v.Register("person.schema.json", []byte(`{"type": "string"}`)))

	assert.NoError(t, v.ValidateBytes([]byte(`{"name": "kept first"}`), "person.schema.json"))
}
