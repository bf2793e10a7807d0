// FILE: lixenwraith/simpleconfig/validate_test.go
package simpleconfig

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portSchema = `{
	"type": "object",
	"properties": {
		"host": {"type": "string", "minLength": 1},
		"port": {"type": "integer", "minimum": 1, "maximum": 65535},
		"tags": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["host", "port"]
}`

// TestSchemaValidator tests JSON schema checks over live values
func TestSchemaValidator(t *testing.T) {
	validator, err := SchemaValidator([]byte(portSchema))
	require.NoError(t, err)

	host, port := "localhost", int32(8080)
	tags := []string{"a"}
	cfg := NewWithOptions(filepath.Join(t.TempDir(), "app.conf"), []Item{
		ItemOf("host", &host),
		ItemOf("port", &port),
		ItemOf("tags", &tags),
	}, Options{Validators: []ValidatorFunc{validator}})

	require.NoError(t, cfg.Validate())

	port = 0
	assert.ErrorIs(t, cfg.Validate(), ErrValidation)

	port = 8080
	host = ""
	assert.ErrorIs(t, cfg.Validate(), ErrValidation)

	t.Run("InvalidSchema", func(t *testing.T) {
		_, err := SchemaValidator([]byte(`{"type": 5}`))
		assert.Error(t, err)
		_, err = SchemaValidator([]byte(`not json`))
		assert.Error(t, err)
	})
}

// TestValidateJoinsFailures tests that every validator runs
func TestValidateJoinsFailures(t *testing.T) {
	first, second := errors.New("first"), errors.New("second")
	cfg := NewWithOptions(filepath.Join(t.TempDir(), "app.conf"), nil, Options{
		Validators: []ValidatorFunc{
			func(*Config) error { return first },
			func(*Config) error { return nil },
			func(*Config) error { return second },
		},
	})

	err := cfg.Validate()
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
	assert.ErrorIs(t, err, ErrValidation)
}
