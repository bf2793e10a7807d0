// FILE: lixenwraith/simpleconfig/validate.go
package simpleconfig

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidatorFunc checks a Config's live values.
type ValidatorFunc func(c *Config) error

const schemaResource = "config-schema.json"

// SchemaValidator compiles a JSON schema and returns a validator that checks
// the object of every key and its interchange value against it.
func SchemaValidator(schema []byte) (ValidatorFunc, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, doc); err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	compiled, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return func(c *Config) error {
		values, err := c.Values()
		if err != nil {
			return err
		}
		return compiled.Validate(values)
	}, nil
}

// Validate runs every configured validator and joins their failures.
func (c *Config) Validate() error {
	var errs []error
	for _, validator := range c.validators {
		if err := validator(c); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrValidation, err))
		}
	}
	return errors.Join(errs...)
}
