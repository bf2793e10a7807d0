// FILE: lixenwraith/simpleconfig/builder.go
package simpleconfig

import (
	"errors"
	"fmt"
	"os"
)

// Builder provides a fluent interface for building configurations
type Builder struct {
	file   string
	items  []Item
	target any
	opts   Options
	err    error
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		opts: DefaultOptions(),
	}
}

// WithFile sets the configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithItems appends declared items
func (b *Builder) WithItems(items ...Item) *Builder {
	b.items = append(b.items, items...)
	return b
}

// WithStruct declares items from the fields of a struct pointer.
// Struct items follow any items added with WithItems.
func (b *Builder) WithStruct(target any) *Builder {
	if target == nil {
		b.err = errors.New("struct target cannot be nil")
		return b
	}
	b.target = target
	return b
}

// WithLogger sets the diagnostics sink
func (b *Builder) WithLogger(logger Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithTranscoder sets the value literal syntax
func (b *Builder) WithTranscoder(tr Transcoder) *Builder {
	b.opts.Transcoder = tr
	return b
}

// WithRegistry sets the registry used for type resolution and discovery
func (b *Builder) WithRegistry(registry *Registry) *Builder {
	b.opts.Registry = registry
	return b
}

// WithOverride forces a codec for one key
func (b *Builder) WithOverride(key string, codec Codec) *Builder {
	if b.opts.Overrides == nil {
		b.opts.Overrides = make(map[string]Codec)
	}
	b.opts.Overrides[key] = codec
	return b
}

// WithSaveOnLoad controls the write-back after construction
func (b *Builder) WithSaveOnLoad(save bool) *Builder {
	b.opts.SaveOnLoad = save
	return b
}

// WithFileMode sets the permissions of the written file
func (b *Builder) WithFileMode(mode os.FileMode) *Builder {
	b.opts.FileMode = mode
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.opts.Validators = append(b.opts.Validators, fn)
	}
	return b
}

// WithSchema adds a JSON schema validator for the key/value object.
// A schema that does not compile fails Build.
func (b *Builder) WithSchema(schema []byte) *Builder {
	validator, err := SchemaValidator(schema)
	if err != nil {
		b.err = err
		return b
	}
	return b.WithValidator(validator)
}

// Build creates the Config instance with all specified options
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.file == "" {
		return nil, errors.New("config file path is required")
	}

	items := append([]Item(nil), b.items...)
	if b.target != nil {
		discovered, err := Discover(b.target, b.opts.Registry)
		if err != nil {
			return nil, fmt.Errorf("failed to discover items: %w", err)
		}
		items = append(items, discovered...)
	}

	cfg := NewWithOptions(b.file, items, b.opts)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}
