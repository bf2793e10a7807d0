// FILE: lixenwraith/simpleconfig/errors.go
package simpleconfig

import (
	"errors"
	"fmt"
)

// Errors returned (wrapped) by entry, codec and file operations.
var (
	// ErrUnknownKey indicates the key is not declared in the configuration.
	ErrUnknownKey = errors.New("unknown config key")

	// ErrUnresolved indicates no codec could be resolved for an entry.
	ErrUnresolved = errors.New("no codec resolved")

	// ErrSyntax indicates the value literal could not be parsed by the transcoder.
	ErrSyntax = errors.New("malformed value literal")

	// ErrDecode indicates a codec rejected an interchange value.
	ErrDecode = errors.New("decode failed")

	// ErrEncode indicates a codec could not encode a live value.
	ErrEncode = errors.New("encode failed")

	// ErrNoResult indicates a decode succeeded but produced no value.
	ErrNoResult = errors.New("decode produced no value")

	// ErrType indicates a decoded value cannot be stored in the target cell.
	ErrType = errors.New("type mismatch")

	// ErrWrite indicates the config file could not be replaced.
	ErrWrite = errors.New("config write failed")

	// ErrValidation indicates the live values failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrCodecPanic indicates a caller-supplied codec or cell panicked.
	ErrCodecPanic = errors.New("codec panicked")
)

// EntryError describes a failure isolated to a single config entry.
type EntryError struct {
	// Key is the entry key.
	Key string
	// Op is the operation that failed ("read", "write", "set", "get", "export").
	Op string
	// Line is the 1-based file line number for read failures, 0 otherwise.
	Line int
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config entry %q: %s failed at line %d: %v", e.Key, e.Op, e.Line, e.Err)
	}
	return fmt.Sprintf("config entry %q: %s failed: %v", e.Key, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// ResolutionError reports a declared item whose shape maps to no codec.
type ResolutionError struct {
	Key  string
	Type TypeDescriptor
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("config entry %q: no codec for type %s", e.Key, e.Type)
}

// Unwrap returns ErrUnresolved so callers can use errors.Is.
func (e *ResolutionError) Unwrap() error {
	return ErrUnresolved
}
