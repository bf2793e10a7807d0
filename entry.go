// FILE: lixenwraith/simpleconfig/entry.go
package simpleconfig

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Decoration is the optional human-readable output attached to an entry.
type Decoration struct {
	// Section renders a three-line banner before the entry.
	Section string
	// Comment renders one comment line per line of text before the entry.
	Comment string
}

// Item declares one configuration value.
type Item struct {
	Key  string
	Type TypeDescriptor
	Decoration
	// Codec, when set, is used instead of resolving Type.
	Codec Codec
	Cell  ValueCell
}

// ItemOf declares an item backed by the variable ptr points to, deriving its
// type descriptor from T.
func ItemOf[T any](key string, ptr *T) Item {
	return Item{
		Key:  key,
		Type: DescribeType(reflect.TypeFor[T](), DefaultRegistry().Has),
		Cell: Ref(ptr),
	}
}

// WithSection returns a copy of the item with a section banner.
func (i Item) WithSection(section string) Item {
	i.Section = section
	return i
}

// WithComment returns a copy of the item with a comment.
func (i Item) WithComment(comment string) Item {
	i.Comment = comment
	return i
}

// WithCodec returns a copy of the item with an explicit codec.
func (i Item) WithCodec(codec Codec) Item {
	i.Codec = codec
	return i
}

// Entry is a declared item with its resolved codec. An entry without a codec
// encodes to an empty value and rejects every apply.
type Entry struct {
	Key  string
	Type TypeDescriptor
	Decoration

	codec Codec
	cell  ValueCell
}

// Resolved reports whether a codec was resolved for the entry.
func (e *Entry) Resolved() bool {
	return e.codec != nil
}

// Codec returns the resolved codec, or nil.
func (e *Entry) Codec() Codec {
	return e.codec
}

// Value returns the live value of the entry.
func (e *Entry) Value() any {
	if e.cell == nil {
		return nil
	}
	return e.cell.Get()
}

// node encodes the live value into a normalised interchange value.
func (e *Entry) node() (node any, err error) {
	if e.codec == nil {
		return nil, ErrUnresolved
	}
	defer recoverPanic(&err)

	raw, err := e.codec.Encode(e.cell.Get())
	if err != nil {
		return nil, wrapSentinel(ErrEncode, err)
	}
	return normalizeNode(raw)
}

// text encodes the live value into a single-line literal.
func (e *Entry) text(tr Transcoder) (text string, err error) {
	defer recoverPanic(&err)

	node, err := e.node()
	if err != nil {
		return "", err
	}
	text, err = tr.EncodeOutput(node)
	if err != nil {
		return "", wrapSentinel(ErrEncode, err)
	}
	if strings.ContainsAny(text, "\r\n") {
		return "", fmt.Errorf("%w: literal spans multiple lines", ErrEncode)
	}
	return text, nil
}

// apply parses text and replaces the live value. The live value is left
// untouched on any failure.
func (e *Entry) apply(text string, tr Transcoder) (err error) {
	if e.codec == nil {
		return ErrUnresolved
	}
	defer recoverPanic(&err)

	node, ok := tr.DecodeInput(text)
	if !ok {
		return ErrSyntax
	}
	v, err := e.codec.Decode(node)
	if err != nil {
		return wrapSentinel(ErrDecode, err)
	}
	if v == nil {
		return ErrNoResult
	}
	if err := e.cell.Set(v); err != nil {
		return wrapSentinel(ErrType, err)
	}
	return nil
}

// recoverPanic turns a panic raised by caller-supplied code into ErrCodecPanic.
func recoverPanic(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrCodecPanic, r)
	}
}

// wrapSentinel wraps err with sentinel unless it already carries it.
func wrapSentinel(sentinel, err error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
