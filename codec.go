// FILE: lixenwraith/simpleconfig/codec.go
package simpleconfig

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// Codec converts a live value to and from an interchange value.
//
// Interchange values are plain trees made of nil, bool, string, json.Number,
// []any and map[string]any. Decode(Encode(v)) must be value-equal to v, and
// codecs must not keep state between calls.
type Codec interface {
	// Encode converts a live value into an interchange value.
	Encode(v any) (any, error)
	// Decode converts an interchange value into a fresh live value of Type().
	Decode(node any) (any, error)
	// Type is the Go type produced by Decode.
	Type() reflect.Type
}

// Char is a single character value. It is a distinct type so that character
// entries can be told apart from int32 entries.
type Char rune

// String returns the character as a string.
func (c Char) String() string {
	return string(rune(c))
}

// funcCodec adapts a pair of typed functions to Codec.
type funcCodec[T any] struct {
	encode func(T) (any, error)
	decode func(any) (T, error)
}

// NewCodec builds a Codec for T from typed encode and decode functions.
// Encode accepts any value convertible to T (e.g. a named type with the same
// underlying kind).
func NewCodec[T any](encode func(T) (any, error), decode func(any) (T, error)) Codec {
	return funcCodec[T]{encode: encode, decode: decode}
}

func (c funcCodec[T]) Encode(v any) (any, error) {
	typed, ok := v.(T)
	if !ok {
		rv, err := convertValue(reflect.ValueOf(v), c.Type())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		typed = rv.Interface().(T)
	}
	return c.encode(typed)
}

func (c funcCodec[T]) Decode(node any) (any, error) {
	v, err := c.decode(node)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c funcCodec[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

// Built-in primitive codecs.
var (
	Bool    = NewCodec(encodeIdentity[bool], decodeBool)
	String  = NewCodec(encodeIdentity[string], decodeString)
	Int8    = NewCodec(encodeInt[int8], decodeInt[int8])
	Int16   = NewCodec(encodeInt[int16], decodeInt[int16])
	Int32   = NewCodec(encodeInt[int32], decodeInt[int32])
	Int64   = NewCodec(encodeInt[int64], decodeInt[int64])
	Float32 = NewCodec(encodeFloat32, decodeFloat32)
	Float64 = NewCodec(encodeFloat64, decodeFloat64)

	// CharCodec stores a character as a one-character string. Decoding keeps
	// the first character of a longer string and drops the rest.
	CharCodec = NewCodec(encodeChar, decodeChar)

	// Duration stores a time.Duration as a Go duration string ("1m30s").
	// Plain numbers are accepted on decode as nanoseconds.
	Duration = NewCodec(encodeDuration, decodeDuration)
)

// Raw passes interchange values through untouched. It is used for untyped
// entries whose live value is the interchange tree itself.
var Raw Codec = rawCodec{}

type rawCodec struct{}

func (rawCodec) Encode(v any) (any, error) {
	return normalizeNode(v)
}

func (rawCodec) Decode(node any) (any, error) {
	return normalizeNode(node)
}

func (rawCodec) Type() reflect.Type {
	return reflect.TypeFor[any]()
}

func encodeIdentity[T bool | string](v T) (any, error) {
	return v, nil
}

func decodeBool(node any) (bool, error) {
	b, ok := node.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected boolean, got %s", ErrDecode, nodeKind(node))
	}
	return b, nil
}

func decodeString(node any) (string, error) {
	s, ok := node.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string, got %s", ErrDecode, nodeKind(node))
	}
	return s, nil
}

func encodeInt[T int8 | int16 | int32 | int64](v T) (any, error) {
	return json.Number(strconv.FormatInt(int64(v), 10)), nil
}

func decodeInt[T int8 | int16 | int32 | int64](node any) (T, error) {
	n, ok := node.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: expected number, got %s", ErrDecode, nodeKind(node))
	}
	i, err := cast.ToInt64E(string(n))
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrDecode, n)
	}
	// Round trip through T detects overflow
	if int64(T(i)) != i {
		return 0, fmt.Errorf("%w: %s overflows %s", ErrDecode, n, reflect.TypeFor[T]())
	}
	return T(i), nil
}

func encodeFloat64(v float64) (any, error) {
	return formatFloat(v, 64)
}

func encodeFloat32(v float32) (any, error) {
	return formatFloat(float64(v), 32)
}

func decodeFloat64(node any) (float64, error) {
	n, ok := node.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: expected number, got %s", ErrDecode, nodeKind(node))
	}
	f, err := cast.ToFloat64E(string(n))
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number", ErrDecode, n)
	}
	return f, nil
}

func decodeFloat32(node any) (float32, error) {
	f, err := decodeFloat64(node)
	if err != nil {
		return 0, err
	}
	if math.Abs(f) > math.MaxFloat32 {
		return 0, fmt.Errorf("%w: %v overflows float32", ErrDecode, node)
	}
	return float32(f), nil
}

// formatFloat renders a float the way encoding/json does, rejecting values
// that have no JSON representation.
func formatFloat(f float64, bits int) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v has no literal representation", ErrEncode, f)
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return json.Number(strconv.FormatFloat(f, format, -1, bits)), nil
}

func encodeChar(c Char) (any, error) {
	return string(rune(c)), nil
}

func decodeChar(node any) (Char, error) {
	s, ok := node.(string)
	if !ok {
		return 0, fmt.Errorf("%w: expected string, got %s", ErrDecode, nodeKind(node))
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0, fmt.Errorf("%w: empty string is not a character", ErrDecode)
	}
	return Char(r), nil
}

func encodeDuration(d time.Duration) (any, error) {
	return d.String(), nil
}

func decodeDuration(node any) (time.Duration, error) {
	var raw string
	switch v := node.(type) {
	case string:
		raw = v
	case json.Number:
		raw = string(v)
	default:
		return 0, fmt.Errorf("%w: expected duration, got %s", ErrDecode, nodeKind(node))
	}
	d, err := cast.ToDurationE(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a duration", ErrDecode, raw)
	}
	return d, nil
}

// nodeKind names the interchange kind of a node for error messages.
func nodeKind(node any) string {
	switch node.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", node)
	}
}
