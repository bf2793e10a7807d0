// FILE: lixenwraith/simpleconfig/composite.go
package simpleconfig

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
)

// Pair holds two values. Pair fields are described as pair<A,B> and stored as
// a two-element array.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

func (Pair[A, B]) pairComponents() (reflect.Type, reflect.Type) {
	return reflect.TypeFor[A](), reflect.TypeFor[B]()
}

// String renders the pair as "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

type listCodec struct {
	elem Codec
	typ  reflect.Type
}

// ListOf builds a codec for an ordered sequence of elem values. Decoding
// yields a new slice of elem.Type().
func ListOf(elem Codec) Codec {
	return &listCodec{elem: elem, typ: reflect.SliceOf(elem.Type())}
}

func (c *listCodec) Encode(v any) (any, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return []any{}, nil
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: expected a list, got %s", ErrEncode, rv.Type())
	}

	out := make([]any, rv.Len())
	for i := range out {
		node, err := c.elem.Encode(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = node
	}
	return out, nil
}

func (c *listCodec) Decode(node any) (any, error) {
	arr, ok := node.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrDecode, nodeKind(node))
	}

	out := reflect.MakeSlice(c.typ, len(arr), len(arr))
	for i, elemNode := range arr {
		elem, err := decodeInto(c.elem, elemNode)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out.Index(i).Set(elem)
	}
	return out.Interface(), nil
}

func (c *listCodec) Type() reflect.Type {
	return c.typ
}

type mapCodec struct {
	key   Codec
	value Codec
	typ   reflect.Type
}

// MapOf builds a codec for an unordered map. Keys are stored as object keys
// rendered from the key codec's output, so the key kind must encode to a
// string, number or boolean. The key codec's Type must be comparable.
func MapOf(key, value Codec) Codec {
	return &mapCodec{key: key, value: value, typ: reflect.MapOf(key.Type(), value.Type())}
}

func (c *mapCodec) Encode(v any) (any, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return map[string]any{}, nil
	}
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: expected a map, got %s", ErrEncode, rv.Type())
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keyNode, err := c.key.Encode(iter.Key().Interface())
		if err != nil {
			return nil, fmt.Errorf("key %v: %w", iter.Key(), err)
		}
		name, err := keyString(keyNode)
		if err != nil {
			return nil, fmt.Errorf("key %v: %w", iter.Key(), err)
		}
		valueNode, err := c.value.Encode(iter.Value().Interface())
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", name, err)
		}
		out[name] = valueNode
	}
	return out, nil
}

func (c *mapCodec) Decode(node any) (any, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrDecode, nodeKind(node))
	}

	out := reflect.MakeMapWithSize(c.typ, len(obj))
	for name, valueNode := range obj {
		key, err := c.decodeKey(name)
		if err != nil {
			return nil, err
		}
		value, err := decodeInto(c.value, valueNode)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", name, err)
		}
		out.SetMapIndex(key, value)
	}
	return out.Interface(), nil
}

// decodeKey tries the object key as a string first, then as a number or
// boolean literal.
func (c *mapCodec) decodeKey(name string) (reflect.Value, error) {
	var lastErr error
	for _, candidate := range keyCandidates(name) {
		key, err := decodeInto(c.key, candidate)
		if err == nil {
			return key, nil
		}
		lastErr = err
	}
	return reflect.Value{}, fmt.Errorf("key %s: %w", name, lastErr)
}

func (c *mapCodec) Type() reflect.Type {
	return c.typ
}

type pairCodec struct {
	first  Codec
	second Codec
	typ    reflect.Type
}

// PairOf builds a codec for a Pair stored as a two-element array. Decoding
// yields a struct with First and Second fields that is assignable to the
// matching Pair[A,B].
func PairOf(first, second Codec) Codec {
	typ := reflect.StructOf([]reflect.StructField{
		{Name: "First", Type: first.Type()},
		{Name: "Second", Type: second.Type()},
	})
	return &pairCodec{first: first, second: second, typ: typ}
}

func (c *pairCodec) Encode(v any) (any, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: expected a pair, got %T", ErrEncode, v)
	}
	firstField, secondField := rv.FieldByName("First"), rv.FieldByName("Second")
	if !firstField.IsValid() || !secondField.IsValid() {
		return nil, fmt.Errorf("%w: %s has no First/Second fields", ErrEncode, rv.Type())
	}

	first, err := c.first.Encode(firstField.Interface())
	if err != nil {
		return nil, fmt.Errorf("first: %w", err)
	}
	second, err := c.second.Encode(secondField.Interface())
	if err != nil {
		return nil, fmt.Errorf("second: %w", err)
	}
	return []any{first, second}, nil
}

func (c *pairCodec) Decode(node any) (any, error) {
	arr, ok := node.([]any)
	if !ok || len(arr) != 2 {
		return nil, fmt.Errorf("%w: expected two-element array, got %s", ErrDecode, nodeKind(node))
	}

	first, err := decodeInto(c.first, arr[0])
	if err != nil {
		return nil, fmt.Errorf("first: %w", err)
	}
	second, err := decodeInto(c.second, arr[1])
	if err != nil {
		return nil, fmt.Errorf("second: %w", err)
	}

	out := reflect.New(c.typ).Elem()
	out.Field(0).Set(first)
	out.Field(1).Set(second)
	return out.Interface(), nil
}

func (c *pairCodec) Type() reflect.Type {
	return c.typ
}

// decodeInto decodes node with codec and converts the result to codec.Type().
func decodeInto(codec Codec, node any) (reflect.Value, error) {
	v, err := codec.Decode(node)
	if err != nil {
		return reflect.Value{}, err
	}
	out, err := convertValue(reflect.ValueOf(v), codec.Type())
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrType, err)
	}
	return out, nil
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

type structCodec[T any] struct{}

// StructCodec builds a codec for a record type T stored as an object. Field
// names come from `conf` tags, falling back to the field name. Every field must
// be present when decoding.
func StructCodec[T any]() Codec {
	return structCodec[T]{}
}

func (structCodec[T]) Encode(v any) (any, error) {
	if indirect(reflect.ValueOf(v)).Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: expected %s, got %T", ErrEncode, reflect.TypeFor[T](), v)
	}

	var m map[string]any
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "conf",
		Result:  &m,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := decoder.Decode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return normalizeNode(m)
}

func (structCodec[T]) Decode(node any) (any, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrDecode, nodeKind(node))
	}

	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "conf",
		ErrorUnset: true,
		Result:     &out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			jsonNumberHook,
			charHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := decoder.Decode(obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return out, nil
}

func (structCodec[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

// jsonNumberHook converts json.Number leaves to the numeric kind of the target.
func jsonNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from != jsonNumberType {
		return data, nil
	}
	n := data.(json.Number)
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := n.Int64()
		if err != nil {
			return nil, err
		}
		if reflect.New(to).Elem().OverflowInt(i) {
			return nil, fmt.Errorf("%s overflows %s", n, to)
		}
		return i, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseUint(string(n), 10, to.Bits())
	case reflect.Float32, reflect.Float64:
		return n.Float64()
	case reflect.String:
		return string(n), nil
	}
	return data, nil
}

// charHook decodes one-character strings into Char fields.
func charHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != charType || from.Kind() != reflect.String {
		return data, nil
	}
	return decodeChar(reflect.ValueOf(data).String())
}
