// FILE: lixenwraith/simpleconfig/helper.go
package simpleconfig

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// convertValue converts v to type t. Numeric kinds are converted with range
// checks, slices and maps are rebuilt element by element, and structs are
// converted directly or field by field by name.
func convertValue(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", t)
	}

	if v.Type().AssignableTo(t) {
		out := reflect.New(t).Elem()
		out.Set(v)
		return out, nil
	}

	if v.Kind() == reflect.Interface || (v.Kind() == reflect.Pointer && t.Kind() != reflect.Pointer) {
		if v.IsNil() {
			return convertValue(reflect.Value{}, t)
		}
		return convertValue(v.Elem(), t)
	}

	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i = v.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u := v.Uint()
			if u > 1<<63-1 {
				return reflect.Value{}, fmt.Errorf("%d overflows %s", u, t)
			}
			i = int64(u)
		default:
			return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", v.Type(), t)
		}
		if out.OverflowInt(i) {
			return reflect.Value{}, fmt.Errorf("%d overflows %s", i, t)
		}
		out.SetInt(i)
		return out, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var u uint64
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if v.Int() < 0 {
				return reflect.Value{}, fmt.Errorf("%d overflows %s", v.Int(), t)
			}
			u = uint64(v.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u = v.Uint()
		default:
			return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", v.Type(), t)
		}
		if out.OverflowUint(u) {
			return reflect.Value{}, fmt.Errorf("%d overflows %s", u, t)
		}
		out.SetUint(u)
		return out, nil

	case reflect.Float32, reflect.Float64:
		var f float64
		switch v.Kind() {
		case reflect.Float32, reflect.Float64:
			f = v.Float()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(v.Int())
		default:
			return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", v.Type(), t)
		}
		if out.OverflowFloat(f) {
			return reflect.Value{}, fmt.Errorf("%v overflows %s", f, t)
		}
		out.SetFloat(f)
		return out, nil

	case reflect.Bool, reflect.String:
		if v.Kind() != t.Kind() {
			return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", v.Type(), t)
		}
		return v.Convert(t), nil

	case reflect.Slice:
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", v.Type(), t)
		}
		if v.Kind() == reflect.Slice && v.IsNil() {
			return reflect.Zero(t), nil
		}
		out = reflect.MakeSlice(t, v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := convertValue(v.Index(i), t.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			out.Index(i).Set(elem)
		}
		return out, nil

	case reflect.Array:
		if (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) || v.Len() != t.Len() {
			return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", v.Type(), t)
		}
		for i := 0; i < v.Len(); i++ {
			elem, err := convertValue(v.Index(i), t.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			out.Index(i).Set(elem)
		}
		return out, nil

	case reflect.Map:
		if v.Kind() != reflect.Map {
			return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", v.Type(), t)
		}
		if v.IsNil() {
			return reflect.Zero(t), nil
		}
		out = reflect.MakeMapWithSize(t, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key, err := convertValue(iter.Key(), t.Key())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key(), err)
			}
			elem, err := convertValue(iter.Value(), t.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key(), err)
			}
			out.SetMapIndex(key, elem)
		}
		return out, nil

	case reflect.Struct:
		if v.Type().ConvertibleTo(t) {
			return v.Convert(t), nil
		}
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", v.Type(), t)
		}
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			src := v.FieldByName(field.Name)
			if !src.IsValid() {
				return reflect.Value{}, fmt.Errorf("cannot convert %s to %s: missing field %s", v.Type(), t, field.Name)
			}
			converted, err := convertValue(src, field.Type)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("field %s: %w", field.Name, err)
			}
			out.Field(i).Set(converted)
		}
		return out, nil

	case reflect.Pointer:
		elem, err := convertValue(v, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if v.Type().ConvertibleTo(t) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", v.Type(), t)
}

var (
	jsonNumberType = reflect.TypeFor[json.Number]()
)

// normalizeNode turns an arbitrary Go value into an interchange value made of
// nil, bool, string, json.Number, []any and map[string]any.
func normalizeNode(v any) (any, error) {
	switch n := v.(type) {
	case nil, bool, string, json.Number:
		return n, nil
	case Char:
		return string(rune(n)), nil
	}
	return normalizeValue(reflect.ValueOf(v))
}

func normalizeValue(v reflect.Value) (any, error) {
	if !v.IsValid() {
		return nil, nil
	}
	if v.Type() == jsonNumberType {
		return json.Number(v.String()), nil
	}
	if v.Type() == charType {
		return string(rune(v.Int())), nil
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return json.Number(strconv.FormatInt(v.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return json.Number(strconv.FormatUint(v.Uint(), 10)), nil
	case reflect.Float32:
		return formatFloat(v.Float(), 32)
	case reflect.Float64:
		return formatFloat(v.Float(), 64)

	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil, nil
		}
		return normalizeValue(v.Elem())

	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			elem, err := normalizeValue(v.Index(i))
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = elem
		}
		return out, nil

	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key, err := normalizeValue(iter.Key())
			if err != nil {
				return nil, err
			}
			name, err := keyString(key)
			if err != nil {
				return nil, err
			}
			elem, err := normalizeValue(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("key %s: %w", name, err)
			}
			out[name] = elem
		}
		return out, nil

	case reflect.Struct:
		out := make(map[string]any, v.NumField())
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := field.Name
			if tag, ok := field.Tag.Lookup("conf"); ok {
				if tag == "-" {
					continue
				}
				if tag != "" {
					name = tag
				}
			}
			elem, err := normalizeValue(v.Field(i))
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			out[name] = elem
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: unsupported value of type %s", ErrEncode, v.Type())
}

// keyString renders an interchange scalar as an object key.
func keyString(node any) (string, error) {
	switch k := node.(type) {
	case string:
		return k, nil
	case json.Number:
		return string(k), nil
	case bool:
		return strconv.FormatBool(k), nil
	}
	return "", fmt.Errorf("%w: %s cannot be used as a map key", ErrEncode, nodeKind(node))
}

// keyCandidates lists the interchange scalars an object key may stand for.
func keyCandidates(key string) []any {
	candidates := []any{key}
	if _, err := strconv.ParseFloat(key, 64); err == nil {
		candidates = append(candidates, json.Number(key))
	}
	if b, err := strconv.ParseBool(key); err == nil {
		candidates = append(candidates, b)
	}
	return candidates
}

// nativeTree converts json.Number leaves into int64 or float64 so that
// interchange trees can be handed to encoders that do not know json.Number.
func nativeTree(node any) any {
	switch n := node.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return string(n)
	case []any:
		out := make([]any, len(n))
		for i, elem := range n {
			out[i] = nativeTree(elem)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, elem := range n {
			out[k] = nativeTree(elem)
		}
		return out
	}
	return node
}

// splitLines splits text on newlines, dropping carriage returns.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
