// File: lixenwraith/simpleconfig/type.go
package simpleconfig

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

// liveValue returns the current value of key.
func (c *Config) liveValue(key string) (any, error) {
	e, ok := c.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if e.cell == nil {
		return nil, fmt.Errorf("config entry %q has no value cell", key)
	}
	return e.cell.Get(), nil
}

// String retrieves the live value of key as a string.
// Characters and other fmt.Stringer values are rendered with String.
func (c *Config) String(key string) (string, error) {
	val, err := c.liveValue(key)
	if err != nil {
		return "", err
	}
	if s, ok := val.(fmt.Stringer); ok {
		return s.String(), nil
	}
	s, err := cast.ToStringE(val)
	if err != nil {
		return "", fmt.Errorf("cannot convert %s to string: %w", key, err)
	}
	return s, nil
}

// Int64 retrieves the live value of key as an int64.
func (c *Config) Int64(key string) (int64, error) {
	val, err := c.liveValue(key)
	if err != nil {
		return 0, err
	}
	i, err := cast.ToInt64E(val)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to int64: %w", key, err)
	}
	return i, nil
}

// Bool retrieves the live value of key as a bool.
// Numbers convert as 0=false, non-zero=true.
func (c *Config) Bool(key string) (bool, error) {
	val, err := c.liveValue(key)
	if err != nil {
		return false, err
	}
	b, err := cast.ToBoolE(val)
	if err != nil {
		return false, fmt.Errorf("cannot convert %s to bool: %w", key, err)
	}
	return b, nil
}

// Float64 retrieves the live value of key as a float64.
func (c *Config) Float64(key string) (float64, error) {
	val, err := c.liveValue(key)
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(val)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to float64: %w", key, err)
	}
	return f, nil
}

// Duration retrieves the live value of key as a time.Duration. Strings are
// parsed as Go durations, numbers are nanoseconds.
func (c *Config) Duration(key string) (time.Duration, error) {
	val, err := c.liveValue(key)
	if err != nil {
		return 0, err
	}
	d, err := cast.ToDurationE(val)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to duration: %w", key, err)
	}
	return d, nil
}

// As retrieves the live value of key converted to T, e.g. a []int32 entry
// read as []int64.
func As[T any](c *Config, key string) (T, error) {
	var zero T
	val, err := c.liveValue(key)
	if err != nil {
		return zero, err
	}
	if typed, ok := val.(T); ok {
		return typed, nil
	}
	rv, err := convertValue(reflect.ValueOf(val), reflect.TypeFor[T]())
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrType, key, err)
	}
	return rv.Interface().(T), nil
}
