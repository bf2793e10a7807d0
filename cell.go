// FILE: lixenwraith/simpleconfig/cell.go
package simpleconfig

import (
	"fmt"
	"reflect"
)

// ValueCell gives read and write access to one slot of host-owned storage.
// The engine never keeps the values it reads; every successful decode is
// stored with a single Set call.
type ValueCell interface {
	Get() any
	Set(v any) error
}

type refCell[T any] struct {
	ptr *T
}

// Ref returns a cell backed by the variable ptr points to. Set converts
// compatible values (e.g. []int64 into []int) before storing them.
func Ref[T any](ptr *T) ValueCell {
	return refCell[T]{ptr: ptr}
}

func (c refCell[T]) Get() any {
	return *c.ptr
}

func (c refCell[T]) Set(v any) error {
	if typed, ok := v.(T); ok {
		*c.ptr = typed
		return nil
	}
	rv, err := convertValue(reflect.ValueOf(v), reflect.TypeFor[T]())
	if err != nil {
		return err
	}
	*c.ptr = rv.Interface().(T)
	return nil
}

// fieldCell wraps an addressable struct field.
type fieldCell struct {
	field reflect.Value
}

func (c fieldCell) Get() any {
	return c.field.Interface()
}

func (c fieldCell) Set(v any) error {
	rv, err := convertValue(reflect.ValueOf(v), c.field.Type())
	if err != nil {
		return err
	}
	c.field.Set(rv)
	return nil
}

type funcCell struct {
	get func() any
	set func(any) error
}

// Func builds a cell from accessor functions. A nil set makes the cell
// read-only.
func Func(get func() any, set func(any) error) ValueCell {
	return funcCell{get: get, set: set}
}

func (c funcCell) Get() any {
	return c.get()
}

func (c funcCell) Set(v any) error {
	if c.set == nil {
		return fmt.Errorf("read-only value")
	}
	return c.set(v)
}

// Store is a plain map of values, used for untyped configurations.
type Store map[string]any

// Cell returns a cell bound to key in the store.
func (s Store) Cell(key string) ValueCell {
	return storeCell{store: s, key: key}
}

type storeCell struct {
	store Store
	key   string
}

func (c storeCell) Get() any {
	return c.store[c.key]
}

func (c storeCell) Set(v any) error {
	c.store[c.key] = v
	return nil
}
