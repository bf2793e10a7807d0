// FILE: lixenwraith/simpleconfig/discovery.go
package simpleconfig

import (
	"fmt"
	"reflect"
	"strings"
)

// Discover declares one item per exported field of the struct target points
// to, in field order. Field cells write straight into the struct.
//
// Tags:
//
//	conf:"key"        entry key; "-" skips the field, empty uses the field name
//	section:"Title"   section banner before the entry
//	comment:"text"    comment before the entry; "\n" starts a new line
//
// Embedded structs without a conf tag are flattened. Other struct fields are
// declared as opaque kinds named after their type, so they need a registered
// kind or a codec override.
func Discover(target any, registry *Registry) ([]Item, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, fmt.Errorf("discovery requires a non-nil struct pointer, got %T", target)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("discovery requires a struct pointer, got %T", target)
	}
	if registry == nil {
		registry = DefaultRegistry()
	}

	var items []Item
	discoverFields(v, registry, &items)
	return items, nil
}

// discoverFields appends items for the fields of v, recursing into embedded
// structs.
func discoverFields(v reflect.Value, registry *Registry, items *[]Item) {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tag, tagged := field.Tag.Lookup("conf")
		if tag == "-" {
			continue
		}

		if field.Anonymous && !tagged && field.Type.Kind() == reflect.Struct {
			discoverFields(fieldValue, registry, items)
			continue
		}

		if !field.IsExported() {
			continue
		}

		key := field.Name
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			key = name
		}

		*items = append(*items, Item{
			Key:  key,
			Type: DescribeType(field.Type, registry.Has),
			Decoration: Decoration{
				Section: field.Tag.Get("section"),
				Comment: strings.ReplaceAll(field.Tag.Get("comment"), `\n`, "\n"),
			},
			Cell: fieldCell{field: fieldValue},
		})
	}
}
