// FILE: lixenwraith/simpleconfig/descriptor.go
package simpleconfig

import (
	"reflect"
	"strings"
)

// Shape is the structural category of a declared value.
type Shape int

const (
	// ShapeOpaque values need a registered kind or an explicit codec.
	ShapeOpaque Shape = iota
	ShapePrimitive
	ShapeList
	ShapeMap
	ShapePair
)

// String returns the lower-case shape name.
func (s Shape) String() string {
	switch s {
	case ShapePrimitive:
		return "primitive"
	case ShapeList:
		return "list"
	case ShapeMap:
		return "map"
	case ShapePair:
		return "pair"
	default:
		return "opaque"
	}
}

// TypeDescriptor is the normalized shape of a declared value's static type.
// Name carries the kind for primitive and opaque shapes, Params carries the
// component kinds for list (1), map (2) and pair (2) shapes.
type TypeDescriptor struct {
	Shape  Shape
	Name   string
	Params []string
}

// PrimitiveType describes a primitive kind such as "int32" or "string".
func PrimitiveType(kind string) TypeDescriptor {
	return TypeDescriptor{Shape: ShapePrimitive, Name: strings.ToLower(kind)}
}

// ListType describes a list of elem.
func ListType(elem string) TypeDescriptor {
	return TypeDescriptor{Shape: ShapeList, Name: "list", Params: []string{strings.ToLower(elem)}}
}

// MapType describes a map from key to value.
func MapType(key, value string) TypeDescriptor {
	return TypeDescriptor{Shape: ShapeMap, Name: "map", Params: []string{strings.ToLower(key), strings.ToLower(value)}}
}

// PairType describes a pair of first and second.
func PairType(first, second string) TypeDescriptor {
	return TypeDescriptor{Shape: ShapePair, Name: "pair", Params: []string{strings.ToLower(first), strings.ToLower(second)}}
}

// OpaqueType describes a type that is resolved by name only.
func OpaqueType(name string) TypeDescriptor {
	return TypeDescriptor{Shape: ShapeOpaque, Name: strings.ToLower(name)}
}

// String renders the descriptor as e.g. "map<string,int32>".
func (d TypeDescriptor) String() string {
	if len(d.Params) == 0 {
		if d.Name == "" {
			return d.Shape.String()
		}
		return d.Name
	}
	return d.Name + "<" + strings.Join(d.Params, ",") + ">"
}

// ParseType classifies a declared type name. Matching is case-insensitive and
// keyword based: a name containing "map" with two parameters is a map, "pair"
// with two parameters a pair, "list" (or a Go "[]" prefix) with one parameter a
// list. Java-style "Map<String,Integer>" and Go-style "map[string]int" are both
// accepted. Package qualifiers are dropped from every component.
func ParseType(decl string) TypeDescriptor {
	name := strings.ToLower(strings.TrimSpace(decl))
	base, params := splitParams(name)
	for i, p := range params {
		params[i] = canonicalKind(p)
	}

	switch {
	case strings.Contains(base, "map") && len(params) == 2:
		return MapType(params[0], params[1])
	case strings.Contains(base, "pair") && len(params) == 2:
		return PairType(params[0], params[1])
	case (strings.Contains(base, "list") || base == "[]") && len(params) == 1:
		return ListType(params[0])
	}

	base = unqualify(base)
	if _, ok := builtinKinds[base]; ok {
		return PrimitiveType(canonicalKind(base))
	}
	return OpaqueType(base)
}

// splitParams separates the base name from its generic parameters.
func splitParams(name string) (string, []string) {
	// Go slice: []T
	if strings.HasPrefix(name, "[]") {
		return "[]", []string{unqualify(name[2:])}
	}

	// Go map: map[K]V
	if strings.HasPrefix(name, "map[") {
		if end := strings.IndexByte(name, ']'); end > 0 {
			return "map", []string{unqualify(name[4:end]), unqualify(name[end+1:])}
		}
	}

	// Generic syntax: Base<A,B>
	open := strings.IndexByte(name, '<')
	if open < 0 || !strings.HasSuffix(name, ">") {
		return name, nil
	}
	base := strings.TrimSpace(name[:open])
	inner := name[open+1 : len(name)-1]
	var params []string
	for _, p := range strings.Split(inner, ",") {
		params = append(params, unqualify(p))
	}
	return base, params
}

// unqualify trims space and drops a package prefix ("java.lang.Integer" -> "integer").
func unqualify(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// pairMarker is implemented by Pair so descriptors can be derived from Go types.
type pairMarker interface {
	pairComponents() (reflect.Type, reflect.Type)
}

var (
	charType       = reflect.TypeFor[Char]()
	pairMarkerType = reflect.TypeFor[pairMarker]()
)

// DescribeType derives a descriptor from a Go type. known reports whether a
// named kind is registered; named types with a registered lower-case name are
// resolved by that name before falling back to their underlying kind.
func DescribeType(t reflect.Type, known func(kind string) bool) TypeDescriptor {
	if known == nil {
		known = func(string) bool { return false }
	}

	if t.Implements(pairMarkerType) {
		first, second := reflect.Zero(t).Interface().(pairMarker).pairComponents()
		return PairType(kindName(first, known), kindName(second, known))
	}

	name := kindName(t, known)
	if _, ok := builtinKinds[name]; ok {
		return PrimitiveType(name)
	}
	if known(name) {
		return OpaqueType(name)
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return ListType(kindName(t.Elem(), known))
	case reflect.Map:
		return MapType(kindName(t.Key(), known), kindName(t.Elem(), known))
	}
	return OpaqueType(name)
}

// kindName returns the registry kind name for a Go type.
func kindName(t reflect.Type, known func(string) bool) string {
	if t == charType {
		return "char"
	}

	// Named types registered by name win over their underlying kind
	if t.Name() != "" && t.PkgPath() != "" {
		if name := strings.ToLower(t.Name()); known(name) {
			return name
		}
	}

	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int64:
		return "int64"
	case reflect.Int32:
		return "int32"
	case reflect.Int16:
		return "int16"
	case reflect.Int8:
		return "int8"
	case reflect.Float64:
		return "float64"
	case reflect.Float32:
		return "float32"
	}

	if t.Name() != "" {
		return strings.ToLower(t.Name())
	}
	return t.String()
}
