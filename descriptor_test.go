// FILE: lixenwraith/simpleconfig/descriptor_test.go
package simpleconfig

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestParseType tests classification of declared type names
func TestParseType(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want TypeDescriptor
	}{
		{"Boolean", "boolean", PrimitiveType("bool")},
		{"BoxedInteger", "java.lang.Integer", PrimitiveType("int32")},
		{"Int", "int", PrimitiveType("int32")},
		{"Long", "Long", PrimitiveType("int64")},
		{"Short", "short", PrimitiveType("int16")},
		{"Byte", "byte", PrimitiveType("int8")},
		{"Double", "double", PrimitiveType("float64")},
		{"Float", "Float", PrimitiveType("float32")},
		{"Character", "Character", PrimitiveType("char")},
		{"String", "String", PrimitiveType("string")},
		{"GenericList", "List<Integer>", ListType("int32")},
		{"ArrayList", "ArrayList<String>", ListType("string")},
		{"GoSlice", "[]int32", ListType("int32")},
		{"GenericMap", "Map<String, Integer>", MapType("string", "int32")},
		{"HashMap", "HashMap<String,Long>", MapType("string", "int64")},
		{"GoMap", "map[string]bool", MapType("string", "bool")},
		{"Pair", "Pair<String,Long>", PairType("string", "int64")},
		{"Duration", "time.Duration", OpaqueType("duration")},
		{"Record", "TestRecord", OpaqueType("testrecord")},
		{"MapWithoutParams", "Map", OpaqueType("map")},
		{"ListWithTwoParams", "List<A,B>", OpaqueType("list")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseType(tt.decl))
		})
	}
}

// TestDescribeType tests descriptors derived from Go types
func TestDescribeType(t *testing.T) {
	reg := NewRegistry()

	type record struct{ Name string }
	type level int

	tests := []struct {
		name string
		typ  reflect.Type
		want TypeDescriptor
	}{
		{"Bool", reflect.TypeFor[bool](), PrimitiveType("bool")},
		{"String", reflect.TypeFor[string](), PrimitiveType("string")},
		{"Int", reflect.TypeFor[int](), PrimitiveType("int64")},
		{"Int32", reflect.TypeFor[int32](), PrimitiveType("int32")},
		{"Int16", reflect.TypeFor[int16](), PrimitiveType("int16")},
		{"Int8", reflect.TypeFor[int8](), PrimitiveType("int8")},
		{"Float32", reflect.TypeFor[float32](), PrimitiveType("float32")},
		{"Float64", reflect.TypeFor[float64](), PrimitiveType("float64")},
		{"Char", reflect.TypeFor[Char](), PrimitiveType("char")},
		{"NamedInt", reflect.TypeFor[level](), PrimitiveType("int64")},
		{"Duration", reflect.TypeFor[time.Duration](), OpaqueType("duration")},
		{"Slice", reflect.TypeFor[[]int32](), ListType("int32")},
		{"CharSlice", reflect.TypeFor[[]Char](), ListType("char")},
		{"Map", reflect.TypeFor[map[string]float64](), MapType("string", "float64")},
		{"Pair", reflect.TypeFor[Pair[string, int]](), PairType("string", "int64")},
		{"Record", reflect.TypeFor[record](), OpaqueType("record")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeType(tt.typ, reg.Has))
		})
	}

	t.Run("RegisteredNamedType", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("level", Int8)
		assert.Equal(t, OpaqueType("level"), DescribeType(reflect.TypeFor[level](), reg.Has))
	})

	t.Run("NilKnownFallsBackToKind", func(t *testing.T) {
		assert.Equal(t, PrimitiveType("int64"), DescribeType(reflect.TypeFor[time.Duration](), nil))
	})
}

// TestDescriptorString tests descriptor rendering
func TestDescriptorString(t *testing.T) {
	assert.Equal(t, "int32", PrimitiveType("Int32").String())
	assert.Equal(t, "list<string>", ListType("string").String())
	assert.Equal(t, "map<string,int32>", MapType("string", "int32").String())
	assert.Equal(t, "pair<string,int64>", PairType("string", "int64").String())
	assert.Equal(t, "opaque", TypeDescriptor{}.String())
	assert.Equal(t, "map", ShapeMap.String())
}
