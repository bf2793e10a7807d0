// FILE: lixenwraith/simpleconfig/composite_test.go
package simpleconfig

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestListCodec tests ordered sequences
func TestListCodec(t *testing.T) {
	codec := ListOf(Int32)

	t.Run("RoundTrip", func(t *testing.T) {
		node, err := codec.Encode([]int32{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, []any{json.Number("1"), json.Number("2"), json.Number("3")}, node)

		v, err := codec.Decode(node)
		require.NoError(t, err)
		assert.Equal(t, []int32{1, 2, 3}, v)
	})

	t.Run("ConvertsElements", func(t *testing.T) {
		node, err := codec.Encode([]int{4, 5})
		require.NoError(t, err)
		assert.Equal(t, []any{json.Number("4"), json.Number("5")}, node)
	})

	t.Run("NilEncodesEmpty", func(t *testing.T) {
		node, err := codec.Encode([]int32(nil))
		require.NoError(t, err)
		assert.Equal(t, []any{}, node)
	})

	t.Run("DecodeReturnsFreshSlice", func(t *testing.T) {
		node := []any{json.Number("1")}
		first, err := codec.Decode(node)
		require.NoError(t, err)
		second, err := codec.Decode(node)
		require.NoError(t, err)

		first.([]int32)[0] = 99
		assert.Equal(t, []int32{1}, second)
	})

	t.Run("BadElement", func(t *testing.T) {
		_, err := codec.Decode([]any{json.Number("1"), "two"})
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("NotAnArray", func(t *testing.T) {
		_, err := codec.Decode(map[string]any{})
		assert.ErrorIs(t, err, ErrDecode)
	})
}

// TestMapCodec tests maps with string and non-string keys
func TestMapCodec(t *testing.T) {
	t.Run("StringKeys", func(t *testing.T) {
		codec := MapOf(String, Int32)
		in := map[string]int32{"Hello": 1, "World": 2}

		node, err := codec.Encode(in)
		require.NoError(t, err)
		want := map[string]any{"Hello": json.Number("1"), "World": json.Number("2")}
		if diff := cmp.Diff(want, node); diff != "" {
			t.Errorf("encoded map mismatch (-want +got):\n%s", diff)
		}

		v, err := codec.Decode(node)
		require.NoError(t, err)
		assert.Equal(t, in, v)
	})

	t.Run("NumericKeys", func(t *testing.T) {
		codec := MapOf(Int64, Bool)
		in := map[int64]bool{1: true, 20: false}

		node, err := codec.Encode(in)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"1": true, "20": false}, node)

		v, err := codec.Decode(node)
		require.NoError(t, err)
		assert.Equal(t, in, v)
	})

	t.Run("BoolKeys", func(t *testing.T) {
		codec := MapOf(Bool, String)
		v, err := codec.Decode(map[string]any{"true": "yes"})
		require.NoError(t, err)
		assert.Equal(t, map[bool]string{true: "yes"}, v)
	})

	t.Run("BadKey", func(t *testing.T) {
		codec := MapOf(Int32, String)
		_, err := codec.Decode(map[string]any{"one": "x"})
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("NilEncodesEmpty", func(t *testing.T) {
		node, err := MapOf(String, String).Encode(map[string]string(nil))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, node)
	})
}

// TestPairCodec tests two-element pairs
func TestPairCodec(t *testing.T) {
	codec := PairOf(String, Int64)

	node, err := codec.Encode(MakePair("answer", int64(42)))
	require.NoError(t, err)
	assert.Equal(t, []any{"answer", json.Number("42")}, node)

	v, err := codec.Decode(node)
	require.NoError(t, err)

	var pair Pair[string, int64]
	require.NoError(t, Ref(&pair).Set(v))
	assert.Equal(t, MakePair("answer", int64(42)), pair)

	t.Run("ConvertsIntoWiderHostType", func(t *testing.T) {
		var host Pair[string, int]
		require.NoError(t, Ref(&host).Set(v))
		assert.Equal(t, MakePair("answer", 42), host)
	})

	t.Run("WrongLength", func(t *testing.T) {
		_, err := codec.Decode([]any{"only"})
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("NotAPair", func(t *testing.T) {
		_, err := codec.Encode("answer")
		assert.ErrorIs(t, err, ErrEncode)
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "(answer, 42)", MakePair("answer", 42).String())
	})
}

type testRecord struct {
	Name    string        `conf:"name"`
	Age     int32         `conf:"age"`
	Timeout time.Duration `conf:"timeout"`
}

// TestStructCodec tests records stored as objects
func TestStructCodec(t *testing.T) {
	codec := StructCodec[testRecord]()
	in := testRecord{Name: "John Doe", Age: 42, Timeout: time.Second}

	node, err := codec.Encode(in)
	require.NoError(t, err)
	want := map[string]any{
		"name":    "John Doe",
		"age":     json.Number("42"),
		"timeout": json.Number("1000000000"),
	}
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("encoded record mismatch (-want +got):\n%s", diff)
	}

	v, err := codec.Decode(node)
	require.NoError(t, err)
	assert.Equal(t, in, v)

	t.Run("DurationString", func(t *testing.T) {
		v, err := codec.Decode(map[string]any{"name": "x", "age": json.Number("1"), "timeout": "2s"})
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, v.(testRecord).Timeout)
	})

	t.Run("MissingField", func(t *testing.T) {
		_, err := codec.Decode(map[string]any{"name": "John Doe"})
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("NotAnObject", func(t *testing.T) {
		_, err := codec.Decode([]any{})
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("NotAStruct", func(t *testing.T) {
		_, err := codec.Encode(42)
		assert.ErrorIs(t, err, ErrEncode)
	})
}
