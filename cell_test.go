// FILE: lixenwraith/simpleconfig/cell_test.go
package simpleconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRefCell tests cells backed by variables
func TestRefCell(t *testing.T) {
	t.Run("ExactType", func(t *testing.T) {
		var n int32
		cell := Ref(&n)
		require.NoError(t, cell.Set(int32(5)))
		assert.Equal(t, int32(5), n)
		assert.Equal(t, int32(5), cell.Get())
	})

	t.Run("ConvertsCompatibleValues", func(t *testing.T) {
		var list []int
		require.NoError(t, Ref(&list).Set([]int64{1, 2}))
		assert.Equal(t, []int{1, 2}, list)

		var m map[string]float64
		require.NoError(t, Ref(&m).Set(map[string]float32{"a": 0.5}))
		assert.Equal(t, map[string]float64{"a": 0.5}, m)
	})

	t.Run("RejectsIncompatibleValues", func(t *testing.T) {
		n := int8(3)
		assert.Error(t, Ref(&n).Set(int64(1000)))
		assert.Error(t, Ref(&n).Set("3"))
		assert.Equal(t, int8(3), n)
	})
}

// TestFuncCell tests accessor-backed cells
func TestFuncCell(t *testing.T) {
	value := "a"
	cell := Func(func() any { return value }, func(v any) error {
		value = v.(string)
		return nil
	})
	require.NoError(t, cell.Set("b"))
	assert.Equal(t, "b", cell.Get())

	readOnly := Func(func() any { return 1 }, nil)
	assert.Equal(t, 1, readOnly.Get())
	assert.Error(t, readOnly.Set(2))
}

// TestStoreCell tests map-backed cells
func TestStoreCell(t *testing.T) {
	store := Store{}
	cell := store.Cell("k")
	assert.Nil(t, cell.Get())

	require.NoError(t, cell.Set([]any{"x"}))
	assert.Equal(t, []any{"x"}, store["k"])
	assert.Equal(t, []any{"x"}, cell.Get())
}
