// FILE: lixenwraith/simpleconfig/discovery_test.go
package simpleconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Network struct {
	Host string `conf:"host" section:"Network"`
	Port int16  `conf:"port"`
}

type discoveryTarget struct {
	Network
	Name     string `conf:"name" comment:"first line\nsecond line"`
	Plain    float32
	Labels   map[string]string `conf:"labels,omitempty"`
	Owner    testRecord        `conf:"owner"`
	Skipped  string            `conf:"-"`
	internal int
}

// TestDiscover tests item declaration from struct fields
func TestDiscover(t *testing.T) {
	target := &discoveryTarget{Name: "app", Network: Network{Host: "localhost", Port: 80}, internal: 1}

	items, err := Discover(target, NewRegistry())
	require.NoError(t, err)

	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.Key
	}
	assert.Equal(t, []string{"host", "port", "name", "Plain", "labels", "owner"}, keys)

	assert.Equal(t, "Network", items[0].Section)
	assert.Equal(t, PrimitiveType("int16"), items[1].Type)
	assert.Equal(t, "first line\nsecond line", items[2].Comment)
	assert.Equal(t, PrimitiveType("float32"), items[3].Type)
	assert.Equal(t, MapType("string", "string"), items[4].Type)
	assert.Equal(t, OpaqueType("testrecord"), items[5].Type)

	t.Run("CellsWriteIntoStruct", func(t *testing.T) {
		require.NoError(t, items[0].Cell.Set("example.org"))
		assert.Equal(t, "example.org", target.Host)

		require.NoError(t, items[1].Cell.Set(int64(8080)))
		assert.Equal(t, int16(8080), target.Port)
		assert.Equal(t, int16(8080), items[1].Cell.Get())

		assert.Error(t, items[1].Cell.Set(int64(1<<20)))
		assert.Error(t, items[2].Cell.Set(42))
	})

	t.Run("RegisteredKindIsNamed", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("testrecord", StructCodec[testRecord]())
		items, err := Discover(&discoveryTarget{}, reg)
		require.NoError(t, err)
		assert.Equal(t, OpaqueType("testrecord"), items[5].Type)
		assert.NotNil(t, reg.Resolve(items[5].Type))
	})
}

// TestDiscoverInvalidTargets tests rejection of non-struct targets
func TestDiscoverInvalidTargets(t *testing.T) {
	var nilTarget *discoveryTarget
	number := 5

	for name, target := range map[string]any{
		"NotAPointer":        discoveryTarget{},
		"NilPointer":         nilTarget,
		"PointerToNonStruct": &number,
		"Nil":                nil,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Discover(target, nil)
			assert.Error(t, err)
		})
	}
}
