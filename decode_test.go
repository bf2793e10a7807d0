// FILE: lixenwraith/simpleconfig/decode_test.go
package simpleconfig

import (
	"net"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScan tests snapshot decoding into a separate struct
func TestScan(t *testing.T) {
	s := defaultSettings()
	cfg := NewWithOptions(filepath.Join(t.TempDir(), "test.conf"), s.items(), Options{})

	var snapshot struct {
		Greeting string         `conf:"testString"`
		Count    int64          `conf:"testInt"`
		Marker   Char           `conf:"testChar"`
		Words    []string       `conf:"testList"`
		Weights  map[string]int `conf:"testMap"`
		Timeout  time.Duration  `conf:"testTimeout"`
		Missing  string         `conf:"notDeclared"`
	}
	snapshot.Missing = "stale"

	require.NoError(t, cfg.Scan(&snapshot))
	assert.Equal(t, "Hello World", snapshot.Greeting)
	assert.Equal(t, int64(42), snapshot.Count)
	assert.Equal(t, Char('~'), snapshot.Marker)
	assert.Equal(t, []string{"Hello", "World"}, snapshot.Words)
	assert.Equal(t, map[string]int{"Hello": 1}, snapshot.Weights)
	assert.Equal(t, 30*time.Second, snapshot.Timeout)
	assert.Equal(t, "stale", snapshot.Missing)

	require.NoError(t, cfg.Apply("testInt", "7"))
	assert.Equal(t, int64(42), snapshot.Count)

	t.Run("InvalidTarget", func(t *testing.T) {
		assert.Error(t, cfg.Scan(snapshot))
		assert.Error(t, cfg.Scan(nil))
	})
}

// TestScanNetworkTypes tests the network decode hooks
func TestScanNetworkTypes(t *testing.T) {
	ip, endpoint := "192.168.1.1", "https://example.org/api"
	cfg := NewWithOptions(filepath.Join(t.TempDir(), "net.conf"), []Item{
		ItemOf("ip", &ip),
		ItemOf("endpoint", &endpoint),
	}, Options{})

	var target struct {
		IP       net.IP   `conf:"ip"`
		Endpoint *url.URL `conf:"endpoint"`
	}
	require.NoError(t, cfg.Scan(&target))
	assert.Equal(t, "192.168.1.1", target.IP.String())
	require.NotNil(t, target.Endpoint)
	assert.Equal(t, "example.org", target.Endpoint.Host)

	ip = "not-an-ip"
	assert.Error(t, cfg.Scan(&target))
}
