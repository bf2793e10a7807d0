package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/simpleconfig"
)

const sampleFile = `# =======
# Network
# =======
# Bind address
host="localhost"
port=8080
port=9090

# stray note
tags=["a","b"]
`

// TestDecorationOf tests banner and comment recovery from comment lines
func TestDecorationOf(t *testing.T) {
	deco := decorationOf([]string{"=======", "Network", "=======", "Bind address"})
	assert.Equal(t, simpleconfig.Decoration{Section: "Network", Comment: "Bind address"}, deco)

	deco = decorationOf([]string{"===", "Network", "==="})
	assert.Equal(t, "", deco.Section)
	assert.Equal(t, "===\nNetwork\n===", deco.Comment)

	assert.Equal(t, simpleconfig.Decoration{}, decorationOf(nil))
}

// TestOpenDocument tests untyped loading and canonical rewriting
func TestOpenDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.conf")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0644))

	doc, err := openDocument(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "port", "tags"}, doc.cfg.Keys())
	assert.Zero(t, doc.logger.problems)

	port, ok := doc.cfg.Get("port")
	require.True(t, ok)
	assert.Equal(t, "9090", port)

	var buf bytes.Buffer
	_, err = doc.cfg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, `# =======
# Network
# =======
# Bind address
host="localhost"
port=9090
# stray note
tags=["a","b"]
`, buf.String())

	t.Run("MissingFile", func(t *testing.T) {
		_, err := openDocument(filepath.Join(t.TempDir(), "missing.conf"))
		assert.Error(t, err)
	})
}
