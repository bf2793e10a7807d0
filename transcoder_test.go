// FILE: lixenwraith/simpleconfig/transcoder_test.go
package simpleconfig

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleNodes are interchange values every transcoder must round trip.
var sampleNodes = map[string]any{
	"String":  "Hello World",
	"Bool":    true,
	"Integer": json.Number("42"),
	"Float":   json.Number("3.14"),
	"List":    []any{json.Number("1"), json.Number("2"), json.Number("3")},
	"Map":     map[string]any{"host": "example.org", "port": json.Number("80")},
	"Nested":  map[string]any{"tags": []any{"a", "b"}, "on": false},
	"Empty":   []any{},
}

// TestTranscoderRoundTrip tests decode(encode(node)) == node for each syntax
func TestTranscoderRoundTrip(t *testing.T) {
	transcoders := map[string]Transcoder{"JSON": JSON, "YAML": YAMLFlow, "HCL": HCL}

	for trName, tr := range transcoders {
		for nodeName, node := range sampleNodes {
			t.Run(trName+"/"+nodeName, func(t *testing.T) {
				text, err := tr.EncodeOutput(node)
				require.NoError(t, err)
				assert.NotContains(t, text, "\n")

				got, ok := tr.DecodeInput(text)
				require.True(t, ok, "literal %q did not decode", text)
				if diff := cmp.Diff(node, got); diff != "" {
					t.Errorf("round trip of %q mismatch (-want +got):\n%s", text, diff)
				}
			})
		}
	}
}

// TestJSONTranscoder tests the default literal syntax
func TestJSONTranscoder(t *testing.T) {
	t.Run("Compact", func(t *testing.T) {
		text, err := JSON.EncodeOutput([]any{json.Number("1"), json.Number("2"), json.Number("3")})
		require.NoError(t, err)
		assert.Equal(t, "[1,2,3]", text)
	})

	t.Run("NoHTMLEscaping", func(t *testing.T) {
		text, err := JSON.EncodeOutput("<a&b>")
		require.NoError(t, err)
		assert.Equal(t, `"<a&b>"`, text)
	})

	t.Run("EscapedNewline", func(t *testing.T) {
		text, err := JSON.EncodeOutput("line1\nline2")
		require.NoError(t, err)
		assert.Equal(t, `"line1\nline2"`, text)
	})

	t.Run("NumbersStayLiteral", func(t *testing.T) {
		node, ok := JSON.DecodeInput("1201136465")
		require.True(t, ok)
		assert.Equal(t, json.Number("1201136465"), node)
	})

	t.Run("Null", func(t *testing.T) {
		node, ok := JSON.DecodeInput("null")
		require.True(t, ok)
		assert.Nil(t, node)
	})

	malformed := []string{"", "   ", "[1,2,", "{", "1 2", "notjson", `"unterminated`}
	for _, text := range malformed {
		t.Run("Malformed/"+text, func(t *testing.T) {
			_, ok := JSON.DecodeInput(text)
			assert.False(t, ok)
		})
	}
}

// TestYAMLFlowTranscoder tests the YAML flow syntax
func TestYAMLFlowTranscoder(t *testing.T) {
	node, ok := YAMLFlow.DecodeInput("{host: example.org, port: 80}")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"host": "example.org", "port": json.Number("80")}, node)

	node, ok = YAMLFlow.DecodeInput("[1, two, 3.5]")
	require.True(t, ok)
	assert.Equal(t, []any{json.Number("1"), "two", json.Number("3.5")}, node)

	_, ok = YAMLFlow.DecodeInput("")
	assert.False(t, ok)
	_, ok = YAMLFlow.DecodeInput("[1, 2")
	assert.False(t, ok)
}

// TestHCLTranscoder tests the HCL expression syntax
func TestHCLTranscoder(t *testing.T) {
	t.Run("Object", func(t *testing.T) {
		text, err := HCL.EncodeOutput(map[string]any{"host": "example.org", "port": json.Number("80")})
		require.NoError(t, err)
		assert.Equal(t, `{host = "example.org", port = 80}`, text)
	})

	t.Run("QuotedKeys", func(t *testing.T) {
		text, err := HCL.EncodeOutput(map[string]any{"my key": true, "for": false})
		require.NoError(t, err)
		assert.Equal(t, `{"for" = false, "my key" = true}`, text)
	})

	t.Run("Tuple", func(t *testing.T) {
		text, err := HCL.EncodeOutput([]any{"a", json.Number("1")})
		require.NoError(t, err)
		assert.Equal(t, `["a", 1]`, text)
	})

	t.Run("Null", func(t *testing.T) {
		text, err := HCL.EncodeOutput(nil)
		require.NoError(t, err)
		assert.Equal(t, "null", text)

		node, ok := HCL.DecodeInput("null")
		require.True(t, ok)
		assert.Nil(t, node)
	})

	t.Run("RejectsVariables", func(t *testing.T) {
		_, ok := HCL.DecodeInput("var.port")
		assert.False(t, ok)
	})

	t.Run("RejectsFunctions", func(t *testing.T) {
		_, ok := HCL.DecodeInput(`upper("x")`)
		assert.False(t, ok)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, ok := HCL.DecodeInput("[1, 2,")
		assert.False(t, ok)
		_, ok = HCL.DecodeInput("")
		assert.False(t, ok)
	})
}

// TestTranscoderByName tests syntax selection by name
func TestTranscoderByName(t *testing.T) {
	for name, want := range map[string]Transcoder{
		"":     JSON,
		"json": JSON,
		"YAML": YAMLFlow,
		"yml":  YAMLFlow,
		"hcl":  HCL,
	} {
		got, err := TranscoderByName(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := TranscoderByName("toml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "toml"))
}

// TestYAMLFlowQuotesAmbiguousStrings tests strings that YAML would read back as
// other types
func TestYAMLFlowQuotesAmbiguousStrings(t *testing.T) {
	nodes := []any{
		".inf",
		"-.inf",
		".nan",
		".NaN",
		".Inf",
		"true",
		"null",
		"123",
		[]any{".nan", "a, b", "x]"},
		map[string]any{".inf": "yes", "key": ".NaN"},
	}

	for _, node := range nodes {
		text, err := YAMLFlow.EncodeOutput(node)
		require.NoError(t, err)
		assert.NotContains(t, text, "\n")

		back, ok := YAMLFlow.DecodeInput(text)
		require.True(t, ok, "literal %q did not decode", text)
		if diff := cmp.Diff(node, back); diff != "" {
			t.Errorf("round trip of %q mismatch (-want +got):\n%s", text, diff)
		}
	}

	t.Run("PlainStringsStayBare", func(t *testing.T) {
		text, err := YAMLFlow.EncodeOutput([]any{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, "[a, b]", text)
	})
}
