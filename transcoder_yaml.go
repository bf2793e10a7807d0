// FILE: lixenwraith/simpleconfig/transcoder_yaml.go
package simpleconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// YAMLFlow stores values as YAML flow-style literals, e.g. [1, 2, 3] or
// {host: example.org, port: 80}. Strings are only quoted when needed.
var YAMLFlow Transcoder = yamlTranscoder{}

type yamlTranscoder struct{}

func (t yamlTranscoder) EncodeOutput(node any) (string, error) {
	out, err := yaml.MarshalWithOptions(nativeTree(node), yaml.Flow(true))
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(out))
	if !strings.ContainsAny(text, "\r\n") {
		if back, ok := t.DecodeInput(text); ok && reflect.DeepEqual(back, node) {
			return text, nil
		}
	}

	// Bare scalars such as .inf or yes read back as other types; quote every
	// string instead. A JSON string is a valid double-quoted YAML scalar.
	text, err = quotedFlow(node)
	if err != nil {
		return "", err
	}
	if strings.ContainsAny(text, "\r\n") {
		return "", fmt.Errorf("yaml literal spans multiple lines")
	}
	return text, nil
}

func (yamlTranscoder) DecodeInput(text string) (any, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	var raw any
	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, false
	}
	node, err := normalizeNode(raw)
	if err != nil {
		return nil, false
	}
	return node, true
}

// quotedFlow renders an interchange tree as a flow literal with every string
// double-quoted.
func quotedFlow(node any) (string, error) {
	switch v := node.(type) {
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(v), nil
	case json.Number:
		return v.String(), nil
	case string:
		return quoteScalar(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			s, err := quotedFlow(elem)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			key, err := quoteScalar(k)
			if err != nil {
				return "", err
			}
			val, err := quotedFlow(v[k])
			if err != nil {
				return "", err
			}
			parts = append(parts, key+": "+val)
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	default:
		return "", fmt.Errorf("unsupported node type %T", node)
	}
}

func quoteScalar(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
