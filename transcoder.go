// FILE: lixenwraith/simpleconfig/transcoder.go
package simpleconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Transcoder converts interchange values to and from the single-line literal
// stored after "key=" in the config file.
type Transcoder interface {
	// EncodeOutput renders an interchange value as a literal without raw newlines.
	EncodeOutput(node any) (string, error)
	// DecodeInput parses a literal. It reports false on malformed input and
	// never panics.
	DecodeInput(text string) (any, bool)
}

// JSON is the default transcoder. Values are stored as JSON literals.
var JSON Transcoder = jsonTranscoder{}

type jsonTranscoder struct{}

func (jsonTranscoder) EncodeOutput(node any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(node); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (jsonTranscoder) DecodeInput(text string) (any, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, false
	}
	// Reject trailing tokens such as "1 2"
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return node, true
}

// TranscoderByName returns the transcoder for "json", "yaml" or "hcl".
func TranscoderByName(name string) (Transcoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAMLFlow, nil
	case "hcl":
		return HCL, nil
	}
	return nil, fmt.Errorf("unknown value syntax %q (want json, yaml or hcl)", name)
}
