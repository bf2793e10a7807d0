// FILE: lixenwraith/simpleconfig/transcoder_hcl.go
package simpleconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// HCL stores values as HCL expression literals, e.g. ["a", "b"] or
// {host = "example.org", port = 80}. Only constant expressions are accepted;
// anything referencing variables or functions is rejected.
var HCL Transcoder = hclTranscoder{}

type hclTranscoder struct{}

// hclKeywords cannot be used as bare object keys.
var hclKeywords = map[string]bool{
	"true": true, "false": true, "null": true,
	"for": true, "in": true, "if": true,
}

func (hclTranscoder) EncodeOutput(node any) (string, error) {
	if node == nil {
		return "null", nil
	}

	data, err := json.Marshal(node)
	if err != nil {
		return "", err
	}
	typ, err := ctyjson.ImpliedType(data)
	if err != nil {
		return "", err
	}
	val, err := ctyjson.Unmarshal(data, typ)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	renderHCL(&buf, val)
	return buf.String(), nil
}

// renderHCL writes v as a single-line HCL expression.
func renderHCL(buf *strings.Builder, v cty.Value) {
	if v.IsNull() {
		buf.WriteString("null")
		return
	}

	t := v.Type()
	switch {
	case t.IsObjectType() || t.IsMapType():
		buf.WriteByte('{')
		first := true
		for it := v.ElementIterator(); it.Next(); {
			k, elem := it.Element()
			if !first {
				buf.WriteString(", ")
			}
			first = false

			name := k.AsString()
			if hclsyntax.ValidIdentifier(name) && !hclKeywords[name] {
				buf.WriteString(name)
			} else {
				buf.Write(hclwrite.TokensForValue(cty.StringVal(name)).Bytes())
			}
			buf.WriteString(" = ")
			renderHCL(buf, elem)
		}
		buf.WriteByte('}')

	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		buf.WriteByte('[')
		first := true
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			if !first {
				buf.WriteString(", ")
			}
			first = false
			renderHCL(buf, elem)
		}
		buf.WriteByte(']')

	default:
		buf.Write(hclwrite.TokensForValue(v).Bytes())
	}
}

func (hclTranscoder) DecodeInput(text string) (any, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	expr, diags := hclsyntax.ParseExpression([]byte(text), "value", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, false
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() || !val.IsWhollyKnown() {
		return nil, false
	}
	if val.IsNull() {
		return nil, true
	}

	node, err := ctyToNode(val)
	if err != nil {
		return nil, false
	}
	return node, true
}

// ctyToNode converts a cty value into an interchange value through its JSON form.
func ctyToNode(val cty.Value) (any, error) {
	data, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return nil, fmt.Errorf("hcl value: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, fmt.Errorf("hcl value: %w", err)
	}
	return node, nil
}
