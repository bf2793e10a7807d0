// FILE: lixenwraith/simpleconfig/convenience.go
package simpleconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Quick builds a Config for path from the fields of the struct target points
// to, with default options. The struct's current field values are the
// defaults; the file, when present, overrides them in place.
func Quick(path string, target any) (*Config, error) {
	items, err := Discover(target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to discover items: %w", err)
	}
	return New(path, items), nil
}

// MustQuick is like Quick but panics on error
func MustQuick(path string, target any) *Config {
	cfg, err := Quick(path, target)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return cfg
}

// Format selects the document format used by Export.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a name such as "yml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q", name)
}

// Export writes the current values as a standalone document. Unresolved
// entries are left out; an entry that fails to encode aborts the export.
func (c *Config) Export(w io.Writer, format Format) error {
	values, err := c.Values()
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(values)

	case FormatTOML:
		return toml.NewEncoder(w).Encode(nativeTree(values))

	case FormatYAML:
		doc, err := c.yamlDocument(values)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("unsupported export format %q", format)
}

// yamlDocument builds a mapping in declaration order, carrying section
// banners and comments as head comments.
func (c *Config) yamlDocument(values map[string]any) (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range c.entries {
		node, ok := values[e.Key]
		if !ok {
			continue
		}

		var head []string
		if e.Section != "" {
			head = append(head, Banner(e.Section)...)
		}
		if e.Comment != "" {
			head = append(head, Comment(e.Comment)...)
		}

		key := &yaml.Node{
			Kind:        yaml.ScalarNode,
			Value:       e.Key,
			HeadComment: strings.Join(head, "\n"),
		}
		value := &yaml.Node{}
		if err := value.Encode(nativeTree(node)); err != nil {
			return nil, fmt.Errorf("config entry %q: %w", e.Key, err)
		}
		mapping.Content = append(mapping.Content, key, value)
	}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}}, nil
}

// Debug returns a formatted string showing every entry, its type and value
func (c *Config) Debug() string {
	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	b.WriteString(fmt.Sprintf("File: %s\n", c.path))
	b.WriteString(fmt.Sprintf("State: %s (from file: %t, defaults only: %t)\n", c.state, c.fromFile, c.defaultsOnly))
	b.WriteString(fmt.Sprintf("Registry: %d kinds\n", c.registry.Kinds()))
	b.WriteString("Entries:\n")

	for _, e := range c.entries {
		b.WriteString(fmt.Sprintf("  %s:\n", e.Key))
		b.WriteString(fmt.Sprintf("    Type: %s\n", e.Type))
		if e.Section != "" {
			b.WriteString(fmt.Sprintf("    Section: %s\n", e.Section))
		}
		if !e.Resolved() {
			b.WriteString("    Codec: none\n")
			continue
		}
		text, err := e.text(c.transcoder)
		if err != nil {
			b.WriteString(fmt.Sprintf("    Error: %v\n", err))
			continue
		}
		b.WriteString(fmt.Sprintf("    Value: %s\n", text))
	}

	return b.String()
}
