// Untyped loading of arbitrary config files.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/simpleconfig"
)

// document is an untyped view of one config file.
type document struct {
	cfg    *simpleconfig.Config
	store  simpleconfig.Store
	logger *countingLogger
}

// openDocument declares one raw entry per key found in path, keeping the
// comments and banners found above each key, and reads the file.
func openDocument(path string) (*document, error) {
	tr, err := simpleconfig.TranscoderByName(settings.GetString(cfgKeySyntax))
	if err != nil {
		return nil, err
	}

	store := simpleconfig.Store{}
	items, err := scanItems(path, store)
	if err != nil {
		return nil, err
	}

	logger := newLogger()
	cfg := simpleconfig.NewWithOptions(path, items, simpleconfig.Options{
		Logger:     logger,
		Transcoder: tr,
		SaveOnLoad: false,
	})
	if cfg.DefaultsOnly() {
		return nil, fmt.Errorf("cannot read %s", path)
	}
	return &document{cfg: cfg, store: store, logger: logger}, nil
}

// scanItems builds raw items for the keys in path in file order.
func scanItems(path string, store simpleconfig.Store) ([]simpleconfig.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var (
		items   []simpleconfig.Item
		seen    = make(map[string]bool)
		pending []string
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		key, _, ok := simpleconfig.ParseLine(line)
		if !ok {
			switch {
			case trimmed == "":
				pending = nil
			case strings.HasPrefix(trimmed, "#"):
				text := strings.TrimPrefix(trimmed, "#")
				pending = append(pending, strings.TrimPrefix(text, " "))
			}
			continue
		}

		if !seen[key] {
			seen[key] = true
			items = append(items, simpleconfig.Item{
				Key:        key,
				Type:       simpleconfig.OpaqueType("raw"),
				Decoration: decorationOf(pending),
				Codec:      simpleconfig.Raw,
				Cell:       store.Cell(key),
			})
		}
		pending = nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return items, nil
}

// decorationOf splits comment lines into a leading banner and a comment.
func decorationOf(lines []string) simpleconfig.Decoration {
	var deco simpleconfig.Decoration
	if len(lines) >= 3 && isRule(lines[0]) && lines[2] == lines[0] &&
		utf8.RuneCountInString(lines[1]) == len(lines[0]) {
		deco.Section = lines[1]
		lines = lines[3:]
	}
	deco.Comment = strings.Join(lines, "\n")
	return deco
}

func isRule(s string) bool {
	return s != "" && strings.Trim(s, "=") == ""
}
