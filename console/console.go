// FILE: lixenwraith/simpleconfig/console/console.go

// Package console exposes a configuration to an interactive command surface:
// showing and setting values by key, reloading, and suggesting completions.
package console

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Surface is the part of a configuration a console drives.
// *simpleconfig.Config satisfies it.
type Surface interface {
	Keys() []string
	Get(key string) (string, bool)
	TrySet(key, text string) bool
	Reload()
	Write() error
}

// ErrUnknownKey is returned for keys the surface does not declare.
var ErrUnknownKey = errors.New("unknown config key")

// ErrRejected is returned when a value cannot be applied.
var ErrRejected = errors.New("value rejected")

// Helper runs console commands against a Surface.
type Helper struct {
	surface Surface
}

// New creates a Helper for s.
func New(s Surface) *Helper {
	return &Helper{surface: s}
}

// Reload re-reads the configuration file.
func (h *Helper) Reload() {
	h.surface.Reload()
}

// Get returns the current literal for key.
func (h *Helper) Get(key string) (string, bool) {
	return h.surface.Get(key)
}

// Set applies value to key and saves the file when it was accepted.
func (h *Helper) Set(key, value string) error {
	if !h.known(key) {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if !h.surface.TrySet(key, value) {
		return fmt.Errorf("%w: %s=%s", ErrRejected, key, value)
	}
	return h.surface.Write()
}

func (h *Helper) known(key string) bool {
	for _, k := range h.surface.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// SuggestKeys returns the keys matching the partial input, in declaration
// order.
func (h *Helper) SuggestKeys(input string) []string {
	remaining := strings.ToLower(input)
	var out []string
	for _, key := range h.surface.Keys() {
		if ShouldSuggest(remaining, strings.ToLower(key)) {
			out = append(out, key)
		}
	}
	return out
}

// SuggestValues suggests the current value of key when it matches the
// partial input.
func (h *Helper) SuggestValues(key, input string) []string {
	current, ok := h.surface.Get(key)
	if !ok {
		return nil
	}
	if ShouldSuggest(strings.ToLower(input), strings.ToLower(current)) {
		return []string{current}
	}
	return nil
}

// ShouldSuggest reports whether candidate starts with remaining, either at
// its beginning or right after a '.' or '_' separator. Both arguments are
// expected in lower case.
func ShouldSuggest(remaining, candidate string) bool {
	for i := 0; !strings.HasPrefix(candidate[i:], remaining); i++ {
		dot := strings.IndexByte(candidate[i:], '.')
		underscore := strings.IndexByte(candidate[i:], '_')
		if dot < 0 && underscore < 0 {
			return false
		}
		switch {
		case dot >= 0 && underscore >= 0:
			i += min(dot, underscore)
		case dot >= 0:
			i += dot
		default:
			i += underscore
		}
	}
	return true
}

// Run executes one console command:
//
//	(no arguments)   list keys
//	<key>            show the value of key
//	<key> <value>    set key and save; the value may span several arguments
func (h *Helper) Run(args []string) (string, error) {
	if len(args) == 0 {
		keys := append([]string(nil), h.surface.Keys()...)
		sort.Strings(keys)
		return strings.Join(keys, "\n"), nil
	}

	key := args[0]
	if !h.known(key) {
		if suggestions := h.SuggestKeys(key); len(suggestions) > 0 {
			return "", fmt.Errorf("%w: %s (did you mean %s?)", ErrUnknownKey, key, strings.Join(suggestions, ", "))
		}
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if len(args) == 1 {
		value, _ := h.surface.Get(key)
		return fmt.Sprintf("%s=%s", key, value), nil
	}

	value := strings.Join(args[1:], " ")
	if err := h.Set(key, value); err != nil {
		return "", err
	}
	current, _ := h.surface.Get(key)
	return fmt.Sprintf("%s set to %s", key, current), nil
}
