// FILE: lixenwraith/simpleconfig/config.go
package simpleconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// State is the lifecycle stage of a Config.
type State int

const (
	StateUninitialized State = iota
	// StateConstructed: entries resolved, directory ensured.
	StateConstructed
	// StateLoaded: the file existed and was read.
	StateLoaded
	// StateDefaulted: no usable file, defaults kept.
	StateDefaulted
	// StateLive: ready for any number of reads, writes and sets.
	StateLive
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateLoaded:
		return "loaded"
	case StateDefaulted:
		return "defaulted"
	case StateLive:
		return "live"
	default:
		return "uninitialized"
	}
}

// Options configures a Config. Start from DefaultOptions; the zero value
// disables SaveOnLoad.
type Options struct {
	// Logger receives diagnostics. Nil means Nop.
	Logger Logger
	// Transcoder renders value literals. Nil means JSON.
	Transcoder Transcoder
	// Registry resolves item types. Nil means the process-wide registry.
	Registry *Registry
	// Overrides maps keys to codecs that win over every other resolution.
	Overrides map[string]Codec
	// SaveOnLoad writes the file back right after construction, normalising
	// its layout and adding missing keys.
	SaveOnLoad bool
	// FileMode is applied to the written file. Zero means 0644.
	FileMode os.FileMode
	// Validators run on Validate.
	Validators []ValidatorFunc
}

// DefaultOptions returns the default engine options.
func DefaultOptions() Options {
	return Options{
		Logger:     Nop,
		Transcoder: JSON,
		Registry:   DefaultRegistry(),
		SaveOnLoad: true,
		FileMode:   0644,
	}
}

// Config binds declared entries to a config file. It performs no locking;
// callers that share a Config between goroutines must serialise access.
type Config struct {
	path       string
	entries    []*Entry
	index      map[string]*Entry
	logger     Logger
	transcoder Transcoder
	registry   *Registry
	fileMode   os.FileMode
	validators []ValidatorFunc

	state        State
	fromFile     bool
	defaultsOnly bool
}

// New builds a Config for path with default options, reading the file if it
// exists and writing it back.
func New(path string, items []Item) *Config {
	return NewWithOptions(path, items, DefaultOptions())
}

// NewWithOptions builds a Config for path. Construction never fails: items
// without a codec are kept inert and file problems fall back to defaults,
// each reported through the logger.
func NewWithOptions(path string, items []Item, opts Options) *Config {
	c := &Config{
		path:       path,
		index:      make(map[string]*Entry, len(items)),
		logger:     opts.Logger,
		transcoder: opts.Transcoder,
		registry:   opts.Registry,
		fileMode:   opts.FileMode,
		validators: opts.Validators,
	}
	if c.logger == nil {
		c.logger = Nop
	}
	if c.transcoder == nil {
		c.transcoder = JSON
	}
	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	if c.fileMode == 0 {
		c.fileMode = 0644
	}

	c.resolve(items, opts.Overrides)
	c.state = StateConstructed

	// A directory that cannot be created surfaces as a write error later
	if err := ensureDir(path); err != nil {
		c.logger.Debug(fmt.Sprintf("could not create directory for %s: %v", path, err))
	}

	exists, err := probeFile(path)
	switch {
	case err != nil:
		c.logger.Warn(fmt.Sprintf("config file %s is not readable, using defaults: %v", path, err))
		c.defaultsOnly = true
		c.state = StateDefaulted
	case exists:
		c.fromFile = true
		c.Read()
		c.state = StateLoaded
	default:
		c.logger.Info(fmt.Sprintf("config file %s not found, using defaults", path))
		c.state = StateDefaulted
	}

	if opts.SaveOnLoad && !c.defaultsOnly {
		_ = c.Write()
	}

	c.state = StateLive
	return c
}

// resolve builds entries in declaration order.
func (c *Config) resolve(items []Item, overrides map[string]Codec) {
	for _, item := range items {
		if !validKey(item.Key) {
			c.logger.Warn(fmt.Sprintf("skipping config item with invalid key %q", item.Key))
			continue
		}
		if _, dup := c.index[item.Key]; dup {
			c.logger.Warn(fmt.Sprintf("duplicate config key %q ignored", item.Key))
			continue
		}

		entry := &Entry{
			Key:        item.Key,
			Type:       item.Type,
			Decoration: item.Decoration,
			cell:       item.Cell,
		}
		if item.Cell == nil {
			c.logger.Warn(fmt.Sprintf("config entry %q has no value cell", item.Key))
		} else {
			entry.codec = c.registry.ResolveItem(item, overrides[item.Key])
			if entry.codec == nil {
				c.logger.Warn((&ResolutionError{Key: item.Key, Type: item.Type}).Error())
			}
		}

		c.entries = append(c.entries, entry)
		c.index[item.Key] = entry
	}
}

// validKey reports whether key survives a write/read round trip.
func validKey(key string) bool {
	return key != "" && key == strings.TrimSpace(key) && !strings.ContainsAny(key, "=#\r\n")
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.path
}

// State returns the lifecycle state.
func (c *Config) State() State {
	return c.state
}

// FromFile reports whether the file existed when the Config was built.
func (c *Config) FromFile() bool {
	return c.fromFile
}

// DefaultsOnly reports whether the file was unreadable at construction. Such
// a Config never reads the file.
func (c *Config) DefaultsOnly() bool {
	return c.defaultsOnly
}

// Keys returns the declared keys in declaration order.
func (c *Config) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entry returns the entry for key.
func (c *Config) Entry(key string) (*Entry, bool) {
	e, ok := c.index[key]
	return e, ok
}

// Read applies the file to the live values. Missing files and bad lines keep
// the current values; failures are logged and never returned. Unknown keys
// are ignored and a key given twice takes its last value.
func (c *Config) Read() {
	if c.defaultsOnly {
		c.logger.Debug(fmt.Sprintf("skipping read of %s in defaults-only mode", c.path))
		return
	}

	lines, err := readLines(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Debug(fmt.Sprintf("config file %s not found, keeping current values", c.path))
			return
		}
		c.logger.Error(fmt.Sprintf("failed to read config file %s: %v", c.path, err))
		if len(lines) == 0 {
			return
		}
	}

	failed := 0
	for n, line := range lines {
		key, value, ok := ParseLine(line)
		if !ok {
			continue
		}
		entry, known := c.index[key]
		if !known {
			c.logger.Debug(fmt.Sprintf("ignoring unknown key %q at line %d", key, n+1))
			continue
		}
		if err := entry.apply(value, c.transcoder); err != nil {
			failed++
			c.logger.Warn((&EntryError{Key: key, Op: "read", Line: n + 1, Err: err}).Error())
			continue
		}
		c.logger.Debug(fmt.Sprintf("applied %q from line %d", key, n+1))
	}

	if failed > 0 {
		c.logger.Warn(fmt.Sprintf("%d line(s) in %s could not be applied, previous values kept", failed, c.path))
	}
}

// Reload re-reads the file.
func (c *Config) Reload() {
	c.Read()
}

// Write replaces the file with the current values. Entries that fail to encode
// are written with an empty value.
func (c *Config) Write() error {
	if c.defaultsOnly {
		if exists, _ := probeFile(c.path); exists {
			c.logger.Warn(fmt.Sprintf("overwriting unreadable config file %s with current values (defaults-only mode)", c.path))
		}
	}
	if err := atomicWriteFile(c.path, c.render(), c.fileMode); err != nil {
		c.logger.Error(fmt.Sprintf("failed to write config file %s: %v", c.path, err))
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	c.logger.Debug(fmt.Sprintf("wrote %d entries to %s", len(c.entries), c.path))
	return nil
}

// WriteTo writes the rendered file content to w without touching the file.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.render())
	return int64(n), err
}

// render builds the complete file content.
func (c *Config) render() []byte {
	var buf bytes.Buffer
	for _, e := range c.entries {
		if e.Section != "" {
			writeLines(&buf, Banner(e.Section))
		}
		if e.Comment != "" {
			writeLines(&buf, Comment(e.Comment))
		}
		buf.WriteString(entryLine(e.Key, c.literal(e, "write")))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func writeLines(buf *bytes.Buffer, lines []string) {
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

// literal encodes one entry, degrading to "" on failure.
func (c *Config) literal(e *Entry, op string) string {
	text, err := e.text(c.transcoder)
	if err != nil {
		if errors.Is(err, ErrUnresolved) {
			c.logger.Debug(fmt.Sprintf("config entry %q has no codec, value left empty", e.Key))
		} else {
			c.logger.Warn((&EntryError{Key: e.Key, Op: op, Err: err}).Error())
		}
		return ""
	}
	return text
}

// Get returns the current value of key as a literal. An entry that fails to
// encode yields "".
func (c *Config) Get(key string) (string, bool) {
	e, ok := c.index[key]
	if !ok {
		return "", false
	}
	return c.literal(e, "get"), true
}

// Apply parses text and stores it in key. The live value is unchanged on
// error.
func (c *Config) Apply(key, text string) error {
	e, ok := c.index[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := e.apply(text, c.transcoder); err != nil {
		entryErr := &EntryError{Key: key, Op: "set", Err: err}
		c.logger.Warn(entryErr.Error())
		return entryErr
	}
	c.logger.Debug(fmt.Sprintf("set %q", key))
	return nil
}

// TrySet is Apply reporting only success.
func (c *Config) TrySet(key, text string) bool {
	return c.Apply(key, text) == nil
}

// ToMap returns every key with its current literal.
func (c *Config) ToMap() map[string]string {
	out := make(map[string]string, len(c.entries))
	for _, e := range c.entries {
		out[e.Key] = c.literal(e, "export")
	}
	return out
}

// KeyValue is one key with its literal.
type KeyValue struct {
	Key   string
	Value string
}

// ToPairList returns every key with its current literal in declaration order.
func (c *Config) ToPairList() []KeyValue {
	out := make([]KeyValue, len(c.entries))
	for i, e := range c.entries {
		out[i] = KeyValue{Key: e.Key, Value: c.literal(e, "export")}
	}
	return out
}

// Values returns every resolved entry's current interchange value. Entries
// that fail to encode are left out and reported in the returned error.
func (c *Config) Values() (map[string]any, error) {
	out := make(map[string]any, len(c.entries))
	var errs []error
	for _, e := range c.entries {
		if !e.Resolved() {
			continue
		}
		node, err := e.node()
		if err != nil {
			errs = append(errs, &EntryError{Key: e.Key, Op: "export", Err: err})
			continue
		}
		out[e.Key] = node
	}
	return out, errors.Join(errs...)
}
