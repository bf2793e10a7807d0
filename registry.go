// FILE: lixenwraith/simpleconfig/registry.go
package simpleconfig

import (
	"strings"
	"sync"
)

// builtinKinds maps every primitive alias to its canonical kind name.
var builtinKinds = map[string]string{
	"bool":      "bool",
	"boolean":   "bool",
	"string":    "string",
	"int":       "int32",
	"integer":   "int32",
	"int32":     "int32",
	"long":      "int64",
	"int64":     "int64",
	"short":     "int16",
	"int16":     "int16",
	"byte":      "int8",
	"int8":      "int8",
	"double":    "float64",
	"float64":   "float64",
	"float":     "float32",
	"float32":   "float32",
	"char":      "char",
	"character": "char",
}

// canonicalKind returns the canonical name for a kind alias, or the lower-case
// input when it is not a built-in alias.
func canonicalKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if canonical, ok := builtinKinds[kind]; ok {
		return canonical
	}
	return kind
}

// Registry maps kind names to codecs and resolves type descriptors.
// Registration is meant to happen during setup, before configurations that
// rely on the registered kinds are constructed.
type Registry struct {
	codecs map[string]Codec
	mutex  sync.RWMutex
}

// NewRegistry creates a registry preloaded with the built-in primitive table.
func NewRegistry() *Registry {
	r := &Registry{codecs: make(map[string]Codec)}
	r.codecs["bool"] = Bool
	r.codecs["string"] = String
	r.codecs["int32"] = Int32
	r.codecs["int64"] = Int64
	r.codecs["int16"] = Int16
	r.codecs["int8"] = Int8
	r.codecs["float64"] = Float64
	r.codecs["float32"] = Float32
	r.codecs["char"] = CharCodec
	r.codecs["duration"] = Duration
	return r
}

// Register binds a kind name to a codec, replacing any previous binding.
// Kind names are case-insensitive; built-in aliases bind their canonical kind.
func (r *Registry) Register(kind string, codec Codec) {
	if codec == nil {
		return
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.codecs[canonicalKind(kind)] = codec
}

// Lookup returns the codec registered for a kind name.
func (r *Registry) Lookup(kind string) (Codec, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	codec, ok := r.codecs[canonicalKind(kind)]
	return codec, ok
}

// Has reports whether a kind name is registered.
func (r *Registry) Has(kind string) bool {
	_, ok := r.Lookup(kind)
	return ok
}

// Kinds returns the number of registered kinds.
func (r *Registry) Kinds() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.codecs)
}

// Resolve maps a descriptor to a codec. Maps and pairs resolve only when both
// component kinds resolve; lists need their element kind. Anything else is a
// direct table lookup by name. It returns nil when nothing matches.
func (r *Registry) Resolve(desc TypeDescriptor) Codec {
	switch {
	case desc.Shape == ShapeMap && len(desc.Params) == 2:
		key, kok := r.Lookup(desc.Params[0])
		value, vok := r.Lookup(desc.Params[1])
		if !kok || !vok || !key.Type().Comparable() {
			return nil
		}
		return MapOf(key, value)

	case desc.Shape == ShapePair && len(desc.Params) == 2:
		first, fok := r.Lookup(desc.Params[0])
		second, sok := r.Lookup(desc.Params[1])
		if !fok || !sok {
			return nil
		}
		return PairOf(first, second)

	case desc.Shape == ShapeList && len(desc.Params) == 1:
		elem, ok := r.Lookup(desc.Params[0])
		if !ok {
			return nil
		}
		return ListOf(elem)
	}

	if desc.Name == "" {
		return nil
	}
	codec, _ := r.Lookup(desc.Name)
	return codec
}

// ResolveItem applies the full resolution order for a declared item: an
// explicit override, then the item's own codec, then structural inference.
func (r *Registry) ResolveItem(item Item, override Codec) Codec {
	if override != nil {
		return override
	}
	if item.Codec != nil {
		return item.Codec
	}
	return r.Resolve(item.Type)
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used when no registry is
// configured.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register binds a kind name in the process-wide registry.
func Register(kind string, codec Codec) {
	defaultRegistry.Register(kind, codec)
}

// Resolve resolves a descriptor against the process-wide registry.
func Resolve(desc TypeDescriptor) Codec {
	return defaultRegistry.Resolve(desc)
}
