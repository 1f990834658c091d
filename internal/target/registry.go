package target

import (
	"sort"
	"strconv"
	"sync"

	"targetinfo/internal/trace"
	"targetinfo/internal/triple"
)

// Registry maps architecture names to target descriptors.
//
// Registration is expected to happen in a single start-up phase; lookups are
// safe for concurrent use once that phase is over.
type Registry struct {
	mu      sync.RWMutex
	targets map[string]*Target
	tracer  trace.Tracer
	span    uint64 // parent span for registration events
}

// Option configures a Registry.
type Option func(*Registry)

// WithTracer sets the tracer that receives registration events.
func WithTracer(t trace.Tracer) Option {
	return func(r *Registry) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		targets: make(map[string]*Target, 8),
		tracer:  trace.Nop,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tracer returns the registry's tracer.
func (r *Registry) Tracer() trace.Tracer {
	return r.tracer
}

// SetParentSpan makes subsequent registration events children of span.
func (r *Registry) SetParentSpan(span uint64) {
	r.mu.Lock()
	r.span = span
	r.mu.Unlock()
}

// Register fills in t and adds it under name.
//
// Existing entries are never replaced: a name that is already taken yields
// ErrDuplicate. A descriptor may be shared by several registries, but only
// with the attributes it was first registered with; anything else yields
// ErrRebind.
func (r *Registry) Register(t *Target, name, desc string, arch triple.ArchType, hasJIT bool) error {
	if t == nil {
		return &RegistryError{Op: "register", Name: name, Err: ErrNilTarget}
	}
	if name == "" {
		return &RegistryError{Op: "register", Err: ErrEmptyName}
	}

	r.mu.Lock()
	if _, ok := r.targets[name]; ok {
		r.mu.Unlock()
		return &RegistryError{Op: "register", Name: name, Err: ErrDuplicate}
	}
	if !t.bind(name, desc, arch, hasJIT) {
		r.mu.Unlock()
		return &RegistryError{Op: "register", Name: name, Err: ErrRebind}
	}
	r.targets[name] = t
	parent := r.span
	r.mu.Unlock()

	trace.Point(r.tracer, trace.ScopeModule, "target.register", parent, map[string]string{
		"name": name,
		"desc": desc,
		"jit":  strconv.FormatBool(hasJIT),
	})
	return nil
}

// Lookup returns the target registered under name.
func (r *Registry) Lookup(name string) (*Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.targets[name]
	return t, ok
}

// LookupTriple resolves a full target triple such as "sparc64-sun-solaris"
// to the target registered for its architecture.
func (r *Registry) LookupTriple(s string) (*Target, error) {
	tr := triple.Parse(s)
	if t, ok := r.Lookup(tr.ArchName); ok {
		return t, nil
	}
	if tr.Arch != triple.UnknownArch {
		r.mu.RLock()
		defer r.mu.RUnlock()
		for _, name := range r.sortedNamesLocked() {
			if t := r.targets[name]; t.Arch() == tr.Arch {
				return t, nil
			}
		}
	}
	return nil, &RegistryError{Op: "lookup", Name: s, Err: ErrNotFound}
}

// Targets returns the registered targets sorted by name.
func (r *Registry) Targets() []*Target {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := r.sortedNamesLocked()
	out := make([]*Target, 0, len(names))
	for _, name := range names {
		out = append(out, r.targets[name])
	}
	return out
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.targets)
}

func (r *Registry) sortedNamesLocked() []string {
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
