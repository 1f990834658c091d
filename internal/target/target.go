// Package target holds target descriptors and the registry that maps
// architecture names to them.
package target

import (
	"fmt"
	"sync"

	"targetinfo/internal/triple"
)

// Target describes one compilable architecture variant.
//
// A Target is an empty, freestanding value until the first Register call
// fills it in. After that its attributes never change, even when the same
// descriptor is shared by several registries.
type Target struct {
	mu         sync.Mutex
	registered bool
	name       string // registry key, e.g. "sparcv9"
	shortDesc  string // display name, e.g. "Sparc V9"
	arch       triple.ArchType
	hasJIT     bool
}

// Name returns the registry key, empty until registered.
func (t *Target) Name() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.name
}

// ShortDesc returns the display name.
func (t *Target) ShortDesc() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shortDesc
}

// Arch returns the architecture the target was registered for.
func (t *Target) Arch() triple.ArchType {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.arch
}

// HasJIT reports whether the target supports JIT code generation.
func (t *Target) HasJIT() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasJIT
}

func (t *Target) String() string {
	if t == nil {
		return "<nil>"
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return fmt.Sprintf("%s - %s", t.name, t.shortDesc)
}

// Registered reports whether t has been added to a registry.
func (t *Target) Registered() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.registered
}

// bind fills t on first use. Later calls succeed only with the attributes t
// was first bound with.
func (t *Target) bind(name, desc string, arch triple.ArchType, hasJIT bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.registered {
		return t.name == name && t.shortDesc == desc && t.arch == arch && t.hasJIT == hasJIT
	}
	t.registered = true
	t.name = name
	t.shortDesc = desc
	t.arch = arch
	t.hasJIT = hasJIT
	return true
}
