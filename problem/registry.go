package problem

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds named problem definitions. A registry is what the CLI and
// monitor resolve -problem flags against; manifest-loaded definitions are
// registered next to the built-ins.
type Registry struct {
	definitions map[string]*Definition
	mu          sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{definitions: make(map[string]*Definition)}
}

// NewBuiltinRegistry creates a registry preloaded with the built-in
// cantilever variants.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	// Built-ins are static and known-valid.
	_ = r.Register(VariantContinuous())
	_ = r.Register(VariantDiscrete())
	return r
}

// Register validates and adds a definition. Names are unique.
func (r *Registry) Register(d *Definition) error {
	if err := d.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[d.Name]; exists {
		return fmt.Errorf("problem %s already registered", d.Name)
	}
	r.definitions[d.Name] = d
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.definitions[name]
	return d, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
