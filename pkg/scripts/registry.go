package scripts

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages the available scripts
type Registry struct {
	mu      sync.RWMutex
	scripts map[string]func() Script
}

// NewRegistry creates a new script registry
func NewRegistry() *Registry {
	return &Registry{
		scripts: make(map[string]func() Script),
	}
}

// Register adds a script to the registry
func (r *Registry) Register(name string, factory func() Script) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scripts[name]; exists {
		return fmt.Errorf("script %s already registered", name)
	}

	r.scripts[name] = factory
	return nil
}

// Get returns a new instance of the requested script
func (r *Registry) Get(name string) (Script, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.scripts[name]
	if !exists {
		return nil, fmt.Errorf("script %s not found", name)
	}

	return factory(), nil
}

// List returns all registered script names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.scripts))
	for name := range r.scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global script registry
var DefaultRegistry = NewRegistry()
