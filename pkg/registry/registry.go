// Package registry manages the named text transforms available to the engine.
//
// A Registry is an explicit object constructed at startup and handed to the
// engine by reference, so tests can swap in their own transform sets without
// touching process-wide state. Registration is append-only at configuration
// time; the engine only reads.
package registry

import (
	"fmt"
	"sync"

	"github.com/aretw0/echolattice/pkg/domain"
)

// TransformFn defines the signature for a transform implementation.
// Implementations must be pure: text in, text out, no side effects.
type TransformFn func(text string) string

// Registry manages the available transforms.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]TransformFn
	terminal   map[string]bool
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		transforms: make(map[string]TransformFn),
		terminal:   make(map[string]bool),
	}
}

// Register adds a transform to the registry.
// If a transform with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn TransformFn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transforms[name] = fn
}

// RegisterTerminal adds a transform whose output nodes are never expanded
// further, regardless of the depth or time budget.
func (r *Registry) RegisterTerminal(name string, fn TransformFn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transforms[name] = fn
	r.terminal[name] = true
}

// Apply looks up a transform by name and applies it to the given text.
// Returns an error if the transform is not found; an unknown name in a
// configured pipeline is a programming error, never silently skipped.
func (r *Registry) Apply(name, text string) (string, error) {
	r.mu.RLock()
	fn, ok := r.transforms[name]
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownTransform, name)
	}

	return fn(text), nil
}

// Has reports whether a transform with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.transforms[name]
	return ok
}

// IsTerminal reports whether the named transform is terminal.
func (r *Registry) IsTerminal(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.terminal[name]
}
