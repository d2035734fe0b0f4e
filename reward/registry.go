package reward

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Errors returned by the manager registry.
var (
	ErrManagerNotFound = errors.New("reward manager not found")
	ErrManagerExists   = errors.New("reward manager already registered")
)

// Factory creates a manager from configuration options.
type Factory func(cfg map[string]any) (Manager, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a manager available under the given name. Registration
// happens at startup (typically from init); duplicates error.
func Register(name string, factory Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("reward: name and factory are required")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrManagerExists, name)
	}
	factories[name] = factory
	return nil
}

// New builds the manager registered under name.
func New(name string, cfg map[string]any) (Manager, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrManagerNotFound, name)
	}
	return factory(cfg)
}

// Names returns registered manager names sorted for deterministic output.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
