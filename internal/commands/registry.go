package commands

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps command names and aliases to commands.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Command
	primary []Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Command),
	}
}

// Register adds a command under its name and aliases.
// Names are case-insensitive. Returns an error if any of them is taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{c.Name()}, c.Aliases()...)
	for i, k := range keys {
		k = strings.ToLower(k)
		if _, exists := r.byName[k]; exists {
			return fmt.Errorf("command name already registered: %s", k)
		}
		keys[i] = k
	}

	for _, k := range keys {
		r.byName[k] = c
	}
	r.primary = append(r.primary, c)
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[strings.ToLower(name)]
	return c, ok
}

// All returns every registered command once, sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := slices.Clone(r.primary)
	slices.SortFunc(all, func(a, b Command) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return all
}

// DefaultRegistry holds every built-in command.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry and panics on a name clash.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
