package interp

import (
	"fmt"
	"sort"
	"sync"
)

// Entry describes a registered execution strategy.
//
// Priority determines default selection when multiple strategies are
// available; higher wins. Suggested priorities:
//
//   - scalar (reference): 0
//   - expr (compiled expression): 5
//   - unrolled: 10
//   - vecmath: 15
//   - parallel variants: 25, 30
type Entry struct {
	Name     string
	Priority int
	Apply    ApplyFunc
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Entry)
)

// Register adds a strategy to the registry. Registering a nil Apply or a
// duplicate name panics; strategies register once from init.
func Register(e Entry) {
	if e.Name == "" || e.Apply == nil {
		panic("interp: invalid strategy registration")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, dup := registry[e.Name]; dup {
		panic("interp: duplicate strategy " + e.Name)
	}

	registry[e.Name] = e
}

// ByName returns the strategy registered under name.
func ByName(name string) (Entry, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return e, nil
}

// Strategies returns all registered strategy names, highest priority first.
// Ties break alphabetically for deterministic listings.
func Strategies() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	entries := make([]Entry, 0, len(registry))
	for _, e := range registry {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}

		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	return names
}

// defaultEntry returns the highest-priority strategy.
func defaultEntry() Entry {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var best Entry
	found := false

	for _, e := range registry {
		if !found || e.Priority > best.Priority ||
			(e.Priority == best.Priority && e.Name < best.Name) {
			best = e
			found = true
		}
	}

	if !found {
		panic("interp: no strategies registered")
	}

	return best
}

// DefaultStrategy returns the name of the strategy Apply dispatches to.
func DefaultStrategy() string {
	return defaultEntry().Name
}
