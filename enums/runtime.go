package enums

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Runtime holds metadata registered in-process: local tools and triggers that have no
// remote catalogue. It is consulted before the disk cache. Safe for concurrent use.
type Runtime struct {
	mu      sync.Mutex
	entries map[Namespace]map[string]map[string]any
}

// NewRuntime creates an empty runtime registry.
func NewRuntime() *Runtime {
	return &Runtime{entries: make(map[Namespace]map[string]map[string]any)}
}

// Register adds metadata for id in ns. meta is a metadata record (e.g. ActionMetadata)
// or a map; it must encode to a JSON object. An existing registration is replaced.
func (r *Runtime) Register(ns Namespace, id any, meta any) error {
	if err := ns.check(); err != nil {
		return err
	}
	slug, err := Canonicalize(id)
	if err != nil {
		return err
	}
	m, err := toMap(meta)
	if err != nil {
		return fmt.Errorf("register %s %s: %w", ns, slug, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries[ns] == nil {
		r.entries[ns] = make(map[string]map[string]any)
	}
	r.entries[ns][slug] = maps.Clone(m)
	return nil
}

// Unregister removes id from ns and reports whether it was registered.
func (r *Runtime) Unregister(ns Namespace, id any) bool {
	slug, err := Canonicalize(id)
	if err != nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[ns][slug]; !ok {
		return false
	}
	delete(r.entries[ns], slug)
	return true
}

// Lookup returns a copy of the metadata registered for the canonical slug.
func (r *Runtime) Lookup(ns Namespace, slug string) (map[string]any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.entries[ns][slug]
	if !ok {
		return nil, false
	}
	return maps.Clone(m), true
}

// Slugs returns the registered slugs of ns, sorted for deterministic order.
func (r *Runtime) Slugs(ns Namespace) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.entries[ns]))
}
