package puzzle

import "fmt"

// Registry holds an ordered collection of puzzle generators, each assigned a
// stable string ID "1", "2", … in load order. IDs are stable across restarts
// as long as the manifest order is unchanged.
type Registry struct {
	ids  []string
	byID map[string]Generator
}

// Load builds a registry from the given ordered generators. It fails if the
// set is empty or two generators share a name; the process cannot start
// without a valid puzzle set.
func Load(generators []Generator) (*Registry, error) {
	if len(generators) == 0 {
		return nil, fmt.Errorf("no puzzle generators to load")
	}

	r := &Registry{
		ids:  make([]string, 0, len(generators)),
		byID: make(map[string]Generator, len(generators)),
	}

	seen := make(map[string]bool, len(generators))
	for i, g := range generators {
		name := g.Name()
		if name == "" {
			return nil, fmt.Errorf("generator at position %d has an empty name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate puzzle name %q", name)
		}
		seen[name] = true

		id := fmt.Sprintf("%d", i+1)
		r.ids = append(r.ids, id)
		r.byID[id] = g
	}

	return r, nil
}

// Resolve returns the generator registered under the given ID.
// Returns false if the ID is not registered.
func (r *Registry) Resolve(id string) (Generator, bool) {
	g, ok := r.byID[id]
	return g, ok
}

// Has reports whether a generator with the given ID is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// IDs returns all registered puzzle IDs in load order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Len returns the number of registered generators.
func (r *Registry) Len() int {
	return len(r.ids)
}
