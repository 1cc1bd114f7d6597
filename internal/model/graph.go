package model

import "fmt"

// Graph is the ordered set of declared resources. Resource names are unique
// within a graph. After Freeze the graph is read-only and safe for concurrent
// evaluation of independent resources.
type Graph struct {
	resources []*Resource
	byName    map[string]*Resource
	frozen    bool
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{byName: make(map[string]*Resource)}
}

// Add declares a resource. The name must be unique within the graph.
func (g *Graph) Add(name string, kind Kind) (*Resource, error) {
	if g.frozen {
		return nil, fmt.Errorf("adding resource %q: %w", name, ErrFrozen)
	}
	if _, exists := g.byName[name]; exists {
		return nil, fmt.Errorf("resource %q: %w", name, ErrDuplicateResource)
	}
	r, err := newResource(name, kind)
	if err != nil {
		return nil, err
	}
	g.resources = append(g.resources, r)
	g.byName[name] = r
	return r, nil
}

// Resource returns the named resource.
func (g *Graph) Resource(name string) (*Resource, bool) {
	r, ok := g.byName[name]
	return r, ok
}

// Resources returns all resources in declaration order. The returned slice is
// shared; callers must not mutate it.
func (g *Graph) Resources() []*Resource { return g.resources }

// Freeze makes the graph and its resources read-only. Endpoint allocation
// remains possible after freezing: it is run-time state, not graph shape.
func (g *Graph) Freeze() {
	g.frozen = true
	for _, r := range g.resources {
		r.frozen = true
	}
}

// Frozen reports whether the graph has been frozen.
func (g *Graph) Frozen() bool { return g.frozen }
