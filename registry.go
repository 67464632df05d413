package toolspec

import (
	"slices"
	"sync"
)

// Definition is the transport-ready form of one tool: name, description, and
// the (possibly decorated) parameters schema. This is the shape LLM provider
// APIs expect for a tool declaration.
type Definition struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Registry holds built specifications and exports their schemas with the
// configured decorator chain applied. Safe for concurrent use.
type Registry struct {
	mu         sync.Mutex
	specs      map[string]*ToolSpecification
	schemas    map[string]map[string]any // decorated export schemas
	decorators []Decorator
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		specs:   make(map[string]*ToolSpecification),
		schemas: make(map[string]map[string]any),
	}
}

// Register adds a specification; one with the same name is replaced. The
// stored decorator chain (see Use) is applied to its exported schema. Safe
// for concurrent use with Definitions and other Register calls.
func (r *Registry) Register(s *ToolSpecification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[s.Name()] = s
	r.schemas[s.Name()] = r.decorate(s)
}

// decorate exports s.Schema() through the decorator chain. Caller holds r.mu.
func (r *Registry) decorate(s *ToolSpecification) map[string]any {
	schema := s.Schema()
	for _, d := range r.decorators {
		schema = d(schema)
	}
	return schema
}

// Use replaces the decorator chain and re-applies it from the undecorated
// specifications, so calling Use twice never stacks decorations. First
// decorator runs first. Specifications registered after Use are decorated
// with the same chain.
func (r *Registry) Use(decorators ...Decorator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decorators = decorators
	for name, s := range r.specs {
		r.schemas[name] = r.decorate(s)
	}
}

// Get returns the specification with the given name, or (nil, false).
func (r *Registry) Get(name string) (*ToolSpecification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.specs[name]
	return s, ok
}

// Schema returns the decorated export schema for the named tool. The returned
// map is a deep copy.
func (r *Registry) Schema(name string) (map[string]any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	schema, ok := r.schemas[name]
	if !ok {
		return nil, false
	}
	return copySchema(schema), true
}

// Definitions returns the transport-ready definitions of all registered
// tools, sorted by name for deterministic export order.
func (r *Registry) Definitions() []Definition {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]Definition, 0, len(names))
	for _, name := range names {
		out = append(out, Definition{
			Name:        name,
			Description: r.specs[name].Description(),
			Parameters:  copySchema(r.schemas[name]),
		})
	}
	return out
}
