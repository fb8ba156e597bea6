package graphics

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores renderers by format, providing discovery and duplication
// safeguards. Callers can share one registry across sweeps; lookups take a
// read lock only.
type Registry struct {
	mu        sync.RWMutex
	renderers map[Format]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[Format]Renderer),
	}
}

// Register adds a renderer under its Format(). Duplicate formats return an
// error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("graphics: renderer is required")
	}
	format := renderer.Format()
	if format == "" {
		return fmt.Errorf("graphics: renderer format is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[format]; exists {
		return fmt.Errorf("graphics: renderer %q already registered", format)
	}

	r.renderers[format] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves the renderer for a format.
func (r *Registry) Get(format Format) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("graphics: no renderer for format %q", format)
	}
	return renderer, nil
}

// MustGet panics if the format has no renderer.
func (r *Registry) MustGet(format Format) Renderer {
	renderer, err := r.Get(format)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns the registered formats in sorted order.
func (r *Registry) List() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]Format, 0, len(r.renderers))
	for f := range r.renderers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Has reports whether a format has a renderer.
func (r *Registry) Has(format Format) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[format]
	return ok
}
