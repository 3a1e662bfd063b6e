package rule

import "sync"

// Registry holds extension rules: names that resolve as local rules in every
// builder referencing the registry. It only grows.
type Registry struct {
	mu    sync.RWMutex
	rules []string
	index map[string]struct{}
}

// DefaultRegistry is the process-wide registry used by builders that were not
// given one explicitly.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a registry seeded with the given rule names.
func NewRegistry(rules ...any) *Registry {
	r := &Registry{index: make(map[string]struct{})}
	r.Extend(rules...)
	return r
}

// Extend registers rule names given individually, spread or as nested lists.
func (r *Registry) Extend(rules ...any) {
	names := Flatten(rules...)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range names {
		name := FormatArg(v)
		if name == "" {
			continue
		}
		if _, ok := r.index[name]; ok {
			continue
		}
		r.index[name] = struct{}{}
		r.rules = append(r.rules, name)
	}
}

// Has reports whether the identifier was registered.
func (r *Registry) Has(identifier string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[identifier]
	return ok
}

// Rules returns the registered names in registration order.
func (r *Registry) Rules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.rules))
	copy(out, r.rules)
	return out
}

// Extend registers extension rules in DefaultRegistry.
func Extend(rules ...any) {
	DefaultRegistry.Extend(rules...)
}
