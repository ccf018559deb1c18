package df

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

const (
	KindSingle = "single"
	KindMulti  = "multi"
)

// Params carries the knobs a finder factory may read.
type Params struct {
	Elements  int
	Tolerance float64
}

type Factory func(p Params) (Finder, error)

// Registry maps finder kinds to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry preloaded with the built-in finders.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(KindSingle, func(p Params) (Finder, error) {
		return NewSingleElement(WithTolerance(p.Tolerance)), nil
	})
	r.Register(KindMulti, func(p Params) (Finder, error) {
		m, err := NewMultiElement(p.Elements)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
	return r
}

func (r *Registry) Register(kind string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[strings.ToLower(kind)] = f
}

func (r *Registry) New(kind string, p Params) (Finder, error) {
	r.mu.RLock()
	f, ok := r.factories[strings.ToLower(strings.TrimSpace(kind))]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownFinder, kind, strings.Join(r.Kinds(), ", "))
	}
	return f(p)
}

// Kinds lists registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
