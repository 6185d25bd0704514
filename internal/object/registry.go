package object

import (
	"maps"
	"slices"
	"sync"
)

// DefaultBallType is the ball used when a requested type is unknown or fails to build.
const DefaultBallType = "Ball"

// Constructor builds a ball from a spec.
type Constructor func(spec BallSpec) (Ball, error)

// Registry maps ball type names to constructors.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns a registry with the built-in "Ball" and "FxBall" types.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[string]Constructor)}
	r.Register(DefaultBallType, newDefaultBall)
	r.Register("FxBall", func(spec BallSpec) (Ball, error) {
		fx, err := NewFxBall(spec)
		if err != nil {
			return nil, err
		}
		return fx, nil
	})
	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds or replaces a constructor. A nil constructor is ignored.
func (r *Registry) Register(name string, ctor Constructor) {
	if ctor == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[name] = ctor
}

func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[name]
	return ctor, ok
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.ctors))
}

func newDefaultBall(spec BallSpec) (Ball, error) {
	b, err := NewBody(spec)
	if err != nil {
		return nil, err
	}
	return b, nil
}
