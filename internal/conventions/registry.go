package conventions

import (
	"errors"
	"fmt"

	"automapper/internal/inspect"
)

// ErrNoCapability is returned when a value registered as a convention implements no capability.
var ErrNoCapability = errors.New("convention implements no capability")

// Registry is the ordered list of conventions. Registration order is application order.
type Registry struct {
	conventions []any
}

// NewRegistry creates a registry holding cs in order.
func NewRegistry(cs ...any) (*Registry, error) {
	r := &Registry{}
	for _, c := range cs {
		if err := r.Add(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Add appends a convention.
func (r *Registry) Add(c any) error {
	if c == nil || !hasCapability(c) {
		return fmt.Errorf("register %T: %w", c, ErrNoCapability)
	}

	r.conventions = append(r.conventions, c)

	return nil
}

// All returns the conventions in registration order.
func (r *Registry) All() []any {
	return r.conventions
}

// Len returns the number of registered conventions.
func (r *Registry) Len() int {
	return len(r.conventions)
}

// ClaimsProperty reports whether a registered user-type convention accepts p.
// It lets the automapper map members that only a user type can store.
func (r *Registry) ClaimsProperty(p inspect.PropertyInspector) bool {
	for _, c := range r.conventions {
		if _, ok := c.(UserTypeConvention); ok && acceptsProperty(c, p) {
			return true
		}
	}

	return false
}

func acceptsProperty(c any, p inspect.PropertyInspector) bool {
	a, ok := c.(PropertyAcceptance)
	return !ok || WouldAccept(a.AcceptProperty, p)
}
