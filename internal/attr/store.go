package attr

import (
	"reflect"
	"sort"
)

// layer tracks where the current value of a slot came from.
type layer uint8

const (
	unset layer = iota
	byDefault
	explicit
)

type slot struct {
	layer layer
	value any
}

// Store keeps the attributes of one mapping node. Each attribute is independently
// unset, defaulted or explicitly set; defaults never replace explicit values.
type Store struct {
	slots map[Key]slot
}

// NewStore creates a store with every attribute unset.
func NewStore() *Store {
	return &Store{slots: make(map[Key]slot)}
}

// SetDefault records v as the default for k unless k was set explicitly.
// Repeated calls replace the previous default.
func (s *Store) SetDefault(k Key, v any) {
	if s.slots[k].layer == explicit {
		return
	}

	s.slots[k] = slot{layer: byDefault, value: v}
}

// Set records v as the explicit value for k, overwriting any previous state.
func (s *Store) Set(k Key, v any) {
	s.slots[k] = slot{layer: explicit, value: v}
}

// Unset returns k to the unset state.
func (s *Store) Unset(k Key) {
	delete(s.slots, k)
}

// Get returns the resolved value of k: the explicit value, else the default.
func (s *Store) Get(k Key) (any, bool) {
	sl, ok := s.slots[k]
	if !ok || sl.layer == unset {
		return nil, false
	}

	return sl.value, true
}

// IsSpecified reports whether k carries an explicit value.
func (s *Store) IsSpecified(k Key) bool {
	return s.slots[k].layer == explicit
}

// HasValue reports whether k carries any value, default or explicit.
func (s *Store) HasValue(k Key) bool {
	return s.slots[k].layer != unset
}

// Keys returns the keys holding a value, in declaration order.
func (s *Store) Keys() []Key {
	keys := make([]Key, 0, len(s.slots))
	for k, sl := range s.slots {
		if sl.layer != unset {
			keys = append(keys, k)
		}
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// Clone copies every slot into a new store.
// Values implementing Cloner are deep-copied, others are copied by value.
func (s *Store) Clone() *Store {
	c := NewStore()
	for k, sl := range s.slots {
		if cl, ok := sl.value.(Cloner); ok {
			sl.value = cl.CloneValue()
		}

		c.slots[k] = sl
	}

	return c
}

// Equal compares two stores slot by slot, including whether each value is a default
// or explicit.
func (s *Store) Equal(o *Store) bool {
	if s == nil || o == nil {
		return s == o
	}

	if len(s.slots) != len(o.slots) {
		return false
	}

	for k, a := range s.slots {
		b, ok := o.slots[k]
		if !ok || a.layer != b.layer || !valuesEqual(a.value, b.value) {
			return false
		}
	}

	return true
}

// Cloner is implemented by attribute values that own mutable state.
type Cloner interface {
	CloneValue() any
}

// Equaler is implemented by attribute values with structural equality, such as
// relationship nodes stored as attributes.
type Equaler interface {
	EqualValue(other any) bool
}

func valuesEqual(a, b any) bool {
	if eq, ok := a.(Equaler); ok {
		return eq.EqualValue(b)
	}

	return reflect.DeepEqual(a, b)
}

// Lookup returns the resolved value of k converted to T.
func Lookup[T any](s *Store, k Key) (T, bool) {
	v, ok := s.Get(k)
	if !ok {
		var zero T
		return zero, false
	}

	t, ok := v.(T)

	return t, ok
}

// Value returns the resolved value of k, or the zero value of T when unset.
func Value[T any](s *Store, k Key) T {
	v, _ := Lookup[T](s, k)
	return v
}

// ValueOr returns the resolved value of k, or fallback when unset.
func ValueOr[T any](s *Store, k Key, fallback T) T {
	if v, ok := Lookup[T](s, k); ok {
		return v
	}

	return fallback
}
