package conventions

import (
	"automapper/internal/attr"
	"automapper/internal/inspect"
	"automapper/internal/model"
)

// Predicate is a single acceptance test against an inspector view.
type Predicate[I any] func(I) bool

// Criteria is the set of acceptance tests a convention fills in. A node is accepted when every
// expectation holds.
type Criteria[I any] struct {
	expectations []Predicate[I]
}

// Expect adds a test that must hold.
func (c *Criteria[I]) Expect(p Predicate[I]) *Criteria[I] {
	c.expectations = append(c.expectations, p)
	return c
}

// Any adds a test that holds when at least one of ps holds.
func (c *Criteria[I]) Any(ps ...Predicate[I]) *Criteria[I] {
	return c.Expect(func(i I) bool {
		for _, p := range ps {
			if p(i) {
				return true
			}
		}

		return false
	})
}

// Matches reports whether every expectation holds for i. Empty criteria match everything.
func (c *Criteria[I]) Matches(i I) bool {
	for _, p := range c.expectations {
		if !p(i) {
			return false
		}
	}

	return true
}

// Len returns the number of expectations.
func (c *Criteria[I]) Len() int {
	return len(c.expectations)
}

// WouldAccept fills fresh criteria with accept and evaluates them against candidate.
// The candidate is a value: nothing is built or mutated to answer the question.
func WouldAccept[I any](accept func(*Criteria[I]), candidate I) bool {
	var c Criteria[I]
	if accept != nil {
		accept(&c)
	}

	return c.Matches(candidate)
}

// IsSet holds when the attribute was explicitly specified.
func IsSet[I inspect.Inspector](k attr.Key) Predicate[I] {
	return func(i I) bool { return i.IsSet(k) }
}

// IsNotSet holds when the attribute was not explicitly specified.
func IsNotSet[I inspect.Inspector](k attr.Key) Predicate[I] {
	return func(i I) bool { return !i.IsSet(k) }
}

// TypeIs holds for properties whose storage type is t.
func TypeIs(t model.TypeReference) Predicate[inspect.PropertyInspector] {
	return func(p inspect.PropertyInspector) bool { return p.Type().Equal(t) }
}

// IsEnum holds for properties of an enumeration type.
func IsEnum() Predicate[inspect.PropertyInspector] {
	return func(p inspect.PropertyInspector) bool { return p.IsEnum() }
}

// ChildTypeIs holds for collections whose element is t.
func ChildTypeIs(t model.TypeReference) Predicate[inspect.CollectionInspector] {
	return func(c inspect.CollectionInspector) bool { return c.ChildType().Equal(t) }
}
