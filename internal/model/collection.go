package model

import (
	"automapper/internal/analyze"
	"automapper/internal/attr"
)

// Relationship is the association carried by an entity collection.
// It is stored as the Relationship attribute of the collection and replaced as a whole.
type Relationship interface {
	Node
	attr.Equaler
	attr.Cloner
	ChildType() TypeReference
}

// CollectionMapping maps a collection-shaped member.
type CollectionMapping struct {
	base

	Member               string
	Shape                analyze.CollectionKind
	ContainingEntityType TypeReference
	ChildType            TypeReference

	Key              *KeyMapping
	Index            *IndexMapping            // lists and maps only
	Element          *ElementMapping          // collections of scalar values
	CompositeElement *CompositeElementMapping // collections of components
}

// NewCollection creates a collection node with an empty key.
func NewCollection(member string, shape analyze.CollectionKind, owner, child TypeReference) *CollectionMapping {
	c := &CollectionMapping{
		base:                 newBase(),
		Member:               member,
		Shape:                shape,
		ContainingEntityType: owner,
		ChildType:            child,
		Key:                  NewKey(owner),
	}
	c.SetDefault(attr.Name, member)

	return c
}

// Kind implements Node.
func (c *CollectionMapping) Kind() NodeKind { return KindCollection }

// Name returns the resolved member name.
func (c *CollectionMapping) Name() string { return c.str(attr.Name) }

// Relationship returns the resolved relationship, or nil for value collections.
func (c *CollectionMapping) Relationship() Relationship {
	return attr.Value[Relationship](c.attrs, attr.Relationship)
}

// Cache returns the cache policy, or nil.
func (c *CollectionMapping) Cache() *CacheMapping {
	return attr.Value[*CacheMapping](c.attrs, attr.Cache)
}

// Children implements Node.
func (c *CollectionMapping) Children() []Node {
	var out []Node
	if c.Key != nil {
		out = append(out, c.Key)
	}

	if c.Index != nil {
		out = append(out, c.Index)
	}

	if rel := c.Relationship(); rel != nil {
		out = append(out, rel)
	}

	if c.Element != nil {
		out = append(out, c.Element)
	}

	if c.CompositeElement != nil {
		out = append(out, c.CompositeElement)
	}

	if cache := c.Cache(); cache != nil {
		out = append(out, cache)
	}

	return out
}

// Equal compares two collection nodes structurally.
func (c *CollectionMapping) Equal(o *CollectionMapping) bool {
	if o == nil {
		return false
	}

	return c.Member == o.Member &&
		c.Shape == o.Shape &&
		c.ContainingEntityType.Equal(o.ContainingEntityType) &&
		c.ChildType.Equal(o.ChildType) &&
		c.attrs.Equal(o.attrs) &&
		optionalEqual(c.Key, o.Key) &&
		optionalEqual(c.Index, o.Index) &&
		optionalEqual(c.Element, o.Element) &&
		optionalEqual(c.CompositeElement, o.CompositeElement)
}

// KeyMapping is the foreign key joining a collection table to its owner.
type KeyMapping struct {
	columnBased

	ContainingEntityType TypeReference
}

// NewKey creates a key with no columns.
func NewKey(owner TypeReference) *KeyMapping {
	return &KeyMapping{columnBased: newColumnBased(), ContainingEntityType: owner}
}

// Kind implements Node.
func (k *KeyMapping) Kind() NodeKind { return KindKey }

// Children implements Node.
func (k *KeyMapping) Children() []Node { return k.columnNodes() }

// Equal compares two keys structurally.
func (k *KeyMapping) Equal(o *KeyMapping) bool {
	return o != nil && k.ContainingEntityType.Equal(o.ContainingEntityType) && k.equal(&o.columnBased)
}

// IndexMapping is the position or map key column of an ordered collection.
type IndexMapping struct {
	columnBased
}

// NewIndex creates an index of the given type.
func NewIndex(t TypeReference) *IndexMapping {
	i := &IndexMapping{columnBased: newColumnBased()}
	i.SetDefault(attr.Type, t)

	return i
}

// Kind implements Node.
func (i *IndexMapping) Kind() NodeKind { return KindIndex }

// Children implements Node.
func (i *IndexMapping) Children() []Node { return i.columnNodes() }

// Equal compares two indexes structurally.
func (i *IndexMapping) Equal(o *IndexMapping) bool {
	return o != nil && i.equal(&o.columnBased)
}

// ElementMapping is the value column of a collection of scalars.
type ElementMapping struct {
	columnBased
}

// NewElement creates an element of the given type.
func NewElement(t TypeReference) *ElementMapping {
	e := &ElementMapping{columnBased: newColumnBased()}
	e.SetDefault(attr.Type, t)

	return e
}

// Kind implements Node.
func (e *ElementMapping) Kind() NodeKind { return KindElement }

// Type returns the resolved element type.
func (e *ElementMapping) Type() TypeReference { return e.ref(attr.Type) }

// Children implements Node.
func (e *ElementMapping) Children() []Node { return e.columnNodes() }

// Equal compares two elements structurally.
func (e *ElementMapping) Equal(o *ElementMapping) bool {
	return o != nil && e.equal(&o.columnBased)
}

// CacheMapping is a second-level cache policy.
type CacheMapping struct {
	base
}

// NewCache creates an empty cache policy.
func NewCache() *CacheMapping {
	return &CacheMapping{base: newBase()}
}

// Kind implements Node.
func (c *CacheMapping) Kind() NodeKind { return KindCache }

// Children implements Node.
func (c *CacheMapping) Children() []Node { return nil }

// Usage returns the concurrency strategy.
func (c *CacheMapping) Usage() string { return c.str(attr.Usage) }

// Equal compares two cache policies.
func (c *CacheMapping) Equal(o *CacheMapping) bool {
	return o != nil && c.attrs.Equal(o.attrs)
}

// EqualValue implements attr.Equaler.
func (c *CacheMapping) EqualValue(other any) bool {
	o, ok := other.(*CacheMapping)
	return ok && c.Equal(o)
}

// CloneValue implements attr.Cloner.
func (c *CacheMapping) CloneValue() any {
	return &CacheMapping{base: base{attrs: c.attrs.Clone()}}
}

// OneToManyMapping associates a collection with rows of the child entity's own table.
type OneToManyMapping struct {
	base

	ContainingEntityType TypeReference
	// Target is the expanded mapping of the child entity, when expansion is enabled.
	Target *ClassMapping
}

// NewOneToMany creates a one-to-many relationship. The child class is recorded as a default.
func NewOneToMany(owner, child TypeReference) *OneToManyMapping {
	r := &OneToManyMapping{base: newBase(), ContainingEntityType: owner}
	r.SetDefault(attr.Class, child)

	return r
}

// Kind implements Node.
func (r *OneToManyMapping) Kind() NodeKind { return KindOneToMany }

// ChildType implements Relationship.
func (r *OneToManyMapping) ChildType() TypeReference { return r.ref(attr.Class) }

// Children implements Node.
func (r *OneToManyMapping) Children() []Node {
	if r.Target == nil {
		return nil
	}

	return []Node{r.Target}
}

// Equal compares two one-to-many relationships structurally.
func (r *OneToManyMapping) Equal(o *OneToManyMapping) bool {
	return o != nil &&
		r.ContainingEntityType.Equal(o.ContainingEntityType) &&
		r.attrs.Equal(o.attrs) &&
		optionalEqual(r.Target, o.Target)
}

// EqualValue implements attr.Equaler.
func (r *OneToManyMapping) EqualValue(other any) bool {
	o, ok := other.(*OneToManyMapping)
	return ok && r.Equal(o)
}

// CloneValue implements attr.Cloner. The expanded target is shared.
func (r *OneToManyMapping) CloneValue() any {
	return &OneToManyMapping{base: base{attrs: r.attrs.Clone()}, ContainingEntityType: r.ContainingEntityType, Target: r.Target}
}

// ManyToManyMapping associates a collection with the child entity through a join table.
type ManyToManyMapping struct {
	columnBased

	ContainingEntityType TypeReference
	Target               *ClassMapping
}

// NewManyToMany creates a many-to-many relationship. The child class is recorded as a default.
func NewManyToMany(owner, child TypeReference) *ManyToManyMapping {
	r := &ManyToManyMapping{columnBased: newColumnBased(), ContainingEntityType: owner}
	r.SetDefault(attr.Class, child)

	return r
}

// Kind implements Node.
func (r *ManyToManyMapping) Kind() NodeKind { return KindManyToMany }

// ChildType implements Relationship.
func (r *ManyToManyMapping) ChildType() TypeReference { return r.ref(attr.Class) }

// Children implements Node.
func (r *ManyToManyMapping) Children() []Node {
	out := r.columnNodes()
	if r.Target != nil {
		out = append(out, r.Target)
	}

	return out
}

// Equal compares two many-to-many relationships structurally.
func (r *ManyToManyMapping) Equal(o *ManyToManyMapping) bool {
	return o != nil &&
		r.ContainingEntityType.Equal(o.ContainingEntityType) &&
		r.equal(&o.columnBased) &&
		optionalEqual(r.Target, o.Target)
}

// EqualValue implements attr.Equaler.
func (r *ManyToManyMapping) EqualValue(other any) bool {
	o, ok := other.(*ManyToManyMapping)
	return ok && r.Equal(o)
}

// CloneValue implements attr.Cloner. The expanded target is shared.
func (r *ManyToManyMapping) CloneValue() any {
	return &ManyToManyMapping{
		columnBased:          columnBased{base: base{attrs: r.attrs.Clone()}, columns: r.columns.clone()},
		ContainingEntityType: r.ContainingEntityType,
		Target:               r.Target,
	}
}
