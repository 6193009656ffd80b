package instance

import (
	"automapper/internal/attr"
	"automapper/internal/inspect"
	"automapper/internal/model"
)

// Collection is the convention-facing view of a collection.
type Collection struct {
	*inspect.Collection
	writer
	m *model.CollectionMapping
}

// NewCollection wraps a collection mapping.
func NewCollection(m *model.CollectionMapping, obs Observer) *Collection {
	return &Collection{Collection: inspect.NewCollection(m), writer: newWriter(m, obs), m: m}
}

// Not negates the next boolean setter called on the returned instance.
func (c *Collection) Not() *Collection {
	n := *c
	n.writer = c.negated()

	return &n
}

// Collection setters write one attribute each, unless it is already specified, and report whether they wrote.
func (c *Collection) SetTable(name string) bool       { return c.set(attr.Table, name) }
func (c *Collection) SetSchema(name string) bool      { return c.set(attr.Schema, name) }
func (c *Collection) SetWhere(clause string) bool     { return c.set(attr.Where, clause) }
func (c *Collection) SetOrderBy(clause string) bool   { return c.set(attr.OrderBy, clause) }
func (c *Collection) SetSort(sort string) bool        { return c.set(attr.Sort, sort) }
func (c *Collection) SetCheck(expr string) bool       { return c.set(attr.Check, expr) }
func (c *Collection) SetBatchSize(n int) bool         { return c.set(attr.BatchSize, n) }
func (c *Collection) SetPersister(p string) bool      { return c.set(attr.Persister, p) }
func (c *Collection) SetSubselect(q string) bool      { return c.set(attr.Subselect, q) }
func (c *Collection) SetCollectionType(t string) bool { return c.set(attr.CollectionType, t) }
func (c *Collection) SetLazy() bool                   { return c.set(attr.Lazy, c.flag()) }
func (c *Collection) SetInverse() bool                { return c.set(attr.Inverse, c.flag()) }
func (c *Collection) SetOptimisticLock() bool         { return c.set(attr.OptimisticLock, c.flag()) }

// SetReadOnly marks the collection immutable.
func (c *Collection) SetReadOnly() bool { return c.set(attr.Mutable, !c.flag()) }

// SetAccess, SetFetch and SetCascade return choosers whose operations write on the collection.
func (c *Collection) SetAccess() AccessInstance   { return AccessInstance{apply: c.apply(attr.Access)} }
func (c *Collection) SetFetch() FetchInstance     { return FetchInstance{apply: c.apply(attr.Fetch)} }
func (c *Collection) SetCascade() CascadeInstance { return CascadeInstance{apply: c.apply(attr.Cascade)} }

// SetCache returns the cache policy chooser. The policy is created by its first operation.
func (c *Collection) SetCache() CacheInstance {
	return CacheInstance{w: c.writer, policy: cachePolicy(c.m)}
}

// SetKey returns the instance of the collection key.
func (c *Collection) SetKey() *Key { return NewKey(c.m.Key, c.obs) }

// AsManyToMany replaces the relationship with a many-to-many to the same child type.
// The previous relationship is discarded, not merged. Element and component collections have no
// relationship to replace and are left alone.
func (c *Collection) AsManyToMany() bool {
	child, ok := c.childType()
	if !ok {
		return false
	}

	return c.set(attr.Relationship, model.NewManyToMany(c.m.ContainingEntityType, child))
}

// AsOneToMany replaces the relationship with a one-to-many to the same child type.
func (c *Collection) AsOneToMany() bool {
	child, ok := c.childType()
	if !ok {
		return false
	}

	return c.set(attr.Relationship, model.NewOneToMany(c.m.ContainingEntityType, child))
}

// childType reports the entity type of the current relationship. It is false when there is none.
func (c *Collection) childType() (model.TypeReference, bool) {
	rel := c.m.Relationship()
	if rel == nil {
		return model.TypeReference{}, false
	}

	if !rel.ChildType().IsZero() {
		return rel.ChildType(), true
	}

	return c.m.ChildType, true
}

// OneToMany returns the instance of the one-to-many relationship, or nil.
func (c *Collection) OneToMany() *OneToMany {
	if r, ok := c.m.Relationship().(*model.OneToManyMapping); ok {
		return NewOneToMany(r, c.obs)
	}

	return nil
}

// ManyToMany returns the instance of the many-to-many relationship, or nil.
func (c *Collection) ManyToMany() *ManyToMany {
	if r, ok := c.m.Relationship().(*model.ManyToManyMapping); ok {
		return NewManyToMany(r, c.obs)
	}

	return nil
}

// ElementInstance returns the instance of the scalar element, or nil.
func (c *Collection) ElementInstance() *Element {
	if c.m.Element == nil {
		return nil
	}

	return NewElement(c.m.Element, c.obs)
}

// Key is the convention-facing view of a collection key.
type Key struct {
	*inspect.Key
	writer
	m *model.KeyMapping
}

// NewKey wraps a key mapping.
func NewKey(m *model.KeyMapping, obs Observer) *Key {
	return &Key{Key: inspect.NewKey(m), writer: newWriter(m, obs), m: m}
}

// Not negates the next boolean setter called on the returned instance.
func (k *Key) Not() *Key {
	n := *k
	n.writer = k.negated()

	return &n
}

// Key setters are guarded writes on the key or, for column attributes, on all of its columns.
func (k *Key) SetColumn(name string) bool      { return k.column(k.m.Columns(), name) }
func (k *Key) SetForeignKey(name string) bool  { return k.set(attr.ForeignKey, name) }
func (k *Key) SetPropertyRef(name string) bool { return k.set(attr.PropertyRef, name) }
func (k *Key) SetUpdate() bool                 { return k.set(attr.Update, k.flag()) }
func (k *Key) SetUnique() bool                 { return k.setColumns(k.m.Columns(), attr.Unique, k.flag()) }
func (k *Key) SetNullable() bool               { return k.setColumns(k.m.Columns(), attr.NotNull, !k.flag()) }

// SetOnDelete returns the on-delete action chooser.
func (k *Key) SetOnDelete() OnDeleteInstance { return OnDeleteInstance{apply: k.apply(attr.OnDelete)} }

// OneToMany is the convention-facing view of a one-to-many relationship.
type OneToMany struct {
	*inspect.OneToMany
	writer
	m *model.OneToManyMapping
}

// NewOneToMany wraps a one-to-many mapping.
func NewOneToMany(m *model.OneToManyMapping, obs Observer) *OneToMany {
	return &OneToMany{OneToMany: inspect.NewOneToMany(m), writer: newWriter(m, obs), m: m}
}

// SetClass overrides the child entity type.
func (r *OneToMany) SetClass(t model.TypeReference) bool { return r.set(attr.Class, t) }

// SetNotFound returns the missing-row behavior chooser.
func (r *OneToMany) SetNotFound() NotFoundInstance {
	return NotFoundInstance{apply: r.apply(attr.NotFound)}
}

// ManyToMany is the convention-facing view of a many-to-many relationship.
type ManyToMany struct {
	*inspect.ManyToMany
	writer
	m *model.ManyToManyMapping
}

// NewManyToMany wraps a many-to-many mapping.
func NewManyToMany(m *model.ManyToManyMapping, obs Observer) *ManyToMany {
	return &ManyToMany{ManyToMany: inspect.NewManyToMany(m), writer: newWriter(m, obs), m: m}
}

// Not negates the next boolean setter called on the returned instance.
func (r *ManyToMany) Not() *ManyToMany {
	n := *r
	n.writer = r.negated()

	return &n
}

// Many-to-many setters are guarded writes on the relationship or its columns.
func (r *ManyToMany) SetColumn(name string) bool          { return r.column(r.m.Columns(), name) }
func (r *ManyToMany) SetClass(t model.TypeReference) bool { return r.set(attr.Class, t) }
func (r *ManyToMany) SetForeignKey(name string) bool      { return r.set(attr.ForeignKey, name) }
func (r *ManyToMany) SetWhere(clause string) bool         { return r.set(attr.Where, clause) }
func (r *ManyToMany) SetOrderBy(clause string) bool       { return r.set(attr.OrderBy, clause) }
func (r *ManyToMany) SetLazy() bool                       { return r.set(attr.Lazy, r.flag()) }
func (r *ManyToMany) SetFetch() FetchInstance             { return FetchInstance{apply: r.apply(attr.Fetch)} }
func (r *ManyToMany) SetNotFound() NotFoundInstance       { return NotFoundInstance{apply: r.apply(attr.NotFound)} }

// Element is the convention-facing view of a collection element.
type Element struct {
	*inspect.Element
	writer
	m *model.ElementMapping
}

// NewElement wraps an element mapping.
func NewElement(m *model.ElementMapping, obs Observer) *Element {
	return &Element{Element: inspect.NewElement(m), writer: newWriter(m, obs), m: m}
}

// Element setters are guarded writes on the element or its columns.
func (e *Element) SetColumn(name string) bool         { return e.column(e.m.Columns(), name) }
func (e *Element) SetType(t model.TypeReference) bool { return e.set(attr.Type, t) }
func (e *Element) SetFormula(f string) bool           { return e.set(attr.Formula, f) }
func (e *Element) SetLength(n int) bool               { return e.setColumns(e.m.Columns(), attr.Length, n) }
