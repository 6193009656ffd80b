package instance

import (
	"automapper/internal/attr"
	"automapper/internal/inspect"
	"automapper/internal/model"
)

// Class is the convention-facing view of an entity mapping.
type Class struct {
	*inspect.Class
	writer
	m *model.ClassMapping
}

// NewClass wraps a class mapping. obs may be nil.
func NewClass(m *model.ClassMapping, obs Observer) *Class {
	return &Class{Class: inspect.NewClass(m), writer: newWriter(m, obs), m: m}
}

// Not negates the next boolean setter called on the returned instance.
func (c *Class) Not() *Class {
	n := *c
	n.writer = c.negated()

	return &n
}

// Class setters write one attribute each, unless it is already specified, and report whether they wrote.
func (c *Class) SetTable(name string) bool   { return c.set(attr.Table, name) }
func (c *Class) SetSchema(name string) bool  { return c.set(attr.Schema, name) }
func (c *Class) SetWhere(clause string) bool { return c.set(attr.Where, clause) }
func (c *Class) SetBatchSize(n int) bool     { return c.set(attr.BatchSize, n) }
func (c *Class) SetSubselect(q string) bool  { return c.set(attr.Subselect, q) }
func (c *Class) SetPersister(p string) bool  { return c.set(attr.Persister, p) }
func (c *Class) SetLazy() bool               { return c.set(attr.Lazy, c.flag()) }
func (c *Class) SetDynamicInsert() bool      { return c.set(attr.DynamicInsert, c.flag()) }
func (c *Class) SetDynamicUpdate() bool      { return c.set(attr.DynamicUpdate, c.flag()) }

// SetReadOnly marks the entity immutable.
func (c *Class) SetReadOnly() bool { return c.set(attr.Mutable, !c.flag()) }

// SetOptimisticLock returns the optimistic locking mode chooser.
func (c *Class) SetOptimisticLock() OptimisticLockInstance {
	return OptimisticLockInstance{apply: c.apply(attr.OptimisticLock)}
}

// SetCache returns the cache policy chooser.
func (c *Class) SetCache() CacheInstance {
	return CacheInstance{w: c.writer, policy: cachePolicy(c.m)}
}

// Identity is the convention-facing view of an identifier.
type Identity struct {
	*inspect.Identity
	writer
	m *model.IdentityMapping
}

// NewIdentity wraps an identifier mapping.
func NewIdentity(m *model.IdentityMapping, obs Observer) *Identity {
	return &Identity{Identity: inspect.NewIdentity(m), writer: newWriter(m, obs), m: m}
}

// Identity setters are guarded writes on the identifier or on its columns.
func (i *Identity) SetColumn(name string) bool         { return i.column(i.m.Columns(), name) }
func (i *Identity) SetType(t model.TypeReference) bool { return i.set(attr.Type, t) }
func (i *Identity) SetUnsavedValue(v string) bool      { return i.set(attr.UnsavedValue, v) }
func (i *Identity) SetGenerator(g string) bool         { return i.set(attr.Generator, g) }
func (i *Identity) SetLength(n int) bool               { return i.setColumns(i.m.Columns(), attr.Length, n) }

// SetAccess returns the access strategy chooser.
func (i *Identity) SetAccess() AccessInstance { return AccessInstance{apply: i.apply(attr.Access)} }

// Version is the convention-facing view of a version.
type Version struct {
	*inspect.Version
	writer
	m *model.VersionMapping
}

// NewVersion wraps a version mapping.
func NewVersion(m *model.VersionMapping, obs Observer) *Version {
	return &Version{Version: inspect.NewVersion(m), writer: newWriter(m, obs), m: m}
}

// Version setters are guarded writes on the version member or on its columns.
func (v *Version) SetColumn(name string) bool         { return v.column(v.m.Columns(), name) }
func (v *Version) SetType(t model.TypeReference) bool { return v.set(attr.Type, t) }
func (v *Version) SetUnsavedValue(s string) bool      { return v.set(attr.UnsavedValue, s) }

// SetAccess returns the access strategy chooser.
func (v *Version) SetAccess() AccessInstance { return AccessInstance{apply: v.apply(attr.Access)} }

// SetGenerated returns the generation mode chooser.
func (v *Version) SetGenerated() GeneratedInstance {
	return GeneratedInstance{apply: v.apply(attr.Generated)}
}

// Component is the convention-facing view of a component.
type Component struct {
	*inspect.Component
	writer
	m *model.ComponentMapping
}

// NewComponent wraps a component mapping.
func NewComponent(m *model.ComponentMapping, obs Observer) *Component {
	return &Component{Component: inspect.NewComponent(m), writer: newWriter(m, obs), m: m}
}

// Not negates the next boolean setter called on the returned instance.
func (c *Component) Not() *Component {
	n := *c
	n.writer = c.negated()

	return &n
}

// Component setters are guarded writes on the component node.
func (c *Component) SetInsert() bool            { return c.set(attr.Insert, c.flag()) }
func (c *Component) SetUpdate() bool            { return c.set(attr.Update, c.flag()) }
func (c *Component) SetLazy() bool              { return c.set(attr.Lazy, c.flag()) }
func (c *Component) SetUnique() bool            { return c.set(attr.Unique, c.flag()) }
func (c *Component) SetParent(name string) bool { return c.set(attr.Parent, name) }

// SetReadOnly disables insert and update. Nothing is written when either is already specified.
func (c *Component) SetReadOnly() bool {
	return c.setTogether(!c.flag(), attr.Insert, attr.Update)
}

// SetAccess returns the access strategy chooser.
func (c *Component) SetAccess() AccessInstance { return AccessInstance{apply: c.apply(attr.Access)} }
