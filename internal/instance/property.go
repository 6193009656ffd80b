package instance

import (
	"automapper/internal/attr"
	"automapper/internal/inspect"
	"automapper/internal/model"
)

// Property is the convention-facing view of a property.
type Property struct {
	*inspect.Property
	writer
	m *model.PropertyMapping
}

// NewProperty wraps a property mapping.
func NewProperty(m *model.PropertyMapping, obs Observer) *Property {
	return &Property{Property: inspect.NewProperty(m), writer: newWriter(m, obs), m: m}
}

// Not negates the next boolean setter called on the returned instance.
func (p *Property) Not() *Property {
	n := *p
	n.writer = p.negated()

	return &n
}

// SetColumn renames the property's column unless its name was already specified.
func (p *Property) SetColumn(name string) bool { return p.column(p.m.Columns(), name) }

// SetType sets the storage type, e.g. a custom user type.
func (p *Property) SetType(t model.TypeReference) bool { return p.set(attr.Type, t) }

// Property setters write one attribute each, unless it is already specified, and report whether they wrote.
func (p *Property) SetFormula(f string) bool { return p.set(attr.Formula, f) }
func (p *Property) SetInsert() bool          { return p.set(attr.Insert, p.flag()) }
func (p *Property) SetUpdate() bool          { return p.set(attr.Update, p.flag()) }
func (p *Property) SetLazy() bool            { return p.set(attr.Lazy, p.flag()) }
func (p *Property) SetOptimisticLock() bool  { return p.set(attr.OptimisticLock, p.flag()) }

// SetReadOnly disables insert and update. Nothing is written when either is already specified.
func (p *Property) SetReadOnly() bool {
	return p.setTogether(!p.flag(), attr.Insert, attr.Update)
}

// Column attributes. Each is guarded by the first column and then applied to all of them.

func (p *Property) SetLength(n int) bool          { return p.setColumns(p.m.Columns(), attr.Length, n) }
func (p *Property) SetPrecision(n int) bool       { return p.setColumns(p.m.Columns(), attr.Precision, n) }
func (p *Property) SetScale(n int) bool           { return p.setColumns(p.m.Columns(), attr.Scale, n) }
func (p *Property) SetSQLType(t string) bool      { return p.setColumns(p.m.Columns(), attr.SQLType, t) }
func (p *Property) SetUniqueKey(k string) bool    { return p.setColumns(p.m.Columns(), attr.UniqueKey, k) }
func (p *Property) SetIndex(name string) bool     { return p.setColumns(p.m.Columns(), attr.Index, name) }
func (p *Property) SetCheck(expr string) bool     { return p.setColumns(p.m.Columns(), attr.Check, expr) }
func (p *Property) SetDefaultValue(v string) bool { return p.setColumns(p.m.Columns(), attr.Default, v) }
func (p *Property) SetUnique() bool               { return p.setColumns(p.m.Columns(), attr.Unique, p.flag()) }

// SetNullable allows nulls; Not().SetNullable() forbids them.
func (p *Property) SetNullable() bool { return p.setColumns(p.m.Columns(), attr.NotNull, !p.flag()) }

// SetAccess returns the access strategy chooser.
func (p *Property) SetAccess() AccessInstance { return AccessInstance{apply: p.apply(attr.Access)} }

// SetGenerated returns the generation mode chooser.
func (p *Property) SetGenerated() GeneratedInstance {
	return GeneratedInstance{apply: p.apply(attr.Generated)}
}

// ManyToOne is the convention-facing view of a reference.
type ManyToOne struct {
	*inspect.ManyToOne
	writer
	m *model.ManyToOneMapping
}

// NewManyToOne wraps a reference mapping.
func NewManyToOne(m *model.ManyToOneMapping, obs Observer) *ManyToOne {
	return &ManyToOne{ManyToOne: inspect.NewManyToOne(m), writer: newWriter(m, obs), m: m}
}

// Not negates the next boolean setter called on the returned instance.
func (r *ManyToOne) Not() *ManyToOne {
	n := *r
	n.writer = r.negated()

	return &n
}

// Many-to-one setters are guarded writes on the reference or, for column attributes, on all of its columns.
func (r *ManyToOne) SetColumn(name string) bool          { return r.column(r.m.Columns(), name) }
func (r *ManyToOne) SetClass(t model.TypeReference) bool { return r.set(attr.Class, t) }
func (r *ManyToOne) SetForeignKey(name string) bool      { return r.set(attr.ForeignKey, name) }
func (r *ManyToOne) SetPropertyRef(name string) bool     { return r.set(attr.PropertyRef, name) }
func (r *ManyToOne) SetFormula(f string) bool            { return r.set(attr.Formula, f) }
func (r *ManyToOne) SetInsert() bool                     { return r.set(attr.Insert, r.flag()) }
func (r *ManyToOne) SetUpdate() bool                     { return r.set(attr.Update, r.flag()) }
func (r *ManyToOne) SetLazy() bool                       { return r.set(attr.Lazy, r.flag()) }
func (r *ManyToOne) SetUnique() bool                     { return r.setColumns(r.m.Columns(), attr.Unique, r.flag()) }
func (r *ManyToOne) SetUniqueKey(k string) bool          { return r.setColumns(r.m.Columns(), attr.UniqueKey, k) }
func (r *ManyToOne) SetIndex(name string) bool           { return r.setColumns(r.m.Columns(), attr.Index, name) }

// SetNullable allows a missing reference; Not().SetNullable() requires one.
func (r *ManyToOne) SetNullable() bool { return r.setColumns(r.m.Columns(), attr.NotNull, !r.flag()) }

// SetReadOnly disables insert and update. Nothing is written when either is already specified.
func (r *ManyToOne) SetReadOnly() bool {
	return r.setTogether(!r.flag(), attr.Insert, attr.Update)
}

// The choosers below write on the reference when one of their operations is called.
func (r *ManyToOne) SetAccess() AccessInstance     { return AccessInstance{apply: r.apply(attr.Access)} }
func (r *ManyToOne) SetCascade() CascadeInstance   { return CascadeInstance{apply: r.apply(attr.Cascade)} }
func (r *ManyToOne) SetFetch() FetchInstance       { return FetchInstance{apply: r.apply(attr.Fetch)} }
func (r *ManyToOne) SetNotFound() NotFoundInstance { return NotFoundInstance{apply: r.apply(attr.NotFound)} }
