package inspect

import (
	"automapper/internal/attr"
	"automapper/internal/model"
)

func value[T any](n model.Node, k attr.Key) T {
	v, _ := n.Get(k)
	t, _ := v.(T)

	return t
}

func valueOr[T any](n model.Node, k attr.Key, fallback T) T {
	v, ok := n.Get(k)
	if !ok {
		return fallback
	}

	t, ok := v.(T)
	if !ok {
		return fallback
	}

	return t
}

func columnViews(cols []*model.ColumnMapping) []ColumnInspector {
	out := make([]ColumnInspector, len(cols))
	for i, c := range cols {
		out[i] = NewColumn(c)
	}

	return out
}

// Class is the read-only view of a class mapping.
type Class struct {
	m *model.ClassMapping
}

// NewClass wraps a class mapping.
func NewClass(m *model.ClassMapping) *Class { return &Class{m: m} }

// IsSet reports whether k was specified explicitly. The other getters return resolved values.
func (c *Class) IsSet(k attr.Key) bool            { return c.m.IsSpecified(k) }
func (c *Class) EntityType() model.TypeReference  { return c.m.Type }
func (c *Class) Name() string                     { return c.m.Name() }
func (c *Class) TableName() string                { return c.m.Table() }
func (c *Class) Schema() string                   { return value[string](c.m, attr.Schema) }
func (c *Class) LazyLoad() bool                   { return valueOr(c.m, attr.Lazy, true) }
func (c *Class) BatchSize() int                   { return value[int](c.m, attr.BatchSize) }
func (c *Class) DynamicInsert() bool              { return value[bool](c.m, attr.DynamicInsert) }
func (c *Class) DynamicUpdate() bool              { return value[bool](c.m, attr.DynamicUpdate) }
func (c *Class) Mutable() bool                    { return valueOr(c.m, attr.Mutable, true) }
func (c *Class) Where() string                    { return value[string](c.m, attr.Where) }
func (c *Class) OptimisticLock() string           { return value[string](c.m, attr.OptimisticLock) }
func (c *Class) Extends() model.TypeReference     { return c.m.Extends() }
func (c *Class) Properties() []PropertyInspector  { return propertyViews(c.m.Properties()) }
func (c *Class) Components() []ComponentInspector { return componentViews(c.m.Components()) }
func (c *Class) References() []ManyToOneInspector { return referenceViews(c.m.References()) }

// Collections returns views of the collections in declaration order.
func (c *Class) Collections() []CollectionInspector { return collectionViews(c.m.Collections()) }

// Cache returns the cache view, or nil when the class has no cache policy.
func (c *Class) Cache() CacheInspector {
	if cache := c.m.Cache(); cache != nil {
		return NewCache(cache)
	}

	return nil
}

// Identity returns the identifier view, or nil.
func (c *Class) Identity() IdentityInspector {
	if c.m.Identity == nil {
		return nil
	}

	return NewIdentity(c.m.Identity)
}

// Version returns the version view, or nil.
func (c *Class) Version() VersionInspector {
	if c.m.Version == nil {
		return nil
	}

	return NewVersion(c.m.Version)
}

// Column is the read-only view of a column.
type Column struct {
	m *model.ColumnMapping
}

// NewColumn wraps a column mapping.
func NewColumn(m *model.ColumnMapping) *Column { return &Column{m: m} }

// IsSet reports whether k was specified explicitly. The other getters return resolved values.
func (c *Column) IsSet(k attr.Key) bool { return c.m.IsSpecified(k) }
func (c *Column) Name() string          { return c.m.Name() }
func (c *Column) Length() int           { return value[int](c.m, attr.Length) }
func (c *Column) Precision() int        { return value[int](c.m, attr.Precision) }
func (c *Column) Scale() int            { return value[int](c.m, attr.Scale) }
func (c *Column) NotNull() bool         { return value[bool](c.m, attr.NotNull) }
func (c *Column) Unique() bool          { return value[bool](c.m, attr.Unique) }
func (c *Column) UniqueKey() string     { return value[string](c.m, attr.UniqueKey) }
func (c *Column) SQLType() string       { return value[string](c.m, attr.SQLType) }
func (c *Column) Index() string         { return value[string](c.m, attr.Index) }
func (c *Column) Check() string         { return value[string](c.m, attr.Check) }
func (c *Column) Default() string       { return value[string](c.m, attr.Default) }

// Identity is the read-only view of an identifier.
type Identity struct {
	m *model.IdentityMapping
}

// NewIdentity wraps an identifier mapping.
func NewIdentity(m *model.IdentityMapping) *Identity { return &Identity{m: m} }

// IsSet reports whether k was specified explicitly. The other getters return resolved values.
func (i *Identity) IsSet(k attr.Key) bool      { return i.m.IsSpecified(k) }
func (i *Identity) Columns() []ColumnInspector { return columnViews(i.m.Columns().All()) }
func (i *Identity) Name() string               { return i.m.Name() }
func (i *Identity) Type() model.TypeReference  { return i.m.Type() }
func (i *Identity) Access() string             { return value[string](i.m, attr.Access) }
func (i *Identity) UnsavedValue() string       { return value[string](i.m, attr.UnsavedValue) }
func (i *Identity) Generator() string          { return value[string](i.m, attr.Generator) }

// Version is the read-only view of a version.
type Version struct {
	m *model.VersionMapping
}

// NewVersion wraps a version mapping.
func NewVersion(m *model.VersionMapping) *Version { return &Version{m: m} }

// IsSet reports whether k was specified explicitly. The other getters return resolved values.
func (v *Version) IsSet(k attr.Key) bool      { return v.m.IsSpecified(k) }
func (v *Version) Columns() []ColumnInspector { return columnViews(v.m.Columns().All()) }
func (v *Version) Name() string               { return v.m.Name() }
func (v *Version) Type() model.TypeReference  { return v.m.Type() }
func (v *Version) Access() string             { return value[string](v.m, attr.Access) }
func (v *Version) UnsavedValue() string       { return value[string](v.m, attr.UnsavedValue) }
func (v *Version) Generated() string          { return value[string](v.m, attr.Generated) }

// Property is the read-only view of a property.
type Property struct {
	m *model.PropertyMapping
}

// NewProperty wraps a property mapping.
func NewProperty(m *model.PropertyMapping) *Property { return &Property{m: m} }

func propertyViews(ps []*model.PropertyMapping) []PropertyInspector {
	out := make([]PropertyInspector, len(ps))
	for i, p := range ps {
		out[i] = NewProperty(p)
	}

	return out
}

// IsSet reports whether k was specified explicitly. Column getters read the first column.
func (p *Property) IsSet(k attr.Key) bool           { return p.m.IsSpecified(k) }
func (p *Property) Columns() []ColumnInspector      { return columnViews(p.m.Columns().All()) }
func (p *Property) EntityType() model.TypeReference { return p.m.ContainingEntityType }
func (p *Property) Property() string                { return p.m.Member }
func (p *Property) Name() string                    { return p.m.Name() }
func (p *Property) Type() model.TypeReference       { return p.m.Type() }
func (p *Property) IsEnum() bool                    { return p.m.Type().IsEnumAdapter() }
func (p *Property) Nullable() bool                  { return !value[bool](p.m, attr.NotNull) }
func (p *Property) Access() string                  { return value[string](p.m, attr.Access) }
func (p *Property) Insert() bool                    { return valueOr(p.m, attr.Insert, true) }
func (p *Property) Update() bool                    { return valueOr(p.m, attr.Update, true) }
func (p *Property) LazyLoad() bool                  { return value[bool](p.m, attr.Lazy) }
func (p *Property) OptimisticLock() bool            { return valueOr(p.m, attr.OptimisticLock, true) }
func (p *Property) Formula() string                 { return value[string](p.m, attr.Formula) }
func (p *Property) Generated() string               { return value[string](p.m, attr.Generated) }
func (p *Property) Length() int                     { return value[int](p.m, attr.Length) }
func (p *Property) Precision() int                  { return value[int](p.m, attr.Precision) }
func (p *Property) Scale() int                      { return value[int](p.m, attr.Scale) }
func (p *Property) Unique() bool                    { return value[bool](p.m, attr.Unique) }
func (p *Property) UniqueKey() string               { return value[string](p.m, attr.UniqueKey) }
func (p *Property) SQLType() string                 { return value[string](p.m, attr.SQLType) }
func (p *Property) Index() string                   { return value[string](p.m, attr.Index) }
func (p *Property) Check() string                   { return value[string](p.m, attr.Check) }
func (p *Property) Default() string                 { return value[string](p.m, attr.Default) }

// Component is the read-only view of a component.
type Component struct {
	m *model.ComponentMapping
}

// NewComponent wraps a component mapping.
func NewComponent(m *model.ComponentMapping) *Component { return &Component{m: m} }

func componentViews(cs []*model.ComponentMapping) []ComponentInspector {
	out := make([]ComponentInspector, len(cs))
	for i, c := range cs {
		out[i] = NewComponent(c)
	}

	return out
}

// IsSet reports whether k was specified explicitly. The other getters return resolved values.
func (c *Component) IsSet(k attr.Key) bool              { return c.m.IsSpecified(k) }
func (c *Component) Name() string                       { return c.m.Name() }
func (c *Component) Type() model.TypeReference          { return c.m.Type }
func (c *Component) Access() string                     { return value[string](c.m, attr.Access) }
func (c *Component) Insert() bool                       { return valueOr(c.m, attr.Insert, true) }
func (c *Component) Update() bool                       { return valueOr(c.m, attr.Update, true) }
func (c *Component) LazyLoad() bool                     { return value[bool](c.m, attr.Lazy) }
func (c *Component) Parent() string                     { return value[string](c.m, attr.Parent) }
func (c *Component) Properties() []PropertyInspector    { return propertyViews(c.m.Properties()) }
func (c *Component) Components() []ComponentInspector   { return componentViews(c.m.Components()) }
func (c *Component) References() []ManyToOneInspector   { return referenceViews(c.m.References()) }
func (c *Component) Collections() []CollectionInspector { return collectionViews(c.m.Collections()) }

// ManyToOne is the read-only view of a reference.
type ManyToOne struct {
	m *model.ManyToOneMapping
}

// NewManyToOne wraps a reference mapping.
func NewManyToOne(m *model.ManyToOneMapping) *ManyToOne { return &ManyToOne{m: m} }

func referenceViews(rs []*model.ManyToOneMapping) []ManyToOneInspector {
	out := make([]ManyToOneInspector, len(rs))
	for i, r := range rs {
		out[i] = NewManyToOne(r)
	}

	return out
}

// IsSet reports whether k was specified explicitly. Column getters read the first column.
func (r *ManyToOne) IsSet(k attr.Key) bool           { return r.m.IsSpecified(k) }
func (r *ManyToOne) Columns() []ColumnInspector      { return columnViews(r.m.Columns().All()) }
func (r *ManyToOne) EntityType() model.TypeReference { return r.m.ContainingEntityType }
func (r *ManyToOne) Name() string                    { return r.m.Name() }
func (r *ManyToOne) Class() model.TypeReference      { return r.m.Class() }
func (r *ManyToOne) Access() string                  { return value[string](r.m, attr.Access) }
func (r *ManyToOne) Cascade() string                 { return value[string](r.m, attr.Cascade) }
func (r *ManyToOne) Fetch() string                   { return value[string](r.m, attr.Fetch) }
func (r *ManyToOne) LazyLoad() bool                  { return valueOr(r.m, attr.Lazy, true) }
func (r *ManyToOne) NotFound() string                { return value[string](r.m, attr.NotFound) }
func (r *ManyToOne) ForeignKey() string              { return value[string](r.m, attr.ForeignKey) }
func (r *ManyToOne) PropertyRef() string             { return value[string](r.m, attr.PropertyRef) }
func (r *ManyToOne) Insert() bool                    { return valueOr(r.m, attr.Insert, true) }
func (r *ManyToOne) Update() bool                    { return valueOr(r.m, attr.Update, true) }
func (r *ManyToOne) Formula() string                 { return value[string](r.m, attr.Formula) }

// Cache is the read-only view of a cache policy.
type Cache struct {
	m *model.CacheMapping
}

// NewCache wraps a cache mapping.
func NewCache(m *model.CacheMapping) *Cache { return &Cache{m: m} }

// IsSet reports whether k was specified explicitly.
func (c *Cache) IsSet(k attr.Key) bool { return c.m.IsSpecified(k) }
func (c *Cache) Usage() string         { return c.m.Usage() }
func (c *Cache) Region() string        { return value[string](c.m, attr.Region) }
func (c *Cache) Include() string       { return value[string](c.m, attr.Include) }

var (
	_ ClassInspector     = (*Class)(nil)
	_ ColumnInspector    = (*Column)(nil)
	_ IdentityInspector  = (*Identity)(nil)
	_ VersionInspector   = (*Version)(nil)
	_ PropertyInspector  = (*Property)(nil)
	_ ComponentInspector = (*Component)(nil)
	_ ManyToOneInspector = (*ManyToOne)(nil)
	_ CacheInspector     = (*Cache)(nil)
)
