package inspect

import (
	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/model"
)

// Collection is the read-only view of a collection.
type Collection struct {
	m *model.CollectionMapping
}

// NewCollection wraps a collection mapping.
func NewCollection(m *model.CollectionMapping) *Collection { return &Collection{m: m} }

func collectionViews(cs []*model.CollectionMapping) []CollectionInspector {
	out := make([]CollectionInspector, len(cs))
	for i, c := range cs {
		out[i] = NewCollection(c)
	}

	return out
}

// IsSet reports whether k was specified explicitly. The other getters return resolved values.
func (c *Collection) IsSet(k attr.Key) bool           { return c.m.IsSpecified(k) }
func (c *Collection) EntityType() model.TypeReference { return c.m.ContainingEntityType }
func (c *Collection) ChildType() model.TypeReference  { return c.m.ChildType }
func (c *Collection) Name() string                    { return c.m.Name() }
func (c *Collection) Shape() analyze.CollectionKind   { return c.m.Shape }
func (c *Collection) Access() string                  { return value[string](c.m, attr.Access) }
func (c *Collection) LazyLoad() bool                  { return valueOr(c.m, attr.Lazy, true) }
func (c *Collection) Fetch() string                   { return value[string](c.m, attr.Fetch) }
func (c *Collection) Cascade() string                 { return value[string](c.m, attr.Cascade) }
func (c *Collection) Inverse() bool                   { return value[bool](c.m, attr.Inverse) }
func (c *Collection) BatchSize() int                  { return value[int](c.m, attr.BatchSize) }
func (c *Collection) Where() string                   { return value[string](c.m, attr.Where) }
func (c *Collection) OrderBy() string                 { return value[string](c.m, attr.OrderBy) }
func (c *Collection) Sort() string                    { return value[string](c.m, attr.Sort) }
func (c *Collection) Check() string                   { return value[string](c.m, attr.Check) }
func (c *Collection) Mutable() bool                   { return valueOr(c.m, attr.Mutable, true) }
func (c *Collection) OptimisticLock() bool            { return valueOr(c.m, attr.OptimisticLock, true) }
func (c *Collection) TableName() string               { return value[string](c.m, attr.Table) }
func (c *Collection) Schema() string                  { return value[string](c.m, attr.Schema) }
func (c *Collection) Persister() string               { return value[string](c.m, attr.Persister) }
func (c *Collection) Key() KeyInspector               { return NewKey(c.m.Key) }

// Relationship returns the view of the collection's relationship, or nil for value collections.
func (c *Collection) Relationship() RelationshipInspector {
	return NewRelationship(c.m.Relationship())
}

// Element returns the element view, or nil when the collection holds entities or components.
func (c *Collection) Element() ElementInspector {
	if c.m.Element == nil {
		return nil
	}

	return NewElement(c.m.Element)
}

// Cache returns the cache view, or nil.
func (c *Collection) Cache() CacheInspector {
	if cache := c.m.Cache(); cache != nil {
		return NewCache(cache)
	}

	return nil
}

// Key is the read-only view of a collection key.
type Key struct {
	m *model.KeyMapping
}

// NewKey wraps a key mapping.
func NewKey(m *model.KeyMapping) *Key { return &Key{m: m} }

// IsSet reports whether a was specified explicitly. The other getters return resolved values.
func (k *Key) IsSet(a attr.Key) bool           { return k.m.IsSpecified(a) }
func (k *Key) Columns() []ColumnInspector      { return columnViews(k.m.Columns().All()) }
func (k *Key) EntityType() model.TypeReference { return k.m.ContainingEntityType }
func (k *Key) ForeignKey() string              { return value[string](k.m, attr.ForeignKey) }
func (k *Key) PropertyRef() string             { return value[string](k.m, attr.PropertyRef) }
func (k *Key) OnDelete() string                { return value[string](k.m, attr.OnDelete) }
func (k *Key) NotNull() bool                   { return value[bool](k.m, attr.NotNull) }
func (k *Key) Update() bool                    { return valueOr(k.m, attr.Update, true) }
func (k *Key) Unique() bool                    { return value[bool](k.m, attr.Unique) }

// NewRelationship wraps a relationship in the view matching its kind. It returns nil for nil.
func NewRelationship(rel model.Relationship) RelationshipInspector {
	switch r := rel.(type) {
	case *model.OneToManyMapping:
		return NewOneToMany(r)
	case *model.ManyToManyMapping:
		return NewManyToMany(r)
	default:
		return nil
	}
}

// OneToMany is the read-only view of a one-to-many relationship.
type OneToMany struct {
	m *model.OneToManyMapping
}

// NewOneToMany wraps a one-to-many mapping.
func NewOneToMany(m *model.OneToManyMapping) *OneToMany { return &OneToMany{m: m} }

// IsSet reports whether k was specified explicitly. The other getters return resolved values.
func (r *OneToMany) IsSet(k attr.Key) bool           { return r.m.IsSpecified(k) }
func (r *OneToMany) Kind() model.NodeKind            { return model.KindOneToMany }
func (r *OneToMany) EntityType() model.TypeReference { return r.m.ContainingEntityType }
func (r *OneToMany) ChildType() model.TypeReference  { return r.m.ChildType() }
func (r *OneToMany) NotFound() string                { return value[string](r.m, attr.NotFound) }

// ManyToMany is the read-only view of a many-to-many relationship.
type ManyToMany struct {
	m *model.ManyToManyMapping
}

// NewManyToMany wraps a many-to-many mapping.
func NewManyToMany(m *model.ManyToManyMapping) *ManyToMany { return &ManyToMany{m: m} }

// IsSet reports whether k was specified explicitly. The other getters return resolved values.
func (r *ManyToMany) IsSet(k attr.Key) bool           { return r.m.IsSpecified(k) }
func (r *ManyToMany) Kind() model.NodeKind            { return model.KindManyToMany }
func (r *ManyToMany) Columns() []ColumnInspector      { return columnViews(r.m.Columns().All()) }
func (r *ManyToMany) EntityType() model.TypeReference { return r.m.ContainingEntityType }
func (r *ManyToMany) ChildType() model.TypeReference  { return r.m.ChildType() }
func (r *ManyToMany) NotFound() string                { return value[string](r.m, attr.NotFound) }
func (r *ManyToMany) ForeignKey() string              { return value[string](r.m, attr.ForeignKey) }
func (r *ManyToMany) Fetch() string                   { return value[string](r.m, attr.Fetch) }
func (r *ManyToMany) LazyLoad() bool                  { return valueOr(r.m, attr.Lazy, true) }
func (r *ManyToMany) Where() string                   { return value[string](r.m, attr.Where) }
func (r *ManyToMany) OrderBy() string                 { return value[string](r.m, attr.OrderBy) }

// Element is the read-only view of a collection element.
type Element struct {
	m *model.ElementMapping
}

// NewElement wraps an element mapping.
func NewElement(m *model.ElementMapping) *Element { return &Element{m: m} }

// IsSet reports whether k was specified explicitly. The other getters return resolved values.
func (e *Element) IsSet(k attr.Key) bool      { return e.m.IsSpecified(k) }
func (e *Element) Columns() []ColumnInspector { return columnViews(e.m.Columns().All()) }
func (e *Element) Type() model.TypeReference  { return e.m.Type() }
func (e *Element) Formula() string            { return value[string](e.m, attr.Formula) }

var (
	_ CollectionInspector = (*Collection)(nil)
	_ KeyInspector        = (*Key)(nil)
	_ OneToManyInspector  = (*OneToMany)(nil)
	_ ManyToManyInspector = (*ManyToMany)(nil)
	_ ElementInspector    = (*Element)(nil)
)
