package inspect

import (
	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/model"
)

// Inspector is the read-only contract shared by every view.
type Inspector interface {
	// IsSet reports whether the attribute was explicitly specified.
	IsSet(k attr.Key) bool
}

// ClassInspector reads an entity mapping.
type ClassInspector interface {
	Inspector
	EntityType() model.TypeReference
	Name() string
	TableName() string
	Schema() string
	LazyLoad() bool
	BatchSize() int
	DynamicInsert() bool
	DynamicUpdate() bool
	Mutable() bool
	Where() string
	OptimisticLock() string
	Extends() model.TypeReference
	Cache() CacheInspector
	Identity() IdentityInspector
	Version() VersionInspector
	Properties() []PropertyInspector
	Components() []ComponentInspector
	References() []ManyToOneInspector
	Collections() []CollectionInspector
}

// ColumnInspector reads a storage column.
type ColumnInspector interface {
	Inspector
	Name() string
	Length() int
	Precision() int
	Scale() int
	NotNull() bool
	Unique() bool
	UniqueKey() string
	SQLType() string
	Index() string
	Check() string
	Default() string
}

// ColumnOwner is implemented by views of nodes backed by columns.
type ColumnOwner interface {
	Columns() []ColumnInspector
}

// IdentityInspector reads an identifier mapping.
type IdentityInspector interface {
	Inspector
	ColumnOwner
	Name() string
	Type() model.TypeReference
	Access() string
	UnsavedValue() string
	Generator() string
}

// VersionInspector reads a version mapping.
type VersionInspector interface {
	Inspector
	ColumnOwner
	Name() string
	Type() model.TypeReference
	Access() string
	UnsavedValue() string
	Generated() string
}

// PropertyInspector reads a scalar property mapping.
// It is also implemented by PropertyCandidate for acceptance probes.
type PropertyInspector interface {
	Inspector
	ColumnOwner
	EntityType() model.TypeReference
	Property() string
	Name() string
	Type() model.TypeReference
	IsEnum() bool
	Nullable() bool
	Access() string
	Insert() bool
	Update() bool
	LazyLoad() bool
	OptimisticLock() bool
	Formula() string
	Generated() string
	Length() int
	Precision() int
	Scale() int
	Unique() bool
	UniqueKey() string
	SQLType() string
	Index() string
	Check() string
	Default() string
}

// ComponentInspector reads a component mapping.
type ComponentInspector interface {
	Inspector
	Name() string
	Type() model.TypeReference
	Access() string
	Insert() bool
	Update() bool
	LazyLoad() bool
	Parent() string
	Properties() []PropertyInspector
	Components() []ComponentInspector
	References() []ManyToOneInspector
	Collections() []CollectionInspector
}

// ManyToOneInspector reads a reference mapping.
type ManyToOneInspector interface {
	Inspector
	ColumnOwner
	EntityType() model.TypeReference
	Name() string
	Class() model.TypeReference
	Access() string
	Cascade() string
	Fetch() string
	LazyLoad() bool
	NotFound() string
	ForeignKey() string
	PropertyRef() string
	Insert() bool
	Update() bool
	Formula() string
}

// CollectionInspector reads a collection mapping.
type CollectionInspector interface {
	Inspector
	EntityType() model.TypeReference
	ChildType() model.TypeReference
	Name() string
	Shape() analyze.CollectionKind
	Access() string
	LazyLoad() bool
	Fetch() string
	Cascade() string
	Inverse() bool
	BatchSize() int
	Where() string
	OrderBy() string
	Sort() string
	Check() string
	Mutable() bool
	OptimisticLock() bool
	TableName() string
	Schema() string
	Persister() string
	Key() KeyInspector
	Relationship() RelationshipInspector
	Element() ElementInspector
	Cache() CacheInspector
}

// KeyInspector reads the key of a collection.
type KeyInspector interface {
	Inspector
	ColumnOwner
	EntityType() model.TypeReference
	ForeignKey() string
	PropertyRef() string
	OnDelete() string
	NotNull() bool
	Update() bool
	Unique() bool
}

// RelationshipInspector reads the relationship of an entity collection.
type RelationshipInspector interface {
	Inspector
	Kind() model.NodeKind
	EntityType() model.TypeReference
	ChildType() model.TypeReference
	NotFound() string
}

// OneToManyInspector reads a one-to-many relationship.
type OneToManyInspector interface {
	RelationshipInspector
}

// ManyToManyInspector reads a many-to-many relationship.
type ManyToManyInspector interface {
	RelationshipInspector
	ColumnOwner
	ForeignKey() string
	Fetch() string
	LazyLoad() bool
	Where() string
	OrderBy() string
}

// ElementInspector reads the element of a collection of scalars.
type ElementInspector interface {
	Inspector
	ColumnOwner
	Type() model.TypeReference
	Formula() string
}

// CacheInspector reads a cache policy.
type CacheInspector interface {
	Inspector
	Usage() string
	Region() string
	Include() string
}
