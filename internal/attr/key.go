package attr

import "automapper/internal/common"

// Key identifies a single configurable attribute of a mapping node.
type Key int

const (
	_ Key = iota // skip zero value, use it as an invalid key

	Name
	Type
	Table
	Schema
	Access
	Lazy
	BatchSize
	DynamicInsert
	DynamicUpdate
	Mutable
	Where
	Insert
	Update
	OptimisticLock
	Formula
	Generated
	Class
	Cascade
	Fetch
	NotFound
	ForeignKey
	PropertyRef
	Inverse
	OrderBy
	Sort
	Generic
	CollectionType
	Persister
	Subselect
	Relationship
	Parent
	Generator
	UnsavedValue
	OnDelete
	Usage
	Region
	Include
	Extends
	Cache

	// Column attributes. They are stored on column nodes, never on the owning node, with two
	// exceptions for nodes that have no columns: Check on a collection is the check constraint of
	// its table, and Unique on a component makes the component's columns unique together.

	Length
	Precision
	Scale
	NotNull
	Unique
	UniqueKey
	SQLType
	Index
	Check
	Default

	// KeyTotal is a constant that represents the total number of keys defined
	KeyTotal = int(iota)
)

var keyNames = [...]string{
	Name:           "name",
	Type:           "type",
	Table:          "table",
	Schema:         "schema",
	Access:         "access",
	Lazy:           "lazy",
	BatchSize:      "batch_size",
	DynamicInsert:  "dynamic_insert",
	DynamicUpdate:  "dynamic_update",
	Mutable:        "mutable",
	Where:          "where",
	Insert:         "insert",
	Update:         "update",
	OptimisticLock: "optimistic_lock",
	Formula:        "formula",
	Generated:      "generated",
	Class:          "class",
	Cascade:        "cascade",
	Fetch:          "fetch",
	NotFound:       "not_found",
	ForeignKey:     "foreign_key",
	PropertyRef:    "property_ref",
	Inverse:        "inverse",
	OrderBy:        "order_by",
	Sort:           "sort",
	Generic:        "generic",
	CollectionType: "collection_type",
	Persister:      "persister",
	Subselect:      "subselect",
	Relationship:   "relationship",
	Parent:         "parent",
	Generator:      "generator",
	UnsavedValue:   "unsaved_value",
	OnDelete:       "on_delete",
	Usage:          "usage",
	Region:         "region",
	Include:        "include",
	Extends:        "extends",
	Cache:          "cache",
	Length:         "length",
	Precision:      "precision",
	Scale:          "scale",
	NotNull:        "not_null",
	Unique:         "unique",
	UniqueKey:      "unique_key",
	SQLType:        "sql_type",
	Index:          "index",
	Check:          "check",
	Default:        "default",
}

// String returns the snake_case name of the key.
func (k Key) String() string {
	if k <= 0 || int(k) >= KeyTotal {
		return common.UnknownStr
	}

	return keyNames[k]
}

// ParseKey resolves a key by its snake_case name.
func ParseKey(s string) (Key, bool) {
	for k := Key(1); int(k) < KeyTotal; k++ {
		if keyNames[k] == s {
			return k, true
		}
	}

	return 0, false
}

// IsColumnKey reports whether the attribute lives on individual column nodes.
func (k Key) IsColumnKey() bool {
	return k >= Length && k <= Default
}

// ColumnKeys lists every per-column attribute.
func ColumnKeys() []Key {
	return []Key{Length, Precision, Scale, NotNull, Unique, UniqueKey, SQLType, Index, Check, Default}
}
