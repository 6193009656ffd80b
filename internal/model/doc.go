// Package model defines the mapping tree produced by automapping and refined by declarations
// and conventions.
//
// Every node owns an attr.Store. Nodes backed by columns (properties, identifiers, versions,
// references, keys, indexes, elements, many-to-many relationships) keep per-column attributes on
// their ColumnMapping children and answer IsSpecified for those keys by asking the columns.
//
// Ownership is exclusive: a node has exactly one parent and relationships replace their
// collection's relationship attribute as a whole.
package model
