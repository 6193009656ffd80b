package model

import (
	"automapper/internal/attr"
	"automapper/internal/common"
)

// NodeKind identifies the concrete type of a mapping node.
type NodeKind int

const (
	KindUnknown NodeKind = iota
	KindClass
	KindComponent
	KindCompositeElement
	KindIdentity
	KindVersion
	KindProperty
	KindColumn
	KindManyToOne
	KindCollection
	KindKey
	KindIndex
	KindElement
	KindOneToMany
	KindManyToMany
	KindCache
)

// String returns a human-readable representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindComponent:
		return "component"
	case KindCompositeElement:
		return "composite-element"
	case KindIdentity:
		return "id"
	case KindVersion:
		return "version"
	case KindProperty:
		return "property"
	case KindColumn:
		return "column"
	case KindManyToOne:
		return "many-to-one"
	case KindCollection:
		return "collection"
	case KindKey:
		return "key"
	case KindIndex:
		return "index"
	case KindElement:
		return "element"
	case KindOneToMany:
		return "one-to-many"
	case KindManyToMany:
		return "many-to-many"
	case KindCache:
		return "cache"
	default:
		return common.UnknownStr
	}
}

// Node is an element of a mapping tree.
type Node interface {
	Kind() NodeKind
	Attributes() *attr.Store
	IsSpecified(k attr.Key) bool
	HasValue(k attr.Key) bool
	Get(k attr.Key) (any, bool)
	Set(k attr.Key, v any)
	SetDefault(k attr.Key, v any)
	// Children returns the owned child nodes in a stable order.
	Children() []Node
}

// base holds the attribute store shared by every node kind.
type base struct {
	attrs *attr.Store
}

func newBase() base {
	return base{attrs: attr.NewStore()}
}

// Attributes returns the node's own attribute store.
func (b *base) Attributes() *attr.Store { return b.attrs }

// IsSpecified reports whether k was set explicitly.
func (b *base) IsSpecified(k attr.Key) bool { return b.attrs.IsSpecified(k) }

// HasValue reports whether k has a default or explicit value.
func (b *base) HasValue(k attr.Key) bool { return b.attrs.HasValue(k) }

// Get returns the resolved value of k.
func (b *base) Get(k attr.Key) (any, bool) { return b.attrs.Get(k) }

// Set writes an explicit value.
func (b *base) Set(k attr.Key, v any) { b.attrs.Set(k, v) }

// SetDefault writes a default value.
func (b *base) SetDefault(k attr.Key, v any) { b.attrs.SetDefault(k, v) }

func (b *base) str(k attr.Key) string { return attr.Value[string](b.attrs, k) }

func (b *base) ref(k attr.Key) TypeReference { return attr.Value[TypeReference](b.attrs, k) }

// Columns keeps default columns apart from user-declared ones.
// Once a user column is added the defaults are hidden.
type Columns struct {
	defaults []*ColumnMapping
	user     []*ColumnMapping
}

// AddDefault appends a column discovered by automapping.
func (c *Columns) AddDefault(col *ColumnMapping) { c.defaults = append(c.defaults, col) }

// Add appends a user-declared column.
func (c *Columns) Add(col *ColumnMapping) { c.user = append(c.user, col) }

// Clear drops all user-declared columns, exposing the defaults again.
func (c *Columns) Clear() { c.user = nil }

// HasUserDefined reports whether user columns replace the defaults.
func (c *Columns) HasUserDefined() bool { return len(c.user) > 0 }

// All returns the effective columns.
func (c *Columns) All() []*ColumnMapping {
	if len(c.user) > 0 {
		return c.user
	}

	return c.defaults
}

func (c *Columns) equal(o *Columns) bool {
	a, b := c.All(), o.All()
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

func (c *Columns) clone() Columns {
	out := Columns{}
	for _, col := range c.defaults {
		out.defaults = append(out.defaults, col.Clone())
	}

	for _, col := range c.user {
		out.user = append(out.user, col.Clone())
	}

	return out
}

// columnBased is embedded by nodes backed by one or more columns. Column attributes are
// delegated to the columns instead of the node's own store.
type columnBased struct {
	base
	columns Columns
}

func newColumnBased() columnBased {
	return columnBased{base: newBase()}
}

// Columns returns the column list of the node.
func (c *columnBased) Columns() *Columns { return &c.columns }

// IsSpecified reports whether k was set explicitly. For column keys it is true when any column
// has k specified.
func (c *columnBased) IsSpecified(k attr.Key) bool {
	if !k.IsColumnKey() {
		return c.base.IsSpecified(k)
	}

	for _, col := range c.columns.All() {
		if col.IsSpecified(k) {
			return true
		}
	}

	return false
}

// HasValue reports whether k carries a value on the node or, for column keys, on any column.
func (c *columnBased) HasValue(k attr.Key) bool {
	if !k.IsColumnKey() {
		return c.base.HasValue(k)
	}

	for _, col := range c.columns.All() {
		if col.HasValue(k) {
			return true
		}
	}

	return false
}

// Get returns the resolved value of k. Column keys resolve against the first column.
func (c *columnBased) Get(k attr.Key) (any, bool) {
	if !k.IsColumnKey() {
		return c.base.Get(k)
	}

	cols := c.columns.All()
	if len(cols) == 0 {
		return nil, false
	}

	return cols[0].Get(k)
}

// Set writes an explicit value. Column keys are written to every column.
func (c *columnBased) Set(k attr.Key, v any) {
	if !k.IsColumnKey() {
		c.base.Set(k, v)
		return
	}

	for _, col := range c.columns.All() {
		col.Set(k, v)
	}
}

// SetDefault writes a default value. Column keys are written to every column.
func (c *columnBased) SetDefault(k attr.Key, v any) {
	if !k.IsColumnKey() {
		c.base.SetDefault(k, v)
		return
	}

	for _, col := range c.columns.All() {
		col.SetDefault(k, v)
	}
}

func (c *columnBased) columnNodes() []Node {
	cols := c.columns.All()
	out := make([]Node, len(cols))

	for i, col := range cols {
		out[i] = col
	}

	return out
}

func (c *columnBased) equal(o *columnBased) bool {
	return c.attrs.Equal(o.attrs) && c.columns.equal(&o.columns)
}

// ColumnMapping is a single storage column.
type ColumnMapping struct {
	base
}

// NewColumn creates a column whose name is recorded as a default.
func NewColumn(name string) *ColumnMapping {
	c := &ColumnMapping{base: newBase()}
	if name != "" {
		c.SetDefault(attr.Name, name)
	}

	return c
}

// Kind implements Node.
func (c *ColumnMapping) Kind() NodeKind { return KindColumn }

// Children implements Node.
func (c *ColumnMapping) Children() []Node { return nil }

// Name returns the resolved column name.
func (c *ColumnMapping) Name() string { return c.str(attr.Name) }

// Clone copies the column with all attribute states.
func (c *ColumnMapping) Clone() *ColumnMapping {
	return &ColumnMapping{base: base{attrs: c.attrs.Clone()}}
}

// Equal compares attribute stores.
func (c *ColumnMapping) Equal(o *ColumnMapping) bool {
	return o != nil && c.attrs.Equal(o.attrs)
}

type equaler[T any] interface {
	Equal(T) bool
}

// contentEqual compares two child lists regardless of order.
func contentEqual[T equaler[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	used := make([]bool, len(b))

outer:
	for _, x := range a {
		for j, y := range b {
			if !used[j] && x.Equal(y) {
				used[j] = true
				continue outer
			}
		}

		return false
	}

	return true
}

// optionalEqual compares two optional children.
func optionalEqual[T interface {
	comparable
	equaler[T]
}](a, b T) bool {
	var zero T
	if a == zero || b == zero {
		return a == b
	}

	return a.Equal(b)
}

// Walk visits n and its descendants depth-first in child order.
// Returning an error from fn stops the walk.
func Walk(n Node, fn func(Node) error) error {
	if n == nil {
		return nil
	}

	if err := fn(n); err != nil {
		return err
	}

	for _, c := range n.Children() {
		if err := Walk(c, fn); err != nil {
			return err
		}
	}

	return nil
}
