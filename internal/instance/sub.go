package instance

import (
	"automapper/internal/attr"
	"automapper/internal/model"
)

// Access strategy values.
const (
	AccessField     = "field"
	AccessProperty  = "property"
	AccessBackField = "backfield"
	AccessReadOnly  = "readonly"
	AccessNoOp      = "noop"
)

// AccessInstance chooses how a member is read and written.
// Creating it writes nothing; each operation is a guarded write on the owning node.
type AccessInstance struct{ apply func(string) bool }

// Each operation writes its access strategy and reports whether it did.
func (a AccessInstance) Field() bool            { return a.apply(AccessField) }
func (a AccessInstance) Property() bool         { return a.apply(AccessProperty) }
func (a AccessInstance) BackField() bool        { return a.apply(AccessBackField) }
func (a AccessInstance) ReadOnly() bool         { return a.apply(AccessReadOnly) }
func (a AccessInstance) NoOp() bool             { return a.apply(AccessNoOp) }
func (a AccessInstance) Using(name string) bool { return a.apply(name) }

// FetchInstance chooses the fetch strategy of an association.
type FetchInstance struct{ apply func(string) bool }

// Each operation writes its fetch strategy and reports whether it did.
func (f FetchInstance) Join() bool      { return f.apply("join") }
func (f FetchInstance) Select() bool    { return f.apply("select") }
func (f FetchInstance) Subselect() bool { return f.apply("subselect") }

// CascadeInstance chooses which operations propagate over an association.
type CascadeInstance struct{ apply func(string) bool }

// Each operation writes its cascade style and reports whether it did.
func (c CascadeInstance) All() bool             { return c.apply("all") }
func (c CascadeInstance) None() bool            { return c.apply("none") }
func (c CascadeInstance) SaveUpdate() bool      { return c.apply("save-update") }
func (c CascadeInstance) Delete() bool          { return c.apply("delete") }
func (c CascadeInstance) DeleteOrphan() bool    { return c.apply("delete-orphan") }
func (c CascadeInstance) AllDeleteOrphan() bool { return c.apply("all-delete-orphan") }
func (c CascadeInstance) Merge() bool           { return c.apply("merge") }

// NotFoundInstance chooses what happens when a referenced row is missing.
type NotFoundInstance struct{ apply func(string) bool }

// Ignore maps a missing row to nil, Exception fails the load.
func (n NotFoundInstance) Ignore() bool    { return n.apply("ignore") }
func (n NotFoundInstance) Exception() bool { return n.apply("exception") }

// OptimisticLockInstance chooses the optimistic locking mode of an entity.
type OptimisticLockInstance struct{ apply func(string) bool }

// Each operation writes its locking mode and reports whether it did.
func (o OptimisticLockInstance) None() bool    { return o.apply("none") }
func (o OptimisticLockInstance) Version() bool { return o.apply("version") }
func (o OptimisticLockInstance) Dirty() bool   { return o.apply("dirty") }
func (o OptimisticLockInstance) All() bool     { return o.apply("all") }

// GeneratedInstance chooses when the database generates a value.
type GeneratedInstance struct{ apply func(string) bool }

// Each operation writes its generation timing and reports whether it did.
func (g GeneratedInstance) Never() bool  { return g.apply("never") }
func (g GeneratedInstance) Insert() bool { return g.apply("insert") }
func (g GeneratedInstance) Always() bool { return g.apply("always") }

// OnDeleteInstance chooses the database action when the owner row is deleted.
type OnDeleteInstance struct{ apply func(string) bool }

// Cascade deletes the rows with the owner, NoAction leaves them to the database.
func (o OnDeleteInstance) Cascade() bool  { return o.apply("cascade") }
func (o OnDeleteInstance) NoAction() bool { return o.apply("noaction") }

// CacheInstance configures a second-level cache policy. The policy node is created on the
// first operation, never when the instance is obtained.
type CacheInstance struct {
	w      writer
	policy func() *model.CacheMapping
}

func (c CacheInstance) usage(v string) bool { return c.w.setOn(c.policy(), attr.Usage, v) }

// Each operation writes its cache usage and reports whether it did.
func (c CacheInstance) ReadWrite() bool          { return c.usage("read-write") }
func (c CacheInstance) NonStrictReadWrite() bool { return c.usage("nonstrict-read-write") }
func (c CacheInstance) ReadOnly() bool           { return c.usage("read-only") }
func (c CacheInstance) Transactional() bool      { return c.usage("transactional") }

// Region names the cache region.
func (c CacheInstance) Region(name string) bool { return c.w.setOn(c.policy(), attr.Region, name) }

// IncludeAll caches lazy properties too.
func (c CacheInstance) IncludeAll() bool { return c.w.setOn(c.policy(), attr.Include, "all") }

// IncludeNonLazy caches only eagerly loaded properties.
func (c CacheInstance) IncludeNonLazy() bool {
	return c.w.setOn(c.policy(), attr.Include, "non-lazy")
}

// cachePolicy returns a lookup that creates the node's cache policy as a default on demand.
func cachePolicy(n model.Node) func() *model.CacheMapping {
	return func() *model.CacheMapping {
		if v, ok := n.Get(attr.Cache); ok {
			if c, ok := v.(*model.CacheMapping); ok && c != nil {
				return c
			}
		}

		c := model.NewCache()
		n.SetDefault(attr.Cache, c)

		return c
	}
}
