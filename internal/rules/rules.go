// Package rules holds the discovery policy consulted while automapping: which members are mapped,
// which types are entities or components, and how columns are named.
package rules

import (
	"slices"

	"automapper/internal/analyze"
	"automapper/internal/model"
	"automapper/internal/naming"
)

// Rules is the naming and discovery policy used by the automapping steps.
// Implementations must be free of side effects so one value can serve several passes.
type Rules interface {
	// ShouldMap reports whether a member takes part in automapping at all.
	ShouldMap(m *analyze.Member) bool
	// IsID reports whether a member is the identifier of its entity.
	IsID(m *analyze.Member) bool
	// IsVersion reports whether a member is the optimistic concurrency version.
	IsVersion(m *analyze.Member) bool
	// IsEntity reports whether a type is mapped to its own table.
	IsEntity(t *analyze.TypeInfo) bool
	// IsComponent reports whether a type is stored inline in the table of its owner.
	IsComponent(t *analyze.TypeInfo) bool

	ComponentColumnPrefix(m *analyze.Member) string
	KeyColumn(m *analyze.Member, owner model.TypeReference) string
	ReferenceColumn(m *analyze.Member) string
	IndexColumn(m *analyze.Member) string
	ElementColumn(m *analyze.Member) string
	ColumnName(name string) string
}

// Options configures the Default rules.
type Options struct {
	IDNames      []string     // member names recognized as identifiers, compared after normalization
	VersionNames []string     // member names recognized as versions
	KeySuffix    string       // appended to the owner name for collection keys and reference columns
	ColumnStyle  naming.Style // verbatim or snake_case column names
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		IDNames:      []string{"ID"},
		VersionNames: []string{"Version"},
		KeySuffix:    "ID",
		ColumnStyle:  naming.StyleVerbatim,
	}
}

// Default is the configurable built-in policy.
type Default struct {
	opts    Options
	ids     []string
	version []string
}

// New creates Default rules. Empty name lists and an empty key suffix fall back to DefaultOptions.
func New(opts Options) *Default {
	def := DefaultOptions()
	if len(opts.IDNames) == 0 {
		opts.IDNames = def.IDNames
	}

	if len(opts.VersionNames) == 0 {
		opts.VersionNames = def.VersionNames
	}

	if opts.KeySuffix == "" {
		opts.KeySuffix = def.KeySuffix
	}

	return &Default{
		opts:    opts,
		ids:     normalizeAll(opts.IDNames),
		version: normalizeAll(opts.VersionNames),
	}
}

func normalizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = naming.Normalize(n)
	}

	return out
}

// Options returns the effective options.
func (d *Default) Options() Options {
	return d.opts
}

// ShouldMap skips unexported members, members tagged automap:"-" and read-only members.
// A read-only identifier is still mapped.
func (d *Default) ShouldMap(m *analyze.Member) bool {
	if !m.Exported || m.Ignored() {
		return false
	}

	return m.Writable || d.IsID(m)
}

// IsID matches the id tag option or a configured identifier name on a scalar member.
func (d *Default) IsID(m *analyze.Member) bool {
	if !m.Type.IsScalar() {
		return false
	}

	return m.HasOption(analyze.OptionID) || slices.Contains(d.ids, naming.Normalize(m.Name))
}

// IsVersion matches the version tag option or a configured version name on a scalar member.
// Identifiers are never versions.
func (d *Default) IsVersion(m *analyze.Member) bool {
	if !m.Type.IsScalar() || d.IsID(m) {
		return false
	}

	return m.HasOption(analyze.OptionVersion) || slices.Contains(d.version, naming.Normalize(m.Name))
}

// IsEntity reports named structs declared outside the standard library that carry an identifier.
func (d *Default) IsEntity(t *analyze.TypeInfo) bool {
	if !t.IsUserStruct() {
		return false
	}

	for _, m := range t.Deref().Members() {
		if d.IsID(m) {
			return true
		}
	}

	return false
}

// IsComponent reports named structs declared outside the standard library without an identifier.
func (d *Default) IsComponent(t *analyze.TypeInfo) bool {
	return t.IsUserStruct() && !d.IsEntity(t)
}

// ComponentColumnPrefix prefixes component columns with the member name: ShippingStreet.
func (d *Default) ComponentColumnPrefix(m *analyze.Member) string {
	if d.opts.ColumnStyle == naming.StyleSnake {
		return naming.Snake(m.Name) + "_"
	}

	return m.Name
}

// KeyColumn names the collection key after the owning type: OrderID.
func (d *Default) KeyColumn(_ *analyze.Member, owner model.TypeReference) string {
	return d.opts.ColumnStyle.Join(owner.Name, d.opts.KeySuffix)
}

// ReferenceColumn names the foreign key after the member: CustomerID.
func (d *Default) ReferenceColumn(m *analyze.Member) string {
	return d.opts.ColumnStyle.Join(m.Name, d.opts.KeySuffix)
}

// IndexColumn names the position or map key column of a collection: LinesIndex.
func (d *Default) IndexColumn(m *analyze.Member) string {
	return d.opts.ColumnStyle.Join(m.Name, "Index")
}

// ElementColumn names the value column of a collection of scalars: TagsValue.
func (d *Default) ElementColumn(m *analyze.Member) string {
	return d.opts.ColumnStyle.Join(m.Name, "Value")
}

// ColumnName formats a member name as a column name.
func (d *Default) ColumnName(name string) string {
	return d.opts.ColumnStyle.Apply(name)
}
