package mapping

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/diagnostic"
	"automapper/internal/model"
)

// ErrNotMapped is returned by Apply when a declared member has no node of the declared kind.
var ErrNotMapped = errors.New("declared member is not mapped")

// Declarations is a validated declaration file bound to the entity types it names.
type Declarations struct {
	entities map[analyze.TypeID]*EntityDecl
}

// Compile validates df against graph and binds its entities. It returns nil declarations when
// validation reports errors; warnings are returned either way.
func Compile(df *DeclarationFile, graph *analyze.TypeGraph) (*Declarations, *diagnostic.Diagnostics) {
	res := Validate(df, graph)
	if res.HasErrors() {
		return nil, res
	}

	d := &Declarations{entities: make(map[analyze.TypeID]*EntityDecl, len(df.Entities))}
	for i := range df.Entities {
		ed := &df.Entities[i]
		d.entities[graph.Lookup(ed.Type).ID] = ed
	}

	return d, res
}

// Len returns the number of declared entities.
func (d *Declarations) Len() int {
	return len(d.entities)
}

// Skips implements automap.Skipper. Only members declared by the entity itself can be ignored;
// members promoted from embedded structs are ignored on the embedded type.
func (d *Declarations) Skips(owner analyze.TypeID, member string) bool {
	ed, ok := d.entities[owner]
	return ok && ed.Ignore.Contains(member)
}

// Apply writes the declared values into every class mapping under roots, expanded relationship
// targets included. Values are written as explicit so later conventions keep them.
func (d *Declarations) Apply(roots ...*model.ClassMapping) error {
	var errs []error

	for _, root := range roots {
		_ = model.Walk(root, func(n model.Node) error {
			cls, ok := n.(*model.ClassMapping)
			if !ok {
				return nil
			}

			if ed, ok := d.entities[analyze.TypeID{PkgPath: cls.Type.PkgPath, Name: cls.Type.Name}]; ok {
				errs = append(errs, applyEntity(cls, ed))
			}

			return nil
		})
	}

	return errors.Join(errs...)
}

func applyEntity(cls *model.ClassMapping, ed *EntityDecl) error {
	setString(cls, attr.Table, ed.Table)
	setString(cls, attr.Schema, ed.Schema)
	setBool(cls, attr.Lazy, ed.Lazy)

	var errs []error

	props := slices.DeleteFunc(slices.Clone(ed.Properties), func(pd PropertyDecl) bool {
		return ed.Ignore.Contains(pd.Name)
	})
	errs = append(errs, applyProperties(cls, cls, props)...)

	for _, rd := range ed.References {
		if ed.Ignore.Contains(rd.Name) {
			continue
		}

		r := find(cls.References(), func(r *model.ManyToOneMapping) bool { return r.Member == rd.Name })
		if r == nil {
			errs = append(errs, notMapped(cls, "reference", rd.Name))
			continue
		}

		if rd.Column != "" {
			setColumns(r.Columns(), []string{rd.Column})
		}

		setString(r, attr.ForeignKey, rd.ForeignKey)
		setString(r, attr.Cascade, rd.Cascade)
		setString(r, attr.Fetch, rd.Fetch)
		setBool(r, attr.Lazy, rd.Lazy)
		setBool(r, attr.NotNull, rd.NotNull)
	}

	for _, cd := range ed.Components {
		if ed.Ignore.Contains(cd.Name) {
			continue
		}

		c := find(cls.Components(), func(c *model.ComponentMapping) bool { return c.Member == cd.Name })
		if c == nil {
			errs = append(errs, notMapped(cls, "component", cd.Name))
			continue
		}

		errs = append(errs, applyProperties(cls, c, cd.Properties)...)
	}

	for _, cd := range ed.Collections {
		if ed.Ignore.Contains(cd.Name) {
			continue
		}

		c := find(cls.Collections(), func(c *model.CollectionMapping) bool { return c.Member == cd.Name })
		if c == nil {
			errs = append(errs, notMapped(cls, "collection", cd.Name))
			continue
		}

		errs = append(errs, applyCollection(cls, c, &cd))
	}

	return errors.Join(errs...)
}

// columnNode is a node whose attributes delegate column keys to its columns.
type columnNode interface {
	model.Node
	Columns() *model.Columns
}

// propertyNode finds the node of a property declaration. The identifier and the version of a
// class are declared as properties too.
func propertyNode(cls *model.ClassMapping, c model.Container, name string) columnNode {
	if model.Container(cls) == c {
		if cls.Identity != nil && cls.Identity.Member == name {
			return cls.Identity
		}

		if cls.Version != nil && cls.Version.Member == name {
			return cls.Version
		}
	}

	if p := find(c.Properties(), func(p *model.PropertyMapping) bool { return p.Member == name }); p != nil {
		return p
	}

	return nil
}

func applyProperties(cls *model.ClassMapping, c model.Container, props []PropertyDecl) []error {
	var errs []error

	for _, pd := range props {
		n := propertyNode(cls, c, pd.Name)
		if n == nil {
			errs = append(errs, notMapped(cls, "property", pd.Name))
			continue
		}

		if !pd.Column.IsEmpty() {
			setColumns(n.Columns(), pd.Column)
		}

		if pd.Type != "" {
			n.Set(attr.Type, ParseTypeRef(pd.Type))
		}

		if pd.Length > 0 {
			n.Set(attr.Length, pd.Length)
		}

		setBool(n, attr.NotNull, pd.NotNull)
		setBool(n, attr.Unique, pd.Unique)
		setString(n, attr.Formula, pd.Formula)
		setBool(n, attr.Insert, pd.Insert)
		setBool(n, attr.Update, pd.Update)
	}

	return errs
}

func applyCollection(cls *model.ClassMapping, c *model.CollectionMapping, cd *CollectionDecl) error {
	switch cd.Relationship {
	case "":
	case RelationshipOneToMany, RelationshipManyToMany:
		if c.Relationship() == nil {
			return fmt.Errorf("%s.%s holds values, it has no relationship: %w", cls.Type.Name, cd.Name, ErrNotMapped)
		}

		child := c.Relationship().ChildType()
		if cd.Relationship == RelationshipManyToMany {
			c.Set(attr.Relationship, model.NewManyToMany(c.ContainingEntityType, child))
		} else {
			c.Set(attr.Relationship, model.NewOneToMany(c.ContainingEntityType, child))
		}
	}

	setString(c, attr.Table, cd.Table)
	setBool(c, attr.Inverse, cd.Inverse)
	setBool(c, attr.Lazy, cd.Lazy)
	setString(c, attr.Cascade, cd.Cascade)
	setString(c, attr.OrderBy, cd.OrderBy)

	if cd.BatchSize > 0 {
		c.Set(attr.BatchSize, cd.BatchSize)
	}

	if cd.Key != "" {
		setColumns(c.Key.Columns(), []string{cd.Key})
	}

	setString(c.Key, attr.ForeignKey, cd.ForeignKey)

	return nil
}

// setColumns replaces the columns with explicitly named ones. The first column keeps the
// attributes of the column it replaces.
func setColumns(cols *model.Columns, names []string) {
	prev := cols.All()
	cols.Clear()

	for i, name := range names {
		col := model.NewColumn("")
		if i == 0 && len(prev) > 0 {
			col = prev[0].Clone()
		}

		col.Set(attr.Name, name)
		cols.Add(col)
	}
}

func setString(n model.Node, k attr.Key, v string) {
	if v != "" {
		n.Set(k, v)
	}
}

func setBool(n model.Node, k attr.Key, v *bool) {
	if v != nil {
		n.Set(k, *v)
	}
}

func find[T any](items []T, match func(T) bool) T {
	for _, it := range items {
		if match(it) {
			return it
		}
	}

	var zero T

	return zero
}

func notMapped(cls *model.ClassMapping, kind, member string) error {
	return fmt.Errorf("%s %s.%s: %w", kind, cls.Type.Name, member, ErrNotMapped)
}

// ParseTypeRef parses "Name" or "pkg/path.Name" into a type reference.
func ParseTypeRef(s string) model.TypeReference {
	idx := strings.LastIndex(s, ".")
	if idx < 0 {
		return model.TypeReference{Name: s}
	}

	return model.TypeReference{PkgPath: s[:idx], Name: s[idx+1:]}
}
