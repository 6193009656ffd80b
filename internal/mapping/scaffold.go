package mapping

import (
	"automapper/internal/attr"
	"automapper/internal/inspect"
	"automapper/internal/model"
)

// Scaffold exports resolved class mappings as a declaration file for review. Every class under
// the roots is exported once, expanded relationship targets included. Column names, tables and
// keys are written whether they were discovered or specified; storage types only when specified,
// since discovered types follow from the Go declaration.
func Scaffold(roots ...*model.ClassMapping) *DeclarationFile {
	df := &DeclarationFile{Version: CurrentVersion}
	seen := map[string]bool{}

	for _, root := range roots {
		_ = model.Walk(root, func(n model.Node) error {
			cls, ok := n.(*model.ClassMapping)
			if !ok || seen[cls.Type.String()] {
				return nil
			}

			seen[cls.Type.String()] = true
			df.Entities = append(df.Entities, scaffoldEntity(cls))

			return nil
		})
	}

	return df
}

func scaffoldEntity(cls *model.ClassMapping) EntityDecl {
	view := inspect.NewClass(cls)
	ed := EntityDecl{
		Type:   cls.Type.PkgPath + "." + cls.Type.Name,
		Table:  view.TableName(),
		Schema: view.Schema(),
	}

	if cls.Identity != nil {
		ed.Properties = append(ed.Properties, scaffoldProperty(cls.Identity.Member, cls.Identity, inspect.NewIdentity(cls.Identity).Columns()))
	}

	if cls.Version != nil {
		ed.Properties = append(ed.Properties, scaffoldProperty(cls.Version.Member, cls.Version, inspect.NewVersion(cls.Version).Columns()))
	}

	ed.Properties = append(ed.Properties, scaffoldProperties(cls.Properties())...)

	for _, r := range cls.References() {
		rv := inspect.NewManyToOne(r)
		ed.References = append(ed.References, ReferenceDecl{
			Name:       r.Member,
			Column:     firstColumn(rv.Columns()),
			ForeignKey: rv.ForeignKey(),
			Cascade:    rv.Cascade(),
			Fetch:      rv.Fetch(),
		})
	}

	for _, c := range cls.Components() {
		ed.Components = append(ed.Components, ComponentDecl{Name: c.Member, Properties: scaffoldProperties(c.Properties())})
	}

	for _, c := range cls.Collections() {
		ed.Collections = append(ed.Collections, scaffoldCollection(c))
	}

	return ed
}

func scaffoldProperties(ps []*model.PropertyMapping) []PropertyDecl {
	var out []PropertyDecl
	for _, p := range ps {
		pd := scaffoldProperty(p.Member, p, inspect.NewProperty(p).Columns())
		pd.Formula = inspect.NewProperty(p).Formula()
		out = append(out, pd)
	}

	return out
}

func scaffoldProperty(member string, n model.Node, cols []inspect.ColumnInspector) PropertyDecl {
	pd := PropertyDecl{Name: member}
	for _, c := range cols {
		pd.Column = append(pd.Column, c.Name())
	}

	if len(cols) > 0 {
		pd.Length = cols[0].Length()
	}

	if n.IsSpecified(attr.Type) {
		if v, ok := n.Get(attr.Type); ok {
			if ref, ok := v.(model.TypeReference); ok && len(ref.Args) == 0 {
				pd.Type = ref.PkgPath + "." + ref.Name
				if ref.PkgPath == "" {
					pd.Type = ref.Name
				}
			}
		}
	}

	return pd
}

func scaffoldCollection(c *model.CollectionMapping) CollectionDecl {
	view := inspect.NewCollection(c)
	cd := CollectionDecl{
		Name:       c.Member,
		Table:      view.TableName(),
		Key:        firstColumn(view.Key().Columns()),
		ForeignKey: view.Key().ForeignKey(),
		OrderBy:    view.OrderBy(),
	}

	switch c.Relationship().(type) {
	case *model.OneToManyMapping:
		cd.Relationship = RelationshipOneToMany
	case *model.ManyToManyMapping:
		cd.Relationship = RelationshipManyToMany
	}

	return cd
}

func firstColumn(cols []inspect.ColumnInspector) string {
	if len(cols) == 0 {
		return ""
	}

	return cols[0].Name()
}
