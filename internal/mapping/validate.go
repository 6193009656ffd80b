package mapping

import (
	"fmt"
	"slices"

	"automapper/internal/analyze"
	"automapper/internal/diagnostic"
	"automapper/internal/naming"
)

// suggestionLimit caps the "did you mean" candidates of one diagnostic.
const suggestionLimit = 3

// Validate checks a declaration file against the given type graph. Unknown types and member
// names are reported with the closest known names as suggestions.
func Validate(df *DeclarationFile, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if df == nil {
		res.AddError("declarations_are_nil", "declaration file is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "type graph is nil", "", "")
		return res
	}

	if df.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported version %q, want %q", df.Version, CurrentVersion), "", "")
	}

	seen := map[analyze.TypeID]bool{}

	for i := range df.Entities {
		ed := &df.Entities[i]

		t := resolveEntity(res, ed, graph)
		if t == nil {
			continue
		}

		if seen[t.ID] {
			res.AddError("duplicate_entity", "entity declared more than once", ed.Type, "")
			continue
		}

		seen[t.ID] = true

		validateEntity(res, ed, t)
	}

	return res
}

func resolveEntity(res *diagnostic.Diagnostics, ed *EntityDecl, graph *analyze.TypeGraph) *analyze.TypeInfo {
	if ed.Type == "" {
		res.AddError("missing_type", "entity declaration must specify type", "", "")
		return nil
	}

	t := graph.Lookup(ed.Type)
	if t == nil {
		res.AddError("type_not_found", fmt.Sprintf("type %q not found", ed.Type), ed.Type, "",
			naming.Suggest(ed.Type, graph.Names(), suggestionLimit)...)

		return nil
	}

	if !t.IsStruct() {
		res.AddError("not_a_struct", fmt.Sprintf("type %q is a %s, not a struct", ed.Type, t.Kind), ed.Type, "")
		return nil
	}

	return t
}

// memberIndex looks up the mappable members of one struct.
type memberIndex struct {
	typ     string
	members map[string]*analyze.Member
	names   []string
}

func newMemberIndex(typ string, t *analyze.TypeInfo) memberIndex {
	idx := memberIndex{typ: typ, members: map[string]*analyze.Member{}}
	for _, m := range t.Deref().Members() {
		idx.members[m.Name] = m
		idx.names = append(idx.names, m.Name)
	}

	return idx
}

// lookup returns the member or reports it as unknown.
func (idx memberIndex) lookup(res *diagnostic.Diagnostics, section, name string) *analyze.Member {
	if name == "" {
		res.AddError("missing_name", section+" declaration must specify name", idx.typ, "")
		return nil
	}

	m, ok := idx.members[name]
	if !ok {
		res.AddError("unknown_member", fmt.Sprintf("%s %q is not a member", section, name), idx.typ, name,
			naming.Suggest(name, idx.names, suggestionLimit)...)

		return nil
	}

	return m
}

func validateEntity(res *diagnostic.Diagnostics, ed *EntityDecl, t *analyze.TypeInfo) {
	idx := newMemberIndex(ed.Type, t)
	declared := map[string]bool{}

	declare := func(name string) {
		if declared[name] {
			res.AddError("duplicate_member", "member declared more than once", ed.Type, name)
		}

		declared[name] = true
	}

	for _, name := range ed.Ignore {
		idx.lookup(res, "ignored member", name)
	}

	validateProperties(res, idx, ed.Properties, declare)

	for _, rd := range ed.References {
		m := idx.lookup(res, "reference", rd.Name)
		if m == nil {
			continue
		}

		declare(rd.Name)

		if !m.Type.IsUserStruct() || m.Type.Collection() != analyze.CollectionNone {
			res.AddError("not_a_reference", fmt.Sprintf("member %q holds %s, not an entity", rd.Name, m.Type.Kind), ed.Type, rd.Name)
		}
	}

	for _, cd := range ed.Components {
		m := idx.lookup(res, "component", cd.Name)
		if m == nil {
			continue
		}

		declare(cd.Name)

		if !m.Type.IsUserStruct() {
			res.AddError("not_a_component", fmt.Sprintf("member %q holds %s, not a struct", cd.Name, m.Type.Kind), ed.Type, cd.Name)
			continue
		}

		nested := newMemberIndex(ed.Type+"."+cd.Name, m.Type)
		validateProperties(res, nested, cd.Properties, func(string) {})
	}

	for _, cd := range ed.Collections {
		m := idx.lookup(res, "collection", cd.Name)
		if m == nil {
			continue
		}

		declare(cd.Name)

		if m.Type.Collection() == analyze.CollectionNone {
			res.AddError("not_a_collection", fmt.Sprintf("member %q holds %s, not a collection", cd.Name, m.Type.Kind), ed.Type, cd.Name)
		}

		relationships := []string{RelationshipOneToMany, RelationshipManyToMany}
		if cd.Relationship != "" && !slices.Contains(relationships, cd.Relationship) {
			res.AddError("invalid_relationship", fmt.Sprintf("unknown relationship %q", cd.Relationship), ed.Type, cd.Name,
				naming.Suggest(cd.Relationship, relationships, suggestionLimit)...)
		}
	}

	for _, name := range ed.Ignore {
		if declared[name] {
			res.AddWarning("ignored_member_declared", "member is ignored, its declaration has no effect", ed.Type, name)
		}
	}
}

func validateProperties(res *diagnostic.Diagnostics, idx memberIndex, props []PropertyDecl, declare func(string)) {
	for _, pd := range props {
		if idx.lookup(res, "property", pd.Name) == nil {
			continue
		}

		declare(pd.Name)

		if pd.Length < 0 {
			res.AddError("invalid_length", fmt.Sprintf("length %d is negative", pd.Length), idx.typ, pd.Name)
		}

		if slices.Contains(pd.Column, "") {
			res.AddError("empty_column", "column names must not be empty", idx.typ, pd.Name)
		}
	}
}
