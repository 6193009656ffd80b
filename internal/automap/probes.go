package automap

import (
	"reflect"

	"automapper/internal/analyze"
)

const probePkg = "automapper/internal/automap/probe"

// ProbeCatalog returns synthetic members covering every member shape the default steps
// distinguish: identifiers, versions, scalars, enums, components, references, each collection
// shape with each element kind, embedded structs and unsupported types.
func ProbeCatalog() []*analyze.Member {
	var (
		i64     = basic("int64")
		str     = basic("string")
		integer = basic("int")
		when    = &analyze.TypeInfo{ID: analyze.TypeID{PkgPath: "time", Name: "Time"}, Kind: analyze.TypeKindExternal}
		status  = &analyze.TypeInfo{ID: analyze.TypeID{PkgPath: probePkg, Name: "Status"}, Kind: analyze.TypeKindAlias, Underlying: str, Enum: true}
		alias   = &analyze.TypeInfo{ID: analyze.TypeID{PkgPath: probePkg, Name: "Cents"}, Kind: analyze.TypeKindAlias, Underlying: i64}
		empty   = &analyze.TypeInfo{Kind: analyze.TypeKindStruct}
		iface   = &analyze.TypeInfo{Kind: analyze.TypeKindInterface}
	)

	value := structOf("Value", probe("Street", str, ""))
	entity := structOf("Entity", probe("Key", i64, `automap:"id"`), probe("Name", str, ""))

	members := []*analyze.Member{
		probe("ID", i64, ""),
		probe("Key", i64, `automap:"id"`),
		probe("ReadOnlyID", i64, `automap:"id,readonly"`),
		probe("Version", integer, ""),
		probe("Revision", integer, `automap:"version"`),
		probe("Count", integer, ""),
		probe("Name", str, ""),
		probe("Frozen", str, `automap:"readonly"`),
		probe("Amount", alias, ""),
		probe("Status", status, ""),
		probe("MaybeStatus", pointer(status), ""),
		probe("At", when, ""),
		probe("MaybeAt", pointer(when), ""),
		probe("Blob", slice(basic("uint8")), ""),
		probe("Address", value, ""),
		probe("MaybeAddress", pointer(value), ""),
		probe("Pinned", entity, `automap:"component"`),
		probe("Owner", pointer(entity), ""),
		probe("Children", slice(pointer(entity)), ""),
		probe("ChildSet", mapOf(pointer(entity), empty), ""),
		probe("ChildIndex", mapOf(str, entity), ""),
		probe("Lines", slice(value), ""),
		probe("FixedLines", array(value), ""),
		probe("Tags", slice(str), ""),
		probe("Statuses", slice(status), ""),
		probe("StatusSet", mapOf(status, empty), ""),
		probe("Attributes", mapOf(str, str), ""),
		probe("Slots", array(integer), ""),
		probe("Nested", slice(slice(integer)), ""),
		probe("Anything", iface, ""),
		probe("Anythings", slice(iface), ""),
		embed(value),
		embed(entity),
	}

	return members
}

func basic(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{ID: analyze.TypeID{Name: name}, Kind: analyze.TypeKindBasic}
}

func pointer(t *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindPointer, ElemType: t}
}

func slice(t *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindSlice, ElemType: t}
}

func array(t *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindArray, ElemType: t}
}

func mapOf(k, v *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindMap, KeyType: k, ElemType: v}
}

func structOf(name string, fields ...*analyze.Member) *analyze.TypeInfo {
	t := &analyze.TypeInfo{ID: analyze.TypeID{PkgPath: probePkg, Name: name}, Kind: analyze.TypeKindStruct}
	for i, f := range fields {
		f.DeclaringType = t.ID
		f.Index = i
		t.Fields = append(t.Fields, *f)
	}

	return t
}

func probe(name string, t *analyze.TypeInfo, tag reflect.StructTag) *analyze.Member {
	m := &analyze.Member{
		Name:          name,
		DeclaringType: analyze.TypeID{PkgPath: probePkg, Name: "Catalog"},
		Type:          t,
		Tag:           tag,
		Exported:      true,
	}
	m.Writable = !m.HasOption(analyze.OptionReadOnly)

	return m
}

func embed(t *analyze.TypeInfo) *analyze.Member {
	m := probe(t.ID.Name, t, "")
	m.Embedded = true

	return m
}
