package model

import (
	"strings"

	"automapper/internal/analyze"
)

// EnumAdapterName is the name of the generic storage adapter for enumerations.
const EnumAdapterName = "EnumAdapter"

// TypeReference names a type inside the mapping tree. Named types carry their package path and
// generic arguments; unnamed types (pointers, slices) carry their Go spelling in Name.
type TypeReference struct {
	PkgPath string
	Name    string
	Args    []TypeReference
}

// RefOf builds a reference for analyzed type metadata.
func RefOf(t *analyze.TypeInfo) TypeReference {
	if t == nil {
		return TypeReference{}
	}

	if !t.IsNamed() || t.Kind == analyze.TypeKindBasic {
		return TypeReference{Name: analyze.NewTypeStringer().TypeString(t)}
	}

	ref := TypeReference{PkgPath: t.ID.PkgPath, Name: t.ID.Name}
	for _, a := range t.TypeArgs {
		ref.Args = append(ref.Args, RefOf(a))
	}

	return ref
}

// RefOfID builds a reference for a named, non-generic type.
func RefOfID(id analyze.TypeID) TypeReference {
	return TypeReference{PkgPath: id.PkgPath, Name: id.Name}
}

// EnumAdapter returns the adapter type parameterized by an enumeration.
func EnumAdapter(enum TypeReference) TypeReference {
	return TypeReference{Name: EnumAdapterName, Args: []TypeReference{enum}}
}

// IsEnumAdapter reports whether the reference is an enum adapter instantiation.
func (r TypeReference) IsEnumAdapter() bool {
	return r.PkgPath == "" && r.Name == EnumAdapterName && len(r.Args) == 1
}

// IsZero reports whether the reference names nothing.
func (r TypeReference) IsZero() bool {
	return r.Name == ""
}

// Equal compares references including generic arguments.
func (r TypeReference) Equal(o TypeReference) bool {
	if r.PkgPath != o.PkgPath || r.Name != o.Name || len(r.Args) != len(o.Args) {
		return false
	}

	for i := range r.Args {
		if !r.Args[i].Equal(o.Args[i]) {
			return false
		}
	}

	return true
}

// EqualValue lets references stored as attributes compare structurally.
func (r TypeReference) EqualValue(other any) bool {
	o, ok := other.(TypeReference)
	return ok && r.Equal(o)
}

// String returns "pkg/path.Name[Args]".
func (r TypeReference) String() string {
	var b strings.Builder
	if r.PkgPath != "" {
		b.WriteString(r.PkgPath)
		b.WriteByte('.')
	}

	b.WriteString(r.Name)

	if len(r.Args) > 0 {
		b.WriteByte('[')
		for i, a := range r.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte(']')
	}

	return b.String()
}

// Short returns the reference without package paths.
func (r TypeReference) Short() string {
	if len(r.Args) == 0 {
		return r.Name
	}

	args := make([]string, len(r.Args))
	for i, a := range r.Args {
		args[i] = a.Short()
	}

	return r.Name + "[" + strings.Join(args, ", ") + "]"
}
