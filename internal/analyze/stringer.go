package analyze

import (
	"strings"
)

// TypeStringer renders TypeInfo values as Go-like type expressions.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns a human-readable string representation of a TypeInfo.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.ID.Name

	case TypeKindStruct:
		if t.IsNamed() {
			return t.ID.Name + s.typeArgs(t)
		}
		return "struct{...}"

	case TypeKindPointer:
		if t.ElemType != nil {
			return "*" + s.TypeString(t.ElemType)
		}
		return "*<unknown>"

	case TypeKindSlice:
		if t.ElemType != nil {
			return "[]" + s.TypeString(t.ElemType)
		}
		return "[]<unknown>"

	case TypeKindArray:
		if t.ElemType != nil {
			return "[...]" + s.TypeString(t.ElemType)
		}
		return "[...]<unknown>"

	case TypeKindMap:
		return "map[" + s.TypeString(t.KeyType) + "]" + s.TypeString(t.ElemType)

	case TypeKindAlias:
		if t.IsNamed() {
			return t.ID.Name + s.typeArgs(t)
		}
		return s.TypeString(t.Underlying)

	case TypeKindExternal:
		return t.ID.String()

	case TypeKindInterface:
		if t.IsNamed() {
			return t.ID.Name
		}
		return "interface{...}"

	default:
		if t.GoType != nil {
			return t.GoType.String()
		}
		if t.RType != nil {
			return t.RType.String()
		}
		return "<unknown>"
	}
}

func (s *TypeStringer) typeArgs(t *TypeInfo) string {
	if len(t.TypeArgs) == 0 {
		return ""
	}

	args := make([]string, len(t.TypeArgs))
	for i, a := range t.TypeArgs {
		args[i] = s.TypeString(a)
	}

	return "[" + strings.Join(args, ", ") + "]"
}
