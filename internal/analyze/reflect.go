package analyze

import (
	"fmt"
	"reflect"
	"strings"
)

var stringerType = reflect.TypeFor[fmt.Stringer]()

// Reflector builds TypeInfo values from runtime reflect.Type values.
// It is the in-process counterpart of Analyzer for callers that hold concrete types.
type Reflector struct {
	cache map[reflect.Type]*TypeInfo
	enums map[reflect.Type]bool
}

// ReflectOption configures a Reflector.
type ReflectOption func(*Reflector)

// WithEnums marks named types as enumerations even when they do not implement fmt.Stringer.
func WithEnums(types ...reflect.Type) ReflectOption {
	return func(r *Reflector) {
		for _, t := range types {
			r.enums[t] = true
		}
	}
}

// NewReflector creates a new Reflector.
func NewReflector(opts ...ReflectOption) *Reflector {
	r := &Reflector{
		cache: make(map[reflect.Type]*TypeInfo),
		enums: make(map[reflect.Type]bool),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Of returns the TypeInfo for T using a fresh Reflector.
func Of[T any](opts ...ReflectOption) *TypeInfo {
	return NewReflector(opts...).TypeOf(reflect.TypeFor[T]())
}

// TypeOf returns the TypeInfo for a reflect.Type.
func (r *Reflector) TypeOf(rt reflect.Type) *TypeInfo {
	if cached, ok := r.cache[rt]; ok {
		return cached
	}

	info := &TypeInfo{RType: rt}
	r.cache[rt] = info

	if rt.Name() != "" {
		info.ID = TypeID{PkgPath: rt.PkgPath(), Name: baseName(rt.Name())}
	}

	if info.ID.PkgPath != "" && IsStdPackage(info.ID.PkgPath) {
		info.Kind = TypeKindExternal
		return info
	}

	named := info.ID.PkgPath != ""

	switch rt.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		if !named {
			info.Kind = TypeKindBasic
			return info
		}

		info.Kind = TypeKindAlias
		info.Underlying = &TypeInfo{Kind: TypeKindBasic, ID: TypeID{Name: rt.Kind().String()}}
		info.Enum = r.enums[rt] || rt.Implements(stringerType)

	case reflect.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = r.TypeOf(rt.Elem())

	case reflect.Slice, reflect.Array, reflect.Map:
		shape := info
		if named {
			info.Kind = TypeKindAlias
			shape = &TypeInfo{RType: rt}
			info.Underlying = shape
		}

		switch rt.Kind() {
		case reflect.Slice:
			shape.Kind = TypeKindSlice
		case reflect.Array:
			shape.Kind = TypeKindArray
		default:
			shape.Kind = TypeKindMap
			shape.KeyType = r.TypeOf(rt.Key())
		}

		shape.ElemType = r.TypeOf(rt.Elem())

	case reflect.Struct:
		info.Kind = TypeKindStruct
		r.structFields(rt, info)

	case reflect.Interface:
		info.Kind = TypeKindInterface

	default:
		info.Kind = TypeKindUnknown
	}

	return info
}

func (r *Reflector) structFields(rt reflect.Type, info *TypeInfo) {
	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		m := Member{
			Name:          field.Name,
			DeclaringType: info.ID,
			Type:          r.TypeOf(field.Type),
			Tag:           field.Tag,
			Embedded:      field.Anonymous,
			Exported:      true,
			Index:         i,
		}
		m.Writable = !m.HasOption(OptionReadOnly)

		info.Fields = append(info.Fields, m)
	}
}

// baseName strips the instantiation suffix of generic type names ("Set[pkg.T]" -> "Set").
func baseName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}

	return name
}
