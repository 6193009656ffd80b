package analyze

import (
	"go/types"
	"reflect"
	"slices"
	"strings"

	"automapper/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "automapper/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// IsZero reports whether the TypeID carries no name.
func (t TypeID) IsZero() bool {
	return t.Name == ""
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map of key to value
	TypeKindAlias              // named type wrapping a non-struct type
	TypeKindExternal           // standard library type treated as opaque (e.g., time.Time)
	TypeKindInterface          // interface type, never resolvable to storage
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	case TypeKindInterface:
		return "interface"
	default:
		return common.UnknownStr
	}
}

// CollectionKind describes the storage shape of a collection-valued type.
type CollectionKind int

const (
	CollectionNone CollectionKind = iota
	CollectionBag                 // slice: unordered, duplicates allowed
	CollectionList                // array: ordered, positional
	CollectionSet                 // map[T]struct{}: unordered, unique
	CollectionMap                 // map[K]V: keyed
)

// String returns a human-readable representation of the CollectionKind.
func (k CollectionKind) String() string {
	switch k {
	case CollectionNone:
		return "none"
	case CollectionBag:
		return "bag"
	case CollectionList:
		return "list"
	case CollectionSet:
		return "set"
	case CollectionMap:
		return "map"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID       // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind     // Kind of type
	Underlying *TypeInfo    // For alias types, the underlying type
	ElemType   *TypeInfo    // For pointers, slices, arrays and maps (value), the element type
	KeyType    *TypeInfo    // For maps, the key type
	TypeArgs   []*TypeInfo  // For instantiated generic named types, the type arguments
	Fields     []Member     // For structs, the list of exported fields
	Enum       bool         // True for named integer/string types used as enumerations
	EnumValues []string     // Constant names of the enumeration, when known
	GoType     types.Type   // The original go/types.Type (nil for reflected types)
	RType      reflect.Type // The original reflect.Type (nil for loaded packages)
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// InstanceKey identifies the type including its type arguments, e.g. pair[int,string] and
// pair[string,int] differ while sharing an ID.
func (t *TypeInfo) InstanceKey() string {
	switch {
	case t.GoType != nil:
		return types.TypeString(t.GoType, nil)
	case t.RType != nil && t.RType.Name() != "":
		return t.RType.PkgPath() + "." + t.RType.Name()
	case t.RType != nil:
		return t.RType.String()
	default:
		return t.ID.String()
	}
}

// IsEnum reports whether the type is an enumeration.
func (t *TypeInfo) IsEnum() bool {
	return t != nil && t.Enum
}

// Deref strips every pointer level.
func (t *TypeInfo) Deref() *TypeInfo {
	for t != nil && t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	return t
}

// Shape returns the structural type behind aliases (e.g., the map behind a named Set[T]).
func (t *TypeInfo) Shape() *TypeInfo {
	for t != nil && t.Kind == TypeKindAlias && t.Underlying != nil {
		t = t.Underlying
	}

	return t
}

// IsStruct reports whether the type, after dereferencing pointers, is a struct.
func (t *TypeInfo) IsStruct() bool {
	d := t.Deref()
	return d != nil && d.Kind == TypeKindStruct
}

// IsUserStruct reports whether the type, after dereferencing pointers, is a named struct
// declared outside the standard library.
func (t *TypeInfo) IsUserStruct() bool {
	d := t.Deref()
	return d != nil && d.Kind == TypeKindStruct && d.IsNamed() && !IsStdPackage(d.ID.PkgPath)
}

// IsBytes reports whether the type is a byte slice, which is stored as a single value.
func (t *TypeInfo) IsBytes() bool {
	s := t.Shape()
	if s == nil || s.Kind != TypeKindSlice || s.ElemType == nil {
		return false
	}

	e := s.ElemType.Shape()

	return e.Kind == TypeKindBasic && (e.ID.Name == "byte" || e.ID.Name == "uint8")
}

// IsScalar reports whether the type maps onto a single column value:
// basic types, aliases of basic types, enumerations, standard library types and byte slices,
// optionally behind pointers.
func (t *TypeInfo) IsScalar() bool {
	d := t.Deref()
	if d == nil {
		return false
	}

	if d.IsEnum() || d.IsBytes() {
		return true
	}

	switch d.Kind {
	case TypeKindBasic, TypeKindExternal:
		return true
	case TypeKindAlias:
		s := d.Shape()
		return s != nil && s != d && s.Kind == TypeKindBasic
	default:
		return false
	}
}

// Collection returns the collection shape of the type, or CollectionNone.
func (t *TypeInfo) Collection() CollectionKind {
	if t.IsBytes() {
		return CollectionNone
	}

	s := t.Shape()
	if s == nil {
		return CollectionNone
	}

	switch s.Kind {
	case TypeKindSlice:
		return CollectionBag
	case TypeKindArray:
		return CollectionList
	case TypeKindMap:
		if s.ElemType != nil && s.ElemType.isEmptyStruct() {
			return CollectionSet
		}

		return CollectionMap
	default:
		return CollectionNone
	}
}

// ElementType resolves the element of a collection-shaped type.
// It returns false when the type is not a collection, when a generic collection carries a
// number of type arguments that disagrees with its shape, or when the element cannot be
// stored (interface or unknown kinds).
func (t *TypeInfo) ElementType() (*TypeInfo, bool) {
	kind := t.Collection()
	if kind == CollectionNone {
		return nil, false
	}

	if len(t.TypeArgs) > 0 {
		want := 1
		if kind == CollectionMap {
			want = 2
		}

		if len(t.TypeArgs) != want {
			return nil, false
		}
	}

	s := t.Shape()

	elem := s.ElemType
	if kind == CollectionSet {
		elem = s.KeyType
	}

	d := elem.Deref()
	if d == nil || d.Kind == TypeKindUnknown || d.Kind == TypeKindInterface {
		return nil, false
	}

	return elem, true
}

// GenericArgs returns the type arguments of the type: explicit generic arguments when the type
// is an instantiated generic, otherwise the element (and key) types of collection shapes.
func (t *TypeInfo) GenericArgs() []*TypeInfo {
	if len(t.TypeArgs) > 0 {
		return t.TypeArgs
	}

	s := t.Shape()
	if s == nil {
		return nil
	}

	switch s.Kind {
	case TypeKindSlice, TypeKindArray, TypeKindPointer:
		if s.ElemType != nil {
			return []*TypeInfo{s.ElemType}
		}
	case TypeKindMap:
		if s.KeyType != nil && s.ElemType != nil {
			if s.ElemType.isEmptyStruct() {
				return []*TypeInfo{s.KeyType}
			}

			return []*TypeInfo{s.KeyType, s.ElemType}
		}
	}

	return nil
}

func (t *TypeInfo) isEmptyStruct() bool {
	return t.Kind == TypeKindStruct && !t.IsNamed() && len(t.Fields) == 0
}

// Members returns the fields declared on the struct plus the fields promoted from embedded
// structs. Promoted members keep the declaring type of the struct that declares them.
func (t *TypeInfo) Members() []*Member {
	var out []*Member

	seen := make(map[string]bool)
	visiting := make(map[*TypeInfo]bool)
	t.collectMembers(&out, seen, visiting)

	return out
}

func (t *TypeInfo) collectMembers(out *[]*Member, seen map[string]bool, visiting map[*TypeInfo]bool) {
	t = t.Deref()
	if t == nil || t.Kind != TypeKindStruct || visiting[t] {
		return
	}

	visiting[t] = true

	for i := range t.Fields {
		f := &t.Fields[i]
		if seen[f.Name] {
			continue
		}

		seen[f.Name] = true
		*out = append(*out, f)
	}

	for i := range t.Fields {
		if t.Fields[i].Embedded {
			t.Fields[i].Type.collectMembers(out, seen, visiting)
		}
	}
}

// Member describes a struct field as a mappable member.
type Member struct {
	Name          string            // Go field name
	DeclaringType TypeID            // Struct type that declares the field
	Type          *TypeInfo         // Field value type
	Tag           reflect.StructTag // Raw struct tag
	Embedded      bool              // Whether the field is embedded (anonymous)
	Exported      bool              // Whether the field is exported
	Writable      bool              // Exported and not tagged automap:"readonly"
	Index         int               // Field index in the declaring struct
}

// TagKey is the struct tag key consulted for member options.
const TagKey = "automap"

// Recognized automap tag options.
const (
	OptionReadOnly  = "readonly"  // member is not writable
	OptionID        = "id"        // member is the identifier
	OptionVersion   = "version"   // member is the optimistic concurrency version
	OptionComponent = "component" // struct member is a component even if it looks like an entity
	OptionColumn    = "column"    // column=<name> overrides the discovered column name
)

// String returns "Type.Member".
func (m *Member) String() string {
	if m.DeclaringType.IsZero() {
		return m.Name
	}

	return m.DeclaringType.Name + "." + m.Name
}

// Options returns the comma-separated options of the automap tag.
func (m *Member) Options() []string {
	tag, ok := m.Tag.Lookup(TagKey)
	if !ok || tag == "" {
		return nil
	}

	parts := strings.Split(tag, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// HasOption reports whether the automap tag carries the given bare option.
func (m *Member) HasOption(opt string) bool {
	for _, o := range m.Options() {
		if o == opt {
			return true
		}
	}

	return false
}

// OptionValue returns the value of a key=value option of the automap tag.
func (m *Member) OptionValue(key string) (string, bool) {
	for _, o := range m.Options() {
		k, v, ok := strings.Cut(o, "=")
		if ok && k == key {
			return v, true
		}
	}

	return "", false
}

// Ignored reports whether the member is excluded with automap:"-".
func (m *Member) Ignored() bool {
	return m.Tag.Get(TagKey) == "-"
}

// IsNullable reports whether the member holds a pointer and may be nil.
func (m *Member) IsNullable() bool {
	return m.Type != nil && m.Type.Kind == TypeKindPointer
}

// IsEnum reports whether the member holds an enumeration, directly or behind a pointer.
func (m *Member) IsEnum() bool {
	return m.Type.Deref().IsEnum()
}

// GenericArgs returns the type arguments of the member's value type.
func (m *Member) GenericArgs() []*TypeInfo {
	if m.Type == nil {
		return nil
	}

	return m.Type.GenericArgs()
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GraphOf builds a graph holding the named types given, after dereferencing pointers.
func GraphOf(types ...*TypeInfo) *TypeGraph {
	g := NewTypeGraph()
	for _, t := range types {
		if d := t.Deref(); d != nil && d.IsNamed() {
			g.Types[d.ID] = d
		}
	}

	return g
}

// Names returns the qualified names of the types in the graph, sorted.
func (g *TypeGraph) Names() []string {
	out := make([]string, 0, len(g.Types))
	for id := range g.Types {
		out = append(out, common.PkgAlias(id.PkgPath)+"."+id.Name)
	}

	slices.Sort(out)

	return out
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Lookup finds a type by "pkg.Name", "full/pkg/path.Name" or a bare "Name" when unambiguous.
func (g *TypeGraph) Lookup(name string) *TypeInfo {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		var found *TypeInfo

		for id, t := range g.Types {
			if id.Name == name {
				if found != nil {
					return nil
				}

				found = t
			}
		}

		return found
	}

	pkg, typeName := name[:idx], name[idx+1:]
	if t, ok := g.Types[TypeID{PkgPath: pkg, Name: typeName}]; ok {
		return t
	}

	for id, t := range g.Types {
		if id.Name == typeName && common.PkgAlias(id.PkgPath) == pkg {
			return t
		}
	}

	return nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}

// stdRoots lists the top-level directories of the standard library.
var stdRoots = map[string]bool{
	"archive": true, "bufio": true, "bytes": true, "cmp": true, "compress": true, "container": true,
	"context": true, "crypto": true, "database": true, "debug": true, "embed": true, "encoding": true,
	"errors": true, "expvar": true, "flag": true, "fmt": true, "go": true, "hash": true, "html": true,
	"image": true, "index": true, "io": true, "iter": true, "log": true, "maps": true, "math": true,
	"mime": true, "net": true, "os": true, "path": true, "plugin": true, "reflect": true,
	"regexp": true, "runtime": true, "slices": true, "sort": true, "strconv": true, "strings": true,
	"structs": true, "sync": true, "syscall": true, "testing": true, "text": true, "time": true,
	"unicode": true, "unique": true, "unsafe": true, "weak": true,
}

// IsStdPackage reports whether an import path belongs to the standard library.
func IsStdPackage(pkgPath string) bool {
	first, _, _ := strings.Cut(pkgPath, "/")
	return stdRoots[first]
}
