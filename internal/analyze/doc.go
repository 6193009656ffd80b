// Package analyze provides reflected type metadata for automapping.
//
// Types are read either from source with golang.org/x/tools/go/packages and go/types
// (Analyzer) or from runtime values with reflect (Reflector). Both produce the same
// canonical in-memory model.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/array/map/external),
//     generic arguments, collection shape and enumeration-ness
//   - Member: describes a field: name, declaring type, value type, writability and tags
package analyze
