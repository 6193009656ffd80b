package mapping

// CurrentVersion is the only declaration file version understood by this package.
const CurrentVersion = "1"

// DeclarationFile represents the root of a YAML declaration file.
// This is the authoritative, human-reviewed part of a mapping.
type DeclarationFile struct {
	// Version of the file format.
	Version string `yaml:"version"`
	// Entities lists the explicit values of each entity.
	Entities []EntityDecl `yaml:"entities"`
}

// EntityDecl pins values of one entity mapping.
type EntityDecl struct {
	// Type is the entity type: "Order", "store.Order" or "automapper/store.Order".
	Type   string `yaml:"type"`
	Table  string `yaml:"table,omitempty"`
	Schema string `yaml:"schema,omitempty"`
	Lazy   *bool  `yaml:"lazy,omitempty"`
	// Ignore lists members removed from automapping.
	Ignore      StringOrArray    `yaml:"ignore,omitempty"`
	Properties  []PropertyDecl   `yaml:"properties,omitempty"`
	References  []ReferenceDecl  `yaml:"references,omitempty"`
	Components  []ComponentDecl  `yaml:"components,omitempty"`
	Collections []CollectionDecl `yaml:"collections,omitempty"`
}

// PropertyDecl pins values of a property. It also applies to the identifier and the version.
type PropertyDecl struct {
	Name string `yaml:"name"`
	// Column replaces the discovered column; several names map the property onto several columns.
	Column  StringOrArray `yaml:"column,omitempty"`
	Type    string        `yaml:"type,omitempty"`
	Length  int           `yaml:"length,omitempty"`
	NotNull *bool         `yaml:"not_null,omitempty"`
	Unique  *bool         `yaml:"unique,omitempty"`
	Formula string        `yaml:"formula,omitempty"`
	Insert  *bool         `yaml:"insert,omitempty"`
	Update  *bool         `yaml:"update,omitempty"`
}

// ReferenceDecl pins values of a many-to-one reference.
type ReferenceDecl struct {
	Name       string `yaml:"name"`
	Column     string `yaml:"column,omitempty"`
	ForeignKey string `yaml:"foreign_key,omitempty"`
	Cascade    string `yaml:"cascade,omitempty"`
	Fetch      string `yaml:"fetch,omitempty"`
	Lazy       *bool  `yaml:"lazy,omitempty"`
	NotNull    *bool  `yaml:"not_null,omitempty"`
}

// ComponentDecl pins values of the members of a component.
type ComponentDecl struct {
	Name       string         `yaml:"name"`
	Properties []PropertyDecl `yaml:"properties,omitempty"`
}

// Relationship values accepted by CollectionDecl.
const (
	RelationshipOneToMany  = "one-to-many"
	RelationshipManyToMany = "many-to-many"
)

// CollectionDecl pins values of a collection.
type CollectionDecl struct {
	Name string `yaml:"name"`
	// Relationship is one-to-many or many-to-many. Only collections of entities have one.
	Relationship string `yaml:"relationship,omitempty"`
	Table        string `yaml:"table,omitempty"`
	// Key names the key column.
	Key        string `yaml:"key,omitempty"`
	ForeignKey string `yaml:"foreign_key,omitempty"`
	Inverse    *bool  `yaml:"inverse,omitempty"`
	Lazy       *bool  `yaml:"lazy,omitempty"`
	Cascade    string `yaml:"cascade,omitempty"`
	OrderBy    string `yaml:"order_by,omitempty"`
	BatchSize  int    `yaml:"batch_size,omitempty"`
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
// This allows YAML fields to accept both "field" and ["field1", "field2"].
type StringOrArray []string
