package model

import "automapper/internal/attr"

// Container is a node that owns mapped members: classes, components and composite elements.
type Container interface {
	Node
	// ContainedType is the Go type whose members the container maps.
	ContainedType() TypeReference
	AddProperty(p *PropertyMapping)
	AddComponent(c *ComponentMapping)
	AddReference(r *ManyToOneMapping)
	AddCollection(c *CollectionMapping)
	Properties() []*PropertyMapping
	Components() []*ComponentMapping
	References() []*ManyToOneMapping
	Collections() []*CollectionMapping
}

// members holds the member children shared by every container.
type members struct {
	properties  []*PropertyMapping
	components  []*ComponentMapping
	references  []*ManyToOneMapping
	collections []*CollectionMapping
}

func (m *members) AddProperty(p *PropertyMapping)     { m.properties = append(m.properties, p) }
func (m *members) AddComponent(c *ComponentMapping)   { m.components = append(m.components, c) }
func (m *members) AddReference(r *ManyToOneMapping)   { m.references = append(m.references, r) }
func (m *members) AddCollection(c *CollectionMapping) { m.collections = append(m.collections, c) }

func (m *members) Properties() []*PropertyMapping    { return m.properties }
func (m *members) Components() []*ComponentMapping   { return m.components }
func (m *members) References() []*ManyToOneMapping   { return m.references }
func (m *members) Collections() []*CollectionMapping { return m.collections }

func (m *members) nodes() []Node {
	out := make([]Node, 0, len(m.properties)+len(m.components)+len(m.references)+len(m.collections))
	for _, p := range m.properties {
		out = append(out, p)
	}

	for _, c := range m.components {
		out = append(out, c)
	}

	for _, r := range m.references {
		out = append(out, r)
	}

	for _, c := range m.collections {
		out = append(out, c)
	}

	return out
}

func (m *members) equal(o *members) bool {
	return contentEqual(m.properties, o.properties) &&
		contentEqual(m.components, o.components) &&
		contentEqual(m.references, o.references) &&
		contentEqual(m.collections, o.collections)
}

// ClassMapping is the root node for an entity type.
type ClassMapping struct {
	base
	members

	Type     TypeReference
	Identity *IdentityMapping
	Version  *VersionMapping
}

// NewClass creates a class node for an entity type. Name and table default to the type name.
func NewClass(t TypeReference) *ClassMapping {
	c := &ClassMapping{base: newBase(), Type: t}
	c.SetDefault(attr.Name, t.Name)
	c.SetDefault(attr.Type, t)
	c.SetDefault(attr.Table, t.Name)

	return c
}

// Kind implements Node.
func (c *ClassMapping) Kind() NodeKind { return KindClass }

// ContainedType implements Container.
func (c *ClassMapping) ContainedType() TypeReference { return c.Type }

// Name returns the resolved entity name.
func (c *ClassMapping) Name() string { return c.str(attr.Name) }

// Table returns the resolved table name.
func (c *ClassMapping) Table() string { return c.str(attr.Table) }

// Extends returns the entity this class inherits from, when known.
func (c *ClassMapping) Extends() TypeReference { return c.ref(attr.Extends) }

// Cache returns the cache policy, or nil.
func (c *ClassMapping) Cache() *CacheMapping { return attr.Value[*CacheMapping](c.attrs, attr.Cache) }

// Children implements Node.
func (c *ClassMapping) Children() []Node {
	var out []Node
	if c.Identity != nil {
		out = append(out, c.Identity)
	}

	if c.Version != nil {
		out = append(out, c.Version)
	}

	out = append(out, c.members.nodes()...)

	if cache := c.Cache(); cache != nil {
		out = append(out, cache)
	}

	return out
}

// Equal compares two class nodes structurally.
func (c *ClassMapping) Equal(o *ClassMapping) bool {
	if o == nil {
		return false
	}

	return c.Type.Equal(o.Type) &&
		c.attrs.Equal(o.attrs) &&
		optionalEqual(c.Identity, o.Identity) &&
		optionalEqual(c.Version, o.Version) &&
		c.members.equal(&o.members)
}

// ComponentMapping is a value object embedded in the table of its owner.
type ComponentMapping struct {
	base
	members

	Member string
	Type   TypeReference
}

// NewComponent creates a component node for a member.
func NewComponent(member string, t TypeReference) *ComponentMapping {
	c := &ComponentMapping{base: newBase(), Member: member, Type: t}
	c.SetDefault(attr.Name, member)
	c.SetDefault(attr.Class, t)

	return c
}

// Kind implements Node.
func (c *ComponentMapping) Kind() NodeKind { return KindComponent }

// ContainedType implements Container.
func (c *ComponentMapping) ContainedType() TypeReference { return c.Type }

// Name returns the resolved member name.
func (c *ComponentMapping) Name() string { return c.str(attr.Name) }

// Children implements Node.
func (c *ComponentMapping) Children() []Node { return c.members.nodes() }

// Equal compares two component nodes structurally.
func (c *ComponentMapping) Equal(o *ComponentMapping) bool {
	if o == nil {
		return false
	}

	return c.Member == o.Member && c.Type.Equal(o.Type) && c.attrs.Equal(o.attrs) && c.members.equal(&o.members)
}

// CompositeElementMapping is the element of a collection of components.
type CompositeElementMapping struct {
	base
	members

	Type TypeReference
}

// NewCompositeElement creates a composite element for a component type.
func NewCompositeElement(t TypeReference) *CompositeElementMapping {
	c := &CompositeElementMapping{base: newBase(), Type: t}
	c.SetDefault(attr.Class, t)

	return c
}

// Kind implements Node.
func (c *CompositeElementMapping) Kind() NodeKind { return KindCompositeElement }

// ContainedType implements Container.
func (c *CompositeElementMapping) ContainedType() TypeReference { return c.Type }

// Children implements Node.
func (c *CompositeElementMapping) Children() []Node { return c.members.nodes() }

// Equal compares two composite elements structurally.
func (c *CompositeElementMapping) Equal(o *CompositeElementMapping) bool {
	if o == nil {
		return false
	}

	return c.Type.Equal(o.Type) && c.attrs.Equal(o.attrs) && c.members.equal(&o.members)
}
