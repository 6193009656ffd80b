package model

import "automapper/internal/attr"

// PropertyMapping maps a scalar member onto one or more columns.
type PropertyMapping struct {
	columnBased

	Member               string
	ContainingEntityType TypeReference
}

// NewProperty creates a property node. Name and type are recorded as defaults.
func NewProperty(member string, t TypeReference) *PropertyMapping {
	p := &PropertyMapping{columnBased: newColumnBased(), Member: member}
	p.SetDefault(attr.Name, member)
	p.SetDefault(attr.Type, t)

	return p
}

// Kind implements Node.
func (p *PropertyMapping) Kind() NodeKind { return KindProperty }

// Name returns the resolved member name.
func (p *PropertyMapping) Name() string { return p.str(attr.Name) }

// Type returns the resolved storage type.
func (p *PropertyMapping) Type() TypeReference { return p.ref(attr.Type) }

// Children implements Node.
func (p *PropertyMapping) Children() []Node { return p.columnNodes() }

// Equal compares two property nodes structurally.
func (p *PropertyMapping) Equal(o *PropertyMapping) bool {
	if o == nil {
		return false
	}

	return p.Member == o.Member && p.ContainingEntityType.Equal(o.ContainingEntityType) && p.equal(&o.columnBased)
}

// IdentityMapping maps the identifier member of an entity.
type IdentityMapping struct {
	columnBased

	Member string
}

// NewIdentity creates an identifier node.
func NewIdentity(member string, t TypeReference) *IdentityMapping {
	id := &IdentityMapping{columnBased: newColumnBased(), Member: member}
	id.SetDefault(attr.Name, member)
	id.SetDefault(attr.Type, t)

	return id
}

// Kind implements Node.
func (id *IdentityMapping) Kind() NodeKind { return KindIdentity }

// Name returns the resolved member name.
func (id *IdentityMapping) Name() string { return id.str(attr.Name) }

// Type returns the resolved storage type.
func (id *IdentityMapping) Type() TypeReference { return id.ref(attr.Type) }

// Children implements Node.
func (id *IdentityMapping) Children() []Node { return id.columnNodes() }

// Equal compares two identifier nodes structurally.
func (id *IdentityMapping) Equal(o *IdentityMapping) bool {
	return o != nil && id.Member == o.Member && id.equal(&o.columnBased)
}

// VersionMapping maps the optimistic concurrency member of an entity.
type VersionMapping struct {
	columnBased

	Member string
}

// NewVersion creates a version node.
func NewVersion(member string, t TypeReference) *VersionMapping {
	v := &VersionMapping{columnBased: newColumnBased(), Member: member}
	v.SetDefault(attr.Name, member)
	v.SetDefault(attr.Type, t)

	return v
}

// Kind implements Node.
func (v *VersionMapping) Kind() NodeKind { return KindVersion }

// Name returns the resolved member name.
func (v *VersionMapping) Name() string { return v.str(attr.Name) }

// Type returns the resolved storage type.
func (v *VersionMapping) Type() TypeReference { return v.ref(attr.Type) }

// Children implements Node.
func (v *VersionMapping) Children() []Node { return v.columnNodes() }

// Equal compares two version nodes structurally.
func (v *VersionMapping) Equal(o *VersionMapping) bool {
	return o != nil && v.Member == o.Member && v.equal(&o.columnBased)
}

// ManyToOneMapping is a reference from one entity to another, stored as foreign key columns.
type ManyToOneMapping struct {
	columnBased

	Member               string
	ContainingEntityType TypeReference
	// Target is the expanded mapping of the referenced entity. It stays nil when expansion is
	// disabled or was stopped by the cycle or depth guard.
	Target *ClassMapping
}

// NewManyToOne creates a reference node. The referenced class is recorded as a default.
func NewManyToOne(member string, owner, class TypeReference) *ManyToOneMapping {
	r := &ManyToOneMapping{columnBased: newColumnBased(), Member: member, ContainingEntityType: owner}
	r.SetDefault(attr.Name, member)
	r.SetDefault(attr.Class, class)

	return r
}

// Kind implements Node.
func (r *ManyToOneMapping) Kind() NodeKind { return KindManyToOne }

// Name returns the resolved member name.
func (r *ManyToOneMapping) Name() string { return r.str(attr.Name) }

// Class returns the referenced entity type.
func (r *ManyToOneMapping) Class() TypeReference { return r.ref(attr.Class) }

// Children implements Node.
func (r *ManyToOneMapping) Children() []Node {
	out := r.columnNodes()
	if r.Target != nil {
		out = append(out, r.Target)
	}

	return out
}

// Equal compares two reference nodes structurally.
func (r *ManyToOneMapping) Equal(o *ManyToOneMapping) bool {
	if o == nil {
		return false
	}

	return r.Member == o.Member &&
		r.ContainingEntityType.Equal(o.ContainingEntityType) &&
		r.equal(&o.columnBased) &&
		optionalEqual(r.Target, o.Target)
}
