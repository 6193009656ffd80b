// Package conventions applies pluggable rules to a mapping tree. A convention declares what it
// works on by implementing capability interfaces, and optionally narrows the nodes it accepts by
// filling acceptance criteria evaluated against inspector views.
package conventions

import (
	"automapper/internal/inspect"
	"automapper/internal/instance"
)

// ClassConvention is applied to every entity mapping.
type ClassConvention interface {
	ApplyClass(c *instance.Class)
}

// IdentityConvention is applied to every identifier.
type IdentityConvention interface {
	ApplyIdentity(id *instance.Identity)
}

// VersionConvention is applied to every version.
type VersionConvention interface {
	ApplyVersion(v *instance.Version)
}

// PropertyConvention is applied to every scalar property.
type PropertyConvention interface {
	ApplyProperty(p *instance.Property)
}

// ComponentConvention is applied to every component.
type ComponentConvention interface {
	ApplyComponent(c *instance.Component)
}

// ReferenceConvention is applied to every many-to-one reference.
type ReferenceConvention interface {
	ApplyReference(r *instance.ManyToOne)
}

// CollectionConvention is applied to every collection.
type CollectionConvention interface {
	ApplyCollection(c *instance.Collection)
}

// OneToManyConvention is applied to every one-to-many relationship.
type OneToManyConvention interface {
	ApplyOneToMany(r *instance.OneToMany)
}

// ManyToManyConvention is applied to every many-to-many relationship.
type ManyToManyConvention interface {
	ApplyManyToMany(r *instance.ManyToMany)
}

// ElementConvention is applied to the element of every collection of values.
type ElementConvention interface {
	ApplyElement(e *instance.Element)
}

// UserTypeConvention marks a property convention that replaces the storage type of the
// properties it accepts. The automapper maps every member such a convention accepts as a
// property, whatever its Go type.
type UserTypeConvention interface {
	PropertyConvention
	UserType()
}

// Acceptance interfaces narrow the nodes a convention is applied to. A convention without the
// acceptance interface of a capability accepts every node of that kind.
type (
	ClassAcceptance interface {
		AcceptClass(c *Criteria[inspect.ClassInspector])
	}
	IdentityAcceptance interface {
		AcceptIdentity(c *Criteria[inspect.IdentityInspector])
	}
	VersionAcceptance interface {
		AcceptVersion(c *Criteria[inspect.VersionInspector])
	}
	PropertyAcceptance interface {
		AcceptProperty(c *Criteria[inspect.PropertyInspector])
	}
	ComponentAcceptance interface {
		AcceptComponent(c *Criteria[inspect.ComponentInspector])
	}
	ReferenceAcceptance interface {
		AcceptReference(c *Criteria[inspect.ManyToOneInspector])
	}
	CollectionAcceptance interface {
		AcceptCollection(c *Criteria[inspect.CollectionInspector])
	}
	OneToManyAcceptance interface {
		AcceptOneToMany(c *Criteria[inspect.OneToManyInspector])
	}
	ManyToManyAcceptance interface {
		AcceptManyToMany(c *Criteria[inspect.ManyToManyInspector])
	}
	ElementAcceptance interface {
		AcceptElement(c *Criteria[inspect.ElementInspector])
	}
)

// hasCapability reports whether c implements at least one capability.
func hasCapability(c any) bool {
	switch c.(type) {
	case ClassConvention, IdentityConvention, VersionConvention, PropertyConvention,
		ComponentConvention, ReferenceConvention, CollectionConvention,
		OneToManyConvention, ManyToManyConvention, ElementConvention:
		return true
	default:
		return false
	}
}
