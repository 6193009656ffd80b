package automap

import (
	"fmt"

	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/inspect"
	"automapper/internal/model"
	"automapper/internal/rules"
)

// Step decides whether it owns a member and emits the mapping for it.
type Step interface {
	// Name identifies the step in logs and errors.
	Name() string
	// IsMappable reports whether the step owns m. It must not mutate anything.
	IsMappable(m *analyze.Member) bool
	// Map attaches the mapping of m to parent.
	Map(t *Traversal, parent model.Container, m *analyze.Member) error
}

// Claimer is implemented by steps that may accept members other steps accept too.
// Overlapping acceptance is only legal when one of the accepting steps claims the member.
type Claimer interface {
	Claims(m *analyze.Member) bool
}

// DefaultSteps returns the built-in steps in priority order.
func DefaultSteps(cfg Config) []Step {
	r := cfg.Rules
	if r == nil {
		r = DefaultConfig().Rules
	}

	return []Step{
		identityStep{rules: r},
		versionStep{rules: r},
		propertyStep{rules: r, claimer: cfg.Claimer},
		componentStep{rules: r},
		referenceStep{rules: r},
		entityCollectionStep{rules: r},
		componentCollectionStep{rules: r},
		valueCollectionStep{rules: r},
		embeddedStep{rules: r},
	}
}

// storageType is the backing type of a scalar member. Enumerations, nullable or not, are
// stored through the enum adapter of the enumeration itself.
func storageType(t *analyze.TypeInfo) model.TypeReference {
	if d := t.Deref(); d.IsEnum() {
		return model.EnumAdapter(model.RefOf(d))
	}

	return model.RefOf(t)
}

type identityStep struct{ rules rules.Rules }

func (identityStep) Name() string { return "identity" }

func (s identityStep) IsMappable(m *analyze.Member) bool { return s.rules.IsID(m) }

// Map maps the first identifier of a class. Identifier-like members of components, and any
// second identifier, are mapped as plain properties.
func (s identityStep) Map(t *Traversal, parent model.Container, m *analyze.Member) error {
	cls, ok := parent.(*model.ClassMapping)
	if !ok || cls.Identity != nil {
		return t.mapProperty(parent, m)
	}

	id := model.NewIdentity(m.Name, model.RefOf(m.Type))
	id.Columns().AddDefault(model.NewColumn(t.column(m)))
	cls.Identity = id

	return nil
}

type versionStep struct{ rules rules.Rules }

func (versionStep) Name() string { return "version" }

func (s versionStep) IsMappable(m *analyze.Member) bool { return s.rules.IsVersion(m) }

func (s versionStep) Map(t *Traversal, parent model.Container, m *analyze.Member) error {
	cls, ok := parent.(*model.ClassMapping)
	if !ok || cls.Version != nil {
		return t.mapProperty(parent, m)
	}

	v := model.NewVersion(m.Name, model.RefOf(m.Type))
	v.Columns().AddDefault(model.NewColumn(t.column(m)))
	cls.Version = v

	return nil
}

type propertyStep struct {
	rules   rules.Rules
	claimer PropertyClaimer
}

func (propertyStep) Name() string { return "property" }

// Claims reports whether a user-type convention accepts a candidate property for m.
func (s propertyStep) Claims(m *analyze.Member) bool {
	if s.claimer == nil {
		return false
	}

	return s.claimer.ClaimsProperty(inspect.CandidateFor(model.RefOfID(m.DeclaringType), m))
}

func (s propertyStep) IsMappable(m *analyze.Member) bool {
	if s.Claims(m) {
		return true
	}

	return m.Writable && m.Type.IsScalar() && !s.rules.IsID(m) && !s.rules.IsVersion(m)
}

func (s propertyStep) Map(t *Traversal, parent model.Container, m *analyze.Member) error {
	return t.mapProperty(parent, m)
}

type componentStep struct{ rules rules.Rules }

func (componentStep) Name() string { return "component" }

func (s componentStep) IsMappable(m *analyze.Member) bool {
	if m.Embedded || m.Type.Collection() != analyze.CollectionNone || !m.Type.IsUserStruct() {
		return false
	}

	return m.HasOption(analyze.OptionComponent) || s.rules.IsComponent(m.Type)
}

func (s componentStep) Map(t *Traversal, parent model.Container, m *analyze.Member) error {
	typ := m.Type.Deref()
	c := model.NewComponent(m.Name, model.RefOf(typ))

	if err := t.expandComponent(c, typ, s.rules.ComponentColumnPrefix(m)); err != nil {
		return err
	}

	parent.AddComponent(c)

	return nil
}

type referenceStep struct{ rules rules.Rules }

func (referenceStep) Name() string { return "reference" }

func (s referenceStep) IsMappable(m *analyze.Member) bool {
	if m.Embedded || m.Type.Collection() != analyze.CollectionNone || m.HasOption(analyze.OptionComponent) {
		return false
	}

	return s.rules.IsEntity(m.Type)
}

func (s referenceStep) Map(t *Traversal, parent model.Container, m *analyze.Member) error {
	typ := m.Type.Deref()
	ref := model.NewManyToOne(m.Name, parent.ContainedType(), model.RefOf(typ))

	col, ok := m.OptionValue(analyze.OptionColumn)
	if !ok {
		col = s.rules.ReferenceColumn(m)
	}

	ref.Columns().AddDefault(model.NewColumn(t.prefix + col))

	target, err := t.expandEntity(typ)
	if err != nil {
		return err
	}

	ref.Target = target
	parent.AddReference(ref)

	return nil
}

// elementKind classifies the element of a collection-shaped member.
type elementKind int

const (
	elementMalformed elementKind = iota
	elementEntity
	elementComponent
	elementValue
)

func classifyElement(r rules.Rules, m *analyze.Member) (*analyze.TypeInfo, elementKind) {
	elem, ok := m.Type.ElementType()

	switch {
	case !ok:
		return nil, elementMalformed
	case elem.IsScalar():
		return elem, elementValue
	case r.IsEntity(elem):
		return elem, elementEntity
	case r.IsComponent(elem):
		return elem, elementComponent
	default:
		return elem, elementMalformed
	}
}

func isCollection(m *analyze.Member) bool {
	return m.Type.Collection() != analyze.CollectionNone
}

// entityCollectionStep maps collections of entities. It also owns collections whose element
// cannot be resolved, and fails on them.
type entityCollectionStep struct{ rules rules.Rules }

func (entityCollectionStep) Name() string { return "entity-collection" }

func (s entityCollectionStep) IsMappable(m *analyze.Member) bool {
	if !isCollection(m) {
		return false
	}

	_, kind := classifyElement(s.rules, m)

	return kind == elementEntity || kind == elementMalformed
}

func (s entityCollectionStep) Map(t *Traversal, parent model.Container, m *analyze.Member) error {
	elem, kind := classifyElement(s.rules, m)
	if kind == elementMalformed {
		detail := "element type cannot be resolved"
		if elem != nil {
			detail = fmt.Sprintf("element type %s is neither a value, an entity nor a component", model.RefOf(elem))
		}

		return memberError(KindMalformedShape, m, detail, s.Name())
	}

	child := elem.Deref()
	c := t.newCollection(m, model.RefOf(child))

	rel := model.NewOneToMany(c.ContainingEntityType, c.ChildType)
	c.SetDefault(attr.Relationship, rel)

	target, err := t.expandEntity(child)
	if err != nil {
		return err
	}

	rel.Target = target
	parent.AddCollection(c)

	return nil
}

type componentCollectionStep struct{ rules rules.Rules }

func (componentCollectionStep) Name() string { return "component-collection" }

func (s componentCollectionStep) IsMappable(m *analyze.Member) bool {
	if !isCollection(m) {
		return false
	}

	_, kind := classifyElement(s.rules, m)

	return kind == elementComponent
}

func (s componentCollectionStep) Map(t *Traversal, parent model.Container, m *analyze.Member) error {
	elem, _ := classifyElement(s.rules, m)
	typ := elem.Deref()

	c := t.newCollection(m, model.RefOf(typ))
	c.CompositeElement = model.NewCompositeElement(c.ChildType)

	if err := t.expandComponent(c.CompositeElement, typ, ""); err != nil {
		return err
	}

	parent.AddCollection(c)

	return nil
}

type valueCollectionStep struct{ rules rules.Rules }

func (valueCollectionStep) Name() string { return "value-collection" }

func (s valueCollectionStep) IsMappable(m *analyze.Member) bool {
	if !isCollection(m) {
		return false
	}

	_, kind := classifyElement(s.rules, m)

	return kind == elementValue
}

func (s valueCollectionStep) Map(t *Traversal, parent model.Container, m *analyze.Member) error {
	elem, _ := classifyElement(s.rules, m)

	c := t.newCollection(m, model.RefOf(elem.Deref()))
	c.Element = model.NewElement(storageType(elem))
	c.Element.Columns().AddDefault(model.NewColumn(s.rules.ElementColumn(m)))

	parent.AddCollection(c)

	return nil
}

// embeddedStep handles embedded structs. An embedded entity is recorded as the base class;
// any other embedded struct has its members mapped inline into the embedding container.
type embeddedStep struct{ rules rules.Rules }

func (embeddedStep) Name() string { return "embedded" }

func (s embeddedStep) IsMappable(m *analyze.Member) bool {
	return m.Embedded && m.Type.IsUserStruct()
}

func (s embeddedStep) Map(t *Traversal, parent model.Container, m *analyze.Member) error {
	typ := m.Type.Deref()

	if cls, ok := parent.(*model.ClassMapping); ok && s.rules.IsEntity(typ) {
		cls.SetDefault(attr.Extends, model.RefOf(typ))
		return nil
	}

	return t.inline(parent, typ)
}
