package conventions

import (
	"fmt"
	"log/slog"

	"automapper/internal/inspect"
	"automapper/internal/instance"
	"automapper/internal/model"
)

// Pipeline applies the conventions of a registry to mapping trees.
type Pipeline struct {
	registry *Registry
	obs      instance.Observer
	log      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver reports guarded writes suppressed by explicit values to obs.
func WithObserver(obs instance.Observer) Option {
	return func(p *Pipeline) { p.obs = obs }
}

// WithLogger sets the logger receiving one debug record per applied convention.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// NewPipeline creates a pipeline over r.
func NewPipeline(r *Registry, opts ...Option) *Pipeline {
	p := &Pipeline{registry: r, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Apply walks every node under roots and runs each accepting convention once per node, in
// registration order. Acceptance is evaluated against the node as left by the conventions
// before it. It returns the number of convention applications.
func (p *Pipeline) Apply(roots ...model.Node) int {
	applied := 0

	for _, root := range roots {
		_ = model.Walk(root, func(n model.Node) error {
			applied += p.applyNode(n)
			return nil
		})
	}

	return applied
}

func (p *Pipeline) applyNode(n model.Node) int {
	switch n := n.(type) {
	case *model.ClassMapping:
		return each(p, n, inspect.ClassInspector(inspect.NewClass(n)), classCriteria, func(c ClassConvention) {
			c.ApplyClass(instance.NewClass(n, p.obs))
		})
	case *model.IdentityMapping:
		return each(p, n, inspect.IdentityInspector(inspect.NewIdentity(n)), identityCriteria, func(c IdentityConvention) {
			c.ApplyIdentity(instance.NewIdentity(n, p.obs))
		})
	case *model.VersionMapping:
		return each(p, n, inspect.VersionInspector(inspect.NewVersion(n)), versionCriteria, func(c VersionConvention) {
			c.ApplyVersion(instance.NewVersion(n, p.obs))
		})
	case *model.PropertyMapping:
		return each(p, n, inspect.PropertyInspector(inspect.NewProperty(n)), propertyCriteria, func(c PropertyConvention) {
			c.ApplyProperty(instance.NewProperty(n, p.obs))
		})
	case *model.ComponentMapping:
		return each(p, n, inspect.ComponentInspector(inspect.NewComponent(n)), componentCriteria, func(c ComponentConvention) {
			c.ApplyComponent(instance.NewComponent(n, p.obs))
		})
	case *model.ManyToOneMapping:
		return each(p, n, inspect.ManyToOneInspector(inspect.NewManyToOne(n)), referenceCriteria, func(c ReferenceConvention) {
			c.ApplyReference(instance.NewManyToOne(n, p.obs))
		})
	case *model.CollectionMapping:
		return each(p, n, inspect.CollectionInspector(inspect.NewCollection(n)), collectionCriteria, func(c CollectionConvention) {
			c.ApplyCollection(instance.NewCollection(n, p.obs))
		})
	case *model.OneToManyMapping:
		return each(p, n, inspect.OneToManyInspector(inspect.NewOneToMany(n)), oneToManyCriteria, func(c OneToManyConvention) {
			c.ApplyOneToMany(instance.NewOneToMany(n, p.obs))
		})
	case *model.ManyToManyMapping:
		return each(p, n, inspect.ManyToManyInspector(inspect.NewManyToMany(n)), manyToManyCriteria, func(c ManyToManyConvention) {
			c.ApplyManyToMany(instance.NewManyToMany(n, p.obs))
		})
	case *model.ElementMapping:
		return each(p, n, inspect.ElementInspector(inspect.NewElement(n)), elementCriteria, func(c ElementConvention) {
			c.ApplyElement(instance.NewElement(n, p.obs))
		})
	default:
		return 0
	}
}

// each runs fn for every convention with capability C whose criteria accept view.
func each[C, I any](p *Pipeline, n model.Node, view I, criteria func(any) func(*Criteria[I]), fn func(C)) int {
	count := 0

	for _, conv := range p.registry.conventions {
		c, ok := conv.(C)
		if !ok || !WouldAccept(criteria(conv), view) {
			continue
		}

		p.log.Debug("convention applied", "convention", fmt.Sprintf("%T", conv), "node", n.Kind().String())
		fn(c)
		count++
	}

	return count
}

func classCriteria(c any) func(*Criteria[inspect.ClassInspector]) {
	if a, ok := c.(ClassAcceptance); ok {
		return a.AcceptClass
	}

	return nil
}

func identityCriteria(c any) func(*Criteria[inspect.IdentityInspector]) {
	if a, ok := c.(IdentityAcceptance); ok {
		return a.AcceptIdentity
	}

	return nil
}

func versionCriteria(c any) func(*Criteria[inspect.VersionInspector]) {
	if a, ok := c.(VersionAcceptance); ok {
		return a.AcceptVersion
	}

	return nil
}

func propertyCriteria(c any) func(*Criteria[inspect.PropertyInspector]) {
	if a, ok := c.(PropertyAcceptance); ok {
		return a.AcceptProperty
	}

	return nil
}

func componentCriteria(c any) func(*Criteria[inspect.ComponentInspector]) {
	if a, ok := c.(ComponentAcceptance); ok {
		return a.AcceptComponent
	}

	return nil
}

func referenceCriteria(c any) func(*Criteria[inspect.ManyToOneInspector]) {
	if a, ok := c.(ReferenceAcceptance); ok {
		return a.AcceptReference
	}

	return nil
}

func collectionCriteria(c any) func(*Criteria[inspect.CollectionInspector]) {
	if a, ok := c.(CollectionAcceptance); ok {
		return a.AcceptCollection
	}

	return nil
}

func oneToManyCriteria(c any) func(*Criteria[inspect.OneToManyInspector]) {
	if a, ok := c.(OneToManyAcceptance); ok {
		return a.AcceptOneToMany
	}

	return nil
}

func manyToManyCriteria(c any) func(*Criteria[inspect.ManyToManyInspector]) {
	if a, ok := c.(ManyToManyAcceptance); ok {
		return a.AcceptManyToMany
	}

	return nil
}

func elementCriteria(c any) func(*Criteria[inspect.ElementInspector]) {
	if a, ok := c.(ElementAcceptance); ok {
		return a.AcceptElement
	}

	return nil
}
