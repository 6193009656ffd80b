package automap

import (
	"errors"
	"fmt"
	"log/slog"

	"automapper/internal/analyze"
	"automapper/internal/model"
)

// Automapper builds class mappings from analyzed types.
// An Automapper is not safe for concurrent use: rules and claimers are shared between passes.
type Automapper struct {
	cfg   Config
	steps []Step
}

// NewAutomapper creates an Automapper with the given steps, or DefaultSteps when none are given.
// The steps must partition the probe catalog: a member shape accepted by two steps is an error
// unless one of them claims it.
func NewAutomapper(cfg Config, steps ...Step) (*Automapper, error) {
	cfg = cfg.withDefaults()
	if len(steps) == 0 {
		steps = DefaultSteps(cfg)
	}

	if err := VerifySteps(steps, ProbeCatalog()); err != nil {
		return nil, fmt.Errorf("steps overlap: %w", err)
	}

	return &Automapper{cfg: cfg, steps: steps}, nil
}

// Steps returns the steps in priority order.
func (a *Automapper) Steps() []Step {
	return a.steps
}

// VerifySteps checks that no two steps accept the same probe member without a claim.
func VerifySteps(steps []Step, probes []*analyze.Member) error {
	var errs []error

	for _, m := range probes {
		var accepted []Step

		for _, s := range steps {
			if s.IsMappable(m) {
				accepted = append(accepted, s)
			}
		}

		if err := checkOwnership(m, accepted); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func checkOwnership(m *analyze.Member, accepted []Step) error {
	if len(accepted) < 2 {
		return nil
	}

	names := make([]string, len(accepted))
	for i, s := range accepted {
		if c, ok := s.(Claimer); ok && c.Claims(m) {
			return nil
		}

		names[i] = s.Name()
	}

	return memberError(KindOwnershipConflict, m, "", names...)
}

// Map builds the class mapping of root. A failed pass returns no mapping.
func (a *Automapper) Map(root *analyze.TypeInfo) (*model.ClassMapping, error) {
	typ := root.Deref()
	if typ == nil || typ.Kind != analyze.TypeKindStruct {
		return nil, fmt.Errorf("automap %s: %w: root is not a struct", model.RefOf(root), ErrMalformedShape)
	}

	t := a.newTraversal()

	cls, err := t.mapClass(typ)
	if err != nil {
		return nil, fmt.Errorf("automap %s: %w", typ.ID, err)
	}

	return cls, nil
}

// MapAll maps each root in order and stops at the first failure.
func (a *Automapper) MapAll(roots []*analyze.TypeInfo) ([]*model.ClassMapping, error) {
	out := make([]*model.ClassMapping, 0, len(roots))

	for _, r := range roots {
		cls, err := a.Map(r)
		if err != nil {
			return nil, err
		}

		out = append(out, cls)
	}

	return out, nil
}

func (a *Automapper) newTraversal() *Traversal {
	return &Traversal{
		cfg:    a.cfg,
		steps:  a.steps,
		log:    a.cfg.Logger,
		active: make(map[string]bool),
	}
}

// Traversal is the state of one mapping pass. Steps use it to recurse into nested types.
type Traversal struct {
	cfg   Config
	steps []Step
	log   *slog.Logger

	active map[string]bool // instantiations on the current expansion path
	depth  int
	prefix string              // column prefix of the enclosing components
	entity model.TypeReference // nearest enclosing entity
}

// enter marks typ as in progress. It reports false when typ is already being expanded on the
// current path or the depth cap is reached; nothing is marked in that case.
func (t *Traversal) enter(typ *analyze.TypeInfo) (func(), bool) {
	key := typ.InstanceKey()
	if t.active[key] {
		t.log.Debug("cycle suppressed", "type", key)
		return nil, false
	}

	if t.depth >= t.cfg.MaxDepth {
		t.log.Debug("depth cap reached", "type", typ.ID.String(), "max_depth", t.cfg.MaxDepth)
		return nil, false
	}

	t.active[key] = true
	t.depth++

	return func() {
		delete(t.active, key)
		t.depth--
	}, true
}

func (t *Traversal) mapClass(typ *analyze.TypeInfo) (*model.ClassMapping, error) {
	leave, ok := t.enter(typ)
	if !ok {
		return nil, nil
	}
	defer leave()

	cls := model.NewClass(model.RefOf(typ))

	prefix, entity := t.prefix, t.entity
	t.prefix, t.entity = "", cls.Type

	defer func() { t.prefix, t.entity = prefix, entity }()

	if err := t.mapMembers(cls, typ); err != nil {
		return nil, err
	}

	return cls, nil
}

// expandEntity maps a related entity when relationship expansion is enabled. It returns nil
// when expansion is disabled or suppressed.
func (t *Traversal) expandEntity(typ *analyze.TypeInfo) (*model.ClassMapping, error) {
	if !t.cfg.ExpandRelationships {
		return nil, nil
	}

	return t.mapClass(typ)
}

// expandComponent maps the members of typ into a component or composite element.
// A suppressed expansion leaves the container without members.
func (t *Traversal) expandComponent(c model.Container, typ *analyze.TypeInfo, prefix string) error {
	leave, ok := t.enter(typ)
	if !ok {
		return nil
	}
	defer leave()

	saved := t.prefix
	t.prefix = saved + prefix

	defer func() { t.prefix = saved }()

	return t.mapMembers(c, typ)
}

// inline maps the members of an embedded struct into the embedding container.
func (t *Traversal) inline(c model.Container, typ *analyze.TypeInfo) error {
	leave, ok := t.enter(typ)
	if !ok {
		return nil
	}
	defer leave()

	return t.mapMembers(c, typ)
}

func (t *Traversal) mapMembers(parent model.Container, typ *analyze.TypeInfo) error {
	for _, m := range typ.Members() {
		if m.DeclaringType != typ.ID {
			continue
		}

		if !t.cfg.Rules.ShouldMap(m) || (t.cfg.Skipper != nil && t.cfg.Skipper.Skips(typ.ID, m.Name)) {
			t.log.Debug("member skipped", "type", typ.ID.String(), "member", m.Name)
			continue
		}

		step, err := t.owner(m)
		if err != nil {
			return err
		}

		t.log.Debug("member mapped", "type", typ.ID.String(), "member", m.Name, "step", step.Name())

		if err := step.Map(t, parent, m); err != nil {
			var me *MemberError
			if errors.As(err, &me) {
				return err
			}

			return fmt.Errorf("%s step on %s: %w", step.Name(), m, err)
		}
	}

	return nil
}

// owner returns the first step accepting m. With VerifyOwnership every step is asked.
func (t *Traversal) owner(m *analyze.Member) (Step, error) {
	var accepted []Step

	for _, s := range t.steps {
		if !s.IsMappable(m) {
			continue
		}

		accepted = append(accepted, s)

		if !t.cfg.VerifyOwnership {
			break
		}
	}

	if len(accepted) == 0 {
		return nil, memberError(KindUnmapped, m, fmt.Sprintf("no step accepts type %s", model.RefOf(m.Type)))
	}

	if err := checkOwnership(m, accepted); err != nil {
		return nil, err
	}

	return accepted[0], nil
}

// column is the default column of a scalar member: the automap column option or the member
// name, behind the prefix of the enclosing components.
func (t *Traversal) column(m *analyze.Member) string {
	name, ok := m.OptionValue(analyze.OptionColumn)
	if !ok {
		name = t.cfg.Rules.ColumnName(m.Name)
	}

	return t.prefix + name
}

func (t *Traversal) mapProperty(parent model.Container, m *analyze.Member) error {
	p := model.NewProperty(m.Name, storageType(m.Type))
	p.ContainingEntityType = parent.ContainedType()
	p.Columns().AddDefault(model.NewColumn(t.column(m)))
	parent.AddProperty(p)

	return nil
}

// newCollection creates a collection owned by the enclosing entity, with its key and, for
// lists and maps, its index.
func (t *Traversal) newCollection(m *analyze.Member, child model.TypeReference) *model.CollectionMapping {
	shape := m.Type.Collection()
	c := model.NewCollection(m.Name, shape, t.entity, child)

	key, ok := m.OptionValue(analyze.OptionColumn)
	if !ok {
		key = t.cfg.Rules.KeyColumn(m, t.entity)
	}

	c.Key.Columns().AddDefault(model.NewColumn(key))

	switch shape {
	case analyze.CollectionList:
		c.Index = model.NewIndex(model.TypeReference{Name: "int"})
	case analyze.CollectionMap:
		c.Index = model.NewIndex(storageType(m.Type.Shape().KeyType))
	}

	if c.Index != nil {
		c.Index.Columns().AddDefault(model.NewColumn(t.cfg.Rules.IndexColumn(m)))
	}

	return c
}
