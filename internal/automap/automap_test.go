package automap

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/inspect"
	"automapper/internal/instance"
	"automapper/internal/model"
	"automapper/internal/naming"
	"automapper/internal/rules"
)

const pkg = "automapper/internal/automap"

type status int

func (s status) String() string { return [...]string{"open", "closed"}[s] }

type set[T comparable] map[T]struct{}

type counter struct {
	ID   int64
	Hits int
}

type ticket struct {
	ID       int64
	Status   status
	Previous *status
	Labels   []status
}

type book struct {
	ID    int64
	Title string
}

type author struct {
	ID    int64
	Books set[*book]
}

type left struct {
	ID     int64
	Rights []*right
}

type right struct {
	ID    int64
	Lefts []*left
}

type category struct {
	ID     int64
	Parent *category
}

type address struct {
	Street string
	City   string
}

type customer struct {
	ID       int64
	Shipping address
	Billing  *address
}

type line struct {
	Book     *book
	Quantity int
}

type order struct {
	ID       int64
	Version  int
	Customer *customer `automap:"column=buyer"`
	Lines    []line
	Notes    [4]string
	Extras   map[string]int
}

// Stamp and Base are exported so their embedded fields are visible to reflection.
type Stamp struct {
	CreatedAt time.Time
}

type Base struct {
	ID int64
}

type product struct {
	Stamp

	ID   int64
	Name string
}

type derived struct {
	Base

	Extra string
}

type keyed struct {
	ID   int64
	Ref  address
	Code string
}

type withHook struct {
	ID   int64
	Hook func()
}

type withAny struct {
	ID    int64
	Items []any
}

func mustMap(t *testing.T, cfg Config, root *analyze.TypeInfo) *model.ClassMapping {
	t.Helper()

	a, err := NewAutomapper(cfg)
	require.NoError(t, err)

	cls, err := a.Map(root)
	require.NoError(t, err)
	require.NotNil(t, cls)

	return cls
}

func property(t *testing.T, c model.Container, name string) *model.PropertyMapping {
	t.Helper()

	for _, p := range c.Properties() {
		if p.Member == name {
			return p
		}
	}

	require.Failf(t, "property not mapped", "%s in %s", name, spew.Sdump(c.Properties()))

	return nil
}

func TestScalarPropertyDefaults(t *testing.T) {
	cls := mustMap(t, DefaultConfig(), analyze.Of[counter]())

	require.NotNil(t, cls.Identity)
	assert.Equal(t, "ID", cls.Identity.Columns().All()[0].Name())

	hits := property(t, cls, "Hits")
	assert.Equal(t, "Hits", hits.Name())
	assert.Equal(t, model.TypeReference{Name: "int"}, hits.Type())
	assert.False(t, hits.IsSpecified(attr.Name))
	assert.False(t, hits.IsSpecified(attr.Type))

	cols := hits.Columns().All()
	require.Len(t, cols, 1)
	assert.Equal(t, "Hits", cols[0].Name())
	assert.False(t, cols[0].IsSpecified(attr.Name))
	assert.True(t, model.RefOfID(analyze.TypeID{PkgPath: pkg, Name: "counter"}).Equal(hits.ContainingEntityType))
}

func TestEnumPropertiesUseAdapter(t *testing.T) {
	cls := mustMap(t, DefaultConfig(), analyze.Of[ticket]())
	adapter := model.EnumAdapter(model.TypeReference{PkgPath: pkg, Name: "status"})

	for _, name := range []string{"Status", "Previous"} {
		p := property(t, cls, name)
		assert.True(t, adapter.Equal(p.Type()), "%s: %s", name, p.Type())
		assert.False(t, p.IsSpecified(attr.Type), name)
	}

	require.Len(t, cls.Collections(), 1)
	labels := cls.Collections()[0]
	require.NotNil(t, labels.Element)
	assert.True(t, adapter.Equal(labels.Element.Type()))
	assert.Equal(t, "LabelsValue", labels.Element.Columns().All()[0].Name())
	assert.Nil(t, labels.Relationship())
}

func TestSetOfEntitiesDefaultsToOneToMany(t *testing.T) {
	cls := mustMap(t, DefaultConfig(), analyze.Of[author]())
	bookRef := model.TypeReference{PkgPath: pkg, Name: "book"}

	require.Len(t, cls.Collections(), 1)
	books := cls.Collections()[0]
	assert.Equal(t, analyze.CollectionSet, books.Shape)
	assert.Nil(t, books.Index)

	rel, ok := books.Relationship().(*model.OneToManyMapping)
	require.True(t, ok, spew.Sdump(books.Relationship()))
	assert.True(t, bookRef.Equal(rel.ChildType()))
	assert.False(t, books.IsSpecified(attr.Relationship))
	assert.False(t, rel.IsSpecified(attr.Class))
	assert.Equal(t, "authorID", books.Key.Columns().All()[0].Name())
	assert.Nil(t, rel.Target, "relationships are not expanded by default")

	require.True(t, instance.NewCollection(books, nil).AsManyToMany())

	m2m, ok := books.Relationship().(*model.ManyToManyMapping)
	require.True(t, ok)
	assert.True(t, bookRef.Equal(m2m.ChildType()))
	assert.True(t, books.IsSpecified(attr.Relationship))
}

func TestCycleSuppression(t *testing.T) {
	var logs bytes.Buffer

	cfg := DefaultConfig()
	cfg.ExpandRelationships = true
	cfg.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cls := mustMap(t, cfg, analyze.Of[left]())

	rights := cls.Collections()[0].Relationship().(*model.OneToManyMapping)
	require.NotNil(t, rights.Target, "right is expanded once")

	lefts := rights.Target.Collections()[0].Relationship().(*model.OneToManyMapping)
	assert.Nil(t, lefts.Target, "left is in progress and stays a reference")
	assert.Contains(t, logs.String(), "cycle suppressed")

	self := mustMap(t, cfg, analyze.Of[category]())
	require.Len(t, self.References(), 1)
	assert.Nil(t, self.References()[0].Target)
}

type pair[A, B any] struct {
	First  A
	Second B
}

type holder struct {
	ID int64
	P  pair[int, pair[string, int]]
}

func TestDistinctInstantiationsAreNotCycles(t *testing.T) {
	cls := mustMap(t, DefaultConfig(), analyze.Of[holder]())
	require.Len(t, cls.Components(), 1)

	outer := cls.Components()[0]
	property(t, outer, "First")
	require.Len(t, outer.Components(), 1, "the nested pair has other type arguments")

	inner := outer.Components()[0]
	assert.Equal(t, "Second", inner.Member)
	assert.Len(t, inner.Properties(), 2)
	assert.Equal(t, "PSecondFirst", property(t, inner, "First").Columns().All()[0].Name())
}

func TestExpansionRespectsMaxDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExpandRelationships = true
	cfg.MaxDepth = 1

	cls := mustMap(t, cfg, analyze.Of[order]())
	require.Len(t, cls.References(), 1)
	assert.Nil(t, cls.References()[0].Target)

	cfg.MaxDepth = 2
	cls = mustMap(t, cfg, analyze.Of[order]())
	target := cls.References()[0].Target
	require.NotNil(t, target)
	require.Len(t, target.Components(), 2)
	assert.Empty(t, target.Components()[0].Properties(), "components below the cap stay empty")
}

func TestOrderShapes(t *testing.T) {
	cls := mustMap(t, DefaultConfig(), analyze.Of[order]())

	require.NotNil(t, cls.Version)
	assert.Equal(t, "Version", cls.Version.Name())

	require.Len(t, cls.References(), 1)
	ref := cls.References()[0]
	assert.Equal(t, "buyer", ref.Columns().All()[0].Name())
	assert.True(t, model.TypeReference{PkgPath: pkg, Name: "customer"}.Equal(ref.Class()))

	byName := make(map[string]*model.CollectionMapping)
	for _, c := range cls.Collections() {
		byName[c.Member] = c
	}

	lines := byName["Lines"]
	require.NotNil(t, lines)
	require.NotNil(t, lines.CompositeElement)
	assert.Len(t, lines.CompositeElement.References(), 1)
	assert.Equal(t, "Quantity", property(t, lines.CompositeElement, "Quantity").Columns().All()[0].Name())

	notes := byName["Notes"]
	require.NotNil(t, notes)
	assert.Equal(t, analyze.CollectionList, notes.Shape)
	require.NotNil(t, notes.Index)
	assert.Equal(t, "NotesIndex", notes.Index.Columns().All()[0].Name())

	extras := byName["Extras"]
	require.NotNil(t, extras)
	assert.Equal(t, analyze.CollectionMap, extras.Shape)
	assert.Equal(t, model.TypeReference{Name: "string"}, attr.Value[model.TypeReference](extras.Index.Attributes(), attr.Type))
	assert.Equal(t, model.TypeReference{Name: "int"}, extras.Element.Type())
}

func TestComponentColumnsArePrefixed(t *testing.T) {
	cls := mustMap(t, DefaultConfig(), analyze.Of[customer]())
	require.Len(t, cls.Components(), 2)

	shipping := cls.Components()[0]
	assert.Equal(t, "ShippingStreet", property(t, shipping, "Street").Columns().All()[0].Name())
	assert.Equal(t, "BillingCity", property(t, cls.Components()[1], "City").Columns().All()[0].Name())

	cfg := DefaultConfig()
	cfg.Rules = rules.New(rules.Options{ColumnStyle: naming.StyleSnake})
	cls = mustMap(t, cfg, analyze.Of[customer]())
	assert.Equal(t, "shipping_street", property(t, cls.Components()[0], "Street").Columns().All()[0].Name())
}

func TestEmbeddedStructs(t *testing.T) {
	p := mustMap(t, DefaultConfig(), analyze.Of[product]())
	created := property(t, p, "CreatedAt")
	assert.Equal(t, "CreatedAt", created.Columns().All()[0].Name())
	assert.Equal(t, model.TypeReference{PkgPath: "time", Name: "Time"}, created.Type())
	assert.Len(t, p.Properties(), 2, "promoted members are mapped once, through the embedded field")

	d := mustMap(t, DefaultConfig(), analyze.Of[derived]())
	assert.Nil(t, d.Identity, "the identifier belongs to the base entity")
	assert.True(t, model.TypeReference{PkgPath: pkg, Name: "Base"}.Equal(d.Extends()))
	assert.False(t, d.IsSpecified(attr.Extends))
	property(t, d, "Extra")
}

type shelf struct {
	ID     int64
	Pinned book `automap:"component"`
}

func TestIdentifierOutsideClassIsProperty(t *testing.T) {
	cls := mustMap(t, DefaultConfig(), analyze.Of[shelf]())
	require.Len(t, cls.Components(), 1)
	assert.Empty(t, cls.References(), "the component option wins over entity detection")

	pinned := cls.Components()[0]
	assert.Equal(t, "PinnedID", property(t, pinned, "ID").Columns().All()[0].Name())
	property(t, pinned, "Title")

	cfg := DefaultConfig()
	cfg.Rules = rules.New(rules.Options{IDNames: []string{"Code"}})
	cls = mustMap(t, cfg, analyze.Of[keyed]())
	require.NotNil(t, cls.Identity)
	assert.Equal(t, "Code", cls.Identity.Member)
	property(t, cls, "ID")
}

func TestFaultsAbortThePass(t *testing.T) {
	a, err := NewAutomapper(DefaultConfig())
	require.NoError(t, err)

	cls, err := a.Map(analyze.Of[withHook]())
	assert.Nil(t, cls)
	require.ErrorIs(t, err, ErrUnmappedMember)

	var me *MemberError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "Hook", me.Member)
	assert.Equal(t, analyze.TypeID{PkgPath: pkg, Name: "withHook"}, me.Type)
	assert.Contains(t, err.Error(), "withHook.Hook")

	cls, err = a.Map(analyze.Of[withAny]())
	assert.Nil(t, cls)
	require.ErrorIs(t, err, ErrMalformedShape)
	require.ErrorAs(t, err, &me)
	assert.Equal(t, []string{"entity-collection"}, me.Steps)

	_, err = a.Map(analyze.Of[int]())
	assert.ErrorIs(t, err, ErrMalformedShape)
}

type skipper map[string]bool

func (s skipper) Skips(_ analyze.TypeID, member string) bool { return s[member] }

func TestSkipperAndIgnoredMembers(t *testing.T) {
	type tagged struct {
		ID     int64
		Hook   func() `automap:"-"`
		Frozen string `automap:"readonly"`
		Cache  []any
	}

	cfg := DefaultConfig()
	cfg.Skipper = skipper{"Cache": true}

	cls := mustMap(t, cfg, analyze.Of[tagged]())
	assert.Empty(t, cls.Properties())
	assert.Empty(t, cls.Collections())
}

type hitsStep struct{}

func (hitsStep) Name() string                                           { return "hits" }
func (hitsStep) IsMappable(m *analyze.Member) bool                      { return m.Name == "Hits" }
func (hitsStep) Map(*Traversal, model.Container, *analyze.Member) error { return nil }

type greedyStep struct{ hitsStep }

func (greedyStep) IsMappable(*analyze.Member) bool { return true }

func TestOwnershipIsExclusive(t *testing.T) {
	steps := DefaultSteps(DefaultConfig())

	for _, m := range ProbeCatalog() {
		var names []string

		for _, s := range steps {
			if s.IsMappable(m) {
				names = append(names, s.Name())
			}
		}

		assert.LessOrEqual(t, len(names), 1, "%s accepted by %v", m.Name, names)
	}

	_, err := NewAutomapper(DefaultConfig(), append(DefaultSteps(DefaultConfig()), greedyStep{})...)
	require.ErrorIs(t, err, ErrOwnershipConflict)

	a, err := NewAutomapper(DefaultConfig(), append(DefaultSteps(DefaultConfig()), hitsStep{})...)
	require.NoError(t, err, "no probe is named Hits")

	_, err = a.Map(analyze.Of[counter]())
	var me *MemberError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, KindOwnershipConflict, me.Kind)
	assert.Equal(t, []string{"property", "hits"}, me.Steps)

	cfg := DefaultConfig()
	cfg.VerifyOwnership = false
	a, err = NewAutomapper(cfg, append(DefaultSteps(cfg), hitsStep{})...)
	require.NoError(t, err)

	cls, err := a.Map(analyze.Of[counter]())
	require.NoError(t, err)
	property(t, cls, "Hits")
}

type claimLabels struct{ seen []string }

func (c *claimLabels) ClaimsProperty(p inspect.PropertyInspector) bool {
	c.seen = append(c.seen, p.Name())
	return p.Name() == "Labels"
}

func TestUserTypeClaimIsTieBreak(t *testing.T) {
	claimer := &claimLabels{}

	cfg := DefaultConfig()
	cfg.Claimer = claimer

	a, err := NewAutomapper(cfg)
	require.NoError(t, err, "claimed overlaps are legal")

	cls, err := a.Map(analyze.Of[ticket]())
	require.NoError(t, err)
	assert.Contains(t, claimer.seen, "Labels")

	// the claimed enum collection is owned by the property step
	assert.Empty(t, cls.Collections())
	property(t, cls, "Labels")
}
