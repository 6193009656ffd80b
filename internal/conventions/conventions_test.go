package conventions

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/automap"
	"automapper/internal/inspect"
	"automapper/internal/instance"
	"automapper/internal/model"
)

const pkg = "automapper/internal/conventions"

type status int

func (s status) String() string { return [...]string{"new", "done"}[s] }

type tags []string

type customer struct {
	ID   int64
	Name string
}

type line struct {
	ID  int64
	Qty int
}

type order struct {
	ID       int64
	Status   status
	Tags     tags
	Customer *customer
	Lines    []*line
}

func ref(name string) model.TypeReference { return model.TypeReference{PkgPath: pkg, Name: name} }

func mapOrder(t *testing.T, claimer automap.PropertyClaimer) *model.ClassMapping {
	t.Helper()

	cfg := automap.DefaultConfig()
	cfg.Claimer = claimer

	a, err := automap.NewAutomapper(cfg)
	require.NoError(t, err)

	cls, err := a.Map(analyze.Of[order]())
	require.NoError(t, err)

	return cls
}

func mustRegistry(t *testing.T, cs ...any) *Registry {
	t.Helper()

	r, err := NewRegistry(cs...)
	require.NoError(t, err)

	return r
}

func propertyNamed(t *testing.T, c model.Container, name string) *model.PropertyMapping {
	t.Helper()

	for _, p := range c.Properties() {
		if p.Member == name {
			return p
		}
	}

	require.Failf(t, "property not mapped", "%s", name)

	return nil
}

type fixedTable string

func (f fixedTable) ApplyClass(c *instance.Class) { c.SetTable(string(f)) }

type refFK string

func (f refFK) ApplyReference(r *instance.ManyToOne) { r.SetForeignKey(string(f)) }

type visits struct {
	properties []string
	relations  []model.NodeKind
}

func (v *visits) ApplyProperty(p *instance.Property) { v.properties = append(v.properties, p.Name()) }

func (v *visits) ApplyOneToMany(r *instance.OneToMany) {
	v.relations = append(v.relations, model.KindOneToMany)
}

func (v *visits) ApplyManyToMany(r *instance.ManyToMany) {
	v.relations = append(v.relations, model.KindManyToMany)
}

type toManyToMany struct{}

func (toManyToMany) ApplyCollection(c *instance.Collection) { c.AsManyToMany() }

func TestRegistryRejectsValuesWithoutCapability(t *testing.T) {
	_, err := NewRegistry(PluralTableNames{}, struct{}{})
	require.ErrorIs(t, err, ErrNoCapability)
	assert.Contains(t, err.Error(), "struct {}")

	r := mustRegistry(t)
	require.ErrorIs(t, r.Add(nil), ErrNoCapability)
	require.NoError(t, r.Add(ForeignKeyNames{}))
	require.NoError(t, r.Add(fixedTable("a")))
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []any{ForeignKeyNames{}, fixedTable("a")}, r.All())
}

func TestCriteria(t *testing.T) {
	candidate := inspect.PropertyCandidate{Member: "Status", Ref: ref("status"), Enum: true}

	named := func(n string) Predicate[inspect.PropertyInspector] {
		return func(p inspect.PropertyInspector) bool { return p.Name() == n }
	}

	assert.True(t, WouldAccept(nil, inspect.PropertyInspector(candidate)), "no criteria accept everything")
	assert.True(t, WouldAccept(func(c *Criteria[inspect.PropertyInspector]) {
		c.Expect(IsEnum()).Any(named("Total"), named("Status"))
	}, inspect.PropertyInspector(candidate)))
	assert.False(t, WouldAccept(func(c *Criteria[inspect.PropertyInspector]) {
		c.Expect(IsEnum()).Expect(named("Total"))
	}, inspect.PropertyInspector(candidate)))
	assert.False(t, WouldAccept(func(c *Criteria[inspect.PropertyInspector]) {
		c.Any()
	}, inspect.PropertyInspector(candidate)), "an empty alternative holds for nothing")
	assert.False(t, WouldAccept(func(c *Criteria[inspect.PropertyInspector]) {
		c.Expect(IsSet[inspect.PropertyInspector](attr.Type))
	}, inspect.PropertyInspector(candidate)), "candidates have nothing set")
	assert.True(t, WouldAccept(func(c *Criteria[inspect.PropertyInspector]) {
		c.Expect(TypeIs(ref("status")))
	}, inspect.PropertyInspector(candidate)))

	var c Criteria[inspect.PropertyInspector]
	c.Expect(IsEnum()).Any(named("a"))
	assert.Equal(t, 2, c.Len())
}

func TestBuiltinConventions(t *testing.T) {
	cls := mapOrder(t, nil)
	r := mustRegistry(t, PluralTableNames{}, ForeignKeyNames{}, EnumAsString{})

	applied := NewPipeline(r).Apply(cls)
	assert.Equal(t, 4, applied, "table, reference key, collection key and enum")

	assert.Equal(t, "orders", cls.Table())
	assert.True(t, cls.IsSpecified(attr.Table))

	require.Len(t, cls.References(), 1)
	assert.Equal(t, "fk_order_customer", inspect.NewManyToOne(cls.References()[0]).ForeignKey())

	var lines *model.CollectionMapping
	for _, c := range cls.Collections() {
		if c.Member == "Lines" {
			lines = c
		}
	}

	require.NotNil(t, lines)
	assert.Equal(t, "fk_line_order", inspect.NewKey(lines.Key).ForeignKey())

	st := propertyNamed(t, cls, "Status")
	assert.Equal(t, model.TypeReference{Name: EnumStringName, Args: []model.TypeReference{ref("status")}}, st.Type())
}

func TestFirstWriterWins(t *testing.T) {
	cls := mapOrder(t, nil)

	type suppressed struct {
		key attr.Key
		val any
	}

	var got []suppressed

	obs := instance.ObserverFunc(func(_ model.Node, k attr.Key, v any) {
		got = append(got, suppressed{key: k, val: v})
	})

	r := mustRegistry(t, refFK("fk_a"), refFK("fk_b"), fixedTable("legacy_orders"), PluralTableNames{})
	NewPipeline(r, WithObserver(obs)).Apply(cls)

	assert.Equal(t, "fk_a", inspect.NewManyToOne(cls.References()[0]).ForeignKey())
	assert.Equal(t, "legacy_orders", cls.Table(), "the plural convention no longer accepts the class")
	assert.Equal(t, []suppressed{{key: attr.ForeignKey, val: "fk_b"}}, got)
}

func TestExplicitValuesAreUntouched(t *testing.T) {
	cls := mapOrder(t, nil)
	cls.Set(attr.Table, "tbl_order")

	st := propertyNamed(t, cls, "Status")
	st.Set(attr.Type, model.TypeReference{Name: "int"})

	var suppressedKeys []attr.Key

	obs := instance.ObserverFunc(func(_ model.Node, k attr.Key, _ any) { suppressedKeys = append(suppressedKeys, k) })

	NewPipeline(mustRegistry(t, PluralTableNames{}, fixedTable("x"), EnumAsString{}), WithObserver(obs)).Apply(cls)

	assert.Equal(t, "tbl_order", cls.Table())
	assert.Equal(t, model.TypeReference{Name: "int"}, st.Type())
	assert.Equal(t, []attr.Key{attr.Table}, suppressedKeys, "the enum is no longer an enum adapter")
}

func TestPipelineReachesEveryNodeOnce(t *testing.T) {
	cls := mapOrder(t, nil)
	v := &visits{}

	var logs bytes.Buffer

	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	NewPipeline(mustRegistry(t, v), WithLogger(log)).Apply(cls)

	assert.ElementsMatch(t, []string{"Status"}, v.properties)
	assert.Equal(t, []model.NodeKind{model.KindOneToMany}, v.relations)
	assert.Contains(t, logs.String(), "convention applied")

	// a relationship replaced by an earlier convention is visited in its new form
	cls = mapOrder(t, nil)
	v = &visits{}
	NewPipeline(mustRegistry(t, toManyToMany{}, v)).Apply(cls)
	assert.Equal(t, []model.NodeKind{model.KindManyToMany}, v.relations)

	for _, c := range cls.Collections() {
		if c.Element != nil {
			assert.Nil(t, c.Relationship(), "%s holds values and keeps no relationship", c.Member)
		}
	}
}

func TestUserTypeClaimsMembers(t *testing.T) {
	json := model.TypeReference{Name: "JSON"}
	r := mustRegistry(t, UserType{Match: ref("tags"), Storage: json})

	assert.True(t, r.ClaimsProperty(inspect.PropertyCandidate{Member: "Tags", Ref: ref("tags")}))
	assert.False(t, r.ClaimsProperty(inspect.PropertyCandidate{Member: "Name", Ref: model.TypeReference{Name: "string"}}))
	assert.False(t, mustRegistry(t, PluralTableNames{}).ClaimsProperty(inspect.PropertyCandidate{}))

	unclaimed := mapOrder(t, nil)
	assert.Len(t, unclaimed.Collections(), 2, "tags are a value collection by default")

	cls := mapOrder(t, r)
	require.Len(t, cls.Collections(), 1)
	assert.Equal(t, "Lines", cls.Collections()[0].Member)

	tagsProp := propertyNamed(t, cls, "Tags")
	assert.Equal(t, ref("tags"), tagsProp.Type())

	NewPipeline(r).Apply(cls)
	assert.Equal(t, json, tagsProp.Type())
	assert.True(t, tagsProp.IsSpecified(attr.Type))
}
