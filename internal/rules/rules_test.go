package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/internal/analyze"
	"automapper/internal/model"
	"automapper/internal/naming"
)

type address struct {
	Street string
}

type account struct {
	ID        int64
	Version   int
	Revision  int    `automap:"version"`
	Key       string `automap:"id"`
	Secret    string `automap:"-"`
	Computed  string `automap:"readonly"`
	Home      address
	CreatedAt time.Time
	Tags      []string
}

type uuidKeyed struct {
	Uuid string
}

func member(t *testing.T, typ *analyze.TypeInfo, name string) *analyze.Member {
	t.Helper()

	for _, m := range typ.Members() {
		if m.Name == name {
			return m
		}
	}

	require.Failf(t, "no member", "%s", name)

	return nil
}

func TestNewFillsDefaults(t *testing.T) {
	d := New(Options{ColumnStyle: naming.StyleSnake})

	opts := d.Options()
	assert.Equal(t, []string{"ID"}, opts.IDNames)
	assert.Equal(t, []string{"Version"}, opts.VersionNames)
	assert.Equal(t, "ID", opts.KeySuffix)
	assert.Equal(t, naming.StyleSnake, opts.ColumnStyle)
}

func TestMemberDiscovery(t *testing.T) {
	d := New(DefaultOptions())
	acct := analyze.Of[account]()

	tests := []struct {
		member  string
		mapped  bool
		id      bool
		version bool
	}{
		{member: "ID", mapped: true, id: true},
		{member: "Key", mapped: true, id: true},
		{member: "Version", mapped: true, version: true},
		{member: "Revision", mapped: true, version: true},
		{member: "Secret"},
		{member: "Computed"},
		{member: "Home", mapped: true},
		{member: "Tags", mapped: true},
	}

	for _, tt := range tests {
		t.Run(tt.member, func(t *testing.T) {
			m := member(t, acct, tt.member)
			assert.Equal(t, tt.mapped, d.ShouldMap(m), "ShouldMap")
			assert.Equal(t, tt.id, d.IsID(m), "IsID")
			assert.Equal(t, tt.version, d.IsVersion(m), "IsVersion")
		})
	}
}

func TestIdentifierNamesAreNormalized(t *testing.T) {
	d := New(Options{IDNames: []string{"UUID"}})
	m := member(t, analyze.Of[uuidKeyed](), "Uuid")

	assert.True(t, d.IsID(m))
	assert.True(t, d.IsEntity(analyze.Of[uuidKeyed]()))
	assert.False(t, New(DefaultOptions()).IsEntity(analyze.Of[uuidKeyed]()))
}

func TestEntitiesAndComponents(t *testing.T) {
	d := New(DefaultOptions())

	assert.True(t, d.IsEntity(analyze.Of[account]()))
	assert.True(t, d.IsEntity(analyze.Of[*account]()), "pointers are dereferenced")
	assert.False(t, d.IsComponent(analyze.Of[account]()))

	assert.True(t, d.IsComponent(analyze.Of[address]()))
	assert.False(t, d.IsEntity(analyze.Of[address]()))

	assert.False(t, d.IsComponent(analyze.Of[time.Time]()), "standard library structs are opaque")
	assert.False(t, d.IsComponent(analyze.Of[string]()))
}

func TestColumnNames(t *testing.T) {
	acct := analyze.Of[account]()
	home := member(t, acct, "Home")
	tags := member(t, acct, "Tags")
	owner := model.TypeReference{PkgPath: "automapper/store", Name: "OrderLine"}

	verbatim := New(DefaultOptions())
	assert.Equal(t, "Home", verbatim.ComponentColumnPrefix(home))
	assert.Equal(t, "OrderLineID", verbatim.KeyColumn(tags, owner))
	assert.Equal(t, "HomeID", verbatim.ReferenceColumn(home))
	assert.Equal(t, "TagsIndex", verbatim.IndexColumn(tags))
	assert.Equal(t, "TagsValue", verbatim.ElementColumn(tags))
	assert.Equal(t, "CreatedAt", verbatim.ColumnName("CreatedAt"))

	snake := New(Options{ColumnStyle: naming.StyleSnake, KeySuffix: "Key"})
	assert.Equal(t, "home_", snake.ComponentColumnPrefix(home))
	assert.Equal(t, "order_line_key", snake.KeyColumn(tags, owner))
	assert.Equal(t, "home_key", snake.ReferenceColumn(home))
	assert.Equal(t, "tags_index", snake.IndexColumn(tags))
	assert.Equal(t, "tags_value", snake.ElementColumn(tags))
	assert.Equal(t, "created_at", snake.ColumnName("CreatedAt"))
}
