package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/model"
)

var (
	orderRef = model.TypeReference{PkgPath: "automapper/store", Name: "Order"}
	lineRef  = model.TypeReference{PkgPath: "automapper/store", Name: "OrderLine"}
)

func TestProperty_IsSetFollowsExplicitState(t *testing.T) {
	m := model.NewProperty("Total", model.TypeReference{Name: "int"})
	m.Columns().AddDefault(model.NewColumn("Total"))

	p := NewProperty(m)
	assert.False(t, p.IsSet(attr.Name))
	assert.False(t, p.IsSet(attr.Type))
	assert.Equal(t, "Total", p.Name())
	assert.True(t, p.Insert(), "insert falls back to true")
	assert.True(t, p.Nullable())

	m.Columns().All()[0].Set(attr.NotNull, true)
	assert.True(t, p.IsSet(attr.NotNull))
	assert.False(t, p.Nullable())

	require.Len(t, p.Columns(), 1)
	assert.True(t, p.Columns()[0].IsSet(attr.NotNull))
	assert.False(t, p.Columns()[0].IsSet(attr.Length))
}

func TestProperty_IsEnum(t *testing.T) {
	status := model.TypeReference{PkgPath: "automapper/store", Name: "Status"}

	m := model.NewProperty("Status", model.EnumAdapter(status))
	assert.True(t, NewProperty(m).IsEnum())

	m.Set(attr.Type, model.TypeReference{Name: "string"})
	assert.False(t, NewProperty(m).IsEnum())
}

func TestClass_Views(t *testing.T) {
	c := model.NewClass(orderRef)
	c.Set(attr.Table, "orders")
	c.AddProperty(model.NewProperty("Total", model.TypeReference{Name: "int"}))

	coll := model.NewCollection("Lines", analyze.CollectionBag, orderRef, lineRef)
	coll.SetDefault(attr.Relationship, model.NewOneToMany(orderRef, lineRef))
	c.AddCollection(coll)

	v := NewClass(c)
	assert.Equal(t, "orders", v.TableName())
	assert.True(t, v.IsSet(attr.Table))
	assert.False(t, v.IsSet(attr.Name))
	assert.True(t, v.LazyLoad())
	assert.Nil(t, v.Identity())
	assert.Nil(t, v.Cache())
	require.Len(t, v.Properties(), 1)
	require.Len(t, v.Collections(), 1)

	rel := v.Collections()[0].Relationship()
	require.NotNil(t, rel)
	assert.Equal(t, model.KindOneToMany, rel.Kind())
	assert.True(t, lineRef.Equal(rel.ChildType()))
	assert.True(t, orderRef.Equal(rel.EntityType()))
	assert.Nil(t, v.Collections()[0].Element())
}

func TestNewRelationship_Nil(t *testing.T) {
	assert.Nil(t, NewRelationship(nil))

	coll := model.NewCollection("Tags", analyze.CollectionBag, orderRef, model.TypeReference{Name: "string"})
	assert.Nil(t, NewCollection(coll).Relationship())
}

func TestPropertyCandidate(t *testing.T) {
	status := &analyze.TypeInfo{
		Kind:       analyze.TypeKindAlias,
		ID:         analyze.TypeID{PkgPath: "automapper/store", Name: "Status"},
		Underlying: &analyze.TypeInfo{Kind: analyze.TypeKindBasic, ID: analyze.TypeID{Name: "int"}},
		Enum:       true,
	}
	member := &analyze.Member{
		Name:          "Status",
		DeclaringType: analyze.TypeID{PkgPath: "automapper/store", Name: "Order"},
		Type:          &analyze.TypeInfo{Kind: analyze.TypeKindPointer, ElemType: status},
		Exported:      true,
		Writable:      true,
	}

	c := CandidateFor(orderRef, member)
	assert.True(t, c.IsEnum())
	assert.True(t, c.Nullable())
	assert.Equal(t, "Status", c.Property())
	assert.Equal(t, "*Status", c.Type().String())
	assert.False(t, c.IsSet(attr.Type))
	assert.Empty(t, c.Columns())
}
