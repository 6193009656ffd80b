package analyze

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePkg = "automapper/store"

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(storePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func member(t *testing.T, typ *TypeInfo, name string) *Member {
	t.Helper()

	for _, m := range typ.Members() {
		if m.Name == name {
			return m
		}
	}

	require.Failf(t, "member not found", "%s.%s", typ.ID.Name, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadStore(t)

	assert.Contains(t, graph.Packages, storePkg)

	for _, name := range []string{"Order", "OrderLine", "Customer", "Product", "Address", "Audit", "OrderStatus"} {
		assert.Contains(t, graph.Types, TypeID{PkgPath: storePkg, Name: name})
	}

	assert.NotContains(t, graph.Types, TypeID{PkgPath: storePkg, Name: "Set"},
		"generic declarations are only seen through instantiations")
}

func TestAnalyzer_StoreOrderMembers(t *testing.T) {
	graph := loadStore(t)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)
	assert.Equal(t, TypeKindStruct, order.Kind)

	names := make([]string, 0)
	for _, m := range order.Members() {
		names = append(names, m.Name)
	}

	assert.Equal(t, []string{
		"Audit", "ID", "Version", "Customer", "Status", "PreviousStatus", "TotalCents", "Lines",
		"Notes", "Attributes", "Products", "PlacedAt", "Reference", "CreatedAt", "UpdatedAt",
	}, names, spew.Sdump(names))

	created := member(t, order, "CreatedAt")
	assert.Equal(t, "Audit", created.DeclaringType.Name, "promoted members keep their declaring type")
	assert.Equal(t, TypeKindExternal, created.Type.Kind)
	assert.True(t, created.Type.IsScalar())

	assert.False(t, member(t, order, "Reference").Writable)
	assert.True(t, member(t, order, "Audit").Embedded)
}

func TestAnalyzer_Enumerations(t *testing.T) {
	graph := loadStore(t)

	status := graph.GetType(TypeID{PkgPath: storePkg, Name: "OrderStatus"})
	require.NotNil(t, status)

	assert.Equal(t, TypeKindAlias, status.Kind)
	assert.True(t, status.IsEnum())
	assert.ElementsMatch(t, []string{"StatusPending", "StatusPaid", "StatusShipped", "StatusCancelled"}, status.EnumValues)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	prev := member(t, order, "PreviousStatus")
	assert.True(t, prev.IsNullable())
	assert.True(t, prev.IsEnum())
	assert.True(t, prev.Type.IsScalar())
}

func TestAnalyzer_CollectionShapes(t *testing.T) {
	graph := loadStore(t)
	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)

	tests := []struct {
		member string
		kind   CollectionKind
		elem   string
	}{
		{member: "Lines", kind: CollectionBag, elem: "OrderLine"},
		{member: "Notes", kind: CollectionBag, elem: "string"},
		{member: "Attributes", kind: CollectionMap, elem: "string"},
		{member: "Products", kind: CollectionSet, elem: "*Product"},
		{member: "Customer", kind: CollectionNone},
	}

	stringer := NewTypeStringer()

	for _, tt := range tests {
		t.Run(tt.member, func(t *testing.T) {
			m := member(t, order, tt.member)
			assert.Equal(t, tt.kind, m.Type.Collection())

			elem, ok := m.Type.ElementType()
			if tt.kind == CollectionNone {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.elem, stringer.TypeString(elem))
		})
	}

	products := member(t, order, "Products")
	require.Len(t, products.GenericArgs(), 1)
	assert.Equal(t, "Set", products.Type.ID.Name)
}

func TestAnalyzer_Tags(t *testing.T) {
	graph := loadStore(t)

	product := graph.GetType(TypeID{PkgPath: storePkg, Name: "Product"})
	require.NotNil(t, product)

	col, ok := member(t, product, "SKU").OptionValue(OptionColumn)
	assert.True(t, ok)
	assert.Equal(t, "sku_code", col)

	customer := graph.GetType(TypeID{PkgPath: storePkg, Name: "Customer"})
	require.NotNil(t, customer)
	assert.True(t, member(t, customer, "Rank").Ignored())
	assert.True(t, member(t, customer, "Shipping").Type.IsUserStruct())
	assert.True(t, member(t, customer, "Billing").IsNullable())
}

func TestAnalyzer_GetStruct(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.LoadPackages(storePkg)
	require.NoError(t, err)

	order, err := a.GetStruct(storePkg, "Order")
	require.NoError(t, err)
	assert.Equal(t, "Order", order.ID.Name)

	_, err = a.GetStruct(storePkg, "OrderStatus")
	require.Error(t, err)

	_, err = a.GetStruct(storePkg, "Invoice")
	require.Error(t, err)
}

func TestTypeGraph_Lookup(t *testing.T) {
	graph := loadStore(t)

	for _, name := range []string{"Order", "store.Order", storePkg + ".Order"} {
		got := graph.Lookup(name)
		require.NotNil(t, got, name)
		assert.Equal(t, "Order", got.ID.Name)
	}

	assert.Nil(t, graph.Lookup("warehouse.Order"))
	assert.Nil(t, graph.Lookup("Invoice"))
	assert.Contains(t, graph.Names(), "store.Order")
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: storePkg, Name: "Order"}
	assert.Equal(t, "automapper/store.Order", id.String())

	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
	assert.True(t, TypeID{}.IsZero())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "interface", TypeKindInterface.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestCollectionKind_String(t *testing.T) {
	assert.Equal(t, "none", CollectionNone.String())
	assert.Equal(t, "bag", CollectionBag.String())
	assert.Equal(t, "list", CollectionList.String())
	assert.Equal(t, "set", CollectionSet.String())
	assert.Equal(t, "map", CollectionMap.String())
}

func TestTypeInfo_InstanceKeyOfLoadedTypes(t *testing.T) {
	graph := loadStore(t)
	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)

	assert.Equal(t, storePkg+".Order", order.InstanceKey())
	assert.Equal(t, storePkg+".Set[*"+storePkg+".Product]", member(t, order, "Products").Type.InstanceKey())
}
