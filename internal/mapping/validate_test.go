package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/internal/analyze"
	"automapper/internal/diagnostic"
	"automapper/store"
)

func storeGraph() *analyze.TypeGraph {
	return analyze.GraphOf(
		analyze.Of[store.Order](),
		analyze.Of[store.Customer](),
		analyze.Of[store.Product](),
		analyze.Of[store.Address](),
		analyze.Of[store.OrderStatus](),
	)
}

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Code
	}

	return out
}

func byCode(t *testing.T, ds []diagnostic.Diagnostic, code string) diagnostic.Diagnostic {
	t.Helper()

	for _, d := range ds {
		if d.Code == code {
			return d
		}
	}

	require.Failf(t, "diagnostic not reported", "%s in %v", code, codes(ds))

	return diagnostic.Diagnostic{}
}

func TestValidateAcceptsDeclarations(t *testing.T) {
	df, err := Parse([]byte(orderYAML))
	require.NoError(t, err)

	res := Validate(df, storeGraph())
	assert.True(t, res.IsValid(), "%v", res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidateReportsMistakes(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		code        string
		member      string
		suggestions []string
	}{
		{
			name:        "unknown type",
			yaml:        "entities:\n  - type: store.Ordr\n",
			code:        "type_not_found",
			suggestions: []string{"store.Order"},
		},
		{
			name: "missing type",
			yaml: "entities:\n  - table: orders\n",
			code: "missing_type",
		},
		{
			name: "not a struct",
			yaml: "entities:\n  - type: store.OrderStatus\n",
			code: "not_a_struct",
		},
		{
			name: "version",
			yaml: "version: \"2\"\nentities: []\n",
			code: "unsupported_version",
		},
		{
			name:        "unknown property",
			yaml:        "entities:\n  - type: store.Order\n    properties:\n      - name: TotalCent\n",
			code:        "unknown_member",
			member:      "TotalCent",
			suggestions: []string{"TotalCents"},
		},
		{
			name:   "unknown ignored member",
			yaml:   "entities:\n  - type: Order\n    ignore: [Notez]\n",
			code:   "unknown_member",
			member: "Notez",
		},
		{
			name:   "missing name",
			yaml:   "entities:\n  - type: store.Order\n    properties:\n      - column: x\n",
			code:   "missing_name",
			member: "",
		},
		{
			name:   "not a reference",
			yaml:   "entities:\n  - type: store.Order\n    references:\n      - name: Status\n",
			code:   "not_a_reference",
			member: "Status",
		},
		{
			name:   "not a component",
			yaml:   "entities:\n  - type: store.Order\n    components:\n      - name: TotalCents\n",
			code:   "not_a_component",
			member: "TotalCents",
		},
		{
			name:        "unknown component member",
			yaml:        "entities:\n  - type: store.Customer\n    components:\n      - name: Shipping\n        properties:\n          - name: Zipp\n",
			code:        "unknown_member",
			member:      "Zipp",
			suggestions: []string{"Zip"},
		},
		{
			name:   "not a collection",
			yaml:   "entities:\n  - type: store.Order\n    collections:\n      - name: Customer\n",
			code:   "not_a_collection",
			member: "Customer",
		},
		{
			name:        "relationship",
			yaml:        "entities:\n  - type: store.Order\n    collections:\n      - name: Products\n        relationship: many-to-mny\n",
			code:        "invalid_relationship",
			member:      "Products",
			suggestions: []string{RelationshipManyToMany},
		},
		{
			name: "duplicate entity",
			yaml: "entities:\n  - type: store.Order\n  - type: automapper/store.Order\n",
			code: "duplicate_entity",
		},
		{
			name:   "duplicate member",
			yaml:   "entities:\n  - type: store.Order\n    properties:\n      - name: TotalCents\n      - name: TotalCents\n",
			code:   "duplicate_member",
			member: "TotalCents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := Validate(df, storeGraph())
			require.True(t, res.HasErrors())

			d := byCode(t, res.Errors, tt.code)
			assert.Equal(t, tt.member, d.Member)

			for _, s := range tt.suggestions {
				assert.Contains(t, d.Suggestions, s)
			}
		})
	}
}

func TestValidateWarnsAboutIgnoredDeclarations(t *testing.T) {
	df, err := Parse([]byte("entities:\n  - type: store.Order\n    ignore: [Notes]\n    collections:\n      - name: Notes\n"))
	require.NoError(t, err)

	res := Validate(df, storeGraph())
	assert.True(t, res.IsValid())
	assert.Equal(t, "Notes", byCode(t, res.Warnings, "ignored_member_declared").Member)
}

func TestValidateNilInputs(t *testing.T) {
	assert.Equal(t, []string{"declarations_are_nil"}, codes(Validate(nil, storeGraph()).Errors))
	assert.Equal(t, []string{"graph_is_nil"}, codes(Validate(&DeclarationFile{}, nil).Errors))
}
