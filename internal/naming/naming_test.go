package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLPayload", []string{"XML", "Payload"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"order_line-no", []string{"order", "line", "no"}},
		{"ID", []string{"ID"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokens(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	for _, in := range []string{"OrderID", "order_id", "order-id", "orderId", "ORDER_ID"} {
		if got := Normalize(in); got != "orderid" {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, "orderid")
		}
	}
}

func TestSnake(t *testing.T) {
	tests := map[string]string{
		"OrderID":      "order_id",
		"ShippingAddr": "shipping_addr",
		"XMLPayload":   "xml_payload",
		"total":        "total",
	}

	for in, want := range tests {
		assert.Equal(t, want, Snake(in), in)
	}
}

func TestStyle(t *testing.T) {
	s, err := ParseStyle("snake")
	require.NoError(t, err)
	assert.Equal(t, StyleSnake, s)
	assert.Equal(t, "customer_id", s.Join("Customer", "ID"))
	assert.Equal(t, "shipping_street", s.Join("Shipping", "", "Street"))

	s, err = ParseStyle("")
	require.NoError(t, err)
	assert.Equal(t, StyleVerbatim, s)
	assert.Equal(t, "CustomerID", s.Join("Customer", "ID"))
	assert.Equal(t, "OrderLine", s.Apply("OrderLine"))

	_, err = ParseStyle("kebab")
	assert.Error(t, err)

	assert.Equal(t, "unknown", Style(42).String())
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "Orders", Plural("Order"))
	assert.Equal(t, "Categories", Plural("Category"))
	assert.Equal(t, "Addresses", Plural("Address"))
	assert.Equal(t, "Order", Singular("Orders"))
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"a", "b", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"pricecents", "totalcents", 5},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSuggest(t *testing.T) {
	members := []string{"Total", "Status", "Lines", "PlacedAt", "Customer"}

	assert.Equal(t, []string{"Status"}, Suggest("Statsu", members, 3))
	assert.Equal(t, []string{"Customer"}, Suggest("customer_", members, 3))
	assert.Empty(t, Suggest("Zzz", members, 3))
	assert.Len(t, Suggest("Total", append(members, "Totals", "Totally"), 2), 2)
	assert.InDelta(t, 1.0, Similarity("Order_ID", "orderId"), 0.0001)
}
