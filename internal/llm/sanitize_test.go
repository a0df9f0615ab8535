package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSanitize(t *testing.T, in string) map[string]any {
	t.Helper()
	out, _, err := NormalizeAndSanitizeJSON([]byte(in), nil)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestSanitize_RenamesSynonyms(t *testing.T) {
	m := mustSanitize(t, `{
		"bill_number": "B-42",
		"date": "2025-01-02",
		"total_amount": "100.00",
		"tax_amount": "19.00",
		"seller": {"name": "Acme"},
		"buyer": {"name": "Elitizon"},
		"items": [{"description": "thing"}],
		"currency_code": "eur"
	}`)

	assert.Equal(t, "B-42", m["invoice_number"])
	assert.Equal(t, "2025-01-02", m["invoice_date"])
	assert.Equal(t, "100.00", m["total"])
	assert.Equal(t, "19.00", m["tax"])
	assert.Equal(t, "EUR", m["currency_code"])
	assert.NotNil(t, m["vendor"])
	assert.NotNil(t, m["customer"])
	assert.NotNil(t, m["line_items"])
	assert.NotContains(t, m, "bill_number")
	assert.NotContains(t, m, "seller")
	assert.NotContains(t, m, "items")
}

func TestSanitize_CoercesMoney(t *testing.T) {
	m := mustSanitize(t, `{
		"invoice_number": "INV-1",
		"total": 418.0,
		"subtotal": "$1,234.50",
		"tax": "  €19.00 "
	}`)
	assert.Equal(t, "418.00", m["total"])
	assert.Equal(t, "1234.50", m["subtotal"])
	assert.Equal(t, "19.00", m["tax"])
}

func TestSanitize_DropsNullsAndUnknowns(t *testing.T) {
	out, dropped, err := NormalizeAndSanitizeJSON([]byte(`{
		"invoice_number": "  INV-1  ",
		"total": null,
		"made_up_key": 1,
		"notes": "   "
	}`), nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "INV-1", m["invoice_number"])
	assert.NotContains(t, m, "total")
	assert.NotContains(t, m, "made_up_key")
	assert.NotContains(t, m, "notes")
	assert.NotEmpty(t, dropped)
}

func TestSanitize_FlattenedAddressBecomesStreet(t *testing.T) {
	m := mustSanitize(t, `{
		"invoice_number": "INV-1",
		"vendor": {"name": "Acme", "address": "1 Main St, Springfield"}
	}`)
	vendor := m["vendor"].(map[string]any)
	addr := vendor["address"].(map[string]any)
	assert.Equal(t, "1 Main St, Springfield", addr["street"])
}

func TestSanitize_LineItemsWithoutDescriptionDropped(t *testing.T) {
	m := mustSanitize(t, `{
		"invoice_number": "INV-1",
		"line_items": [
			{"description": "Widgets", "quantity": 2, "unit_price": "5.00", "sku": "W-1"},
			{"quantity": "1"},
			"garbage"
		]
	}`)
	items := m["line_items"].([]any)
	require.Len(t, items, 1)
	li := items[0].(map[string]any)
	assert.Equal(t, "Widgets", li["description"])
	assert.Equal(t, "2.00", li["quantity"])
	assert.NotContains(t, li, "sku")
}

func TestSanitize_AllItemsDroppedRemovesKey(t *testing.T) {
	m := mustSanitize(t, `{"invoice_number": "INV-1", "line_items": [{"quantity": "1"}]}`)
	assert.NotContains(t, m, "line_items")
}

func TestSanitize_SurvivesSchemaAfterCleanup(t *testing.T) {
	out, _, err := NormalizeAndSanitizeJSON([]byte(`{
		"invoice_no": "INV-7",
		"date": "2025-06-01",
		"vendor": {"name": "Acme", "website": "acme.test"},
		"total": "€2,000.00",
		"currency_code": "eur",
		"internal_notes": "drop me"
	}`), nil)
	require.NoError(t, err)
	require.NoError(t, ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), out))
}

func TestSanitize_InvalidJSON(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte(`not json`), nil)
	require.Error(t, err)
}
