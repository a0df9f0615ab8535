package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() []byte {
	return []byte(`{
		"invoice_number": "INV-1001",
		"invoice_date": "2025-03-14",
		"vendor": {"name": "Acme Supplies GmbH"},
		"total": "418.00",
		"currency_code": "EUR",
		"line_items": [
			{"description": "Widgets", "quantity": "10", "unit_price": "35.00", "total": "350.00"}
		],
		"confidence": 0.92
	}`)
}

func TestValidateJSONAgainstSchema_Valid(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	require.NoError(t, ValidateJSONAgainstSchema(schema, validPayload()))
}

func TestValidateJSONAgainstSchema_MissingRequired(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	err := ValidateJSONAgainstSchema(schema, []byte(`{
		"invoice_date": "2025-03-14",
		"vendor": {"name": "Acme"},
		"total": "10.00",
		"currency_code": "EUR"
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestValidateJSONAgainstSchema_RejectsNumericTotal(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	err := ValidateJSONAgainstSchema(schema, []byte(`{
		"invoice_number": "INV-1",
		"invoice_date": "2025-03-14",
		"vendor": {"name": "Acme"},
		"total": 418.00,
		"currency_code": "EUR"
	}`))
	require.Error(t, err)
}

func TestValidateJSONAgainstSchema_RejectsBadDate(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	err := ValidateJSONAgainstSchema(schema, []byte(`{
		"invoice_number": "INV-1",
		"invoice_date": "14/03/2025",
		"vendor": {"name": "Acme"},
		"total": "418.00",
		"currency_code": "EUR"
	}`))
	require.Error(t, err)
}

func TestValidateJSONAgainstSchema_RejectsUnknownKeys(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	err := ValidateJSONAgainstSchema(schema, []byte(`{
		"invoice_number": "INV-1",
		"invoice_date": "2025-03-14",
		"vendor": {"name": "Acme"},
		"total": "418.00",
		"currency_code": "EUR",
		"surprise": true
	}`))
	require.Error(t, err)
}

func TestDecimalPattern(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	for _, tc := range []struct {
		total string
		ok    bool
	}{
		{"418.00", true},
		{"418", true},
		{"-12.50", true},
		{"418.005", false},
		{"1,234.00", false},
		{"$418.00", false},
	} {
		payload := []byte(`{
			"invoice_number": "INV-1",
			"invoice_date": "2025-03-14",
			"vendor": {"name": "Acme"},
			"total": "` + tc.total + `",
			"currency_code": "EUR"
		}`)
		err := ValidateJSONAgainstSchema(schema, payload)
		if tc.ok {
			assert.NoError(t, err, "total=%s", tc.total)
		} else {
			assert.Error(t, err, "total=%s", tc.total)
		}
	}
}
