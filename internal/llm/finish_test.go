package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripJSONFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(StripJSONFences([]byte("```json\n{\"a\":1}\n```"))))
	assert.Equal(t, `{"a":1}`, string(StripJSONFences([]byte("```\n{\"a\":1}\n```"))))
	assert.Equal(t, `{"a":1}`, string(StripJSONFences([]byte(`{"a":1}`))))
	assert.Equal(t, `{"a":1}`, string(StripJSONFences([]byte("  {\"a\":1}  "))))
}

func TestFinishExtraction_Strict(t *testing.T) {
	schema := BuildInvoiceJSONSchema()

	fields, raw, err := FinishExtraction(schema, validPayload(), false, nil)
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", fields.InvoiceNumber)
	assert.Equal(t, "Acme Supplies GmbH", fields.Vendor.Name)
	assert.Equal(t, "418.00", fields.Total)
	assert.Equal(t, float32(0.92), fields.ModelConfidence)
	assert.NotEmpty(t, raw)
}

func TestFinishExtraction_StrictRejectsDirty(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	dirty := []byte(`{
		"invoice_no": "INV-7",
		"date": "2025-06-01",
		"vendor": {"name": "Acme"},
		"total": "$418.00",
		"currency_code": "eur"
	}`)

	_, _, err := FinishExtraction(schema, dirty, false, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestFinishExtraction_LenientRepairsDirty(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	dirty := []byte("```json\n" + `{
		"invoice_no": "INV-7",
		"date": "2025-06-01",
		"vendor": {"name": "Acme"},
		"total": "$418.00",
		"currency_code": "eur",
		"made_up": true
	}` + "\n```")

	fields, raw, err := FinishExtraction(schema, dirty, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "INV-7", fields.InvoiceNumber)
	assert.Equal(t, "2025-06-01", fields.InvoiceDate)
	assert.Equal(t, "418.00", fields.Total)
	assert.Equal(t, "EUR", fields.CurrencyCode)
	require.NoError(t, ValidateJSONAgainstSchema(schema, raw))
}

func TestFinishExtraction_LenientCannotRepairMissingRequired(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	hopeless := []byte(`{"notes": "no invoice data here"}`)

	_, _, err := FinishExtraction(schema, hopeless, true, nil)
	require.Error(t, err)
}
