package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitizon/invoicepipe/internal/llm"
)

func chatCompletion(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func testRequest() llm.ExtractRequest {
	return llm.ExtractRequest{
		OCRText:         "INVOICE INV-1001\nAcme Supplies GmbH\nTotal: 418.00 EUR",
		DefaultCurrency: "EUR",
		PrepConfidence:  0.9,
	}
}

func TestExtractFields_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(chatCompletion(`{
			"invoice_number": "INV-1001",
			"invoice_date": "2025-03-14",
			"vendor": {"name": "Acme Supplies GmbH"},
			"total": "418.00",
			"currency_code": "EUR",
			"confidence": 0.92
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	fields, raw, err := c.ExtractFields(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o", gotBody["model"])
	rf := gotBody["response_format"].(map[string]any)
	assert.Equal(t, "json_object", rf["type"])

	assert.Equal(t, "INV-1001", fields.InvoiceNumber)
	assert.Equal(t, "418.00", fields.Total)
	assert.Equal(t, float32(0.92), fields.ModelConfidence)
	assert.NotEmpty(t, raw)
}

func TestExtractFields_LenientRepair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatCompletion("```json\n" + `{
			"invoice_no": "INV-7",
			"date": "2025-06-01",
			"vendor": {"name": "Acme"},
			"total": "$418.00",
			"currency_code": "eur"
		}` + "\n```"))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	fields, _, err := c.ExtractFields(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "INV-7", fields.InvoiceNumber)
	assert.Equal(t, "418.00", fields.Total)
	assert.Equal(t, "EUR", fields.CurrencyCode)
}

func TestExtractFields_StrictRejectsDirtyOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"invoice_no": "INV-7"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, StrictValidation: true}, nil)

	_, _, err := c.ExtractFields(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestExtractFields_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.ExtractFields(context.Background(), testRequest())
	require.Error(t, err)

	var rl *llm.RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, "openai", rl.Provider)
	assert.Equal(t, float64(30), rl.RetryAfter.Seconds())
}

func TestExtractFields_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.ExtractFields(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
