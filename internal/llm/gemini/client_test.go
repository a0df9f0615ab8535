package gemini

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

func generateResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"parts": []map[string]any{{"text": text}},
				"role":  "model",
			}},
		},
	}
}

func testRequest() llm.ExtractRequest {
	return llm.ExtractRequest{
		OCRText:         "INVOICE INV-2002\nCloudhost Inc\nTotal: 99.90 USD",
		DefaultCurrency: "USD",
		PrepConfidence:  0.9,
	}
}

func TestExtractFields_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(generateResponse(`{
			"invoice_number": "INV-2002",
			"invoice_date": "2025-04-01",
			"vendor": {"name": "Cloudhost Inc"},
			"total": "99.90",
			"currency_code": "USD",
			"confidence": 0.88
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	fields, _, err := c.ExtractFields(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "/models/gemini-2.0-flash-exp:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	gc := gotBody["generationConfig"].(map[string]any)
	assert.Equal(t, "application/json", gc["responseMimeType"])
	assert.Contains(t, gotBody, "system_instruction")

	assert.Equal(t, "INV-2002", fields.InvoiceNumber)
	assert.Equal(t, "Cloudhost Inc", fields.Vendor.Name)
	assert.Equal(t, "99.90", fields.Total)
}

func TestExtractFields_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "15")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.ExtractFields(context.Background(), testRequest())
	require.Error(t, err)

	var rl *llm.RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, "gemini", rl.Provider)
	assert.Equal(t, float64(15), rl.RetryAfter.Seconds())
}

func TestExtractFields_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.ExtractFields(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty gemini response")
}

func TestExtractFields_LenientRepair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse(`{
			"bill_number": "B-9",
			"date": "2025-02-10",
			"seller": {"name": "Papershop"},
			"total_amount": 55.5,
			"currency_code": "usd"
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	fields, _, err := c.ExtractFields(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "B-9", fields.InvoiceNumber)
	assert.Equal(t, "Papershop", fields.Vendor.Name)
	assert.Equal(t, "55.50", fields.Total)
	assert.Equal(t, "USD", fields.CurrencyCode)
}
