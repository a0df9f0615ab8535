package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitizon/invoicepipe/internal/llm"
)

func messageResponse(text string) map[string]any {
	return map[string]any{
		"id":   "msg_test_001",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"model":       "claude-3-5-sonnet-20241022",
		"stop_reason": "end_turn",
		"usage": map[string]any{
			"input_tokens":  120,
			"output_tokens": 40,
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
	var gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		assert.Contains(t, r.URL.Path, "/messages")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse(`{
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
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "claude-3-5-sonnet-20241022", gotBody["model"])
	system := gotBody["system"].([]any)
	require.NotEmpty(t, system)

	assert.Equal(t, "INV-1001", fields.InvoiceNumber)
	assert.Equal(t, "418.00", fields.Total)
	assert.Equal(t, "EUR", fields.CurrencyCode)
	assert.Equal(t, float32(0.92), fields.ModelConfidence)
	assert.NotEmpty(t, raw)
}

func TestExtractFields_LenientRepair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse("```json\n" + `{
			"invoice_no": "INV-7",
			"date": "2025-06-01",
			"seller": {"name": "Acme"},
			"total_amount": "$418.00",
			"currency_code": "eur"
		}` + "\n```"))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	fields, _, err := c.ExtractFields(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "INV-7", fields.InvoiceNumber)
	assert.Equal(t, "Acme", fields.Vendor.Name)
	assert.Equal(t, "418.00", fields.Total)
	assert.Equal(t, "EUR", fields.CurrencyCode)
}

func TestExtractFields_StrictRejectsDirtyOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse(`{"invoice_no": "INV-7"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, StrictValidation: true}, nil)

	_, _, err := c.ExtractFields(context.Background(), testRequest())
	require.Error(t, err)
}

func TestExtractFields_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "1")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "rate_limit_error",
				"message": "rate limited",
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.ExtractFields(context.Background(), testRequest())
	require.Error(t, err)

	var rle *llm.RateLimitError
	require.True(t, errors.As(err, &rle))
	assert.Equal(t, "anthropic", rle.Provider)
	assert.Equal(t, time.Second, rle.RetryAfter)
}

func TestExtractFields_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(messageResponse(""))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)

	_, _, err := c.ExtractFields(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty anthropic response")
}
