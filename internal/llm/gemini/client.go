package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elitizon/invoicepipe/internal/llm"
)

const providerName = "gemini"

// Config for the Gemini client.
type Config struct {
	APIKey      string        // if empty, falls back to env GEMINI_API_KEY
	BaseURL     string        // default https://generativelanguage.googleapis.com/v1beta
	Model       string        // e.g., "gemini-2.0-flash-exp"
	Temperature float32       // 0..2
	Timeout     time.Duration // http client timeout
	// StrictValidation disables the lenient sanitize pass on schema failures.
	StrictValidation bool
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash-exp"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// ExtractFields implements llm.FieldExtractor over the generateContent API.
// responseMimeType forces JSON-only output; low-confidence images are sent
// as inline_data parts alongside the prompt text.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.InvoiceFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"provider", providerName,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.OCRText),
		"has_file_path", req.FilePath != "",
		"prep_confidence", req.PrepConfidence,
		"default_currency", req.DefaultCurrency,
	)

	schema := llm.BuildInvoiceJSONSchema()
	user := llm.BuildUserPrompt(req) + "\n\nReturn ONLY JSON that matches this schema:\n" + mustJSON(schema)

	parts := []map[string]any{{"text": user}}
	if attach, dataURL, mimeType := llm.ShouldAttachImage(req); attach {
		if b64, ok := llm.SplitDataURL(dataURL); ok {
			c.logger.Info("llm.extract.attach_image", "req_id", rid, "mime_type", mimeType)
			parts = append(parts, map[string]any{
				"inline_data": map[string]any{"mime_type": mimeType, "data": b64},
			})
		}
	}

	body := map[string]any{
		"system_instruction": map[string]any{
			"parts": []map[string]any{{"text": llm.SystemPrompt()}},
		},
		"contents": []map[string]any{
			{"role": "user", "parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":      c.cfg.Temperature,
			"responseMimeType": "application/json",
		},
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model, c.cfg.APIKey)
	raw, _, httpErr := llm.SendJSON(ctx, c.http, endpoint, body, nil, c.logger)
	if httpErr != nil {
		var rl *llm.RateLimitError
		if errors.As(httpErr, &rl) {
			rl.Provider = providerName
		}
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, nil, httpErr
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, raw, fmt.Errorf("decode gemini response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		c.logger.Error("llm.extract.no_candidates",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, raw, fmt.Errorf("empty gemini response")
	}
	content := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)

	fields, rawContent, err := llm.FinishExtraction(schema, []byte(content), !c.cfg.StrictValidation, c.logger)
	if err != nil {
		c.logger.Error("llm.extract.invalid_output",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, rawContent, err
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"invoice_number", fields.InvoiceNumber,
		"date", fields.InvoiceDate,
		"vendor", fields.Vendor.Name,
		"total", fields.Total,
		"currency", fields.CurrencyCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, rawContent, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
