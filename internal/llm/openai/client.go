package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elitizon/invoicepipe/internal/llm"
)

const providerName = "openai"

// ExtractFields implements llm.FieldExtractor over chat/completions.
// When the source is a low-confidence image, the image rides along as a
// data-URL content block so the model can read it directly.
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
	user := llm.BuildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."

	var userContent any = user
	if attach, dataURL, mimeType := llm.ShouldAttachImage(req); attach {
		c.logger.Info("llm.extract.attach_image", "req_id", rid, "mime_type", mimeType)
		userContent = []map[string]any{
			{"type": "text", "text": user},
			{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
		}
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPromptWithSchema(schema)},
			{"role": "user", "content": userContent},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, httpErr := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
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

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)

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

func systemPromptWithSchema(schema map[string]any) string {
	return llm.SystemPrompt() + "\n\nJSON Schema:\n" + mustJSON(schema)
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
