package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// FinishExtraction validates the model output against the schema, optionally
// applying the lenient sanitize pass, and unmarshals into InvoiceFields.
// Every provider funnels its raw content through here so the validation
// behavior stays identical across OpenAI, Gemini and Anthropic.
func FinishExtraction(schema map[string]any, content []byte, lenient bool, logger *slog.Logger) (InvoiceFields, []byte, error) {
	if logger == nil {
		logger = slog.Default()
	}

	raw := StripJSONFences(content)

	if err := ValidateJSONAgainstSchema(schema, raw); err != nil {
		if !lenient {
			return InvoiceFields{}, raw, fmt.Errorf("schema validation failed: %w", err)
		}
		cleaned, dropped, sErr := NormalizeAndSanitizeJSON(raw, logger)
		if sErr != nil {
			return InvoiceFields{}, raw, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			return InvoiceFields{}, raw, fmt.Errorf("schema validation failed: %w", vErr)
		}
		logger.Warn("llm.extract.lenient_sanitize_applied", "dropped", strings.Join(dropped, ","))
		raw = cleaned
	}

	var out InvoiceFields
	if err := json.Unmarshal(raw, &out); err != nil {
		return InvoiceFields{}, raw, fmt.Errorf("unmarshal fields: %w", err)
	}
	return out, raw, nil
}

// StripJSONFences removes markdown code fences some models wrap around JSON.
func StripJSONFences(b []byte) []byte {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	return []byte(s)
}
