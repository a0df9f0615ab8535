package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert invoice and financial document analyzer. Your task is to extract structured data from invoice text with high accuracy.

Extraction rules:
1. Extract all invoice information accurately. Do not guess values that are not in the document.
2. Use YYYY-MM-DD format for all dates.
3. Return monetary amounts as plain decimal strings without currency symbols or thousands separators (e.g. "1234.50").
4. Use the ISO 4217 currency code (e.g. "USD", "EUR"). If no currency is shown, use the default currency provided.
5. Extract every visible line item with its description, quantity, unit price and line total.
6. If a field is not present in the document, omit it entirely. Never invent data.
7. Set "confidence" to your overall confidence in the extraction (0.0 to 1.0).

Return ONLY valid JSON matching the requested structure. No prose, no markdown fences.`

// SystemPrompt returns the shared extraction instructions. Providers append
// their own schema framing to it.
func SystemPrompt() string { return systemPrompt }

// BuildUserPrompt assembles the extraction prompt from OCR text and hints.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder

	b.WriteString("Extract the invoice data from the document below.\n\n")

	if req.Profile.CompanyName != "" {
		fmt.Fprintf(&b, "The documents belong to %q; treat that company as the customer when it appears.\n", req.Profile.CompanyName)
	}
	if req.DefaultCurrency != "" {
		fmt.Fprintf(&b, "Default currency when none is shown: %s.\n", req.DefaultCurrency)
	}
	if req.FilenameHint != "" {
		fmt.Fprintf(&b, "Filename hint: %s\n", req.FilenameHint)
	}
	if req.FolderHint != "" {
		fmt.Fprintf(&b, "Folder hint: %s\n", req.FolderHint)
	}

	b.WriteString("\n--- DOCUMENT TEXT ---\n")
	if strings.TrimSpace(req.OCRText) == "" {
		b.WriteString("(no machine-readable text; rely on the attached image)\n")
	} else {
		b.WriteString(req.OCRText)
		if !strings.HasSuffix(req.OCRText, "\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString("--- END DOCUMENT TEXT ---\n")

	return b.String()
}
