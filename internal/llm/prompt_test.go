package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserPrompt(t *testing.T) {
	req := ExtractRequest{
		OCRText:         "INVOICE INV-1001\nTotal: 418.00 EUR",
		FilenameHint:    "acme-march.pdf",
		FolderHint:      "2025/suppliers",
		DefaultCurrency: "EUR",
		Profile:         ProfileContext{CompanyName: "Elitizon Ltd"},
	}
	p := BuildUserPrompt(req)

	assert.Contains(t, p, `"Elitizon Ltd"`)
	assert.Contains(t, p, "Default currency when none is shown: EUR.")
	assert.Contains(t, p, "Filename hint: acme-march.pdf")
	assert.Contains(t, p, "Folder hint: 2025/suppliers")
	assert.Contains(t, p, "--- DOCUMENT TEXT ---")
	assert.Contains(t, p, "INVOICE INV-1001")
	assert.True(t, strings.Contains(p, "--- END DOCUMENT TEXT ---"))
}

func TestBuildUserPrompt_EmptyTextMentionsImage(t *testing.T) {
	p := BuildUserPrompt(ExtractRequest{OCRText: "   "})
	assert.Contains(t, p, "rely on the attached image")
	assert.NotContains(t, p, "Filename hint")
	assert.NotContains(t, p, "Default currency")
}

func TestSystemPromptIsStable(t *testing.T) {
	s := SystemPrompt()
	assert.Contains(t, s, "YYYY-MM-DD")
	assert.Contains(t, s, "ISO 4217")
	assert.Contains(t, s, "Return ONLY valid JSON")
}
