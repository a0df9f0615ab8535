package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal file contents that satisfy magic-number sniffing
var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")
	pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	jpgBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, make([]byte, 64)...)
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFileFormat_PDF(t *testing.T) {
	path := writeTemp(t, "doc.pdf", pdfBytes)
	format, err := FileFormat(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf", format)
}

func TestFileFormat_PNG(t *testing.T) {
	path := writeTemp(t, "scan.png", pngBytes)
	format, err := FileFormat(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestFileFormat_JPEG(t *testing.T) {
	path := writeTemp(t, "photo.jpg", jpgBytes)
	format, err := FileFormat(path)
	require.NoError(t, err)
	assert.Equal(t, "jpg", format)
}

func TestFileFormat_IgnoresExtension(t *testing.T) {
	// a PDF renamed to .png should still sniff as pdf
	path := writeTemp(t, "sneaky.png", pdfBytes)
	format, err := FileFormat(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf", format)
}

func TestFileFormat_Unsupported(t *testing.T) {
	path := writeTemp(t, "notes.txt", []byte("just some text, no magic here"))
	_, err := FileFormat(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestFileSize_WithinLimit(t *testing.T) {
	path := writeTemp(t, "small.pdf", pdfBytes)
	assert.NoError(t, FileSize(path, 1))
}

func TestFileSize_OverLimit(t *testing.T) {
	big := bytes.Repeat([]byte{0x00}, 2*1024*1024)
	path := writeTemp(t, "big.bin", big)
	err := FileSize(path, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit (1MB)")
}

func TestInvoiceFile_NotFound(t *testing.T) {
	_, err := InvoiceFile(filepath.Join(t.TempDir(), "missing.pdf"), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestInvoiceFile_OK(t *testing.T) {
	path := writeTemp(t, "invoice.pdf", pdfBytes)
	format, err := InvoiceFile(path, 10)
	require.NoError(t, err)
	assert.Equal(t, "pdf", format)
}
