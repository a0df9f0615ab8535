// Package validate checks candidate invoice files before they enter the pipeline.
package validate

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// supportedMIMETypes maps detected MIME types to our canonical extensions.
var supportedMIMETypes = map[string]string{
	"application/pdf": "pdf",
	"image/png":       "png",
	"image/jpeg":      "jpg",
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

// FileSize validates the file against a size limit in megabytes.
func FileSize(path string, maxMB int) error {
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	max := int64(maxMB) * 1024 * 1024
	if st.Size() > max {
		return fmt.Errorf("file size (%.1fMB) exceeds limit (%dMB)",
			float64(st.Size())/1024/1024, maxMB)
	}
	return nil
}

// FileFormat sniffs the file's magic numbers and returns the canonical
// extension ("pdf", "png", "jpg"). The on-disk extension is not trusted.
func FileFormat(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("error detecting file type: %w", err)
	}
	format, ok := supportedMIMETypes[mt.String()]
	if !ok {
		return "", fmt.Errorf("unsupported file type: %s", mt.String())
	}
	return format, nil
}

// InvoiceFile runs the full pre-flight check and returns the detected format.
func InvoiceFile(path string, maxMB int) (string, error) {
	if !FileExists(path) {
		return "", fmt.Errorf("file not found: %s", path)
	}
	if err := FileSize(path, maxMB); err != nil {
		return "", err
	}
	return FileFormat(path)
}
