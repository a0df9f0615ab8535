package constants

import "strings"

// Coarse file formats stored on extract_job rows.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{PDF, IMAGE}

// AllowedExtensions holds the allowed file extensions for invoice ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// ImageConfidenceThreshold is the OCR confidence below which the source image
// is attached to the LLM request instead of relying on OCR text alone.
const ImageConfidenceThreshold = 0.6

// MaxVisionMBDefault caps the size of files attached to vision requests.
const MaxVisionMBDefault = 20

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its coarse format, or "" if unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return IMAGE
	default:
		return ""
	}
}
