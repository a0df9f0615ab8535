package llm

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/elitizon/invoicepipe/constants"
)

// ShouldAttachImage decides whether the source image should ride along with the
// OCR text. We only attach when the file is an image and the OCR confidence is
// too low to trust the text alone.
func ShouldAttachImage(req ExtractRequest) (attach bool, dataURL, mimeType string) {
	attach = req.FilePath != "" &&
		constants.MapExtToFormat(filepath.Ext(req.FilePath)) == constants.IMAGE &&
		req.PrepConfidence < constants.ImageConfidenceThreshold

	if !attach {
		return false, "", ""
	}

	// size gate
	if st, err := os.Stat(req.FilePath); err == nil {
		if st.Size() > int64(constants.MaxVisionMBDefault)*1024*1024 {
			return false, "", ""
		}
	}

	u, mt, err := readAsDataURL(req.FilePath)
	if err != nil {
		return false, "", ""
	}
	return true, u, mt
}

func readAsDataURL(path string) (string, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		// fallbacks
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	data := base64.StdEncoding.EncodeToString(b)
	return "data:" + mt + ";base64," + data, mt, nil
}

// SplitDataURL separates a data URL into its base64 payload, for providers
// that want raw base64 instead of a URL (Gemini inline_data, Anthropic blocks).
func SplitDataURL(dataURL string) (b64 string, ok bool) {
	i := strings.Index(dataURL, ";base64,")
	if i < 0 {
		return "", false
	}
	return dataURL[i+len(";base64,"):], true
}
