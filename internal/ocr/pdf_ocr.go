package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// pdfToText pulls the embedded text layer via pdftotext. Digital PDFs
// resolve here without any rasterization.
func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// pdftotext separates pages with form feeds.
	return text, 1 + strings.Count(text, "\f"), nil, nil
}

// pdfToOCR rasterizes the PDF with pdftoppm and runs tesseract on each
// page image. Used when the text layer is missing or too thin.
func (e *Extractor) pdfToOCR(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "ip-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("ocr.tmpdir.remove_fail", "path", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", strconv.Itoa(e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}

	// pdftoppm names output prefix-1.png, prefix-2.png, ...
	images, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(images)
	if len(images) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}
	if e.cfg.MaxPages > 0 && len(images) > e.cfg.MaxPages {
		images = images[:e.cfg.MaxPages]
	}

	var sb strings.Builder
	var warns []string
	for _, img := range images {
		pageText, w, ocrErr := e.tesseractOCR(ctx, img)
		if ocrErr != nil {
			warns = append(warns, ocrErr.Error())
			continue
		}
		warns = append(warns, w...)
		if sb.Len() > 0 {
			sb.WriteString("\n\f\n") // keep the page break visible downstream
		}
		sb.WriteString(pageText)
	}
	return sb.String(), len(images), warns, nil
}
