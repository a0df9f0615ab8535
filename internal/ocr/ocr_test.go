package ocr

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitizon/invoicepipe/constants"
)

const invoiceText = `INVOICE INV-1001

Acme Supplies GmbH
Date: 2025-03-14

Widgets          10 x 35.00       350.00
VAT 19%                            68.00
Total                             418.00 EUR
`

// stubRunner dispatches by binary name. pdftoppm calls render fake page
// images so the glob in pdfToOCR finds something.
type stubRunner struct {
	pdftotextOut string
	pdftotextErr error
	tesseractOut string
	tesseractErr error
	tsvOut       string
	pageCount    int

	calls []string
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name+" "+strings.Join(args, " "))
	switch name {
	case "pdftotext":
		return []byte(s.pdftotextOut), nil, s.pdftotextErr
	case "pdftoppm":
		prefix := args[len(args)-1]
		for i := 1; i <= s.pageCount; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		if args[len(args)-1] == "tsv" {
			return []byte(s.tsvOut), nil, nil
		}
		return []byte(s.tesseractOut), nil, s.tesseractErr
	}
	return nil, nil, fmt.Errorf("unexpected command: %s", name)
}

func TestExtract_PDFTextLayer(t *testing.T) {
	r := &stubRunner{pdftotextOut: invoiceText + "\f second page"}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res, err := e.Extract(context.Background(), "/tmp/invoice.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, constants.PDF, res.SourceType)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, float32(0.95), res.Confidence)
	assert.Contains(t, res.Text, "INV-1001")
	require.Len(t, r.calls, 1)
	assert.Contains(t, r.calls[0], "pdftotext -layout")
}

func TestExtract_ScannedPDFFallsBackToOCR(t *testing.T) {
	r := &stubRunner{
		pdftotextOut: "  \n ", // no usable text layer
		pageCount:    2,
		tesseractOut: invoiceText,
	}
	e := NewExtractorWithRunner(Config{DPI: 150}, r, nil)

	res, err := e.Extract(context.Background(), "/tmp/scan.pdf")
	require.NoError(t, err)

	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "INV-1001")
	assert.NotEmpty(t, res.Warnings)
	assert.Greater(t, res.Confidence, float32(0.5))

	var sawPpm bool
	for _, c := range r.calls {
		if strings.HasPrefix(c, "pdftoppm -r 150 -png") {
			sawPpm = true
		}
	}
	assert.True(t, sawPpm)
}

func TestExtract_PDFBothStrategiesFail(t *testing.T) {
	r := &stubRunner{
		pdftotextErr: fmt.Errorf("exit status 1"),
		pageCount:    0, // pdftoppm renders nothing
	}
	e := NewExtractorWithRunner(Config{}, r, nil)

	_, err := e.Extract(context.Background(), "/tmp/broken.pdf")
	require.Error(t, err)
}

func TestExtract_Image(t *testing.T) {
	r := &stubRunner{tesseractOut: invoiceText}
	e := NewExtractorWithRunner(Config{}, r, nil)

	res, err := e.Extract(context.Background(), "/tmp/invoice.png")
	require.NoError(t, err)

	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, constants.IMAGE, res.SourceType)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "Acme Supplies GmbH")
}

func TestExtract_ImageWithTSVConfidence(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		"5\t1\t1\t1\t1\t1\t10\t10\t50\t12\t90\tINVOICE",
		"5\t1\t1\t1\t1\t2\t70\t10\t60\t12\t80\tINV-1001",
		"5\t1\t1\t1\t1\t3\t70\t10\t60\t12\t-1\t", // no conf for this row
	}, "\n")
	r := &stubRunner{tesseractOut: invoiceText, tsvOut: tsv}
	e := NewExtractorWithRunner(Config{EnableTSVConfidence: true}, r, nil)

	res, err := e.Extract(context.Background(), "/tmp/invoice.jpg")
	require.NoError(t, err)

	// mean TSV conf is 0.85, blended with the heuristic on the
	// normalized text (normalization collapses the column padding)
	heur := float64(heuristicConfidence(Normalize(invoiceText)))
	assert.InDelta(t, 0.7*0.85+0.3*heur, float64(res.Confidence), 0.005)
	assert.InDelta(t, 0.835, float64(res.Confidence), 0.005)
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := NewExtractorWithRunner(Config{}, &stubRunner{}, nil)
	_, err := e.Extract(context.Background(), "/tmp/invoice.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestNormalize(t *testing.T) {
	in := "a\r\nb\t\tc  d\n\n\n\n\ne   \n"
	out := Normalize(in)
	assert.Equal(t, "a\nb c d\n\ne", out)
}

func TestHeuristicConfidence(t *testing.T) {
	assert.Equal(t, float32(0.2), heuristicConfidence("nothing useful"))

	full := heuristicConfidence(invoiceText)
	assert.InDelta(t, 0.9, float64(full), 0.001)

	partial := heuristicConfidence("Total: 418.00")
	assert.InDelta(t, 0.35, float64(partial), 0.001)
}
