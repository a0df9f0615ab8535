package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/elitizon/invoicepipe/constants"
)

// extractImage OCRs a single image file. Confidence blends the
// tesseract word confidences (when TSV mode is on) with a content
// heuristic, weighted toward the OCR signal.
func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	txt, warnings, err := e.tesseractOCR(ctx, path)
	if err != nil {
		return ExtractionResult{SourceType: constants.IMAGE, Warnings: warnings}, err
	}
	txt = Normalize(txt)

	var tsvConf float32
	if e.cfg.EnableTSVConfidence {
		conf, w, tsvErr := e.tesseractTSVConfidence(ctx, path)
		if tsvErr != nil {
			warnings = append(warnings, tsvErr.Error())
		} else {
			tsvConf = conf
			warnings = append(warnings, w...)
		}
	}

	conf := heuristicConfidence(txt)
	if tsvConf > 0 {
		conf = 0.7*tsvConf + 0.3*conf
	}
	if conf > 1.0 {
		conf = 1.0
	}

	return ExtractionResult{
		Text:       txt,
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warnings,
		Confidence: conf,
	}, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	// strip box-drawing noise tesseract emits around table borders
	return reBoxNoise.ReplaceAllString(string(out), ""), nil, nil
}

// tesseractTSVConfidence reruns tesseract in TSV mode and averages the
// per-word confidence column, scaled to 0..1. Rows with conf -1 are
// layout markers, not words.
func (e *Extractor) tesseractTSVConfidence(ctx context.Context, path string) (float32, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}

	var sum float64
	var words int
	for i, line := range strings.Split(string(out), "\n") {
		if i == 0 || line == "" {
			continue
		}
		// columns: level page block par line word left top width height conf text
		cols := strings.Split(line, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[10]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, parseErr := strconv.ParseFloat(confStr, 64); parseErr == nil {
			sum += v
			words++
		}
	}
	if words == 0 {
		return 0, nil, nil
	}
	return float32(sum / float64(words) / 100.0), nil, nil
}
