// invoice-extractor is the one-shot CLI: validate, OCR and extract a single
// invoice document into a JSON file, without touching a database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/elitizon/invoicepipe/internal/common"
	"github.com/elitizon/invoicepipe/internal/core"
	"github.com/elitizon/invoicepipe/internal/llm/provider"
	"github.com/elitizon/invoicepipe/internal/ocr"
)

type outputDoc struct {
	core.ProcessingResult
	Metadata metadata `json:"metadata"`
}

type metadata struct {
	InputFile  string `json:"input_file"`
	OutputFile string `json:"output_file"`
	ModelUsed  string `json:"model_used"`
}

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// defaultOutputPath swaps the input's extension for .json, so
// invoice.pdf writes invoice.json next to it.
func defaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
}

func main() {
	var (
		output  string
		pretty  bool
		verbose bool
	)
	flag.StringVar(&output, "o", "", "output JSON path (default INPUT_FILE.json)")
	flag.StringVar(&output, "output", "", "output JSON path (default INPUT_FILE.json)")
	flag.BoolVar(&pretty, "p", false, "pretty-print the output JSON")
	flag.BoolVar(&pretty, "pretty", false, "pretty-print the output JSON")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.BoolVar(&verbose, "verbose", false, "verbose logging")
	flag.Usage = func() {
		printError("usage: invoice-extractor [flags] INPUT_FILE\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	input := flag.Arg(0)
	if output == "" {
		output = defaultOutputPath(input)
	}

	// .env is optional; environment variables win
	_ = godotenv.Load()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	extractor, err := provider.FromConfig(cfg, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	_, providerCfg, _ := cfg.PreferredProvider()

	ocrExtractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TessdataDir:   cfg.OCR.TessdataDir,
		TesseractLang: cfg.OCR.TesseractLang,
	}, logger)

	processor := core.NewStandaloneProcessor(logger, ocrExtractor, extractor, cfg.Files.MaxFileSizeMB, "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result := processor.ProcessPath(ctx, input)
	if !result.Success {
		printError("Extraction failed: %s\n", result.ErrorMessage)
		os.Exit(1)
	}

	doc := outputDoc{
		ProcessingResult: result,
		Metadata: metadata{
			InputFile:  input,
			OutputFile: output,
			ModelUsed:  providerCfg.Model,
		},
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		printError("Error: encode result: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		printError("Error: write %s: %v\n", output, err)
		os.Exit(1)
	}

	fmt.Printf("Extracted %s -> %s (%.1fs, confidence %.2f)\n",
		input, output, result.ProcessingTime, result.ConfidenceScore)
}
