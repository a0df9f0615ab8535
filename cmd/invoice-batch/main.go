// invoice-batch ingests a directory of invoices, extracts every file and
// writes an XLSX summary. With -inmem it runs fully self-contained on an
// in-memory SQLite database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/elitizon/invoicepipe/gen/ent"
	"github.com/elitizon/invoicepipe/internal/common"
	"github.com/elitizon/invoicepipe/internal/core"
	"github.com/elitizon/invoicepipe/internal/export"
	"github.com/elitizon/invoicepipe/internal/ingest"
	"github.com/elitizon/invoicepipe/internal/llm/provider"
	"github.com/elitizon/invoicepipe/internal/ocr"
	repo "github.com/elitizon/invoicepipe/internal/repository"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite database")
		dir     = flag.String("dir", "", "directory to process invoices from (required)")
		out     = flag.String("out", "", "output XLSX path (defaults to <dir>/../invoices.xlsx)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: -dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid -from date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid -to date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, cleanup, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	profilesRepo := repo.NewProfileRepository(entc, logger)
	filesRepo := repo.NewInvoiceFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)

	profile, err := profilesRepo.GetOrCreateByName(ctx, "Local Batch", "USD")
	if err != nil {
		logger.Error("failed to get or create profile", "error", err)
		os.Exit(1)
	}
	logger.Info("using profile", "id", profile.ID, "name", profile.Name)

	ocrExtractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TessdataDir:   cfg.OCR.TessdataDir,
		TesseractLang: cfg.OCR.TesseractLang,
	}, logger)

	llmExtractor, err := provider.FromConfig(cfg, logger)
	if err != nil {
		logger.Error("no usable LLM provider", "error", err)
		os.Exit(1)
	}

	processor := core.NewProcessor(logger, ocrExtractor, llmExtractor,
		filesRepo, jobsRepo, profilesRepo, invoicesRepo, 0.60)

	ingestor := ingest.NewFSIngestor(profilesRepo, filesRepo, logger)

	logger.Info("starting ingestion", "dir", *dir, "profile", profile.ID)
	results, stats, err := ingestor.IngestDirectory(ctx, profile.ID, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		fileID, err := uuid.Parse(r.FileID)
		if err != nil {
			logger.Error("failed to parse file ID", "file_id", r.FileID, "error", err)
			continue
		}
		ingested = append(ingested, fileID)
	}
	logger.Info("ingestion complete",
		"files_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)

	processed := 0
	failures := 0
	for _, fileID := range ingested {
		logger.Info("processing file", "file_id", fileID)
		if _, err := processor.ProcessFile(ctx, fileID); err != nil {
			logger.Error("failed to process file", "file_id", fileID, "error", err)
			failures++
			continue
		}
		processed++
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(invoicesRepo, filesRepo, logger)
	xlsxBytes, err := exportService.ExportInvoicesXLSX(ctx, profile.ID, from, to)
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files ingested: %d\n", len(ingested))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}

// openDatabase returns an ent client backed by either in-memory SQLite or
// the configured Postgres DSN.
func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		entc, err := repo.OpenSQLite(ctx, "", logger)
		if err != nil {
			return nil, nil, err
		}
		return entc, func() {
			if err := entc.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		}, nil
	}

	if cfg.Database.DSN == "" {
		return nil, nil, fmt.Errorf("DB_URL env var is required (or pass -inmem)")
	}
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return entc, func() { repo.Close(entc, pool, logger) }, nil
}
