// runocr runs only the OCR stage for an already ingested file, for
// inspecting extracted text and confidence before the LLM stage.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/elitizon/invoicepipe/gen/ent"
	"github.com/elitizon/invoicepipe/internal/common"
	"github.com/elitizon/invoicepipe/internal/core"
	"github.com/elitizon/invoicepipe/internal/ocr"
	repo "github.com/elitizon/invoicepipe/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <file-id-uuid>")
		os.Exit(2)
	}
	fileID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid file id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	filesRepo := repo.NewInvoiceFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	profilesRepo := repo.NewProfileRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)

	ocrExtractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TessdataDir:   cfg.OCR.TessdataDir,
		TesseractLang: cfg.OCR.TesseractLang,
	}, logger)

	p := core.NewProcessor(logger, ocrExtractor, nil,
		filesRepo, jobsRepo, profilesRepo, invoicesRepo, 0.60)

	start := time.Now()
	jobID, res, err := p.RunOCROnly(ctx, fileID)
	if err != nil {
		logger.Error("ocr stage failed",
			"job_id", jobID, "error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("ocr stage OK",
		"job_id", jobID,
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
		"text_bytes", len(res.Text),
		"warnings", len(res.Warnings),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
