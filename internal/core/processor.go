package core

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/elitizon/invoicepipe/constants"
	"github.com/elitizon/invoicepipe/internal/llm"
	"github.com/elitizon/invoicepipe/internal/ocr"
	"github.com/elitizon/invoicepipe/internal/repository"
	"github.com/elitizon/invoicepipe/internal/validate"
)

// TextExtractor is the OCR behavior the processor depends on.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

// Processor coordinates OCR (text extract) then LLM parse (fields).
type Processor struct {
	logger        *slog.Logger
	ocrExtractor  TextExtractor
	llmExtractor  llm.FieldExtractor
	filesRepo     repository.InvoiceFileRepository
	jobsRepo      repository.ExtractJobRepository
	profilesRepo  repository.ProfileRepository
	invoicesRepo  repository.InvoiceRepository
	minConfidence float32

	// standalone (DB-less) settings
	maxFileSizeMB   int
	defaultCurrency string
}

func NewProcessor(
	logger *slog.Logger,
	ocrExtractor TextExtractor,
	llmExtractor llm.FieldExtractor,
	filesRepo repository.InvoiceFileRepository,
	jobsRepo repository.ExtractJobRepository,
	profilesRepo repository.ProfileRepository,
	invoicesRepo repository.InvoiceRepository,
	minConfidence float32,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if minConfidence == 0 {
		minConfidence = 0.60
	}
	return &Processor{
		logger:          logger,
		ocrExtractor:    ocrExtractor,
		llmExtractor:    llmExtractor,
		filesRepo:       filesRepo,
		jobsRepo:        jobsRepo,
		profilesRepo:    profilesRepo,
		invoicesRepo:    invoicesRepo,
		minConfidence:   minConfidence,
		maxFileSizeMB:   10,
		defaultCurrency: "USD",
	}
}

// NewStandaloneProcessor builds a Processor without storage, for one-shot
// file extraction (ProcessPath).
func NewStandaloneProcessor(
	logger *slog.Logger,
	ocrExtractor TextExtractor,
	llmExtractor llm.FieldExtractor,
	maxFileSizeMB int,
	defaultCurrency string,
) *Processor {
	p := NewProcessor(logger, ocrExtractor, llmExtractor, nil, nil, nil, nil, 0)
	if maxFileSizeMB > 0 {
		p.maxFileSizeMB = maxFileSizeMB
	}
	if defaultCurrency != "" {
		p.defaultCurrency = defaultCurrency
	}
	return p
}

// ProcessFile runs OCR for a fileID (creating/advancing extract_job),
// then runs LLM parse on the resulting job, and upserts the invoice.
// Returns the final jobID (same one started by OCR).
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	jobID, ocrRes, err := p.runOCR(ctx, fileID)
	if err != nil {
		p.logger.Error("processor.ocr.failed", "file_id", fileID, "err", err)
		return jobID, err
	}
	p.logger.Debug("processor ocr success",
		"file_id", fileID,
		"job_id", jobID,
		"method", ocrRes.Method,
		"pages", ocrRes.Pages,
		"confidence", ocrRes.Confidence,
	)

	if _, err := p.runLLMParse(ctx, jobID, ocrRes); err != nil {
		p.logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.logger.Debug("processor parse success", "job_id", jobID)
	return jobID, nil
}

// runOCR starts an extract_job, runs OCR, and persists the OCR text.
func (p *Processor) runOCR(ctx context.Context, fileID uuid.UUID) (uuid.UUID, ocr.ExtractionResult, error) {
	row, err := p.filesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, ocr.ExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, ocr.ExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.jobsRepo.Start(ctx, row.ID, row.ProfileID, format, string(constants.JobStatusRunning))
	if err != nil {
		return uuid.Nil, ocr.ExtractionResult{}, err
	}

	res, err := p.ocrExtractor.Extract(ctx, row.SourcePath)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	if err := p.jobsRepo.FinishOCRSuccess(ctx, job.ID, res.Text, res.Method, res.Confidence); err != nil {
		return job.ID, res, err
	}
	return job.ID, res, nil
}

// RunOCROnly performs OCR extraction only, without LLM parsing.
func (p *Processor) RunOCROnly(ctx context.Context, fileID uuid.UUID) (uuid.UUID, ocr.ExtractionResult, error) {
	return p.runOCR(ctx, fileID)
}

// runLLMParse executes the LLM parse stage for a job that completed OCR,
// upserts the invoice, and records the outcome on the job.
func (p *Processor) runLLMParse(ctx context.Context, jobID uuid.UUID, ocrRes ocr.ExtractionResult) (uuid.UUID, error) {
	job, err := p.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	file, err := p.filesRepo.GetByID(ctx, job.FileID)
	if err != nil {
		return job.ID, fmt.Errorf("load file: %w", err)
	}
	prof, err := p.profilesRepo.GetByID(ctx, file.ProfileID)
	if err != nil {
		return job.ID, fmt.Errorf("load profile: %w", err)
	}

	companyName := ""
	if prof.CompanyName != nil {
		companyName = *prof.CompanyName
	}
	req := llm.ExtractRequest{
		OCRText:         ocrRes.Text,
		FilenameHint:    filepath.Base(file.SourcePath),
		FolderHint:      filepath.Dir(file.SourcePath),
		DefaultCurrency: prof.DefaultCurrency,
		PrepConfidence:  ocrRes.Confidence,
		FilePath:        file.SourcePath,
		Profile: llm.ProfileContext{
			ProfileName: prof.Name,
			CompanyName: companyName,
		},
	}

	p.logger.Debug("parse fields start",
		"job_id", job.ID, "file_id", file.ID, "ocr_bytes", len(ocrRes.Text),
	)

	fields, raw, err := p.llmExtractor.ExtractFields(ctx, req)
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("llm extract: %w", err)
	}

	needsReview := p.needsReview(fields)

	inv, err := p.invoicesRepo.UpsertFromFields(ctx, &repository.CreateInvoiceRequest{
		File:   file,
		JobID:  job.ID,
		Fields: fields,
	})
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("upsert invoice: %w", err)
	}

	if err := p.jobsRepo.FinishLLMSuccess(ctx, job.ID, inv.ID, raw, ocrRes.Method, fields.ModelConfidence, needsReview, map[string]any{
		"ocr_method": ocrRes.Method,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return job.ID, err
	}

	p.logger.Info("parsed fields successfully",
		"job_id", job.ID, "invoice_id", inv.ID,
		"invoice_number", fields.InvoiceNumber,
		"vendor", fields.Vendor.Name,
		"date", fields.InvoiceDate, "total", fields.Total,
		"needs_review", needsReview,
		"confidence", fields.ModelConfidence,
	)
	return job.ID, nil
}

// needsReview flags extractions a human should double-check.
func (p *Processor) needsReview(fields llm.InvoiceFields) bool {
	if fields.InvoiceNumber == "" || fields.InvoiceDate == "" || fields.Total == "" || fields.Vendor.Name == "" {
		return true
	}
	if fields.ModelConfidence > 0 && fields.ModelConfidence < p.minConfidence {
		return true
	}
	return false
}

// ProcessPath runs the full pipeline for one file without touching storage:
// validate, OCR, LLM parse. Used by the one-shot CLI.
func (p *Processor) ProcessPath(ctx context.Context, path string) ProcessingResult {
	start := time.Now()

	fail := func(msg string) ProcessingResult {
		return ProcessingResult{
			Success:        false,
			ErrorMessage:   msg,
			ProcessingTime: time.Since(start).Seconds(),
		}
	}

	if _, err := validate.InvoiceFile(path, p.maxFileSizeMB); err != nil {
		return fail(err.Error())
	}

	ocrRes, err := p.ocrExtractor.Extract(ctx, path)
	if err != nil {
		return fail(fmt.Sprintf("text extraction failed: %v", err))
	}

	fields, _, err := p.llmExtractor.ExtractFields(ctx, llm.ExtractRequest{
		OCRText:         ocrRes.Text,
		FilenameHint:    filepath.Base(path),
		FolderHint:      filepath.Dir(path),
		DefaultCurrency: p.defaultCurrency,
		PrepConfidence:  ocrRes.Confidence,
		FilePath:        path,
	})
	if err != nil {
		return fail(fmt.Sprintf("field extraction failed: %v", err))
	}

	return ProcessingResult{
		Success:         true,
		InvoiceData:     &fields,
		ProcessingTime:  time.Since(start).Seconds(),
		ConfidenceScore: fields.ModelConfidence,
	}
}
