package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/elitizon/invoicepipe/constants"
	"github.com/elitizon/invoicepipe/gen/ent"
	entjob "github.com/elitizon/invoicepipe/gen/ent/extractjob"
	"github.com/elitizon/invoicepipe/internal/entity"
	"github.com/elitizon/invoicepipe/internal/utils"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID, profileID uuid.UUID, format, status string) (*entity.ExtractJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractJob, error)
	LatestForFile(ctx context.Context, fileID uuid.UUID) (*entity.ExtractJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, method string, confidence float32) error
	FinishLLMSuccess(ctx context.Context, jobID, invoiceID uuid.UUID, rawFields []byte, modelName string, confidence float32, needsReview bool, modelParams map[string]any) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID, profileID uuid.UUID, format, status string) (*entity.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetProfileID(profileID).
		SetFormat(format).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return utils.ToExtractJob(job), nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractJob, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return utils.ToExtractJob(job), nil
}

func (r *extractJobRepo) LatestForFile(ctx context.Context, fileID uuid.UUID) (*entity.ExtractJob, error) {
	job, err := r.ent.ExtractJob.Query().
		Where(entjob.FileID(fileID)).
		Order(entjob.ByStartedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToExtractJob(job), nil
}

func (r *extractJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark running failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *extractJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, method string, confidence float32) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetModelName(method).
		SetExtractionConfidence(confidence).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished ocr", "job_id", jobID, "method", method, "confidence", confidence)
	return nil
}

func (r *extractJobRepo) FinishLLMSuccess(ctx context.Context, jobID, invoiceID uuid.UUID, rawFields []byte, modelName string, confidence float32, needsReview bool, modelParams map[string]any) error {
	var params []byte
	if modelParams != nil {
		if b, err := json.Marshal(modelParams); err == nil {
			params = b
		}
	}
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetInvoiceID(invoiceID).
		SetExtractedFields(rawFields).
		SetModelName(modelName).
		SetModelParams(params).
		SetExtractionConfidence(confidence).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusLLMOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(LLM_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished", "job_id", jobID, "invoice_id", invoiceID, "model", modelName, "needs_review", needsReview)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job failed", "job_id", jobID, "error", message)
	return nil
}
