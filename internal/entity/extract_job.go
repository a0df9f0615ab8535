package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob is the pipeline record for one extraction attempt, from
// OCR through LLM field extraction. One file can accumulate several
// jobs when reprocessed.
type ExtractJob struct {
	ID        uuid.UUID  `json:"id"`
	FileID    uuid.UUID  `json:"file_id"`
	ProfileID uuid.UUID  `json:"profile_id"`
	InvoiceID *uuid.UUID `json:"invoice_id,omitempty"`

	Format     string     `json:"format"`
	Status     *string    `json:"status,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	ErrorMessage         *string  `json:"error_message,omitempty"`
	ExtractionConfidence *float32 `json:"extraction_confidence,omitempty"`
	NeedsReview          bool     `json:"needs_review"`

	OCRText         *string         `json:"ocr_text,omitempty"`
	ExtractedFields json.RawMessage `json:"extracted_fields,omitempty"`
	ModelName       *string         `json:"model_name,omitempty"`
	ModelParams     json.RawMessage `json:"model_params,omitempty"`
}
