package core

import "github.com/elitizon/invoicepipe/internal/llm"

// ProcessingResult is the outcome of a single standalone extraction.
type ProcessingResult struct {
	Success         bool               `json:"success"`
	InvoiceData     *llm.InvoiceFields `json:"invoice_data,omitempty"`
	ErrorMessage    string             `json:"error_message,omitempty"`
	ProcessingTime  float64            `json:"processing_time"` // seconds
	ConfidenceScore float32            `json:"confidence_score"`
}
