// Package utils holds small conversion helpers shared across layers.
package utils

import (
	"time"

	"github.com/elitizon/invoicepipe/gen/ent"
	"github.com/elitizon/invoicepipe/internal/entity"
)

// ParseYMD parses a YYYY-MM-DD date string.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// ToProfile converts an ent row into the transport-friendly entity.
func ToProfile(p *ent.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		ID:              p.ID,
		Name:            p.Name,
		CompanyName:     p.CompanyName,
		DefaultCurrency: p.DefaultCurrency,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ToInvoiceFile(f *ent.InvoiceFile) *entity.InvoiceFile {
	if f == nil {
		return nil
	}
	return &entity.InvoiceFile{
		ID:          f.ID,
		ProfileID:   f.ProfileID,
		SourcePath:  f.SourcePath,
		ContentHash: f.ContentHash,
		Filename:    f.Filename,
		FileExt:     f.FileExt,
		FileSize:    f.FileSize,
		UploadedAt:  f.UploadedAt,
	}
}

func ToExtractJob(j *ent.ExtractJob) *entity.ExtractJob {
	if j == nil {
		return nil
	}
	return &entity.ExtractJob{
		ID:                   j.ID,
		FileID:               j.FileID,
		ProfileID:            j.ProfileID,
		InvoiceID:            j.InvoiceID,
		Format:               j.Format,
		StartedAt:            j.StartedAt,
		FinishedAt:           j.FinishedAt,
		Status:               j.Status,
		ErrorMessage:         j.ErrorMessage,
		ExtractionConfidence: j.ExtractionConfidence,
		NeedsReview:          j.NeedsReview,
		OCRText:              j.OcrText,
		ExtractedFields:      j.ExtractedFields,
		ModelName:            j.ModelName,
		ModelParams:          j.ModelParams,
	}
}

func ToInvoice(in *ent.Invoice) *entity.Invoice {
	if in == nil {
		return nil
	}
	return &entity.Invoice{
		ID:            in.ID,
		ProfileID:     in.ProfileID,
		FileID:        in.FileID,
		InvoiceNumber: in.InvoiceNumber,
		InvoiceDate:   in.InvoiceDate,
		DueDate:       in.DueDate,
		VendorName:    in.VendorName,
		VendorTaxID:   in.VendorTaxID,
		VendorAddress: in.VendorAddress,
		CustomerName:  in.CustomerName,
		Subtotal:      in.Subtotal,
		Tax:           in.Tax,
		Total:         in.Total,
		CurrencyCode:  in.CurrencyCode,
		PaymentTerms:  in.PaymentTerms,
		Notes:         in.Notes,
		CreatedAt:     in.CreatedAt,
		UpdatedAt:     in.UpdatedAt,
	}
}

func ToLineItem(li *ent.LineItem) *entity.LineItem {
	if li == nil {
		return nil
	}
	return &entity.LineItem{
		ID:          li.ID,
		InvoiceID:   li.InvoiceID,
		Position:    li.Position,
		Description: li.Description,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
		Total:       li.Total,
		TaxRate:     li.TaxRate,
	}
}
