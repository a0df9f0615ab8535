package utils

import (
	"strconv"
	"time"

	v1 "github.com/elitizon/invoicepipe/gen/proto/invoicepipe/v1"
	"github.com/elitizon/invoicepipe/internal/entity"
)

// ToPBProfile converts an entity profile into its wire representation.
func ToPBProfile(p *entity.Profile) *v1.Profile {
	out := &v1.Profile{
		Id:              p.ID.String(),
		Name:            p.Name,
		DefaultCurrency: p.DefaultCurrency,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339Nano),
	}
	if p.CompanyName != nil {
		out.CompanyName = *p.CompanyName
	}
	return out
}

// ToPBInvoice converts an entity invoice into its wire representation.
// Line items are attached by the caller when requested.
func ToPBInvoice(inv *entity.Invoice) *v1.Invoice {
	out := &v1.Invoice{
		Id:            inv.ID.String(),
		ProfileId:     inv.ProfileID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		VendorName:    inv.VendorName,
		Total:         formatDecimal(inv.Total),
		CurrencyCode:  inv.CurrencyCode,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:     inv.UpdatedAt.Format(time.RFC3339Nano),
	}
	if inv.FileID != nil {
		out.FileId = inv.FileID.String()
	}
	if inv.DueDate != nil {
		out.DueDate = inv.DueDate.Format("2006-01-02")
	}
	if inv.CustomerName != nil {
		out.CustomerName = *inv.CustomerName
	}
	if inv.Subtotal != nil {
		out.Subtotal = formatDecimal(*inv.Subtotal)
	}
	if inv.Tax != nil {
		out.Tax = formatDecimal(*inv.Tax)
	}
	if inv.PaymentTerms != nil {
		out.PaymentTerms = *inv.PaymentTerms
	}
	if inv.Notes != nil {
		out.Notes = *inv.Notes
	}
	return out
}

// ToPBLineItem converts an entity line item into its wire representation.
func ToPBLineItem(li *entity.LineItem) *v1.LineItem {
	out := &v1.LineItem{Description: li.Description}
	if li.Quantity != nil {
		out.Quantity = strconv.FormatFloat(*li.Quantity, 'f', -1, 64)
	}
	if li.UnitPrice != nil {
		out.UnitPrice = formatDecimal(*li.UnitPrice)
	}
	if li.Total != nil {
		out.Total = formatDecimal(*li.Total)
	}
	if li.TaxRate != nil {
		out.TaxRate = formatDecimal(*li.TaxRate)
	}
	return out
}

// ToPBExtractJob converts an entity extract job into its wire representation.
func ToPBExtractJob(j *entity.ExtractJob) *v1.ExtractJob {
	out := &v1.ExtractJob{
		Id:          j.ID.String(),
		FileId:      j.FileID.String(),
		ProfileId:   j.ProfileID.String(),
		Format:      j.Format,
		NeedsReview: j.NeedsReview,
		StartedAt:   j.StartedAt.Format(time.RFC3339Nano),
	}
	if j.InvoiceID != nil {
		out.InvoiceId = j.InvoiceID.String()
	}
	if j.Status != nil {
		out.Status = *j.Status
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	if j.ExtractionConfidence != nil {
		out.ExtractionConfidence = *j.ExtractionConfidence
	}
	if j.ModelName != nil {
		out.ModelName = *j.ModelName
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.Format(time.RFC3339Nano)
	}
	return out
}

func formatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
