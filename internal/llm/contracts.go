package llm

import "context"

type ProfileContext struct {
	ProfileName string `json:"profile_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// Address is a postal address as returned by the LLM.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

// Party is a business entity on the invoice (vendor or customer).
type Party struct {
	Name    string   `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
	TaxID   string   `json:"tax_id,omitempty"`
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
}

// LineItem is a single invoice line. Money fields are decimal strings.
type LineItem struct {
	Description string `json:"description,omitempty"`
	Quantity    string `json:"quantity,omitempty"`   // decimal
	UnitPrice   string `json:"unit_price,omitempty"` // decimal
	Total       string `json:"total,omitempty"`      // decimal
	TaxRate     string `json:"tax_rate,omitempty"`   // decimal percentage
}

// InvoiceFields is the normalized shape we want from the LLM.
type InvoiceFields struct {
	InvoiceNumber   string     `json:"invoice_number"`
	InvoiceDate     string     `json:"invoice_date"`       // YYYY-MM-DD
	DueDate         string     `json:"due_date,omitempty"` // YYYY-MM-DD
	Vendor          Party      `json:"vendor"`
	Customer        *Party     `json:"customer,omitempty"`
	LineItems       []LineItem `json:"line_items,omitempty"`
	Subtotal        string     `json:"subtotal,omitempty"` // decimal
	Tax             string     `json:"tax,omitempty"`      // decimal
	Total           string     `json:"total"`              // decimal
	CurrencyCode    string     `json:"currency_code"`      // ISO 4217
	PaymentTerms    string     `json:"payment_terms,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	ModelConfidence float32    `json:"confidence,omitempty"` // optional (0..1)
}

type ExtractRequest struct {
	OCRText         string
	FilenameHint    string
	FolderHint      string
	DefaultCurrency string

	PrepConfidence float32
	FilePath       string

	Profile ProfileContext
}

// FieldExtractor is the interface our pipeline depends on.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (InvoiceFields, []byte /*rawJSON*/, error)
}
