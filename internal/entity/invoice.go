package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents an extracted invoice for data transfer between layers.
type Invoice struct {
	ID            uuid.UUID  `json:"id"`
	ProfileID     uuid.UUID  `json:"profile_id"`
	FileID        *uuid.UUID `json:"file_id,omitempty"`
	InvoiceNumber string     `json:"invoice_number"`
	InvoiceDate   time.Time  `json:"invoice_date"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	VendorName    string     `json:"vendor_name"`
	VendorTaxID   *string    `json:"vendor_tax_id,omitempty"`
	VendorAddress *string    `json:"vendor_address,omitempty"`
	CustomerName  *string    `json:"customer_name,omitempty"`
	Subtotal      *float64   `json:"subtotal,omitempty"`
	Tax           *float64   `json:"tax,omitempty"`
	Total         float64    `json:"total"`
	CurrencyCode  string     `json:"currency_code"`
	PaymentTerms  *string    `json:"payment_terms,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// LineItem is a single invoice line for data transfer between layers.
type LineItem struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	Position    int       `json:"position"`
	Description string    `json:"description"`
	Quantity    *float64  `json:"quantity,omitempty"`
	UnitPrice   *float64  `json:"unit_price,omitempty"`
	Total       *float64  `json:"total,omitempty"`
	TaxRate     *float64  `json:"tax_rate,omitempty"`
}
