package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/elitizon/invoicepipe/gen/ent"
	entinvoice "github.com/elitizon/invoicepipe/gen/ent/invoice"
	entline "github.com/elitizon/invoicepipe/gen/ent/lineitem"
	"github.com/elitizon/invoicepipe/internal/entity"
	"github.com/elitizon/invoicepipe/internal/llm"
	"github.com/elitizon/invoicepipe/internal/utils"
)

// CreateInvoiceRequest wraps parameters for persisting extracted fields.
type CreateInvoiceRequest struct {
	File   *entity.InvoiceFile
	JobID  uuid.UUID
	Fields llm.InvoiceFields
}

type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	ListInvoices(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error)
	ListLineItems(ctx context.Context, invoiceID uuid.UUID) ([]*entity.LineItem, error)
	UpsertFromFields(ctx context.Context, request *CreateInvoiceRequest) (*entity.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().Where(entinvoice.ProfileID(profileID))
	if fromDate != nil {
		q = q.Where(entinvoice.InvoiceDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entinvoice.InvoiceDateLTE(*toDate))
	}
	rows, err := q.Order(entinvoice.ByInvoiceDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

func (r *invoiceRepository) ListLineItems(ctx context.Context, invoiceID uuid.UUID) ([]*entity.LineItem, error) {
	rows, err := r.client.LineItem.Query().
		Where(entline.InvoiceID(invoiceID)).
		Order(entline.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list line items", "invoice_id", invoiceID, "error", err)
		return nil, err
	}
	result := make([]*entity.LineItem, len(rows))
	for i, row := range rows {
		result[i] = utils.ToLineItem(row)
	}
	return result, nil
}

// UpsertFromFields writes the extracted fields as an invoice plus line items.
// A re-run for the same (profile, invoice_number, vendor) replaces the line
// items rather than duplicating the invoice.
func (r *invoiceRepository) UpsertFromFields(ctx context.Context, request *CreateInvoiceRequest) (*entity.Invoice, error) {
	f := request.Fields
	file := request.File

	invoiceDate, err := utils.ParseYMD(f.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("invoice_date %q: %w", f.InvoiceDate, err)
	}

	total := dec(f.Total)
	if total == nil {
		return nil, fmt.Errorf("total %q is not a decimal", f.Total)
	}

	// re-extraction of a known invoice updates in place
	existing, err := r.client.Invoice.Query().
		Where(
			entinvoice.ProfileID(file.ProfileID),
			entinvoice.InvoiceNumber(f.InvoiceNumber),
			entinvoice.VendorName(f.Vendor.Name),
		).Only(ctx)
	if err == nil {
		return r.updateFromFields(ctx, existing, request, invoiceDate, *total)
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	builder := r.client.Invoice.Create().
		SetProfileID(file.ProfileID).
		SetFileID(file.ID).
		SetInvoiceNumber(f.InvoiceNumber).
		SetInvoiceDate(invoiceDate).
		SetVendorName(f.Vendor.Name).
		SetCurrencyCode(f.CurrencyCode).
		SetTotal(*total).
		SetNillableSubtotal(dec(f.Subtotal)).
		SetNillableTax(dec(f.Tax))

	if f.DueDate != "" {
		if due, err := utils.ParseYMD(f.DueDate); err == nil {
			builder = builder.SetDueDate(due)
		}
	}
	if f.Vendor.TaxID != "" {
		builder = builder.SetVendorTaxID(f.Vendor.TaxID)
	}
	if addr := formatAddress(f.Vendor.Address); addr != "" {
		builder = builder.SetVendorAddress(addr)
	}
	if f.Customer != nil && f.Customer.Name != "" {
		builder = builder.SetCustomerName(f.Customer.Name)
	}
	if f.PaymentTerms != "" {
		builder = builder.SetPaymentTerms(f.PaymentTerms)
	}
	if f.Notes != "" {
		builder = builder.SetNotes(f.Notes)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice", "profile_id", file.ProfileID, "invoice_number", f.InvoiceNumber, "error", err)
		return nil, err
	}

	if err := r.replaceLineItems(ctx, row.ID, f.LineItems); err != nil {
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) updateFromFields(ctx context.Context, existing *ent.Invoice, request *CreateInvoiceRequest, invoiceDate time.Time, total float64) (*entity.Invoice, error) {
	f := request.Fields
	builder := existing.Update().
		SetInvoiceDate(invoiceDate).
		SetCurrencyCode(f.CurrencyCode).
		SetTotal(total).
		SetNillableSubtotal(dec(f.Subtotal)).
		SetNillableTax(dec(f.Tax)).
		SetFileID(request.File.ID)

	if f.DueDate != "" {
		if due, err := utils.ParseYMD(f.DueDate); err == nil {
			builder = builder.SetDueDate(due)
		}
	}
	if f.Vendor.TaxID != "" {
		builder = builder.SetVendorTaxID(f.Vendor.TaxID)
	}
	if addr := formatAddress(f.Vendor.Address); addr != "" {
		builder = builder.SetVendorAddress(addr)
	}
	if f.Customer != nil && f.Customer.Name != "" {
		builder = builder.SetCustomerName(f.Customer.Name)
	}
	if f.PaymentTerms != "" {
		builder = builder.SetPaymentTerms(f.PaymentTerms)
	}
	if f.Notes != "" {
		builder = builder.SetNotes(f.Notes)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update invoice", "invoice_id", existing.ID, "error", err)
		return nil, err
	}
	if err := r.replaceLineItems(ctx, row.ID, f.LineItems); err != nil {
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) replaceLineItems(ctx context.Context, invoiceID uuid.UUID, items []llm.LineItem) error {
	if _, err := r.client.LineItem.Delete().Where(entline.InvoiceID(invoiceID)).Exec(ctx); err != nil {
		r.logger.Error("failed to clear line items", "invoice_id", invoiceID, "error", err)
		return err
	}
	if len(items) == 0 {
		return nil
	}
	builders := make([]*ent.LineItemCreate, 0, len(items))
	for i, it := range items {
		if it.Description == "" {
			continue
		}
		b := r.client.LineItem.Create().
			SetInvoiceID(invoiceID).
			SetPosition(i).
			SetDescription(it.Description).
			SetNillableQuantity(dec(it.Quantity)).
			SetNillableUnitPrice(dec(it.UnitPrice)).
			SetNillableTotal(dec(it.Total)).
			SetNillableTaxRate(dec(it.TaxRate))
		builders = append(builders, b)
	}
	if _, err := r.client.LineItem.CreateBulk(builders...).Save(ctx); err != nil {
		r.logger.Error("failed to create line items", "invoice_id", invoiceID, "error", err)
		return err
	}
	return nil
}

// dec parses a decimal string into a *float64, nil when absent or malformed.
func dec(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formatAddress(a *llm.Address) string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.ZipCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}
