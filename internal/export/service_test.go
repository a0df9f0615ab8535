package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/elitizon/invoicepipe/internal/entity"
	"github.com/elitizon/invoicepipe/internal/repository"
)

type fakeInvoices struct {
	invoices []*entity.Invoice
	gotFrom  *time.Time
	gotTo    *time.Time
}

func (f *fakeInvoices) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, fmt.Errorf("invoice %s not found", id)
}

func (f *fakeInvoices) ListInvoices(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	f.gotFrom, f.gotTo = fromDate, toDate
	var out []*entity.Invoice
	for _, inv := range f.invoices {
		if inv.ProfileID == profileID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoices) ListLineItems(ctx context.Context, invoiceID uuid.UUID) ([]*entity.LineItem, error) {
	return nil, nil
}

func (f *fakeInvoices) UpsertFromFields(ctx context.Context, req *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakeFiles struct {
	files map[uuid.UUID]*entity.InvoiceFile
}

func (f *fakeFiles) GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceFile, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, fmt.Errorf("file %s not found", id)
	}
	return file, nil
}

func (f *fakeFiles) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*entity.InvoiceFile, error) {
	return nil, fmt.Errorf("not found")
}

func (f *fakeFiles) Create(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeFiles) UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, bool, error) {
	return nil, false, fmt.Errorf("not implemented")
}

func strp(s string) *string     { return &s }
func f64p(f float64) *float64   { return &f }
func tp(t time.Time) *time.Time { return &t }

func TestExportInvoicesXLSX_WritesHeadersAndRows(t *testing.T) {
	profileID := uuid.New()
	fileID := uuid.New()

	invoices := &fakeInvoices{invoices: []*entity.Invoice{
		{
			ID:            uuid.New(),
			ProfileID:     profileID,
			FileID:        &fileID,
			InvoiceNumber: "INV-1001",
			InvoiceDate:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			DueDate:       tp(time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)),
			VendorName:    "Acme Supplies GmbH",
			CustomerName:  strp("Elitizon Ltd"),
			Subtotal:      f64p(350.00),
			Tax:           f64p(68.00),
			Total:         418.00,
			CurrencyCode:  "EUR",
			PaymentTerms:  strp("Net 30"),
		},
		{
			ID:            uuid.New(),
			ProfileID:     profileID,
			InvoiceNumber: "INV-1002",
			InvoiceDate:   time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
			VendorName:    "Cloudhost Inc",
			Total:         99.90,
			CurrencyCode:  "USD",
		},
	}}
	files := &fakeFiles{files: map[uuid.UUID]*entity.InvoiceFile{
		fileID: {ID: fileID, ProfileID: profileID, SourcePath: "/data/inbox/acme-march.pdf"},
	}}

	svc := NewService(invoices, files, slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil)))

	data, err := svc.ExportInvoicesXLSX(context.Background(), profileID, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Invoice Date", rows[0][0])
	assert.Equal(t, "Invoice #", rows[0][2])
	assert.Equal(t, "Total", rows[0][7])
	assert.Equal(t, "Source File", rows[0][10])

	assert.Equal(t, "2025-03-14", rows[1][0])
	assert.Equal(t, "2025-04-13", rows[1][1])
	assert.Equal(t, "INV-1001", rows[1][2])
	assert.Equal(t, "Acme Supplies GmbH", rows[1][3])
	assert.Equal(t, "Elitizon Ltd", rows[1][4])
	assert.Equal(t, "418", rows[1][7])
	assert.Equal(t, "EUR", rows[1][8])
	assert.Equal(t, "/data/inbox/acme-march.pdf", rows[1][10])

	assert.Equal(t, "INV-1002", rows[2][2])
	assert.Equal(t, "Cloudhost Inc", rows[2][3])
}

func TestExportInvoicesXLSX_FromOnlyFillsToToday(t *testing.T) {
	profileID := uuid.New()
	invoices := &fakeInvoices{}
	files := &fakeFiles{files: map[uuid.UUID]*entity.InvoiceFile{}}
	svc := NewService(invoices, files, nil)

	from := time.Date(2025, 1, 15, 13, 45, 0, 0, time.Local)
	_, err := svc.ExportInvoicesXLSX(context.Background(), profileID, &from, nil)
	require.NoError(t, err)

	require.NotNil(t, invoices.gotFrom)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), *invoices.gotFrom)
	require.NotNil(t, invoices.gotTo)
	today := time.Now().UTC()
	assert.Equal(t, time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC), *invoices.gotTo)
}

func TestExportInvoicesXLSX_EmptyProfileHasHeaderOnly(t *testing.T) {
	svc := NewService(&fakeInvoices{}, &fakeFiles{files: map[uuid.UUID]*entity.InvoiceFile{}}, nil)

	data, err := svc.ExportInvoicesXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Invoice Date", rows[0][0])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "", truncate("", 5))

	// multi-byte payment terms must cut on rune boundaries
	assert.Equal(t, "Zahlung 30 Tage netto – Skonto…",
		truncate("Zahlung 30 Tage netto – Skonto 2% bei 14 Tagen", 31))
	got := truncate("ファクタリング手数料込み", 5)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ファクタ…", got)
}
