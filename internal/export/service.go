// Package export renders stored invoices into spreadsheet workbooks.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/elitizon/invoicepipe/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	invoicesRepo repository.InvoiceRepository
	filesRepo    repository.InvoiceFileRepository
	logger       *slog.Logger
}

func NewService(invoicesRepo repository.InvoiceRepository, filesRepo repository.InvoiceFileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoicesRepo: invoicesRepo, filesRepo: filesRepo, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the given profile and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices for profile.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	invoices, err := s.invoicesRepo.ListInvoices(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Invoice Date",
		"Due Date",
		"Invoice #",
		"Vendor",
		"Customer",
		"Subtotal",
		"Tax",
		"Total",
		"Currency",
		"Payment Terms",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		// Resolve file path if we have a link
		filePath := ""
		if inv.FileID != nil && *inv.FileID != uuid.Nil {
			fileRow, err := s.filesRepo.GetByID(ctx, *inv.FileID)
			if err == nil && fileRow != nil {
				filePath = fileRow.SourcePath
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !inv.InvoiceDate.IsZero() {
			write(1, inv.InvoiceDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		if inv.DueDate != nil && !inv.DueDate.IsZero() {
			write(2, inv.DueDate.Format("2006-01-02"))
		} else {
			write(2, "")
		}
		write(3, inv.InvoiceNumber)
		write(4, inv.VendorName)
		write(5, strOrEmpty(inv.CustomerName))
		write(6, floatOrEmpty(inv.Subtotal))
		write(7, floatOrEmpty(inv.Tax))
		write(8, inv.Total)
		write(9, inv.CurrencyCode)
		write(10, truncate(strOrEmpty(inv.PaymentTerms), 140))
		write(11, filePath)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 12) // dates
	_ = f.SetColWidth(sheet, "C", "C", 18) // invoice number
	_ = f.SetColWidth(sheet, "D", "E", 28) // parties
	_ = f.SetColWidth(sheet, "F", "H", 12) // amounts
	_ = f.SetColWidth(sheet, "I", "I", 10) // currency
	_ = f.SetColWidth(sheet, "J", "J", 30) // terms
	_ = f.SetColWidth(sheet, "K", "K", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(f *float64) any {
	if f == nil {
		return ""
	}
	return *f
}

// truncate cuts s to at most n runes, ending in an ellipsis, without
// splitting a multi-byte character.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
