package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	v1 "github.com/elitizon/invoicepipe/gen/proto/invoicepipe/v1"
	"github.com/elitizon/invoicepipe/internal/common"
	"github.com/elitizon/invoicepipe/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// ExportInvoices builds an XLSX workbook for the profile's invoices.
// Date semantics match the export service: from-only means from..today,
// to-only means beginning..to, neither means everything.
func (s *ExportServer) ExportInvoices(ctx context.Context, req *v1.ExportInvoicesRequest) (*v1.ExportInvoicesResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	profileID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}

	fromPtr, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
	}
	toPtr, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
	}

	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, profileID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "profile_id", pid, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportInvoicesResponse{Xlsx: xlsx}, nil
}
