package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	v1 "github.com/elitizon/invoicepipe/gen/proto/invoicepipe/v1"
	"github.com/elitizon/invoicepipe/internal/common"
	"github.com/elitizon/invoicepipe/internal/repository"
	"github.com/elitizon/invoicepipe/internal/utils"
)

type InvoicesServer struct {
	v1.UnimplementedInvoicesServiceServer
	invoices repository.InvoiceRepository
	jobs     repository.ExtractJobRepository
	logger   *slog.Logger
}

func NewInvoicesServer(invoices repository.InvoiceRepository, jobs repository.ExtractJobRepository, logger *slog.Logger) *InvoicesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoicesServer{invoices: invoices, jobs: jobs, logger: logger}
}

// ListInvoices returns invoices for a profile inside an optional date window.
func (s *InvoicesServer) ListInvoices(ctx context.Context, req *v1.ListInvoicesRequest) (*v1.ListInvoicesResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	if pid == "" {
		return nil, common.InvalidArgumentError("profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
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

	invoices, err := s.invoices.ListInvoices(ctx, profileID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("invoices.list_failed", "profile_id", pid, "error", err)
		return nil, common.InternalError("list invoices failed")
	}

	out := make([]*v1.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		pb := utils.ToPBInvoice(inv)
		if req.GetIncludeLineItems() {
			items, err := s.invoices.ListLineItems(ctx, inv.ID)
			if err != nil {
				s.logger.Error("invoices.line_items_failed", "invoice_id", inv.ID, "error", err)
				return nil, common.InternalError("list line items failed")
			}
			for _, li := range items {
				pb.LineItems = append(pb.LineItems, utils.ToPBLineItem(li))
			}
		}
		out = append(out, pb)
	}
	return &v1.ListInvoicesResponse{Invoices: out}, nil
}

// GetJob returns the state of one extraction job.
func (s *InvoicesServer) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	jid := strings.TrimSpace(req.GetJobId())
	if jid == "" {
		return nil, common.InvalidArgumentError("job_id is required")
	}
	jobID, err := uuid.Parse(jid)
	if err != nil {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		s.logger.Warn("jobs.get_failed", "job_id", jid, "error", err)
		return nil, common.NotFoundError("job not found")
	}
	return &v1.GetJobResponse{Job: utils.ToPBExtractJob(job)}, nil
}

// parseDate parses an optional YYYY-MM-DD string.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
