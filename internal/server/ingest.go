package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	v1 "github.com/elitizon/invoicepipe/gen/proto/invoicepipe/v1"
	"github.com/elitizon/invoicepipe/internal/async"
	"github.com/elitizon/invoicepipe/internal/common"
	"github.com/elitizon/invoicepipe/internal/ingest"
	"github.com/elitizon/invoicepipe/internal/repository"
)

type IngestionServer struct {
	v1.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	queue    async.Queue
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewIngestionServer(ing ingest.Ingestor, queue async.Queue, profiles repository.ProfileRepository, logger *slog.Logger) *IngestionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionServer{
		ingestor: ing,
		queue:    queue,
		profiles: profiles,
		logger:   logger,
	}
}

// IngestFile registers a single document and queues it for extraction.
func (s *IngestionServer) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	profileID, err := s.requireProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, common.InvalidArgumentError("path is required")
	}

	s.logger.Info("ingest.file.start", "profile_id", profileID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, profileID, path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}

	resp := toIngestResponse(r)
	resp.Queued = s.enqueue(ctx, r, resp)
	return resp, nil
}

// IngestDirectory walks a directory tree, registers matching documents and
// queues each new one for extraction.
func (s *IngestionServer) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	profileID, err := s.requireProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		return nil, common.InvalidArgumentError("root_path is required")
	}

	s.logger.Info("ingest.dir.start", "profile_id", profileID, "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, profileID, root, req.GetSkipHidden())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest directory: %v", err)
	}
	s.logger.Info("ingest.dir.done",
		"profile_id", profileID,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}
	for _, r := range results {
		item := toIngestResponse(r)
		if r.Err == "" {
			item.Queued = s.enqueue(ctx, r, item)
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func (s *IngestionServer) requireProfile(ctx context.Context, raw string) (uuid.UUID, error) {
	pid := strings.TrimSpace(raw)
	v := common.NewValidator().Field("profile_id", pid, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return uuid.Nil, err
	}
	profileID, _ := uuid.Parse(pid)
	if exists, _ := s.profiles.Exists(ctx, profileID); !exists {
		return uuid.Nil, common.NotFoundError("profile not found")
	}
	return profileID, nil
}

// enqueue hands a freshly ingested file to the worker pool. Deduplicated
// files already have an extraction result, so they are not re-queued.
func (s *IngestionServer) enqueue(ctx context.Context, r ingest.IngestionResult, resp *v1.IngestResponse) bool {
	if r.Deduplicated || r.FileID == "" {
		return false
	}
	fileID, err := uuid.Parse(r.FileID)
	if err != nil {
		return false
	}
	job := async.Job{
		FileID:      fileID,
		SubmittedAt: time.Now(),
		TraceID:     common.RequestIDFromContext(ctx),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.logger.Error("ingest.enqueue_failed", "file_id", r.FileID, "error", err)
		resp.Error = err.Error()
		return false
	}
	return true
}

func toIngestResponse(r ingest.IngestionResult) *v1.IngestResponse {
	return &v1.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
