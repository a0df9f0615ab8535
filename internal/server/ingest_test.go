package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/elitizon/invoicepipe/gen/proto/invoicepipe/v1"
	"github.com/elitizon/invoicepipe/internal/async"
	"github.com/elitizon/invoicepipe/internal/entity"
	"github.com/elitizon/invoicepipe/internal/ingest"
	"github.com/elitizon/invoicepipe/internal/repository"
)

type fakeProfiles struct {
	known map[uuid.UUID]bool
}

func (f *fakeProfiles) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return &entity.Profile{ID: id}, nil
}

func (f *fakeProfiles) CreateProfile(ctx context.Context, req *repository.CreateProfileRequest) (*entity.Profile, error) {
	return nil, nil
}

func (f *fakeProfiles) GetOrCreateByName(ctx context.Context, name, defaultCurrency string) (*entity.Profile, error) {
	return nil, nil
}

func (f *fakeProfiles) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	return nil, nil
}

func (f *fakeProfiles) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

type fakeIngestor struct {
	result ingest.IngestionResult
}

func (f *fakeIngestor) IngestPath(ctx context.Context, profileID uuid.UUID, path string) (ingest.IngestionResult, error) {
	return f.result, nil
}

func (f *fakeIngestor) IngestDirectory(ctx context.Context, profileID uuid.UUID, root string, skipHidden bool) ([]ingest.IngestionResult, ingest.DirStats, error) {
	return []ingest.IngestionResult{f.result}, ingest.DirStats{Scanned: 1, Matched: 1, Succeeded: 1}, nil
}

type fakeQueue struct {
	jobs []async.Job
}

func (f *fakeQueue) Enqueue(ctx context.Context, job async.Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) Shutdown(ctx context.Context) {}

func newIngestionFixture(known uuid.UUID) (*IngestionServer, *fakeQueue) {
	q := &fakeQueue{}
	ing := &fakeIngestor{result: ingest.IngestionResult{
		SourcePath: "/docs/invoice.pdf",
		FileID:     uuid.New().String(),
		HashHex:    "abc123",
		FileExt:    "pdf",
		UploadedAt: time.Now(),
	}}
	profiles := &fakeProfiles{known: map[uuid.UUID]bool{known: true}}
	return NewIngestionServer(ing, q, profiles, nil), q
}

func TestIngestFile_InvalidProfileID(t *testing.T) {
	s, _ := newIngestionFixture(uuid.New())

	_, err := s.IngestFile(context.Background(), &v1.IngestFileRequest{
		ProfileId: "not-a-uuid",
		Path:      "/docs/invoice.pdf",
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "must be a valid UUID")
}

func TestIngestFile_MissingProfileID(t *testing.T) {
	s, _ := newIngestionFixture(uuid.New())

	_, err := s.IngestFile(context.Background(), &v1.IngestFileRequest{Path: "/docs/invoice.pdf"})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "is required")
}

func TestIngestFile_UnknownProfile(t *testing.T) {
	s, _ := newIngestionFixture(uuid.New())

	_, err := s.IngestFile(context.Background(), &v1.IngestFileRequest{
		ProfileId: uuid.New().String(),
		Path:      "/docs/invoice.pdf",
	})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestIngestFile_QueuesNewFile(t *testing.T) {
	profileID := uuid.New()
	s, q := newIngestionFixture(profileID)

	resp, err := s.IngestFile(context.Background(), &v1.IngestFileRequest{
		ProfileId: profileID.String(),
		Path:      "/docs/invoice.pdf",
	})
	require.NoError(t, err)
	assert.True(t, resp.Queued)
	require.Len(t, q.jobs, 1)
	assert.Equal(t, resp.FileId, q.jobs[0].FileID.String())
}
