package repository

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/elitizon/invoicepipe/gen/ent"
	entfile "github.com/elitizon/invoicepipe/gen/ent/invoicefile"
	"github.com/elitizon/invoicepipe/internal/entity"
	"github.com/elitizon/invoicepipe/internal/utils"
)

type InvoiceFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceFile, error)
	GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*entity.InvoiceFile, error)
	Create(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, error)
	UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, bool, error)
}

type invoiceFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewInvoiceFileRepository(entc *ent.Client, logger *slog.Logger) InvoiceFileRepository {
	return &invoiceFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *invoiceFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoiceFile(row), nil
}

func (r *invoiceFileRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*entity.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Query().
		Where(
			entfile.ProfileID(profileID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoiceFile(row), nil
}

func (r *invoiceFileRepo) Create(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Create().
		SetProfileID(profileID).
		SetSourcePath(sourcePath).
		SetFilename(filepath.Base(sourcePath)).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice file", "profile_id", profileID, "source_path", sourcePath, "error", err)
		return nil, err
	}
	return utils.ToInvoiceFile(row), nil
}

// UpsertByHash returns the existing row when the same content was already
// ingested for this profile; the bool reports deduplication.
func (r *invoiceFileRepo) UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, bool, error) {
	if existing, err := r.GetByProfileAndHash(ctx, profileID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, profileID, sourcePath, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert invoice file by hash", "profile_id", profileID, "source_path", sourcePath, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
