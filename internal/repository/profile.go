package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/elitizon/invoicepipe/gen/ent"
	"github.com/elitizon/invoicepipe/gen/ent/profile"
	"github.com/elitizon/invoicepipe/internal/entity"
	"github.com/elitizon/invoicepipe/internal/utils"
)

// CreateProfileRequest wraps parameters for creating a profile.
type CreateProfileRequest struct {
	Name            string
	CompanyName     string
	DefaultCurrency string
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	CreateProfile(ctx context.Context, req *CreateProfileRequest) (*entity.Profile, error)
	GetOrCreateByName(ctx context.Context, name, defaultCurrency string) (*entity.Profile, error)
	ListProfiles(ctx context.Context) ([]*entity.Profile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	p, err := r.client.Profile.
		Query().
		Where(profile.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToProfile(p), nil
}

func (r *profileRepository) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*entity.Profile, error) {
	builder := r.client.Profile.Create().
		SetName(req.Name).
		SetDefaultCurrency(req.DefaultCurrency)
	if req.CompanyName != "" {
		builder = builder.SetCompanyName(req.CompanyName)
	}
	p, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "name", req.Name, "currency", req.DefaultCurrency, "error", err)
		return nil, err
	}
	return utils.ToProfile(p), nil
}

func (r *profileRepository) GetOrCreateByName(ctx context.Context, name, defaultCurrency string) (*entity.Profile, error) {
	p, err := r.client.Profile.Query().Where(profile.Name(name)).Only(ctx)
	if err == nil {
		return utils.ToProfile(p), nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to query profile by name", "name", name, "error", err)
		return nil, err
	}
	return r.CreateProfile(ctx, &CreateProfileRequest{Name: name, DefaultCurrency: defaultCurrency})
}

func (r *profileRepository) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	plist, err := r.client.Profile.Query().Order(profile.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list profiles", "error", err)
		return nil, err
	}
	out := make([]*entity.Profile, len(plist))
	for i, p := range plist {
		out[i] = utils.ToProfile(p)
	}
	return out, nil
}

func (r *profileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Profile.Query().Where(profile.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check profile existence", "profile_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
