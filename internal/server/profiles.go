package server

import (
	"context"
	"log/slog"
	"strings"

	v1 "github.com/elitizon/invoicepipe/gen/proto/invoicepipe/v1"
	"github.com/elitizon/invoicepipe/internal/common"
	"github.com/elitizon/invoicepipe/internal/repository"
	"github.com/elitizon/invoicepipe/internal/utils"
)

type ProfileServer struct {
	v1.UnimplementedProfilesServiceServer
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewProfileServer(profiles repository.ProfileRepository, logger *slog.Logger) *ProfileServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileServer{profiles: profiles, logger: logger}
}

// CreateProfile creates a new extraction profile.
func (s *ProfileServer) CreateProfile(ctx context.Context, req *v1.CreateProfileRequest) (*v1.CreateProfileResponse, error) {
	name := strings.TrimSpace(req.GetName())
	currency := strings.ToUpper(strings.TrimSpace(req.GetDefaultCurrency()))
	if currency == "" {
		currency = "USD"
	}

	validator := common.NewValidator().
		Field("name", name, common.Required).
		Field("default_currency", currency, common.CurrencyCode)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	p, err := s.profiles.CreateProfile(ctx, &repository.CreateProfileRequest{
		Name:            name,
		CompanyName:     strings.TrimSpace(req.GetCompanyName()),
		DefaultCurrency: currency,
	})
	if err != nil {
		s.logger.Error("profile.create_failed", "name", name, "error", err)
		return nil, common.InternalError("create profile failed")
	}

	s.logger.Info("profile.created", "profile_id", p.ID, "name", p.Name)
	return &v1.CreateProfileResponse{Profile: utils.ToPBProfile(p)}, nil
}

// ListProfiles lists all profiles, oldest first.
func (s *ProfileServer) ListProfiles(ctx context.Context, _ *v1.ListProfilesRequest) (*v1.ListProfilesResponse, error) {
	plist, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		s.logger.Error("profile.list_failed", "error", err)
		return nil, common.InternalError("list profiles failed")
	}

	out := make([]*v1.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBProfile(p))
	}
	return &v1.ListProfilesResponse{Profiles: out}, nil
}
