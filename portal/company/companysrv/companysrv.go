package companysrv

import (
	"context"
	"strings"

	"github.com/portalhq/jobboard/pkg/errx"
	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/company"
)

// CompanyService provides business operations for company profiles
type CompanyService struct {
	companyRepo company.Repository
}

// NewCompanyService creates a new instance of the company service
func NewCompanyService(companyRepo company.Repository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// ListCompanies returns the public company directory, ordered by name
func (s *CompanyService) ListCompanies(ctx context.Context) ([]company.ListItemResponse, error) {
	items, err := s.companyRepo.ListPublic(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list companies", errx.TypeInternal)
	}
	return items, nil
}

// GetCompanyDetails returns the public company page with its jobs
func (s *CompanyService) GetCompanyDetails(ctx context.Context, id kernel.CompanyID) (*company.PublicDetailsResponse, error) {
	details, err := s.companyRepo.GetPublicDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	return details, nil
}

// GetMyCompany returns the caller's company profile
func (s *CompanyService) GetMyCompany(ctx context.Context, actor auth.Actor) (*company.ProfileResponse, error) {
	profile, err := s.companyRepo.GetProfile(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateMyCompany overwrites the caller's company profile fields
func (s *CompanyService) UpdateMyCompany(ctx context.Context, actor auth.Actor, req company.UpdateProfileRequest) (*company.ProfileResponse, error) {
	entity, err := s.companyRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	entity.Name = strings.TrimSpace(req.Name)
	entity.Industry = strings.TrimSpace(req.Industry)
	entity.City = strings.TrimSpace(req.City)
	entity.Website = strings.TrimSpace(req.Website)
	entity.Description = strings.TrimSpace(req.Description)

	if err := s.companyRepo.Update(ctx, entity); err != nil {
		return nil, errx.Wrap(err, "failed to update company", errx.TypeInternal)
	}

	return s.companyRepo.GetProfile(ctx, actor.UserID)
}
