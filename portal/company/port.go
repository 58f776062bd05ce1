package company

import (
	"context"

	"github.com/portalhq/jobboard/pkg/kernel"
)

type Repository interface {
	// Create persists a new company profile
	Create(ctx context.Context, company *Company) error

	// GetByID retrieves a company by ID
	GetByID(ctx context.Context, id kernel.CompanyID) (*Company, error)

	// GetByUserID retrieves the company owned by a user
	GetByUserID(ctx context.Context, userID kernel.UserID) (*Company, error)

	// Update overwrites the mutable profile fields
	Update(ctx context.Context, company *Company) error

	// ListPublic retrieves all companies ordered by name
	ListPublic(ctx context.Context) ([]ListItemResponse, error)

	// GetPublicDetails retrieves a company profile plus its jobs,
	// newest job first
	GetPublicDetails(ctx context.Context, id kernel.CompanyID) (*PublicDetailsResponse, error)

	// GetProfile retrieves the owner's view, joined with the account
	GetProfile(ctx context.Context, userID kernel.UserID) (*ProfileResponse, error)
}
