package company

import (
	"github.com/portalhq/jobboard/pkg/kernel"
)

// UpdateProfileRequest - DTO for the owner editing their company profile
type UpdateProfileRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Industry    string `json:"industry" validate:"max=100"`
	City        string `json:"city" validate:"max=100"`
	Website     string `json:"website" validate:"max=300"`
	Description string `json:"description" validate:"max=4000"`
}

// ListItemResponse - public listing entry
type ListItemResponse struct {
	ID       kernel.CompanyID `json:"id"`
	Name     string           `json:"name"`
	City     string           `json:"city"`
	Industry string           `json:"industry"`
}

// JobItemResponse - a job row on the public company page
type JobItemResponse struct {
	ID       kernel.JobID `json:"id"`
	Title    string       `json:"title"`
	City     string       `json:"city"`
	IsRemote bool         `json:"is_remote"`
}

// PublicDetailsResponse - public company page: profile plus its jobs
type PublicDetailsResponse struct {
	ID          kernel.CompanyID  `json:"id"`
	Name        string            `json:"name"`
	City        string            `json:"city"`
	Industry    string            `json:"industry"`
	Description string            `json:"description"`
	Jobs        []JobItemResponse `json:"jobs"`
}

// ProfileResponse - the owner's view of their company
type ProfileResponse struct {
	ID            kernel.CompanyID `json:"id"`
	Name          string           `json:"name"`
	Industry      string           `json:"industry"`
	City          string           `json:"city"`
	Website       string           `json:"website,omitempty"`
	Description   string           `json:"description"`
	UserID        kernel.UserID    `json:"user_id"`
	OwnerFullName string           `json:"owner_full_name"`
	OwnerEmail    kernel.Email     `json:"owner_email"`
}
