package job

import (
	"time"

	"github.com/portalhq/jobboard/pkg/kernel"
)

// CreateJobRequest - DTO for creating a job posting
type CreateJobRequest struct {
	Title          string     `json:"title" validate:"required,max=120"`
	Description    string     `json:"description" validate:"required,max=5000"`
	City           string     `json:"city" validate:"required,max=80"`
	IsRemote       bool       `json:"is_remote"`
	EmploymentType string     `json:"employment_type" validate:"required,max=40"`
	SalaryMin      float64    `json:"salary_min" validate:"min=0"`
	SalaryMax      float64    `json:"salary_max" validate:"min=0"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

// SearchJobsRequest - DTO for the public job search. All filters are
// optional; zero values mean "no filter".
type SearchJobsRequest struct {
	City       string                   `json:"city,omitempty"`
	Type       string                   `json:"type,omitempty"`
	Keyword    string                   `json:"keyword,omitempty"`
	Remote     *bool                    `json:"remote,omitempty"`
	SortBy     string                   `json:"sort_by,omitempty"`
	SortDir    string                   `json:"sort_dir,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// ListItemResponse - a search result row
type ListItemResponse struct {
	ID             kernel.JobID          `json:"id"`
	Title          string                `json:"title"`
	City           string                `json:"city"`
	IsRemote       bool                  `json:"is_remote"`
	EmploymentType kernel.EmploymentType `json:"employment_type"`
	SalaryMin      float64               `json:"salary_min"`
	SalaryMax      float64               `json:"salary_max"`
	CreatedAt      time.Time             `json:"created_at"`
	ExpiresAt      *time.Time            `json:"expires_at,omitempty"`
	CompanyID      kernel.CompanyID      `json:"company_id"`
	CompanyName    string                `json:"company_name"`
}

// DetailsResponse - the full posting plus its company card
type DetailsResponse struct {
	ID                 kernel.JobID          `json:"id"`
	Title              string                `json:"title"`
	Description        string                `json:"description"`
	City               string                `json:"city"`
	IsRemote           bool                  `json:"is_remote"`
	EmploymentType     kernel.EmploymentType `json:"employment_type"`
	SalaryMin          float64               `json:"salary_min"`
	SalaryMax          float64               `json:"salary_max"`
	CreatedAt          time.Time             `json:"created_at"`
	ExpiresAt          *time.Time            `json:"expires_at,omitempty"`
	CompanyID          kernel.CompanyID      `json:"company_id"`
	CompanyName        string                `json:"company_name"`
	CompanyWebsite     string                `json:"company_website,omitempty"`
	CompanyCity        string                `json:"company_city"`
	CompanyDescription string                `json:"company_description"`
}

// PaginatedJobsResponse - a page of search results
type PaginatedJobsResponse = kernel.Paginated[ListItemResponse]
