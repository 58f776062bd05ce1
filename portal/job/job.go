package job

import (
	"time"

	"github.com/portalhq/jobboard/pkg/kernel"
)

type Job struct {
	ID             kernel.JobID          `db:"id" json:"id"`
	CompanyID      kernel.CompanyID      `db:"company_id" json:"company_id"`
	Title          string                `db:"title" json:"title"`
	Description    string                `db:"description" json:"description"`
	City           string                `db:"city" json:"city"`
	IsRemote       bool                  `db:"is_remote" json:"is_remote"`
	EmploymentType kernel.EmploymentType `db:"employment_type" json:"employment_type"`
	SalaryMin      float64               `db:"salary_min" json:"salary_min"`
	SalaryMax      float64               `db:"salary_max" json:"salary_max"`
	CreatedAt      time.Time             `db:"created_at" json:"created_at"`
	ExpiresAt      *time.Time            `db:"expires_at" json:"expires_at,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsExpired reports whether the posting closed before the given instant.
// A job without an expiry never expires.
func (j *Job) IsExpired(now time.Time) bool {
	return j.ExpiresAt != nil && j.ExpiresAt.Before(now)
}

// IsVisible reports whether the posting belongs in public search results:
// no expiry, or an expiry strictly in the future.
func (j *Job) IsVisible(now time.Time) bool {
	return j.ExpiresAt == nil || j.ExpiresAt.After(now)
}
