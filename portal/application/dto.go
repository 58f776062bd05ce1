package application

import (
	"time"

	"github.com/portalhq/jobboard/pkg/kernel"
)

// ApplyRequest - DTO for a candidate applying to a job. Both fields are
// optional; a blank snapshot falls back to the candidate's current CV URL.
type ApplyRequest struct {
	CoverLetter   string `json:"cover_letter" validate:"max=3000"`
	CVURLSnapshot string `json:"cv_url_snapshot" validate:"max=500"`
}

// UpdateStatusRequest - DTO for moving an application to a new status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// MyApplicationResponse - a row in the candidate's application history
type MyApplicationResponse struct {
	ApplicationID kernel.ApplicationID `json:"application_id"`
	AppliedAt     time.Time            `json:"applied_at"`
	Status        ApplicationStatus    `json:"status"`

	JobID    kernel.JobID `json:"job_id"`
	JobTitle string       `json:"job_title"`
	JobCity  string       `json:"job_city"`
	IsRemote bool         `json:"is_remote"`

	CompanyID   kernel.CompanyID `json:"company_id"`
	CompanyName string           `json:"company_name"`
}

// JobApplicationResponse - a row in the employer's view of one job's
// applicants. CVURL falls back to the candidate's current CV when no
// snapshot was taken at apply time.
type JobApplicationResponse struct {
	ApplicationID kernel.ApplicationID `json:"application_id"`
	AppliedAt     time.Time            `json:"applied_at"`
	Status        ApplicationStatus    `json:"status"`

	CandidateID       kernel.CandidateID `json:"candidate_id"`
	CandidateFullName string             `json:"candidate_full_name"`
	CandidateCity     string             `json:"candidate_city"`
	ExperienceLevel   string             `json:"experience_level"`
	CVURL             string             `json:"cv_url,omitempty"`

	CoverLetter string `json:"cover_letter,omitempty"`
}

// OwnedApplication - an application joined with the user who owns the job,
// for ownership checks on status updates
type OwnedApplication struct {
	Application
	OwnerUserID kernel.UserID `db:"owner_user_id"`
}
