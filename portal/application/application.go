package application

import (
	"strings"
	"time"

	"github.com/portalhq/jobboard/pkg/kernel"
)

// ApplicationStatus is the closed set of workflow states. Any state may be
// set from any other; there is no enforced progression.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "Pending"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusAccepted    ApplicationStatus = "Accepted"
	StatusRejected    ApplicationStatus = "Rejected"
)

// ParseStatus matches case-insensitively against the known statuses.
func ParseStatus(raw string) (ApplicationStatus, bool) {
	for _, s := range []ApplicationStatus{StatusPending, StatusShortlisted, StatusAccepted, StatusRejected} {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

func (s ApplicationStatus) String() string { return string(s) }

// Application links one candidate to one job. The pair is unique, enforced
// by the database and surfaced as AlreadyApplied.
type Application struct {
	ID            kernel.ApplicationID `db:"id" json:"id"`
	JobID         kernel.JobID         `db:"job_id" json:"job_id"`
	CandidateID   kernel.CandidateID   `db:"candidate_id" json:"candidate_id"`
	Status        ApplicationStatus    `db:"status" json:"status"`
	CoverLetter   string               `db:"cover_letter" json:"cover_letter,omitempty"`
	CVURLSnapshot string               `db:"cv_url_snapshot" json:"cv_url_snapshot,omitempty"`
	AppliedAt     time.Time            `db:"applied_at" json:"applied_at"`
	UpdatedAt     *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}
