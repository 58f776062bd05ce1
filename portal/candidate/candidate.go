package candidate

import (
	"github.com/portalhq/jobboard/pkg/kernel"
)

// Candidate is a job seeker profile. Every Candidate account owns exactly
// one; optional fields are empty strings when unset.
type Candidate struct {
	ID              kernel.CandidateID `db:"id" json:"id"`
	UserID          kernel.UserID      `db:"user_id" json:"user_id"`
	City            string             `db:"city" json:"city"`
	Bio             string             `db:"bio" json:"bio,omitempty"`
	ExperienceLevel string             `db:"experience_level" json:"experience_level"`
	CVURL           string             `db:"cv_url" json:"cv_url,omitempty"`
	Phone           string             `db:"phone" json:"phone,omitempty"`
}
