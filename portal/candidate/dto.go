package candidate

import (
	"github.com/portalhq/jobboard/pkg/kernel"
)

// UpdateProfileRequest - DTO for the candidate editing their profile
type UpdateProfileRequest struct {
	City            string `json:"city" validate:"max=100"`
	Bio             string `json:"bio" validate:"max=4000"`
	ExperienceLevel string `json:"experience_level" validate:"max=50"`
	CVURL           string `json:"cv_url" validate:"max=500"`
	Phone           string `json:"phone" validate:"max=30"`
}

// ProfileResponse - the candidate's own profile joined with the account
type ProfileResponse struct {
	ID              kernel.CandidateID `json:"id"`
	City            string             `json:"city"`
	Bio             string             `json:"bio,omitempty"`
	ExperienceLevel string             `json:"experience_level"`
	CVURL           string             `json:"cv_url,omitempty"`
	Phone           string             `json:"phone,omitempty"`
	UserID          kernel.UserID      `json:"user_id"`
	FullName        string             `json:"full_name"`
	Email           kernel.Email       `json:"email"`
}

// SkillResponse - a skill attached to a candidate
type SkillResponse struct {
	ID   kernel.SkillID `json:"id"`
	Name string         `json:"name"`
}
