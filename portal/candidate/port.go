package candidate

import (
	"context"

	"github.com/portalhq/jobboard/pkg/kernel"
)

type Repository interface {
	// Create persists a new candidate profile
	Create(ctx context.Context, candidate *Candidate) error

	// GetByID retrieves a candidate by ID
	GetByID(ctx context.Context, id kernel.CandidateID) (*Candidate, error)

	// GetByUserID retrieves the candidate owned by a user
	GetByUserID(ctx context.Context, userID kernel.UserID) (*Candidate, error)

	// Update overwrites the mutable profile fields
	Update(ctx context.Context, candidate *Candidate) error

	// GetProfile retrieves the candidate's view, joined with the account
	GetProfile(ctx context.Context, userID kernel.UserID) (*ProfileResponse, error)

	// AddSkill attaches a skill to the candidate
	AddSkill(ctx context.Context, id kernel.CandidateID, skillID kernel.SkillID) error

	// RemoveSkill detaches a skill from the candidate
	RemoveSkill(ctx context.Context, id kernel.CandidateID, skillID kernel.SkillID) error

	// ListSkills retrieves the candidate's skills ordered by name
	ListSkills(ctx context.Context, id kernel.CandidateID) ([]SkillResponse, error)
}
