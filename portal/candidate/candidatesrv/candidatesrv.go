package candidatesrv

import (
	"context"
	"strings"

	"github.com/portalhq/jobboard/pkg/errx"
	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/candidate"
)

// CandidateService provides business operations for candidate profiles
type CandidateService struct {
	candidateRepo candidate.Repository
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(candidateRepo candidate.Repository) *CandidateService {
	return &CandidateService{candidateRepo: candidateRepo}
}

// GetMyProfile returns the caller's candidate profile
func (s *CandidateService) GetMyProfile(ctx context.Context, actor auth.Actor) (*candidate.ProfileResponse, error) {
	profile, err := s.candidateRepo.GetProfile(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateMyProfile overwrites the caller's candidate profile fields
func (s *CandidateService) UpdateMyProfile(ctx context.Context, actor auth.Actor, req candidate.UpdateProfileRequest) (*candidate.ProfileResponse, error) {
	entity, err := s.candidateRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	entity.City = strings.TrimSpace(req.City)
	entity.Bio = strings.TrimSpace(req.Bio)
	entity.ExperienceLevel = strings.TrimSpace(req.ExperienceLevel)
	entity.CVURL = strings.TrimSpace(req.CVURL)
	entity.Phone = strings.TrimSpace(req.Phone)

	if err := s.candidateRepo.Update(ctx, entity); err != nil {
		return nil, errx.Wrap(err, "failed to update candidate", errx.TypeInternal)
	}

	return s.candidateRepo.GetProfile(ctx, actor.UserID)
}

// ListMySkills returns the caller's skills ordered by name
func (s *CandidateService) ListMySkills(ctx context.Context, actor auth.Actor) ([]candidate.SkillResponse, error) {
	entity, err := s.candidateRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.candidateRepo.ListSkills(ctx, entity.ID)
}

// AttachSkill adds a skill to the caller's profile
func (s *CandidateService) AttachSkill(ctx context.Context, actor auth.Actor, skillID kernel.SkillID) error {
	entity, err := s.candidateRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	return s.candidateRepo.AddSkill(ctx, entity.ID, skillID)
}

// DetachSkill removes a skill from the caller's profile
func (s *CandidateService) DetachSkill(ctx context.Context, actor auth.Actor, skillID kernel.SkillID) error {
	entity, err := s.candidateRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	return s.candidateRepo.RemoveSkill(ctx, entity.ID, skillID)
}
