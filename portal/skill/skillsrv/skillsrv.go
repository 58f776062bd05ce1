package skillsrv

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/portalhq/jobboard/pkg/errx"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/skill"
)

// SkillService provides business operations for the skill directory
type SkillService struct {
	skillRepo skill.Repository
}

// NewSkillService creates a new instance of the skill service
func NewSkillService(skillRepo skill.Repository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// ListSkills returns the directory ordered by name
func (s *SkillService) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list skills", errx.TypeInternal)
	}
	return skills, nil
}

// CreateSkill adds a new skill. Names are unique case-insensitively; the
// existence check is a courtesy, the unique index has the final word.
func (s *SkillService) CreateSkill(ctx context.Context, name string) (*skill.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, skill.ErrNameRequired()
	}

	exists, err := s.skillRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check skill name", errx.TypeInternal)
	}
	if exists {
		return nil, skill.ErrSkillAlreadyExists().WithDetail("name", name)
	}

	newSkill := &skill.Skill{
		ID:   kernel.NewSkillID(uuid.NewString()),
		Name: name,
	}
	if err := s.skillRepo.Create(ctx, newSkill); err != nil {
		return nil, err
	}

	return newSkill, nil
}

// DeleteSkill removes a skill from the directory
func (s *SkillService) DeleteSkill(ctx context.Context, id kernel.SkillID) error {
	return s.skillRepo.Delete(ctx, id)
}
