package skill

import (
	"context"

	"github.com/portalhq/jobboard/pkg/kernel"
)

type Repository interface {
	// Create persists a new skill
	Create(ctx context.Context, skill *Skill) error

	// List retrieves all skills ordered by name
	List(ctx context.Context) ([]Skill, error)

	// ExistsByName checks for a name match, case-insensitively
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Delete removes a skill by ID
	Delete(ctx context.Context, id kernel.SkillID) error
}
