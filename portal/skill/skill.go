package skill

import (
	"github.com/portalhq/jobboard/pkg/kernel"
)

// Skill is a directory entry. Names are unique case-insensitively.
type Skill struct {
	ID   kernel.SkillID `db:"id" json:"id"`
	Name string         `db:"name" json:"name"`
}
