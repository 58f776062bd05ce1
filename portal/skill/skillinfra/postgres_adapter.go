package skillinfra

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/skill"
)

// PostgresSkillRepository implements skill.Repository using PostgreSQL
type PostgresSkillRepository struct {
	db *sqlx.DB
}

func NewPostgresSkillRepository(db *sqlx.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

type skillModel struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s *skill.Skill) error {
	query := `INSERT INTO skills (id, name) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, s.ID.String(), s.Name)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return skill.ErrSkillAlreadyExists()
		}
		return fmt.Errorf("failed to create skill: %w", err)
	}

	return nil
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]skill.Skill, error) {
	query := `SELECT id, name FROM skills ORDER BY name ASC`

	var models []skillModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	skills := make([]skill.Skill, 0, len(models))
	for _, m := range models {
		skills = append(skills, skill.Skill{
			ID:   kernel.SkillID(m.ID),
			Name: m.Name,
		})
	}

	return skills, nil
}

func (r *PostgresSkillRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM skills WHERE LOWER(name) = LOWER($1))`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, fmt.Errorf("failed to check skill existence: %w", err)
	}

	return exists, nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id kernel.SkillID) error {
	query := `DELETE FROM skills WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return skill.ErrSkillNotFound()
	}

	return nil
}
