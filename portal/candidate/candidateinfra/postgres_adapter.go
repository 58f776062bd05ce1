package candidateinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/candidate"
)

// PostgresCandidateRepository implements candidate.Repository using PostgreSQL
type PostgresCandidateRepository struct {
	db *sqlx.DB
}

func NewPostgresCandidateRepository(db *sqlx.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

type candidateModel struct {
	ID              string  `db:"id"`
	UserID          string  `db:"user_id"`
	City            string  `db:"city"`
	Bio             *string `db:"bio"`
	ExperienceLevel string  `db:"experience_level"`
	CVURL           *string `db:"cv_url"`
	Phone           *string `db:"phone"`
}

type candidateProfileModel struct {
	candidateModel
	FullName string `db:"full_name"`
	Email    string `db:"email"`
}

func derefOrEmpty(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (m *candidateModel) toEntity() *candidate.Candidate {
	return &candidate.Candidate{
		ID:              kernel.CandidateID(m.ID),
		UserID:          kernel.UserID(m.UserID),
		City:            m.City,
		Bio:             derefOrEmpty(m.Bio),
		ExperienceLevel: m.ExperienceLevel,
		CVURL:           derefOrEmpty(m.CVURL),
		Phone:           derefOrEmpty(m.Phone),
	}
}

func fromEntity(c *candidate.Candidate) *candidateModel {
	return &candidateModel{
		ID:              c.ID.String(),
		UserID:          c.UserID.String(),
		City:            c.City,
		Bio:             nilIfEmpty(c.Bio),
		ExperienceLevel: c.ExperienceLevel,
		CVURL:           nilIfEmpty(c.CVURL),
		Phone:           nilIfEmpty(c.Phone),
	}
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	model := fromEntity(c)

	query := `
		INSERT INTO candidates (id, user_id, city, bio, experience_level, cv_url, phone)
		VALUES (:id, :user_id, :city, :bio, :experience_level, :cv_url, :phone)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := `
		SELECT id, user_id, city, bio, experience_level, cv_url, phone
		FROM candidates
		WHERE id = $1
	`

	var model candidateModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrCandidateNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate by id: %w", err)
	}

	return model.toEntity(), nil
}

func (r *PostgresCandidateRepository) GetByUserID(ctx context.Context, userID kernel.UserID) (*candidate.Candidate, error) {
	query := `
		SELECT id, user_id, city, bio, experience_level, cv_url, phone
		FROM candidates
		WHERE user_id = $1
	`

	var model candidateModel
	err := r.db.GetContext(ctx, &model, query, userID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate by user id: %w", err)
	}

	return model.toEntity(), nil
}

func (r *PostgresCandidateRepository) Update(ctx context.Context, c *candidate.Candidate) error {
	model := fromEntity(c)

	query := `
		UPDATE candidates SET
			city = :city,
			bio = :bio,
			experience_level = :experience_level,
			cv_url = :cv_url,
			phone = :phone
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

func (r *PostgresCandidateRepository) GetProfile(ctx context.Context, userID kernel.UserID) (*candidate.ProfileResponse, error) {
	query := `
		SELECT
			c.id, c.user_id, c.city, c.bio, c.experience_level, c.cv_url, c.phone,
			u.full_name,
			u.email
		FROM candidates c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.user_id = $1
	`

	var model candidateProfileModel
	err := r.db.GetContext(ctx, &model, query, userID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate profile: %w", err)
	}

	return &candidate.ProfileResponse{
		ID:              kernel.CandidateID(model.ID),
		City:            model.City,
		Bio:             derefOrEmpty(model.Bio),
		ExperienceLevel: model.ExperienceLevel,
		CVURL:           derefOrEmpty(model.CVURL),
		Phone:           derefOrEmpty(model.Phone),
		UserID:          kernel.UserID(model.UserID),
		FullName:        model.FullName,
		Email:           kernel.Email(model.Email),
	}, nil
}

func (r *PostgresCandidateRepository) AddSkill(ctx context.Context, id kernel.CandidateID, skillID kernel.SkillID) error {
	query := `INSERT INTO candidate_skills (candidate_id, skill_id) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, id.String(), skillID.String())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return candidate.ErrSkillAlreadyAttached()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return candidate.ErrUnknownSkill().WithDetail("skill_id", skillID.String())
			}
		}
		return fmt.Errorf("failed to attach skill: %w", err)
	}

	return nil
}

func (r *PostgresCandidateRepository) RemoveSkill(ctx context.Context, id kernel.CandidateID, skillID kernel.SkillID) error {
	query := `DELETE FROM candidate_skills WHERE candidate_id = $1 AND skill_id = $2`

	result, err := r.db.ExecContext(ctx, query, id.String(), skillID.String())
	if err != nil {
		return fmt.Errorf("failed to detach skill: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return candidate.ErrSkillNotAttached()
	}

	return nil
}

func (r *PostgresCandidateRepository) ListSkills(ctx context.Context, id kernel.CandidateID) ([]candidate.SkillResponse, error) {
	query := `
		SELECT s.id, s.name
		FROM candidate_skills cs
		INNER JOIN skills s ON cs.skill_id = s.id
		WHERE cs.candidate_id = $1
		ORDER BY s.name ASC
	`

	var models []struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &models, query, id.String()); err != nil {
		return nil, fmt.Errorf("failed to list candidate skills: %w", err)
	}

	skills := make([]candidate.SkillResponse, 0, len(models))
	for _, m := range models {
		skills = append(skills, candidate.SkillResponse{
			ID:   kernel.SkillID(m.ID),
			Name: m.Name,
		})
	}

	return skills, nil
}
