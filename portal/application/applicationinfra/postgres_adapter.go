package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/application"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID            string     `db:"id"`
	JobID         string     `db:"job_id"`
	CandidateID   string     `db:"candidate_id"`
	Status        string     `db:"status"`
	CoverLetter   *string    `db:"cover_letter"`
	CVURLSnapshot *string    `db:"cv_url_snapshot"`
	AppliedAt     time.Time  `db:"applied_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

type ownedApplicationModel struct {
	applicationModel
	OwnerUserID string `db:"owner_user_id"`
}

// myApplicationModel for the candidate history join
type myApplicationModel struct {
	ID          string    `db:"id"`
	AppliedAt   time.Time `db:"applied_at"`
	Status      string    `db:"status"`
	JobID       string    `db:"job_id"`
	JobTitle    string    `db:"job_title"`
	JobCity     string    `db:"job_city"`
	IsRemote    bool      `db:"is_remote"`
	CompanyID   string    `db:"company_id"`
	CompanyName string    `db:"company_name"`
}

// jobApplicationModel for the employer view join
type jobApplicationModel struct {
	ID                string    `db:"id"`
	AppliedAt         time.Time `db:"applied_at"`
	Status            string    `db:"status"`
	CandidateID       string    `db:"candidate_id"`
	CandidateFullName string    `db:"candidate_full_name"`
	CandidateCity     string    `db:"candidate_city"`
	ExperienceLevel   string    `db:"experience_level"`
	CVURL             *string   `db:"cv_url"`
	CoverLetter       *string   `db:"cover_letter"`
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

func (m *applicationModel) toEntity() *application.Application {
	return &application.Application{
		ID:            kernel.ApplicationID(m.ID),
		JobID:         kernel.JobID(m.JobID),
		CandidateID:   kernel.CandidateID(m.CandidateID),
		Status:        application.ApplicationStatus(m.Status),
		CoverLetter:   derefOrEmpty(m.CoverLetter),
		CVURLSnapshot: derefOrEmpty(m.CVURLSnapshot),
		AppliedAt:     m.AppliedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromEntity(app *application.Application) *applicationModel {
	return &applicationModel{
		ID:            app.ID.String(),
		JobID:         app.JobID.String(),
		CandidateID:   app.CandidateID.String(),
		Status:        app.Status.String(),
		CoverLetter:   nilIfEmpty(app.CoverLetter),
		CVURLSnapshot: nilIfEmpty(app.CVURLSnapshot),
		AppliedAt:     app.AppliedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model := fromEntity(app)

	query := `
		INSERT INTO applications (
			id, job_id, candidate_id, status, cover_letter,
			cv_url_snapshot, applied_at, updated_at
		) VALUES (
			:id, :job_id, :candidate_id, :status, :cover_letter,
			:cv_url_snapshot, :applied_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			// Two racing applies both pass the pre-check; the unique
			// index on (job_id, candidate_id) settles it here.
			if pqErr.Code == "23505" { // unique_violation
				return application.ErrAlreadyApplied()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid foreign key reference: %w", err)
			}
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

func (r *PostgresApplicationRepository) Exists(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, jobID.String(), candidateID.String()); err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}

	return exists, nil
}

func (r *PostgresApplicationRepository) GetWithOwner(ctx context.Context, id kernel.ApplicationID) (*application.OwnedApplication, error) {
	query := `
		SELECT
			a.id, a.job_id, a.candidate_id, a.status, a.cover_letter,
			a.cv_url_snapshot, a.applied_at, a.updated_at,
			c.user_id AS owner_user_id
		FROM applications a
		INNER JOIN jobs j ON a.job_id = j.id
		INNER JOIN companies c ON j.company_id = c.id
		WHERE a.id = $1
	`

	var model ownedApplicationModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application with owner: %w", err)
	}

	return &application.OwnedApplication{
		Application: *model.toEntity(),
		OwnerUserID: kernel.UserID(model.OwnerUserID),
	}, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.ApplicationStatus, updatedAt time.Time) error {
	query := `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status.String(), updatedAt, id.String())
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.MyApplicationResponse], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE candidate_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, candidateID.String()); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	query := `
		SELECT
			a.id, a.applied_at, a.status,
			j.id AS job_id,
			j.title AS job_title,
			j.city AS job_city,
			j.is_remote,
			c.id AS company_id,
			c.name AS company_name
		FROM applications a
		INNER JOIN jobs j ON a.job_id = j.id
		INNER JOIN companies c ON j.company_id = c.id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []myApplicationModel
	if err := r.db.SelectContext(ctx, &models, query, candidateID.String(), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list applications by candidate: %w", err)
	}

	items := make([]application.MyApplicationResponse, 0, len(models))
	for _, m := range models {
		items = append(items, application.MyApplicationResponse{
			ApplicationID: kernel.ApplicationID(m.ID),
			AppliedAt:     m.AppliedAt,
			Status:        application.ApplicationStatus(m.Status),
			JobID:         kernel.JobID(m.JobID),
			JobTitle:      m.JobTitle,
			JobCity:       m.JobCity,
			IsRemote:      m.IsRemote,
			CompanyID:     kernel.CompanyID(m.CompanyID),
			CompanyName:   m.CompanyName,
		})
	}

	return kernel.NewPaginated(items, total, pagination.Page, pagination.PageSize), nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.JobApplicationResponse], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE job_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, jobID.String()); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	query := `
		SELECT
			a.id, a.applied_at, a.status, a.cover_letter,
			c.id AS candidate_id,
			u.full_name AS candidate_full_name,
			c.city AS candidate_city,
			c.experience_level,
			COALESCE(a.cv_url_snapshot, c.cv_url) AS cv_url
		FROM applications a
		INNER JOIN candidates c ON a.candidate_id = c.id
		INNER JOIN users u ON c.user_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []jobApplicationModel
	if err := r.db.SelectContext(ctx, &models, query, jobID.String(), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}

	items := make([]application.JobApplicationResponse, 0, len(models))
	for _, m := range models {
		items = append(items, application.JobApplicationResponse{
			ApplicationID:     kernel.ApplicationID(m.ID),
			AppliedAt:         m.AppliedAt,
			Status:            application.ApplicationStatus(m.Status),
			CandidateID:       kernel.CandidateID(m.CandidateID),
			CandidateFullName: m.CandidateFullName,
			CandidateCity:     m.CandidateCity,
			ExperienceLevel:   m.ExperienceLevel,
			CVURL:             derefOrEmpty(m.CVURL),
			CoverLetter:       derefOrEmpty(m.CoverLetter),
		})
	}

	return kernel.NewPaginated(items, total, pagination.Page, pagination.PageSize), nil
}
