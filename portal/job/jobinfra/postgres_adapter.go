package jobinfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/job"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// ============================================================================
// Database Models
// ============================================================================

type jobModel struct {
	ID             string     `db:"id"`
	CompanyID      string     `db:"company_id"`
	Title          string     `db:"title"`
	Description    string     `db:"description"`
	City           string     `db:"city"`
	IsRemote       bool       `db:"is_remote"`
	EmploymentType string     `db:"employment_type"`
	SalaryMin      float64    `db:"salary_min"`
	SalaryMax      float64    `db:"salary_max"`
	CreatedAt      time.Time  `db:"created_at"`
	ExpiresAt      *time.Time `db:"expires_at"`
}

// jobListItemModel for the search join with companies
type jobListItemModel struct {
	jobModel
	CompanyName string `db:"company_name"`
}

// jobDetailsModel for the details join with companies
type jobDetailsModel struct {
	jobModel
	CompanyName        string  `db:"company_name"`
	CompanyWebsite     *string `db:"company_website"`
	CompanyCity        string  `db:"company_city"`
	CompanyDescription string  `db:"company_description"`
}

func (m *jobModel) toEntity() *job.Job {
	return &job.Job{
		ID:             kernel.JobID(m.ID),
		CompanyID:      kernel.CompanyID(m.CompanyID),
		Title:          m.Title,
		Description:    m.Description,
		City:           m.City,
		IsRemote:       m.IsRemote,
		EmploymentType: kernel.EmploymentType(m.EmploymentType),
		SalaryMin:      m.SalaryMin,
		SalaryMax:      m.SalaryMax,
		CreatedAt:      m.CreatedAt,
		ExpiresAt:      m.ExpiresAt,
	}
}

func (m *jobListItemModel) toListItem() job.ListItemResponse {
	return job.ListItemResponse{
		ID:             kernel.JobID(m.ID),
		Title:          m.Title,
		City:           m.City,
		IsRemote:       m.IsRemote,
		EmploymentType: kernel.EmploymentType(m.EmploymentType),
		SalaryMin:      m.SalaryMin,
		SalaryMax:      m.SalaryMax,
		CreatedAt:      m.CreatedAt,
		ExpiresAt:      m.ExpiresAt,
		CompanyID:      kernel.CompanyID(m.CompanyID),
		CompanyName:    m.CompanyName,
	}
}

func fromEntity(j *job.Job) *jobModel {
	return &jobModel{
		ID:             j.ID.String(),
		CompanyID:      j.CompanyID.String(),
		Title:          j.Title,
		Description:    j.Description,
		City:           j.City,
		IsRemote:       j.IsRemote,
		EmploymentType: j.EmploymentType.String(),
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		CreatedAt:      j.CreatedAt,
		ExpiresAt:      j.ExpiresAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

func (r *PostgresJobRepository) Create(ctx context.Context, j *job.Job) error {
	model := fromEntity(j)

	query := `
		INSERT INTO jobs (
			id, company_id, title, description, city, is_remote,
			employment_type, salary_min, salary_max, created_at, expires_at
		) VALUES (
			:id, :company_id, :title, :description, :city, :is_remote,
			:employment_type, :salary_min, :salary_max, :created_at, :expires_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `
		SELECT
			id, company_id, title, description, city, is_remote,
			employment_type, salary_min, salary_max, created_at, expires_at
		FROM jobs
		WHERE id = $1
	`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity(), nil
}

func (r *PostgresJobRepository) GetDetails(ctx context.Context, id kernel.JobID) (*job.DetailsResponse, error) {
	query := `
		SELECT
			j.id, j.company_id, j.title, j.description, j.city, j.is_remote,
			j.employment_type, j.salary_min, j.salary_max, j.created_at, j.expires_at,
			c.name AS company_name,
			c.website AS company_website,
			c.city AS company_city,
			c.description AS company_description
		FROM jobs j
		INNER JOIN companies c ON j.company_id = c.id
		WHERE j.id = $1
	`

	var model jobDetailsModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job details: %w", err)
	}

	website := ""
	if model.CompanyWebsite != nil {
		website = *model.CompanyWebsite
	}

	return &job.DetailsResponse{
		ID:                 kernel.JobID(model.ID),
		Title:              model.Title,
		Description:        model.Description,
		City:               model.City,
		IsRemote:           model.IsRemote,
		EmploymentType:     kernel.EmploymentType(model.EmploymentType),
		SalaryMin:          model.SalaryMin,
		SalaryMax:          model.SalaryMax,
		CreatedAt:          model.CreatedAt,
		ExpiresAt:          model.ExpiresAt,
		CompanyID:          kernel.CompanyID(model.CompanyID),
		CompanyName:        model.CompanyName,
		CompanyWebsite:     website,
		CompanyCity:        model.CompanyCity,
		CompanyDescription: model.CompanyDescription,
	}, nil
}

// sortColumns is the whitelist for search ordering. Anything else falls
// back to created_at.
var sortColumns = map[string]string{
	"createdat": "j.created_at",
	"salarymin": "j.salary_min",
	"title":     "j.title",
}

// orderClause builds the ORDER BY from caller-supplied sort fields without
// ever interpolating them directly.
func orderClause(sortBy, sortDir string) string {
	column, ok := sortColumns[strings.ToLower(sortBy)]
	if !ok {
		column = "j.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(sortDir, "asc") {
		direction = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}

func (r *PostgresJobRepository) Search(ctx context.Context, req job.SearchJobsRequest, now time.Time) (*kernel.Paginated[job.ListItemResponse], error) {
	// Visibility window first, filters after
	whereConditions := []string{"(j.expires_at IS NULL OR j.expires_at > $1)"}
	args := []interface{}{now}
	argCount := 2

	if req.City != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("j.city = $%d", argCount))
		args = append(args, req.City)
		argCount++
	}

	if req.Type != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("j.employment_type = $%d", argCount))
		args = append(args, req.Type)
		argCount++
	}

	if req.Keyword != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("j.title ILIKE $%d", argCount))
		args = append(args, "%"+req.Keyword+"%")
		argCount++
	}

	if req.Remote != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("j.is_remote = $%d", argCount))
		args = append(args, *req.Remote)
		argCount++
	}

	whereClause := "WHERE " + strings.Join(whereConditions, " AND ")

	// Count total
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs j %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	// Get paginated results
	query := fmt.Sprintf(`
		SELECT
			j.id, j.company_id, j.title, j.description, j.city, j.is_remote,
			j.employment_type, j.salary_min, j.salary_max, j.created_at, j.expires_at,
			c.name AS company_name
		FROM jobs j
		INNER JOIN companies c ON j.company_id = c.id
		%s
		%s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderClause(req.SortBy, req.SortDir), argCount, argCount+1)

	args = append(args, req.Pagination.PageSize, req.Pagination.Offset())

	var models []jobListItemModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	items := make([]job.ListItemResponse, 0, len(models))
	for _, model := range models {
		items = append(items, model.toListItem())
	}

	return kernel.NewPaginated(items, total, req.Pagination.Page, req.Pagination.PageSize), nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		// Applications reference jobs with ON DELETE RESTRICT
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" { // foreign_key_violation
			return job.ErrJobHasApplications()
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

func (r *PostgresJobRepository) CountApplications(ctx context.Context, id kernel.JobID) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, id.String()); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	return count, nil
}
