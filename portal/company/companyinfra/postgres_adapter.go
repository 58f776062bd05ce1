package companyinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/company"
)

// PostgresCompanyRepository implements company.Repository using PostgreSQL
type PostgresCompanyRepository struct {
	db *sqlx.DB
}

func NewPostgresCompanyRepository(db *sqlx.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

type companyModel struct {
	ID          string  `db:"id"`
	UserID      string  `db:"user_id"`
	Name        string  `db:"name"`
	Industry    string  `db:"industry"`
	City        string  `db:"city"`
	Website     *string `db:"website"`
	Description string  `db:"description"`
}

type companyProfileModel struct {
	companyModel
	OwnerFullName string `db:"owner_full_name"`
	OwnerEmail    string `db:"owner_email"`
}

type companyJobModel struct {
	ID       string `db:"id"`
	Title    string `db:"title"`
	City     string `db:"city"`
	IsRemote bool   `db:"is_remote"`
}

func (m *companyModel) toEntity() *company.Company {
	website := ""
	if m.Website != nil {
		website = *m.Website
	}
	return &company.Company{
		ID:          kernel.CompanyID(m.ID),
		UserID:      kernel.UserID(m.UserID),
		Name:        m.Name,
		Industry:    m.Industry,
		City:        m.City,
		Website:     website,
		Description: m.Description,
	}
}

func fromEntity(c *company.Company) *companyModel {
	var website *string
	if c.Website != "" {
		w := c.Website
		website = &w
	}
	return &companyModel{
		ID:          c.ID.String(),
		UserID:      c.UserID.String(),
		Name:        c.Name,
		Industry:    c.Industry,
		City:        c.City,
		Website:     website,
		Description: c.Description,
	}
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model := fromEntity(c)

	query := `
		INSERT INTO companies (id, user_id, name, industry, city, website, description)
		VALUES (:id, :user_id, :name, :industry, :city, :website, :description)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id kernel.CompanyID) (*company.Company, error) {
	query := `
		SELECT id, user_id, name, industry, city, website, description
		FROM companies
		WHERE id = $1
	`

	var model companyModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrCompanyNotFound()
		}
		return nil, fmt.Errorf("failed to get company by id: %w", err)
	}

	return model.toEntity(), nil
}

func (r *PostgresCompanyRepository) GetByUserID(ctx context.Context, userID kernel.UserID) (*company.Company, error) {
	query := `
		SELECT id, user_id, name, industry, city, website, description
		FROM companies
		WHERE user_id = $1
	`

	var model companyModel
	err := r.db.GetContext(ctx, &model, query, userID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get company by user id: %w", err)
	}

	return model.toEntity(), nil
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := fromEntity(c)

	query := `
		UPDATE companies SET
			name = :name,
			industry = :industry,
			city = :city,
			website = :website,
			description = :description
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return company.ErrCompanyNotFound()
	}

	return nil
}

func (r *PostgresCompanyRepository) ListPublic(ctx context.Context) ([]company.ListItemResponse, error) {
	query := `
		SELECT id, name, city, industry
		FROM companies
		ORDER BY name ASC
	`

	var models []struct {
		ID       string `db:"id"`
		Name     string `db:"name"`
		City     string `db:"city"`
		Industry string `db:"industry"`
	}
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	items := make([]company.ListItemResponse, 0, len(models))
	for _, m := range models {
		items = append(items, company.ListItemResponse{
			ID:       kernel.CompanyID(m.ID),
			Name:     m.Name,
			City:     m.City,
			Industry: m.Industry,
		})
	}

	return items, nil
}

func (r *PostgresCompanyRepository) GetPublicDetails(ctx context.Context, id kernel.CompanyID) (*company.PublicDetailsResponse, error) {
	query := `
		SELECT id, user_id, name, industry, city, website, description
		FROM companies
		WHERE id = $1
	`

	var model companyModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrCompanyNotFound()
		}
		return nil, fmt.Errorf("failed to get company details: %w", err)
	}

	jobsQuery := `
		SELECT id, title, city, is_remote
		FROM jobs
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	var jobModels []companyJobModel
	if err := r.db.SelectContext(ctx, &jobModels, jobsQuery, id.String()); err != nil {
		return nil, fmt.Errorf("failed to list company jobs: %w", err)
	}

	jobs := make([]company.JobItemResponse, 0, len(jobModels))
	for _, jm := range jobModels {
		jobs = append(jobs, company.JobItemResponse{
			ID:       kernel.JobID(jm.ID),
			Title:    jm.Title,
			City:     jm.City,
			IsRemote: jm.IsRemote,
		})
	}

	return &company.PublicDetailsResponse{
		ID:          kernel.CompanyID(model.ID),
		Name:        model.Name,
		City:        model.City,
		Industry:    model.Industry,
		Description: model.Description,
		Jobs:        jobs,
	}, nil
}

func (r *PostgresCompanyRepository) GetProfile(ctx context.Context, userID kernel.UserID) (*company.ProfileResponse, error) {
	query := `
		SELECT
			c.id, c.user_id, c.name, c.industry, c.city, c.website, c.description,
			u.full_name AS owner_full_name,
			u.email AS owner_email
		FROM companies c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.user_id = $1
	`

	var model companyProfileModel
	err := r.db.GetContext(ctx, &model, query, userID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}

	website := ""
	if model.Website != nil {
		website = *model.Website
	}

	return &company.ProfileResponse{
		ID:            kernel.CompanyID(model.ID),
		Name:          model.Name,
		Industry:      model.Industry,
		City:          model.City,
		Website:       website,
		Description:   model.Description,
		UserID:        kernel.UserID(model.UserID),
		OwnerFullName: model.OwnerFullName,
		OwnerEmail:    kernel.Email(model.OwnerEmail),
	}, nil
}
