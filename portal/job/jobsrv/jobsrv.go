package jobsrv

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/portalhq/jobboard/pkg/errx"
	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/company"
	"github.com/portalhq/jobboard/portal/job"
)

// DefaultPostingLifetime is applied when a new posting has no explicit
// expiry.
const DefaultPostingLifetime = 30 * 24 * time.Hour

// JobService provides business operations for job postings
type JobService struct {
	jobRepo     job.Repository
	companyRepo company.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository, companyRepo company.Repository) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

// CreateJob creates a posting under the caller's company. The caller must
// own a company profile; admins without one cannot post.
func (s *JobService) CreateJob(ctx context.Context, actor auth.Actor, req job.CreateJobRequest) (*job.Job, error) {
	companyEntity, err := s.companyRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, company.ErrProfileNotFound()) {
			return nil, job.ErrOnlyEmployersCanPost().WithDetail("user_id", actor.UserID.String())
		}
		return nil, errx.Wrap(err, "failed to load company profile", errx.TypeInternal)
	}

	employmentType, ok := kernel.ParseEmploymentType(strings.TrimSpace(req.EmploymentType))
	if !ok {
		return nil, job.ErrInvalidEmploymentType().WithDetail("employment_type", req.EmploymentType)
	}

	// A zero maximum means "no upper bound", so only a positive maximum
	// can invalidate the range.
	if req.SalaryMax > 0 && req.SalaryMin > req.SalaryMax {
		return nil, job.ErrInvalidSalaryRange().
			WithDetail("salary_min", req.SalaryMin).
			WithDetail("salary_max", req.SalaryMax)
	}

	now := time.Now()
	expiresAt := req.ExpiresAt
	if expiresAt == nil {
		def := now.Add(DefaultPostingLifetime)
		expiresAt = &def
	}

	newJob := &job.Job{
		ID:             kernel.NewJobID(uuid.NewString()),
		CompanyID:      companyEntity.ID,
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		City:           strings.TrimSpace(req.City),
		IsRemote:       req.IsRemote,
		EmploymentType: employmentType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		CreatedAt:      now,
		ExpiresAt:      expiresAt,
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	return newJob, nil
}

// SearchJobs runs the public search. Expired postings are never returned;
// a direct GetJobDetails still shows them.
func (s *JobService) SearchJobs(ctx context.Context, req job.SearchJobsRequest) (*job.PaginatedJobsResponse, error) {
	req.Pagination = req.Pagination.Normalize()

	result, err := s.jobRepo.Search(ctx, req, time.Now())
	if err != nil {
		return nil, errx.Wrap(err, "failed to search jobs", errx.TypeInternal)
	}

	return result, nil
}

// GetJobDetails returns the posting with its company card, expired or not
func (s *JobService) GetJobDetails(ctx context.Context, jobID kernel.JobID) (*job.DetailsResponse, error) {
	return s.jobRepo.GetDetails(ctx, jobID)
}

// DeleteJob removes a posting. Only the owning employer or an admin may
// delete, and never while applications still reference it.
func (s *JobService) DeleteJob(ctx context.Context, actor auth.Actor, jobID kernel.JobID) error {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	owner, err := s.companyRepo.GetByID(ctx, jobEntity.CompanyID)
	if err != nil {
		return errx.Wrap(err, "failed to resolve job owner", errx.TypeInternal)
	}

	if !actor.CanActOn(owner.UserID) {
		return job.ErrNotJobOwner().WithDetail("job_id", jobID.String())
	}

	count, err := s.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		return errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}
	if count > 0 {
		return job.ErrJobHasApplications().WithDetail("applications", count)
	}

	return s.jobRepo.Delete(ctx, jobID)
}
