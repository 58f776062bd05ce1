package applicationsrv

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/portalhq/jobboard/pkg/errx"
	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/application"
	"github.com/portalhq/jobboard/portal/candidate"
	"github.com/portalhq/jobboard/portal/company"
	"github.com/portalhq/jobboard/portal/job"
)

// ApplicationService provides business operations for the application
// workflow
type ApplicationService struct {
	applicationRepo application.Repository
	candidateRepo   candidate.Repository
	jobRepo         job.Repository
	companyRepo     company.Repository
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	candidateRepo candidate.Repository,
	jobRepo job.Repository,
	companyRepo company.Repository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
	}
}

// Apply submits the caller's application to a job. The caller must own a
// candidate profile, the job must exist and not be expired, and the
// candidate may apply to each job only once.
func (s *ApplicationService) Apply(ctx context.Context, actor auth.Actor, jobID kernel.JobID, req application.ApplyRequest) (*application.Application, error) {
	candidateEntity, err := s.candidateProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if jobEntity.IsExpired(now) {
		return nil, application.ErrJobExpired().WithDetail("job_id", jobID.String())
	}

	// Friendly pre-check; the unique index backstops racing applies.
	exists, err := s.applicationRepo.Exists(ctx, jobID, candidateEntity.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check existing application", errx.TypeInternal)
	}
	if exists {
		return nil, application.ErrAlreadyApplied().WithDetail("job_id", jobID.String())
	}

	snapshot := strings.TrimSpace(req.CVURLSnapshot)
	if snapshot == "" {
		snapshot = candidateEntity.CVURL
	}

	newApplication := &application.Application{
		ID:            kernel.NewApplicationID(uuid.NewString()),
		JobID:         jobID,
		CandidateID:   candidateEntity.ID,
		Status:        application.StatusPending,
		CoverLetter:   strings.TrimSpace(req.CoverLetter),
		CVURLSnapshot: snapshot,
		AppliedAt:     now,
	}

	if err := s.applicationRepo.Create(ctx, newApplication); err != nil {
		return nil, err
	}

	return newApplication, nil
}

// GetMyApplications returns the caller's application history, newest first
func (s *ApplicationService) GetMyApplications(ctx context.Context, actor auth.Actor, pagination kernel.PaginationOptions) (*kernel.Paginated[application.MyApplicationResponse], error) {
	candidateEntity, err := s.candidateProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	pagination = pagination.Normalize()

	result, err := s.applicationRepo.ListByCandidate(ctx, candidateEntity.ID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	return result, nil
}

// GetApplicationsForJob returns one job's applicants to its owner or an
// admin, newest first
func (s *ApplicationService) GetApplicationsForJob(ctx context.Context, actor auth.Actor, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.JobApplicationResponse], error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	owner, err := s.companyRepo.GetByID(ctx, jobEntity.CompanyID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to resolve job owner", errx.TypeInternal)
	}

	if !actor.CanActOn(owner.UserID) {
		return nil, application.ErrNotJobOwner().WithDetail("job_id", jobID.String())
	}

	pagination = pagination.Normalize()

	result, err := s.applicationRepo.ListByJob(ctx, jobID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	return result, nil
}

// UpdateApplicationStatus moves an application to any of the known
// statuses. Only the owner of the job or an admin may update; there is no
// transition ordering, so re-opening to Pending is allowed.
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, actor auth.Actor, applicationID kernel.ApplicationID, req application.UpdateStatusRequest) error {
	newStatus, ok := application.ParseStatus(req.Status)
	if !ok {
		return application.ErrInvalidStatus().WithDetail("status", req.Status)
	}

	owned, err := s.applicationRepo.GetWithOwner(ctx, applicationID)
	if err != nil {
		return err
	}

	if !actor.CanActOn(owned.OwnerUserID) {
		return application.ErrNotJobOwner().WithDetail("application_id", applicationID.String())
	}

	return s.applicationRepo.UpdateStatus(ctx, applicationID, newStatus, time.Now())
}

// candidateProfile resolves the caller's candidate profile. Only a missing
// profile means the caller is not eligible; any other lookup failure is an
// infrastructure fault and keeps its cause.
func (s *ApplicationService) candidateProfile(ctx context.Context, actor auth.Actor) (*candidate.Candidate, error) {
	candidateEntity, err := s.candidateRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, candidate.ErrProfileNotFound()) {
			return nil, application.ErrOnlyCandidatesCanApply().WithDetail("user_id", actor.UserID.String())
		}
		return nil, errx.Wrap(err, "failed to load candidate profile", errx.TypeInternal)
	}
	return candidateEntity, nil
}
