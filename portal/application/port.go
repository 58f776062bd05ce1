package application

import (
	"context"
	"time"

	"github.com/portalhq/jobboard/pkg/kernel"
)

type Repository interface {
	// Create persists a new application. A duplicate (job, candidate)
	// pair surfaces as ErrAlreadyApplied, whether caught by the
	// pre-check or by the unique index under concurrency.
	Create(ctx context.Context, application *Application) error

	// Exists checks for an application by its natural key
	Exists(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (bool, error)

	// GetWithOwner retrieves an application joined with the job's
	// owning user
	GetWithOwner(ctx context.Context, id kernel.ApplicationID) (*OwnedApplication, error)

	// UpdateStatus sets the status and update timestamp
	UpdateStatus(ctx context.Context, id kernel.ApplicationID, status ApplicationStatus, updatedAt time.Time) error

	// ListByCandidate retrieves the candidate's history, newest first
	ListByCandidate(ctx context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[MyApplicationResponse], error)

	// ListByJob retrieves one job's applicants, newest first
	ListByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[JobApplicationResponse], error)
}
