package job

import (
	"context"
	"time"

	"github.com/portalhq/jobboard/pkg/kernel"
)

type Repository interface {
	// Create persists a new job posting
	Create(ctx context.Context, job *Job) error

	// GetByID retrieves a job by ID, expired or not
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// GetDetails retrieves a job joined with its company card,
	// expired or not
	GetDetails(ctx context.Context, id kernel.JobID) (*DetailsResponse, error)

	// Search retrieves the page of postings visible at the given instant,
	// filtered and sorted per the request
	Search(ctx context.Context, req SearchJobsRequest, now time.Time) (*kernel.Paginated[ListItemResponse], error)

	// Delete removes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// CountApplications counts the applications referencing a job
	CountApplications(ctx context.Context, id kernel.JobID) (int64, error)
}
