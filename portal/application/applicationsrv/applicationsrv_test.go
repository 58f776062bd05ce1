package applicationsrv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/application"
	"github.com/portalhq/jobboard/portal/application/applicationsrv"
	"github.com/portalhq/jobboard/portal/candidate"
	"github.com/portalhq/jobboard/portal/company"
	"github.com/portalhq/jobboard/portal/job"
)

// ============================================================================
// Fakes
// ============================================================================

type fakeApplicationRepo struct {
	applications map[kernel.ApplicationID]*application.Application
	owners       map[kernel.JobID]kernel.UserID
	failCreate   error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[kernel.ApplicationID]*application.Application),
		owners:       make(map[kernel.JobID]kernel.UserID),
	}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *application.Application) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, existing := range r.applications {
		if existing.JobID == app.JobID && existing.CandidateID == app.CandidateID {
			return application.ErrAlreadyApplied()
		}
	}
	r.applications[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) Exists(_ context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (bool, error) {
	for _, app := range r.applications {
		if app.JobID == jobID && app.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) GetWithOwner(_ context.Context, id kernel.ApplicationID) (*application.OwnedApplication, error) {
	app, ok := r.applications[id]
	if !ok {
		return nil, application.ErrApplicationNotFound()
	}
	return &application.OwnedApplication{
		Application: *app,
		OwnerUserID: r.owners[app.JobID],
	}, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id kernel.ApplicationID, status application.ApplicationStatus, updatedAt time.Time) error {
	app, ok := r.applications[id]
	if !ok {
		return application.ErrApplicationNotFound()
	}
	app.Status = status
	app.UpdatedAt = &updatedAt
	return nil
}

func (r *fakeApplicationRepo) ListByCandidate(_ context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.MyApplicationResponse], error) {
	items := make([]application.MyApplicationResponse, 0)
	for _, app := range r.applications {
		if app.CandidateID == candidateID {
			items = append(items, application.MyApplicationResponse{
				ApplicationID: app.ID,
				AppliedAt:     app.AppliedAt,
				Status:        app.Status,
				JobID:         app.JobID,
			})
		}
	}
	return kernel.NewPaginated(items, len(items), pagination.Page, pagination.PageSize), nil
}

func (r *fakeApplicationRepo) ListByJob(_ context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.JobApplicationResponse], error) {
	items := make([]application.JobApplicationResponse, 0)
	for _, app := range r.applications {
		if app.JobID == jobID {
			items = append(items, application.JobApplicationResponse{
				ApplicationID: app.ID,
				AppliedAt:     app.AppliedAt,
				Status:        app.Status,
				CandidateID:   app.CandidateID,
			})
		}
	}
	return kernel.NewPaginated(items, len(items), pagination.Page, pagination.PageSize), nil
}

type fakeCandidateRepo struct {
	byUser          map[kernel.UserID]*candidate.Candidate
	failGetByUserID error
}

func newFakeCandidateRepo(candidates ...*candidate.Candidate) *fakeCandidateRepo {
	r := &fakeCandidateRepo{byUser: make(map[kernel.UserID]*candidate.Candidate)}
	for _, c := range candidates {
		r.byUser[c.UserID] = c
	}
	return r
}

func (r *fakeCandidateRepo) Create(_ context.Context, c *candidate.Candidate) error {
	r.byUser[c.UserID] = c
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, _ kernel.CandidateID) (*candidate.Candidate, error) {
	return nil, candidate.ErrCandidateNotFound()
}

func (r *fakeCandidateRepo) GetByUserID(_ context.Context, userID kernel.UserID) (*candidate.Candidate, error) {
	if r.failGetByUserID != nil {
		return nil, r.failGetByUserID
	}
	if c, ok := r.byUser[userID]; ok {
		return c, nil
	}
	return nil, candidate.ErrProfileNotFound()
}

func (r *fakeCandidateRepo) Update(_ context.Context, _ *candidate.Candidate) error { return nil }

func (r *fakeCandidateRepo) GetProfile(_ context.Context, _ kernel.UserID) (*candidate.ProfileResponse, error) {
	return nil, candidate.ErrProfileNotFound()
}

func (r *fakeCandidateRepo) AddSkill(_ context.Context, _ kernel.CandidateID, _ kernel.SkillID) error {
	return nil
}

func (r *fakeCandidateRepo) RemoveSkill(_ context.Context, _ kernel.CandidateID, _ kernel.SkillID) error {
	return nil
}

func (r *fakeCandidateRepo) ListSkills(_ context.Context, _ kernel.CandidateID) ([]candidate.SkillResponse, error) {
	return nil, nil
}

type fakeJobRepo struct {
	jobs map[kernel.JobID]*job.Job
}

func newFakeJobRepo(jobs ...*job.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[kernel.JobID]*job.Job)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(_ context.Context, j *job.Job) error {
	r.jobs[j.ID] = j
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	if j, ok := r.jobs[id]; ok {
		return j, nil
	}
	return nil, job.ErrJobNotFound()
}

func (r *fakeJobRepo) GetDetails(_ context.Context, _ kernel.JobID) (*job.DetailsResponse, error) {
	return nil, job.ErrJobNotFound()
}

func (r *fakeJobRepo) Search(_ context.Context, req job.SearchJobsRequest, _ time.Time) (*kernel.Paginated[job.ListItemResponse], error) {
	return kernel.NewPaginated([]job.ListItemResponse{}, 0, req.Pagination.Page, req.Pagination.PageSize), nil
}

func (r *fakeJobRepo) Delete(_ context.Context, _ kernel.JobID) error { return nil }

func (r *fakeJobRepo) CountApplications(_ context.Context, _ kernel.JobID) (int64, error) {
	return 0, nil
}

type fakeCompanyRepo struct {
	byID map[kernel.CompanyID]*company.Company
}

func newFakeCompanyRepo(companies ...*company.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{byID: make(map[kernel.CompanyID]*company.Company)}
	for _, c := range companies {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *company.Company) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id kernel.CompanyID) (*company.Company, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return nil, company.ErrCompanyNotFound()
}

func (r *fakeCompanyRepo) GetByUserID(_ context.Context, _ kernel.UserID) (*company.Company, error) {
	return nil, company.ErrProfileNotFound()
}

func (r *fakeCompanyRepo) Update(_ context.Context, _ *company.Company) error { return nil }

func (r *fakeCompanyRepo) ListPublic(_ context.Context) ([]company.ListItemResponse, error) {
	return nil, nil
}

func (r *fakeCompanyRepo) GetPublicDetails(_ context.Context, _ kernel.CompanyID) (*company.PublicDetailsResponse, error) {
	return nil, company.ErrCompanyNotFound()
}

func (r *fakeCompanyRepo) GetProfile(_ context.Context, _ kernel.UserID) (*company.ProfileResponse, error) {
	return nil, company.ErrProfileNotFound()
}

// ============================================================================
// Fixtures
// ============================================================================

var (
	candidateActor = auth.Actor{UserID: "user-candidate", Role: auth.RoleCandidate}
	ownerActor     = auth.Actor{UserID: "user-owner", Role: auth.RoleEmployer}
	otherActor     = auth.Actor{UserID: "user-other", Role: auth.RoleEmployer}
	adminActor     = auth.Actor{UserID: "user-admin", Role: auth.RoleAdmin}
)

type fixture struct {
	applications *fakeApplicationRepo
	candidates   *fakeCandidateRepo
	jobs         *fakeJobRepo
	companies    *fakeCompanyRepo
	service      *applicationsrv.ApplicationService
}

func newFixture() *fixture {
	future := time.Now().Add(24 * time.Hour)

	applications := newFakeApplicationRepo()
	applications.owners["job-1"] = ownerActor.UserID

	candidates := newFakeCandidateRepo(&candidate.Candidate{
		ID:     "candidate-1",
		UserID: candidateActor.UserID,
		CVURL:  "https://cv.example/current.pdf",
	})
	jobs := newFakeJobRepo(&job.Job{
		ID:        "job-1",
		CompanyID: "company-1",
		Title:     "Backend Engineer",
		ExpiresAt: &future,
	})
	companies := newFakeCompanyRepo(&company.Company{
		ID:     "company-1",
		UserID: ownerActor.UserID,
	})

	return &fixture{
		applications: applications,
		candidates:   candidates,
		jobs:         jobs,
		companies:    companies,
		service:      applicationsrv.NewApplicationService(applications, candidates, jobs, companies),
	}
}

// ============================================================================
// Apply
// ============================================================================

func TestApply(t *testing.T) {
	f := newFixture()

	app, err := f.service.Apply(context.Background(), candidateActor, "job-1", application.ApplyRequest{
		CoverLetter:   "  I would love to join.  ",
		CVURLSnapshot: " https://cv.example/tailored.pdf ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.Status != application.StatusPending {
		t.Errorf("Status = %q, want %q", app.Status, application.StatusPending)
	}
	if app.CoverLetter != "I would love to join." {
		t.Errorf("CoverLetter = %q, want trimmed text", app.CoverLetter)
	}
	if app.CVURLSnapshot != "https://cv.example/tailored.pdf" {
		t.Errorf("CVURLSnapshot = %q, want the trimmed request value", app.CVURLSnapshot)
	}
	if app.CandidateID != "candidate-1" {
		t.Errorf("CandidateID = %q, want candidate-1", app.CandidateID)
	}
	if _, ok := f.applications.applications[app.ID]; !ok {
		t.Error("application was not persisted")
	}
}

func TestApplySnapshotFallsBackToCurrentCV(t *testing.T) {
	f := newFixture()

	app, err := f.service.Apply(context.Background(), candidateActor, "job-1", application.ApplyRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.CVURLSnapshot != "https://cv.example/current.pdf" {
		t.Errorf("CVURLSnapshot = %q, want the candidate's current CV", app.CVURLSnapshot)
	}
}

func TestApplyWithoutCandidateProfile(t *testing.T) {
	f := newFixture()

	_, err := f.service.Apply(context.Background(), ownerActor, "job-1", application.ApplyRequest{})
	if !errors.Is(err, application.ErrOnlyCandidatesCanApply()) {
		t.Errorf("err = %v, want ONLY_CANDIDATES_CAN_APPLY", err)
	}
}

func TestApplyProfileLookupFailure(t *testing.T) {
	f := newFixture()
	lookupErr := errors.New("connection refused")
	f.candidates.failGetByUserID = lookupErr

	_, err := f.service.Apply(context.Background(), candidateActor, "job-1", application.ApplyRequest{})
	if errors.Is(err, application.ErrOnlyCandidatesCanApply()) {
		t.Errorf("err = %v, want infrastructure failure, not ONLY_CANDIDATES_CAN_APPLY", err)
	}
	if !errors.Is(err, lookupErr) {
		t.Errorf("err = %v, want cause %v preserved", err, lookupErr)
	}
}

func TestApplyJobNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.Apply(context.Background(), candidateActor, "missing", application.ApplyRequest{})
	if !errors.Is(err, job.ErrJobNotFound()) {
		t.Errorf("err = %v, want JOB.NOT_FOUND", err)
	}
}

func TestApplyToExpiredJob(t *testing.T) {
	f := newFixture()
	past := time.Now().Add(-time.Hour)
	f.jobs.jobs["job-1"].ExpiresAt = &past

	_, err := f.service.Apply(context.Background(), candidateActor, "job-1", application.ApplyRequest{})
	if !errors.Is(err, application.ErrJobExpired()) {
		t.Errorf("err = %v, want JOB_EXPIRED", err)
	}
}

func TestApplyTwice(t *testing.T) {
	f := newFixture()

	if _, err := f.service.Apply(context.Background(), candidateActor, "job-1", application.ApplyRequest{}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}

	_, err := f.service.Apply(context.Background(), candidateActor, "job-1", application.ApplyRequest{})
	if !errors.Is(err, application.ErrAlreadyApplied()) {
		t.Errorf("err = %v, want ALREADY_APPLIED", err)
	}
	if len(f.applications.applications) != 1 {
		t.Errorf("stored applications = %d, want 1", len(f.applications.applications))
	}
}

func TestApplyRaceSurfacesConflict(t *testing.T) {
	// The pre-check passes but the insert hits the unique index, as it
	// would when two applies race.
	f := newFixture()
	f.applications.failCreate = application.ErrAlreadyApplied()

	_, err := f.service.Apply(context.Background(), candidateActor, "job-1", application.ApplyRequest{})
	if !errors.Is(err, application.ErrAlreadyApplied()) {
		t.Errorf("err = %v, want ALREADY_APPLIED", err)
	}
}

// ============================================================================
// GetMyApplications
// ============================================================================

func TestGetMyApplicationsAfterApply(t *testing.T) {
	f := newFixture()

	created, err := f.service.Apply(context.Background(), candidateActor, "job-1", application.ApplyRequest{})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	page, err := f.service.GetMyApplications(context.Background(), candidateActor, kernel.PaginationOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.TotalItems != 1 || len(page.Items) != 1 {
		t.Fatalf("TotalItems = %d, len(Items) = %d, want 1 and 1", page.TotalItems, len(page.Items))
	}
	row := page.Items[0]
	if row.ApplicationID != created.ID {
		t.Errorf("ApplicationID = %q, want %q", row.ApplicationID, created.ID)
	}
	if row.Status != application.StatusPending {
		t.Errorf("Status = %q, want %q", row.Status, application.StatusPending)
	}
}

func TestGetMyApplicationsWithoutProfile(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetMyApplications(context.Background(), ownerActor, kernel.PaginationOptions{})
	if !errors.Is(err, application.ErrOnlyCandidatesCanApply()) {
		t.Errorf("err = %v, want ONLY_CANDIDATES_CAN_APPLY", err)
	}
}

func TestGetMyApplicationsProfileLookupFailure(t *testing.T) {
	f := newFixture()
	lookupErr := errors.New("connection refused")
	f.candidates.failGetByUserID = lookupErr

	_, err := f.service.GetMyApplications(context.Background(), candidateActor, kernel.PaginationOptions{})
	if errors.Is(err, application.ErrOnlyCandidatesCanApply()) {
		t.Errorf("err = %v, want infrastructure failure, not ONLY_CANDIDATES_CAN_APPLY", err)
	}
	if !errors.Is(err, lookupErr) {
		t.Errorf("err = %v, want cause %v preserved", err, lookupErr)
	}
}

// ============================================================================
// GetApplicationsForJob
// ============================================================================

func TestGetApplicationsForJobOwnership(t *testing.T) {
	tests := []struct {
		name    string
		actor   auth.Actor
		wantErr bool
	}{
		{"owner may view", ownerActor, false},
		{"admin bypasses ownership", adminActor, false},
		{"other employer denied", otherActor, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if _, err := f.service.Apply(context.Background(), candidateActor, "job-1", application.ApplyRequest{}); err != nil {
				t.Fatalf("apply failed: %v", err)
			}

			page, err := f.service.GetApplicationsForJob(context.Background(), tt.actor, "job-1", kernel.PaginationOptions{})
			if tt.wantErr {
				if !errors.Is(err, application.ErrNotJobOwner()) {
					t.Errorf("err = %v, want NOT_JOB_OWNER", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(page.Items) != 1 {
				t.Errorf("len(Items) = %d, want 1", len(page.Items))
			}
		})
	}
}

func TestGetApplicationsForMissingJob(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetApplicationsForJob(context.Background(), ownerActor, "missing", kernel.PaginationOptions{})
	if !errors.Is(err, job.ErrJobNotFound()) {
		t.Errorf("err = %v, want JOB.NOT_FOUND", err)
	}
}

// ============================================================================
// UpdateApplicationStatus
// ============================================================================

func applyFixture(t *testing.T, f *fixture) *application.Application {
	t.Helper()
	app, err := f.service.Apply(context.Background(), candidateActor, "job-1", application.ApplyRequest{})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	return app
}

func TestUpdateApplicationStatus(t *testing.T) {
	f := newFixture()
	app := applyFixture(t, f)

	err := f.service.UpdateApplicationStatus(context.Background(), ownerActor, app.ID, application.UpdateStatusRequest{Status: "shortlisted"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := f.applications.applications[app.ID]
	if stored.Status != application.StatusShortlisted {
		t.Errorf("Status = %q, want %q", stored.Status, application.StatusShortlisted)
	}
	if stored.UpdatedAt == nil {
		t.Error("UpdatedAt should be stamped on status change")
	}
}

func TestUpdateApplicationStatusInvalid(t *testing.T) {
	f := newFixture()
	app := applyFixture(t, f)

	err := f.service.UpdateApplicationStatus(context.Background(), ownerActor, app.ID, application.UpdateStatusRequest{Status: "Archived"})
	if !errors.Is(err, application.ErrInvalidStatus()) {
		t.Errorf("err = %v, want INVALID_STATUS", err)
	}
	if f.applications.applications[app.ID].Status != application.StatusPending {
		t.Error("status should be untouched after an invalid request")
	}
}

func TestUpdateApplicationStatusNotFound(t *testing.T) {
	f := newFixture()

	err := f.service.UpdateApplicationStatus(context.Background(), ownerActor, "missing", application.UpdateStatusRequest{Status: "Accepted"})
	if !errors.Is(err, application.ErrApplicationNotFound()) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestUpdateApplicationStatusOwnership(t *testing.T) {
	f := newFixture()
	app := applyFixture(t, f)

	err := f.service.UpdateApplicationStatus(context.Background(), otherActor, app.ID, application.UpdateStatusRequest{Status: "Accepted"})
	if !errors.Is(err, application.ErrNotJobOwner()) {
		t.Errorf("err = %v, want NOT_JOB_OWNER", err)
	}

	if err := f.service.UpdateApplicationStatus(context.Background(), adminActor, app.ID, application.UpdateStatusRequest{Status: "Accepted"}); err != nil {
		t.Errorf("admin update failed: %v", err)
	}
}

func TestUpdateApplicationStatusPermissiveTransitions(t *testing.T) {
	f := newFixture()
	app := applyFixture(t, f)

	// Any state can reach any other, including back to Pending.
	for _, status := range []string{"Accepted", "Pending", "Rejected", "Shortlisted"} {
		if err := f.service.UpdateApplicationStatus(context.Background(), ownerActor, app.ID, application.UpdateStatusRequest{Status: status}); err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
	}
	if got := f.applications.applications[app.ID].Status; got != application.StatusShortlisted {
		t.Errorf("final status = %q, want %q", got, application.StatusShortlisted)
	}
}
