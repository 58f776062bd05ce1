package userauth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/portal/candidate"
	"github.com/portalhq/jobboard/portal/company"
	"github.com/portalhq/jobboard/portal/user"
	"github.com/portalhq/jobboard/portal/user/userauth"
)

// ============================================================================
// Fakes
// ============================================================================

type fakeUserRepo struct {
	byEmail        map[kernel.Email]*user.User
	byID           map[kernel.UserID]*user.User
	failGetByEmail error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[kernel.Email]*user.User),
		byID:    make(map[kernel.UserID]*user.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return user.ErrEmailTaken()
	}
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound()
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	if r.failGetByEmail != nil {
		return nil, r.failGetByEmail
	}
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound()
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email kernel.Email) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type fakeCompanyRepo struct {
	created []*company.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *company.Company) error {
	r.created = append(r.created, c)
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, _ kernel.CompanyID) (*company.Company, error) {
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

type fakeCandidateRepo struct {
	created []*candidate.Candidate
}

func (r *fakeCandidateRepo) Create(_ context.Context, c *candidate.Candidate) error {
	r.created = append(r.created, c)
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, _ kernel.CandidateID) (*candidate.Candidate, error) {
	return nil, candidate.ErrCandidateNotFound()
}

func (r *fakeCandidateRepo) GetByUserID(_ context.Context, _ kernel.UserID) (*candidate.Candidate, error) {
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

type memorySessionStore struct {
	sessions map[string]kernel.UserID
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]kernel.UserID)}
}

func (s *memorySessionStore) Save(_ context.Context, tokenID string, userID kernel.UserID, _ time.Duration) error {
	s.sessions[tokenID] = userID
	return nil
}

func (s *memorySessionStore) Exists(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.sessions[tokenID]
	return ok, nil
}

func (s *memorySessionStore) Delete(_ context.Context, tokenID string) error {
	delete(s.sessions, tokenID)
	return nil
}

// ============================================================================
// Fixtures
// ============================================================================

type fixture struct {
	users      *fakeUserRepo
	companies  *fakeCompanyRepo
	candidates *fakeCandidateRepo
	sessions   *memorySessionStore
	tokens     *auth.TokenService
	service    *userauth.Service
}

func newFixture() *fixture {
	f := &fixture{
		users:      newFakeUserRepo(),
		companies:  &fakeCompanyRepo{},
		candidates: &fakeCandidateRepo{},
		sessions:   newMemorySessionStore(),
		tokens:     auth.NewTokenService("test-secret", "jobboard-test", time.Hour),
	}
	f.service = userauth.NewService(f.users, f.companies, f.candidates, f.tokens, f.sessions)
	return f
}

func employerRequest() user.RegisterRequest {
	return user.RegisterRequest{
		FullName: "Ada Lovelace",
		Email:    "Ada@Example.com",
		Password: "secret-pass",
		Role:     "employer",
	}
}

// ============================================================================
// Register
// ============================================================================

func TestRegisterEmployer(t *testing.T) {
	f := newFixture()

	resp, err := f.service.Register(context.Background(), employerRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Role != auth.RoleEmployer {
		t.Errorf("Role = %q, want %q", resp.Role, auth.RoleEmployer)
	}
	if resp.Email != "ada@example.com" {
		t.Errorf("Email = %q, want lowercased", resp.Email)
	}
	if resp.Token == "" {
		t.Error("registration should log the user in")
	}

	if len(f.companies.created) != 1 {
		t.Fatalf("created companies = %d, want 1", len(f.companies.created))
	}
	placeholder := f.companies.created[0]
	if placeholder.Name != "Ada Lovelace" || placeholder.City != "N/A" || placeholder.Industry != "N/A" {
		t.Errorf("placeholder company = %+v, want name from account and N/A fields", placeholder)
	}
}

func TestRegisterCandidatePlaceholder(t *testing.T) {
	f := newFixture()

	req := employerRequest()
	req.Role = "Candidate"

	if _, err := f.service.Register(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.candidates.created) != 1 {
		t.Fatalf("created candidates = %d, want 1", len(f.candidates.created))
	}
	placeholder := f.candidates.created[0]
	if placeholder.City != "N/A" || placeholder.ExperienceLevel != "Junior" {
		t.Errorf("placeholder candidate = %+v, want N/A city and Junior level", placeholder)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	f := newFixture()

	req := employerRequest()
	req.Role = "Recruiter"

	_, err := f.service.Register(context.Background(), req)
	if !errors.Is(err, user.ErrInvalidRole()) {
		t.Errorf("err = %v, want INVALID_ROLE", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	f := newFixture()

	req := employerRequest()
	req.Password = "12345"

	_, err := f.service.Register(context.Background(), req)
	if !errors.Is(err, user.ErrWeakPassword()) {
		t.Errorf("err = %v, want WEAK_PASSWORD", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture()

	if _, err := f.service.Register(context.Background(), employerRequest()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Same address with different casing still collides.
	req := employerRequest()
	req.Email = "ADA@EXAMPLE.COM"

	_, err := f.service.Register(context.Background(), req)
	if !errors.Is(err, user.ErrEmailTaken()) {
		t.Errorf("err = %v, want EMAIL_TAKEN", err)
	}
}

// ============================================================================
// Login / Logout
// ============================================================================

func TestLogin(t *testing.T) {
	f := newFixture()
	if _, err := f.service.Register(context.Background(), employerRequest()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := f.service.Login(context.Background(), user.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := f.tokens.Validate(resp.Token)
	if err != nil {
		t.Fatalf("issued token should validate: %v", err)
	}
	live, _ := f.sessions.Exists(context.Background(), claims.TokenID)
	if !live {
		t.Error("login should open a session")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	f := newFixture()
	if _, err := f.service.Register(context.Background(), employerRequest()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "secret-pass"},
		{"wrong password", "ada@example.com", "wrong-pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Login(context.Background(), user.LoginRequest{Email: tt.email, Password: tt.password})
			if !errors.Is(err, user.ErrInvalidCredentials()) {
				t.Errorf("err = %v, want INVALID_CREDENTIALS", err)
			}
		})
	}
}

func TestLoginAccountLookupFailure(t *testing.T) {
	f := newFixture()
	lookupErr := errors.New("connection refused")
	f.users.failGetByEmail = lookupErr

	_, err := f.service.Login(context.Background(), user.LoginRequest{Email: "ada@example.com", Password: "secret-pass"})
	if errors.Is(err, user.ErrInvalidCredentials()) {
		t.Errorf("err = %v, want infrastructure failure, not INVALID_CREDENTIALS", err)
	}
	if !errors.Is(err, lookupErr) {
		t.Errorf("err = %v, want cause %v preserved", err, lookupErr)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	f := newFixture()
	resp, err := f.service.Register(context.Background(), employerRequest())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	claims, err := f.tokens.Validate(resp.Token)
	if err != nil {
		t.Fatalf("token should validate: %v", err)
	}

	if err := f.service.Logout(context.Background(), claims.TokenID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	live, _ := f.sessions.Exists(context.Background(), claims.TokenID)
	if live {
		t.Error("session should be gone after logout")
	}
}
