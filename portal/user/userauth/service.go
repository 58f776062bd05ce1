package userauth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/portalhq/jobboard/pkg/errx"
	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
	"github.com/portalhq/jobboard/pkg/logx"
	"github.com/portalhq/jobboard/portal/candidate"
	"github.com/portalhq/jobboard/portal/company"
	"github.com/portalhq/jobboard/portal/user"
)

const minPasswordLength = 6

// placeholderField fills the profile columns that registration cannot know
// yet; owners edit them later through the profile endpoints.
const placeholderField = "N/A"

// Service handles registration, login and the combined profile view.
type Service struct {
	userRepo      user.Repository
	companyRepo   company.Repository
	candidateRepo candidate.Repository
	tokens        *auth.TokenService
	sessions      auth.SessionStore
}

func NewService(
	userRepo user.Repository,
	companyRepo company.Repository,
	candidateRepo candidate.Repository,
	tokens *auth.TokenService,
	sessions auth.SessionStore,
) *Service {
	return &Service{
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		candidateRepo: candidateRepo,
		tokens:        tokens,
		sessions:      sessions,
	}
}

// Register creates an account plus the empty role profile that goes with
// it, then logs the new user in.
func (s *Service) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error) {
	role, ok := auth.ParseRole(req.Role)
	if !ok {
		return nil, user.ErrInvalidRole().WithDetail("role", req.Role)
	}

	if len(req.Password) < minPasswordLength {
		return nil, user.ErrWeakPassword()
	}

	email := kernel.NewEmail(req.Email)

	// Courtesy check; the unique index on email settles races.
	taken, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check email", errx.TypeInternal)
	}
	if taken {
		return nil, user.ErrEmailTaken().WithDetail("email", email.String())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	newUser := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	switch role {
	case auth.RoleEmployer:
		err = s.companyRepo.Create(ctx, &company.Company{
			ID:       kernel.NewCompanyID(uuid.NewString()),
			UserID:   newUser.ID,
			Name:     newUser.FullName,
			City:     placeholderField,
			Industry: placeholderField,
		})
	case auth.RoleCandidate:
		err = s.candidateRepo.Create(ctx, &candidate.Candidate{
			ID:              kernel.NewCandidateID(uuid.NewString()),
			UserID:          newUser.ID,
			City:            placeholderField,
			ExperienceLevel: "Junior",
		})
	}
	if err != nil {
		return nil, errx.Wrap(err, "failed to create role profile", errx.TypeInternal)
	}

	logx.Infof("registered %s account %s", role, newUser.ID)

	return s.issueToken(ctx, newUser)
}

// Login verifies credentials and opens a session.
func (s *Service) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	account, err := s.userRepo.GetByEmail(ctx, kernel.NewEmail(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound()) {
			return nil, user.ErrInvalidCredentials()
		}
		return nil, errx.Wrap(err, "failed to load user account", errx.TypeInternal)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials()
	}

	return s.issueToken(ctx, account)
}

// Logout revokes the session behind the given token ID.
func (s *Service) Logout(ctx context.Context, tokenID string) error {
	return s.sessions.Delete(ctx, tokenID)
}

// GetProfile returns the account plus its role profile, when one exists.
func (s *Service) GetProfile(ctx context.Context, actor auth.Actor) (*user.ProfileResponse, error) {
	account, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	resp := &user.ProfileResponse{
		UserID:    account.ID,
		FullName:  account.FullName,
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	}

	switch account.Role {
	case auth.RoleEmployer:
		profile, err := s.companyRepo.GetProfile(ctx, account.ID)
		if err == nil {
			resp.Company = profile
		}
	case auth.RoleCandidate:
		profile, err := s.candidateRepo.GetProfile(ctx, account.ID)
		if err == nil {
			resp.Candidate = profile
		}
	}

	return resp, nil
}

func (s *Service) issueToken(ctx context.Context, account *user.User) (*user.AuthResponse, error) {
	token, tokenID, err := s.tokens.Generate(account.ID, account.Role, account.Email, account.FullName)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, tokenID, account.ID, s.tokens.TTL()); err != nil {
		return nil, err
	}

	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	return &user.AuthResponse{
		Token:     token,
		UserID:    account.ID,
		FullName:  account.FullName,
		Email:     account.Email,
		Role:      account.Role,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}
