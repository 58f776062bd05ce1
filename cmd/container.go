package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/iam/auth/authinfra"
	"github.com/portalhq/jobboard/pkg/logx"
	"github.com/portalhq/jobboard/portal/application/applicationapi"
	"github.com/portalhq/jobboard/portal/application/applicationinfra"
	"github.com/portalhq/jobboard/portal/application/applicationsrv"
	"github.com/portalhq/jobboard/portal/candidate/candidateapi"
	"github.com/portalhq/jobboard/portal/candidate/candidateinfra"
	"github.com/portalhq/jobboard/portal/candidate/candidatesrv"
	"github.com/portalhq/jobboard/portal/company/companyapi"
	"github.com/portalhq/jobboard/portal/company/companyinfra"
	"github.com/portalhq/jobboard/portal/company/companysrv"
	"github.com/portalhq/jobboard/portal/job/jobapi"
	"github.com/portalhq/jobboard/portal/job/jobinfra"
	"github.com/portalhq/jobboard/portal/job/jobsrv"
	"github.com/portalhq/jobboard/portal/skill/skillapi"
	"github.com/portalhq/jobboard/portal/skill/skillinfra"
	"github.com/portalhq/jobboard/portal/skill/skillsrv"
	"github.com/portalhq/jobboard/portal/user/userauth"
	"github.com/portalhq/jobboard/portal/user/userinfra"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Auth
	TokenService *auth.TokenService
	SessionStore auth.SessionStore

	// Domain Services
	AuthService        *userauth.Service
	CompanyService     *companysrv.CompanyService
	CandidateService   *candidatesrv.CandidateService
	SkillService       *skillsrv.SkillService
	JobService         *jobsrv.JobService
	ApplicationService *applicationsrv.ApplicationService

	// API Handlers
	AuthHandlers        *userauth.Handlers
	CompanyHandlers     *companyapi.Handlers
	CandidateHandlers   *candidateapi.Handlers
	SkillHandlers       *skillapi.Handlers
	JobHandlers         *jobapi.Handlers
	ApplicationHandlers *applicationapi.Handlers

	// Middleware
	AuthMiddleware *auth.Middleware

	// HTTP
	CORSAllowOrigins string
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection (session liveness)
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if err := c.Redis.Ping(context.Background()).Err(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Token Service
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		secret = "super-secret-key-please-change-me-in-production"
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logx.Fatalf("Invalid JWT_TTL %q: %v", raw, err)
		}
		ttl = parsed
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "jobboard"
	}

	c.TokenService = auth.NewTokenService(secret, issuer, ttl)
	c.SessionStore = authinfra.NewRedisSessionStore(c.Redis)

	// 4. HTTP
	c.CORSAllowOrigins = os.Getenv("CORS_ALLOW_ORIGINS")
	if c.CORSAllowOrigins == "" {
		c.CORSAllowOrigins = "*"
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	companyRepo := companyinfra.NewPostgresCompanyRepository(c.DB)
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	skillRepo := skillinfra.NewPostgresSkillRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)

	// --- Domain Services ---
	c.AuthService = userauth.NewService(userRepo, companyRepo, candidateRepo, c.TokenService, c.SessionStore)
	c.CompanyService = companysrv.NewCompanyService(companyRepo)
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo)
	c.SkillService = skillsrv.NewSkillService(skillRepo)
	c.JobService = jobsrv.NewJobService(jobRepo, companyRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, candidateRepo, jobRepo, companyRepo)

	// --- Handlers ---
	c.AuthHandlers = userauth.NewHandlers(c.AuthService)
	c.CompanyHandlers = companyapi.NewHandlers(c.CompanyService)
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.SkillHandlers = skillapi.NewHandlers(c.SkillService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewMiddleware(c.TokenService, c.SessionStore)
}
