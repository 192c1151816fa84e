package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/applications"
	googleauth "careerhub-backend/internal/auth"
	"careerhub-backend/internal/documents"
	"careerhub-backend/internal/enhance"
	"careerhub-backend/internal/evaluate"
	"careerhub-backend/internal/jobs"
	"careerhub-backend/internal/llm"
	openai "careerhub-backend/internal/llm/openai"
	"careerhub-backend/internal/mail"
	"careerhub-backend/internal/match"
	"careerhub-backend/internal/profiles"
	"careerhub-backend/internal/queue"
	"careerhub-backend/internal/shared/config"
	"careerhub-backend/internal/shared/server"
	"careerhub-backend/internal/shared/storage/db"
	"careerhub-backend/internal/shared/storage/object"
	localstore "careerhub-backend/internal/shared/storage/object/local"
	s3store "careerhub-backend/internal/shared/storage/object/s3"
	"careerhub-backend/internal/users"
)

// App holds the wired dependency graph shared by the API and the worker.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Queue  queue.Client
	LLM    llm.Client

	UsersService        *users.Service
	ProfilesService     *profiles.Service
	JobsService         *jobs.Service
	ApplicationsService *applications.Service
	DocumentsService    *documents.Service
	EnhanceService      *enhance.Service
	EvaluateService     *evaluate.Service
	MatchService        *match.Service

	GoogleAuth *googleauth.GoogleService
}

// Build prepares the dependency graph and the HTTP router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	queueClient, err := buildQueue(ctx, cfg)
	if err != nil {
		return nil, err
	}
	llmClient := buildLLM(cfg)

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
		LLM:    llmClient,
	}

	var (
		usersRepo    users.Repo
		profilesRepo profiles.Repo
		jobsRepo     jobs.Repo
		appsRepo     applications.Repo
		docsRepo     documents.Repo
	)
	if sqlDB != nil {
		usersRepo = &users.PGRepo{DB: sqlDB}
		profilesRepo = &profiles.PGRepo{DB: sqlDB}
		jobsRepo = &jobs.PGRepo{DB: sqlDB}
		appsRepo = &applications.PGRepo{DB: sqlDB}
		docsRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		usersRepo = users.NewMemoryRepo()
		profilesRepo = profiles.NewMemoryRepo()
		jobsRepo = jobs.NewMemoryRepo()
		appsRepo = applications.NewMemoryRepo()
		docsRepo = documents.NewMemoryRepo()
	}

	var mailer applications.Mailer
	if cfg.SMTPHost != "" {
		sender, err := mail.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPPassword)
		if err != nil {
			return nil, fmt.Errorf("build mailer: %w", err)
		}
		mailer = sender
	}

	var extractQueue documents.ExtractQueue
	if queueClient != nil {
		extractQueue = queue.Publisher{Client: queueClient}
	}

	app.UsersService = users.NewService(usersRepo)
	app.ProfilesService = profiles.NewService(profilesRepo)
	app.JobsService = jobs.NewService(jobsRepo)
	app.ApplicationsService = applications.NewService(appsRepo, app.JobsService, mailer)
	app.DocumentsService = documents.NewService(docsRepo, store, extractQueue)
	app.EnhanceService = enhance.NewService(llmClient, cfg.LLMProvider)
	app.EvaluateService = evaluate.NewService(buildPromptLLM(cfg))
	app.MatchService = match.NewService(
		profileSource{svc: app.ProfilesService},
		jobSource{svc: app.JobsService},
		applicationSource{svc: app.ApplicationsService},
	)
	app.GoogleAuth = googleauth.NewGoogleService(googleauth.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		UIRedirect:   cfg.UIRedirectURL,
	}, app.UsersService)

	app.Router = server.NewRouter(cfg,
		app.GoogleAuth,
		users.NewHandler(app.UsersService),
		profiles.NewHandler(app.ProfilesService),
		jobs.NewHandler(app.JobsService),
		applications.NewHandler(app.ApplicationsService),
		documents.NewHandler(app.DocumentsService),
		enhance.NewHandler(app.EnhanceService),
		evaluate.NewHandler(app.EvaluateService),
		match.NewHandler(app.MatchService),
	)
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
		return nil, nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	}
	return localstore.New(cfg.LocalStoreDir), nil
}

func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if cfg.ExtractMode != "queue" {
		return nil, nil
	}
	if strings.TrimSpace(cfg.ExtractQueueURL) == "" {
		return nil, fmt.Errorf("CH_EXTRACT_QUEUE_URL is required when CH_EXTRACT_MODE=queue")
	}
	return queue.NewSQSClient(ctx, cfg.AWSRegion, cfg.ExtractQueueURL)
}

func buildLLM(cfg config.Config) llm.Client {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if cfg.LLMProvider != "openai" || apiKey == "" {
		log.Printf("bootstrap: no LLM provider configured; enhancement disabled")
		return nil
	}
	client, err := openai.NewClient(apiKey, cfg.LLMModel)
	if err != nil {
		log.Printf("bootstrap: openai client unavailable: %v", err)
		return nil
	}
	return client
}

func buildPromptLLM(cfg config.Config) llm.PromptClient {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if cfg.LLMProvider != "openai" || apiKey == "" {
		return nil
	}
	client, err := openai.NewClient(apiKey, cfg.LLMModel)
	if err != nil {
		return nil
	}
	return client
}

// profileSource adapts the profiles service to the matcher's input types.
type profileSource struct {
	svc *profiles.Service
}

func (p profileSource) GetProfile(ctx context.Context, userID string) (match.Profile, error) {
	stored, err := p.svc.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return match.Profile{}, match.ErrNotFound
		}
		return match.Profile{}, err
	}
	return match.Profile{
		JobTitles:         stored.JobTitles,
		PreferredLocation: stored.PreferredLocation,
		SalaryMin:         stored.SalaryMin,
		SalaryMax:         stored.SalaryMax,
		JobTypes:          stored.JobTypes,
		ExperienceLevel:   stored.ExperienceLevel,
		Skills:            stored.Skills,
		Industries:        stored.Industries,
	}, nil
}

func (p profileSource) GetPreferences(ctx context.Context, userID string) (match.Preferences, error) {
	stored, err := p.svc.GetPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return match.Preferences{}, match.ErrNotFound
		}
		return match.Preferences{}, err
	}
	return match.Preferences{
		RecencyFilter:      stored.RecencyFilter,
		ExcludedCompanies:  stored.ExcludedCompanies,
		ExcludedIndustries: stored.ExcludedIndustries,
		LocationFlexible:   stored.LocationFlexible,
	}, nil
}

type jobSource struct {
	svc *jobs.Service
}

func (j jobSource) ListRecent(ctx context.Context, limit int) ([]match.Posting, error) {
	postings, err := j.svc.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]match.Posting, 0, len(postings))
	for _, job := range postings {
		out = append(out, match.Posting{
			ID:              job.ID,
			Title:           job.Title,
			CompanyName:     job.CompanyName,
			Location:        job.Location,
			Description:     job.Description,
			Requirements:    job.Requirements,
			SalaryMin:       job.SalaryMin,
			SalaryMax:       job.SalaryMax,
			JobType:         job.JobType,
			Industry:        job.Industry,
			RemoteWorkType:  job.RemoteWorkType,
			WorkDaysPerWeek: job.WorkDaysPerWeek,
			Department:      job.Department,
			JobLevel:        job.JobLevel,
			CreatedAt:       job.CreatedAt,
		})
	}
	return out, nil
}

type applicationSource struct {
	svc *applications.Service
}

func (a applicationSource) ListAppliedJobIDs(ctx context.Context, userID string) ([]string, error) {
	return a.svc.ListJobIDs(ctx, userID)
}
