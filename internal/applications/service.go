package applications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"careerhub-backend/internal/jobs"
	"careerhub-backend/internal/shared/telemetry"
)

var (
	// ErrInvalidInput indicates an application payload that fails validation.
	ErrInvalidInput = errors.New("invalid application")
	// ErrDuplicate indicates the user already applied to the posting.
	ErrDuplicate = errors.New("already applied")
	// ErrJobNotFound indicates the referenced posting does not exist.
	ErrJobNotFound = errors.New("job posting not found")
)

// Mailer sends the confirmation email after an application is recorded.
// Sending is best-effort; a mail failure never fails the application.
type Mailer interface {
	SendApplicationConfirmation(ctx context.Context, to, jobTitle, companyName string) error
}

type Service struct {
	Repo   Repo
	Jobs   *jobs.Service
	Mailer Mailer
}

func NewService(repo Repo, jobSvc *jobs.Service, mailer Mailer) *Service {
	return &Service{Repo: repo, Jobs: jobSvc, Mailer: mailer}
}

// Apply records an application for the user, confirming the posting exists
// and that this is the first application to it.
func (s *Service) Apply(ctx context.Context, userID, userEmail, jobID, notes string) (Application, error) {
	if strings.TrimSpace(userID) == "" {
		return Application{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(jobID) == "" {
		return Application{}, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}

	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Application{}, ErrJobNotFound
		}
		return Application{}, fmt.Errorf("load job posting: %w", err)
	}

	existing, err := s.Repo.ListJobIDsByUser(ctx, userID)
	if err != nil {
		return Application{}, fmt.Errorf("load applications: %w", err)
	}
	for _, id := range existing {
		if id == jobID {
			return Application{}, ErrDuplicate
		}
	}

	app := Application{
		ID:     uuid.NewString(),
		UserID: userID,
		JobID:  jobID,
		Status: StatusApplied,
		Notes:  strings.TrimSpace(notes),
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, fmt.Errorf("create application: %w", err)
	}

	if s.Mailer != nil && strings.TrimSpace(userEmail) != "" {
		if err := s.Mailer.SendApplicationConfirmation(ctx, userEmail, job.Title, job.CompanyName); err != nil {
			telemetry.Error("applications.mail_failed", map[string]any{
				"userId": userID,
				"jobId":  jobID,
				"error":  err.Error(),
			})
		}
	}

	return s.Repo.GetByID(ctx, app.ID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID)
}

// ListJobIDs feeds the recommendation engine's applied-job exclusion.
func (s *Service) ListJobIDs(ctx context.Context, userID string) ([]string, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.ListJobIDsByUser(ctx, userID)
}

func (s *Service) UpdateStatus(ctx context.Context, appID, userID, status string) (Application, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !validStatuses[status] {
		return Application{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	if err := s.Repo.UpdateStatus(ctx, appID, userID, status); err != nil {
		return Application{}, err
	}
	return s.Repo.GetByID(ctx, appID)
}
