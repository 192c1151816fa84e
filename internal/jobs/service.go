package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidInput indicates a posting that fails validation.
var ErrInvalidInput = errors.New("invalid job posting")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create validates and stores a new posting, assigning its ID.
func (s *Service) Create(ctx context.Context, job JobPosting) (JobPosting, error) {
	if strings.TrimSpace(job.Title) == "" {
		return JobPosting{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(job.CompanyName) == "" {
		return JobPosting{}, fmt.Errorf("%w: companyName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(job.Description) == "" {
		return JobPosting{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return JobPosting{}, fmt.Errorf("%w: salaryMin exceeds salaryMax", ErrInvalidInput)
	}

	job.ID = uuid.NewString()
	if err := s.Repo.Create(ctx, job); err != nil {
		return JobPosting{}, fmt.Errorf("create job posting: %w", err)
	}
	return s.Repo.GetByID(ctx, job.ID)
}

func (s *Service) GetByID(ctx context.Context, jobID string) (JobPosting, error) {
	if strings.TrimSpace(jobID) == "" {
		return JobPosting{}, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, jobID)
}

// ListRecent returns the newest postings first. The pool feeds both the
// listing endpoint and the recommendation engine.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]JobPosting, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Repo.ListRecent(ctx, limit)
}

func (s *Service) Delete(ctx context.Context, jobID string) error {
	if strings.TrimSpace(jobID) == "" {
		return fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, jobID)
}
