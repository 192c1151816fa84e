package jobs

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "job posting not found" }

type Repo interface {
	Create(ctx context.Context, job JobPosting) error
	GetByID(ctx context.Context, jobID string) (JobPosting, error)
	ListRecent(ctx context.Context, limit int) ([]JobPosting, error)
	Delete(ctx context.Context, jobID string) error
}
