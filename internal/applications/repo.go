package applications

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "application not found" }

type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, appID string) (Application, error)
	ListByUser(ctx context.Context, userID string) ([]Application, error)
	ListJobIDsByUser(ctx context.Context, userID string) ([]string, error)
	UpdateStatus(ctx context.Context, appID, userID, status string) error
}
