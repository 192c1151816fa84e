package users

import "context"

type Repo interface {
	Upsert(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	UpdateHeadline(ctx context.Context, userID, headline string) error
}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

var ErrNotFound = errNotFound{}
