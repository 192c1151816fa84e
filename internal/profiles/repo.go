package profiles

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "profile not found" }

type Repo interface {
	GetProfile(ctx context.Context, userID string) (UserProfile, error)
	UpsertProfile(ctx context.Context, profile UserProfile) error
	GetPreferences(ctx context.Context, userID string) (Preferences, error)
	UpsertPreferences(ctx context.Context, prefs Preferences) error
}
