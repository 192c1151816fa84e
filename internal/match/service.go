package match

import (
	"context"
	"errors"
	"fmt"

	"careerhub-backend/internal/shared/metrics"
	"careerhub-backend/internal/shared/telemetry"
)

// ErrNotFound is returned by sources when a record does not exist.
var ErrNotFound = errors.New("not found")

const (
	candidatePoolSize = 200
	defaultLimit      = 20
	maxLimit          = 50
)

// ProfileSource supplies the stored job-seeking profile and preferences.
type ProfileSource interface {
	GetProfile(ctx context.Context, userID string) (Profile, error)
	GetPreferences(ctx context.Context, userID string) (Preferences, error)
}

// JobSource supplies the candidate pool, newest postings first.
type JobSource interface {
	ListRecent(ctx context.Context, limit int) ([]Posting, error)
}

// ApplicationSource supplies the IDs of postings the user already applied to.
type ApplicationSource interface {
	ListAppliedJobIDs(ctx context.Context, userID string) ([]string, error)
}

// Service assembles inputs from the repositories and ranks postings.
type Service struct {
	Profiles     ProfileSource
	Jobs         JobSource
	Applications ApplicationSource
}

func NewService(profiles ProfileSource, jobs JobSource, applications ApplicationSource) *Service {
	return &Service{Profiles: profiles, Jobs: jobs, Applications: applications}
}

// Recommendations ranks the recent posting pool for a user and truncates to
// limit. A user without a saved profile gets recency-ordered results; a user
// without saved preferences gets the defaults.
func (s *Service) Recommendations(ctx context.Context, userID string, limit int) ([]JobMatch, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	profile, err := s.Profiles.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	prefs, err := s.Profiles.GetPreferences(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("load preferences: %w", err)
		}
		prefs = DefaultPreferences()
	}

	jobs, err := s.Jobs.ListRecent(ctx, candidatePoolSize)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}

	applied, err := s.Applications.ListAppliedJobIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load applications: %w", err)
	}

	matches := CalculateMatches(profile, prefs, jobs, applied)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	metrics.IncRecommendationRun()
	telemetry.Info("match.recommendations", map[string]any{
		"userId":   userID,
		"poolSize": len(jobs),
		"returned": len(matches),
	})
	return matches, nil
}
