package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput indicates a profile or preferences payload that fails validation.
var ErrInvalidInput = errors.New("invalid input")

// validRecencyFilters are the accepted recency filter values. Anything else
// would silently degrade to the matcher default, so reject it at the edge.
var validRecencyFilters = map[string]bool{
	"1day":   true,
	"3days":  true,
	"1week":  true,
	"2weeks": true,
	"1month": true,
}

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (UserProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return UserProfile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetProfile(ctx, userID)
}

func (s *Service) SaveProfile(ctx context.Context, profile UserProfile) (UserProfile, error) {
	if strings.TrimSpace(profile.UserID) == "" {
		return UserProfile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if profile.SalaryMin != nil && profile.SalaryMax != nil && *profile.SalaryMin > *profile.SalaryMax {
		return UserProfile{}, fmt.Errorf("%w: salaryMin exceeds salaryMax", ErrInvalidInput)
	}
	profile.JobTitles = cleanList(profile.JobTitles)
	profile.JobTypes = cleanList(profile.JobTypes)
	profile.Skills = cleanList(profile.Skills)
	profile.Industries = cleanList(profile.Industries)
	if err := s.Repo.UpsertProfile(ctx, profile); err != nil {
		return UserProfile{}, fmt.Errorf("save profile: %w", err)
	}
	return s.Repo.GetProfile(ctx, profile.UserID)
}

func (s *Service) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	if strings.TrimSpace(userID) == "" {
		return Preferences{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetPreferences(ctx, userID)
}

func (s *Service) SavePreferences(ctx context.Context, prefs Preferences) (Preferences, error) {
	if strings.TrimSpace(prefs.UserID) == "" {
		return Preferences{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	filter := strings.ToLower(strings.TrimSpace(prefs.RecencyFilter))
	if filter == "" {
		filter = "1week"
	}
	if !validRecencyFilters[filter] {
		return Preferences{}, fmt.Errorf("%w: unknown recency filter %q", ErrInvalidInput, prefs.RecencyFilter)
	}
	prefs.RecencyFilter = filter
	prefs.ExcludedCompanies = cleanList(prefs.ExcludedCompanies)
	prefs.ExcludedIndustries = cleanList(prefs.ExcludedIndustries)
	if err := s.Repo.UpsertPreferences(ctx, prefs); err != nil {
		return Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return s.Repo.GetPreferences(ctx, prefs.UserID)
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
