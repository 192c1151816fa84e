package match

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type stubProfiles struct {
	profile    Profile
	profileErr error
	prefs      Preferences
	prefsErr   error
}

func (s stubProfiles) GetProfile(ctx context.Context, userID string) (Profile, error) {
	return s.profile, s.profileErr
}

func (s stubProfiles) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	return s.prefs, s.prefsErr
}

type stubJobs struct {
	jobs []Posting
	err  error
	got  int
}

func (s *stubJobs) ListRecent(ctx context.Context, limit int) ([]Posting, error) {
	s.got = limit
	return s.jobs, s.err
}

type stubApplications struct {
	ids []string
	err error
}

func (s stubApplications) ListAppliedJobIDs(ctx context.Context, userID string) ([]string, error) {
	return s.ids, s.err
}

func recentJobs(n int) []Posting {
	now := time.Now().UTC()
	jobs := make([]Posting, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, Posting{
			ID:          fmt.Sprintf("job-%d", i),
			Title:       "Engineer",
			CompanyName: "Co",
			CreatedAt:   now.AddDate(0, 0, -1),
		})
	}
	return jobs
}

func TestRecommendationsDefaultsAndTruncation(t *testing.T) {
	jobs := &stubJobs{jobs: recentJobs(30)}
	svc := NewService(
		stubProfiles{profileErr: ErrNotFound, prefsErr: ErrNotFound},
		jobs,
		stubApplications{},
	)

	got, err := svc.Recommendations(context.Background(), "user-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != defaultLimit {
		t.Fatalf("expected default limit %d, got %d", defaultLimit, len(got))
	}
	if jobs.got != candidatePoolSize {
		t.Fatalf("expected pool request of %d, got %d", candidatePoolSize, jobs.got)
	}
}

func TestRecommendationsLimitClamp(t *testing.T) {
	svc := NewService(
		stubProfiles{profileErr: ErrNotFound, prefsErr: ErrNotFound},
		&stubJobs{jobs: recentJobs(100)},
		stubApplications{},
	)

	got, err := svc.Recommendations(context.Background(), "user-1", 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != maxLimit {
		t.Fatalf("expected clamp to %d, got %d", maxLimit, len(got))
	}
}

func TestRecommendationsAppliedExcluded(t *testing.T) {
	now := time.Now().UTC()
	svc := NewService(
		stubProfiles{profileErr: ErrNotFound, prefsErr: ErrNotFound},
		&stubJobs{jobs: []Posting{
			{ID: "seen", Title: "Engineer", CreatedAt: now.AddDate(0, 0, -1)},
			{ID: "new", Title: "Engineer", CreatedAt: now.AddDate(0, 0, -1)},
		}},
		stubApplications{ids: []string{"seen"}},
	)

	got, err := svc.Recommendations(context.Background(), "user-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Job.ID != "new" {
		t.Fatalf("expected only unapplied posting, got %+v", got)
	}
}

func TestRecommendationsSourceFailure(t *testing.T) {
	svc := NewService(
		stubProfiles{profileErr: ErrNotFound, prefsErr: ErrNotFound},
		&stubJobs{err: errors.New("db down")},
		stubApplications{},
	)

	if _, err := svc.Recommendations(context.Background(), "user-1", 10); err == nil {
		t.Fatalf("expected error when job source fails")
	}
}

func TestRecommendationsProfileErrorPropagates(t *testing.T) {
	svc := NewService(
		stubProfiles{profileErr: errors.New("db down")},
		&stubJobs{jobs: recentJobs(5)},
		stubApplications{},
	)

	if _, err := svc.Recommendations(context.Background(), "user-1", 10); err == nil {
		t.Fatalf("expected error when profile source fails")
	}
}
