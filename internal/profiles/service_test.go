package profiles

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestSaveProfileCleansLists(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	saved, err := svc.SaveProfile(context.Background(), UserProfile{
		UserID:    "user-1",
		JobTitles: []string{" Software Engineer ", "", "  "},
		Skills:    []string{"Go", " SQL "},
	})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if !reflect.DeepEqual(saved.JobTitles, []string{"Software Engineer"}) {
		t.Fatalf("unexpected job titles: %v", saved.JobTitles)
	}
	if !reflect.DeepEqual(saved.Skills, []string{"Go", "SQL"}) {
		t.Fatalf("unexpected skills: %v", saved.Skills)
	}
}

func TestSaveProfileRejectsInvertedSalaryRange(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	low, high := 50000.0, 90000.0

	_, err := svc.SaveProfile(context.Background(), UserProfile{
		UserID:    "user-1",
		SalaryMin: &high,
		SalaryMax: &low,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSavePreferencesNormalizesFilter(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	saved, err := svc.SavePreferences(context.Background(), Preferences{
		UserID:        "user-1",
		RecencyFilter: " 1Week ",
	})
	if err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	if saved.RecencyFilter != "1week" {
		t.Fatalf("expected normalized filter, got %q", saved.RecencyFilter)
	}
}

func TestSavePreferencesRejectsUnknownFilter(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.SavePreferences(context.Background(), Preferences{
		UserID:        "user-1",
		RecencyFilter: "fortnight",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSavePreferencesDefaultsEmptyFilter(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	saved, err := svc.SavePreferences(context.Background(), Preferences{UserID: "user-1"})
	if err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	if saved.RecencyFilter != "1week" {
		t.Fatalf("expected default 1week, got %q", saved.RecencyFilter)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.GetProfile(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
