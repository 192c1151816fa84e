package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) GetProfile(ctx context.Context, userID string) (UserProfile, error) {
	const query = `
SELECT user_id, job_titles, preferred_location, salary_min, salary_max,
       job_types, experience_level, skills, industries, created_at, updated_at
FROM user_profiles
WHERE user_id = $1
LIMIT 1`
	var profile UserProfile
	var jobTitles, jobTypes, skills, industries []byte
	var preferredLocation, experienceLevel sql.NullString
	var salaryMin, salaryMax sql.NullFloat64
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&jobTitles,
		&preferredLocation,
		&salaryMin,
		&salaryMax,
		&jobTypes,
		&experienceLevel,
		&skills,
		&industries,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserProfile{}, ErrNotFound
		}
		return UserProfile{}, err
	}
	profile.PreferredLocation = preferredLocation.String
	profile.ExperienceLevel = experienceLevel.String
	if salaryMin.Valid {
		v := salaryMin.Float64
		profile.SalaryMin = &v
	}
	if salaryMax.Valid {
		v := salaryMax.Float64
		profile.SalaryMax = &v
	}
	if profile.JobTitles, err = decodeStrings(jobTitles); err != nil {
		return UserProfile{}, fmt.Errorf("decode job_titles: %w", err)
	}
	if profile.JobTypes, err = decodeStrings(jobTypes); err != nil {
		return UserProfile{}, fmt.Errorf("decode job_types: %w", err)
	}
	if profile.Skills, err = decodeStrings(skills); err != nil {
		return UserProfile{}, fmt.Errorf("decode skills: %w", err)
	}
	if profile.Industries, err = decodeStrings(industries); err != nil {
		return UserProfile{}, fmt.Errorf("decode industries: %w", err)
	}
	return profile, nil
}

func (r *PGRepo) UpsertProfile(ctx context.Context, profile UserProfile) error {
	const query = `
INSERT INTO user_profiles (
  user_id, job_titles, preferred_location, salary_min, salary_max,
  job_types, experience_level, skills, industries, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  job_titles = EXCLUDED.job_titles,
  preferred_location = EXCLUDED.preferred_location,
  salary_min = EXCLUDED.salary_min,
  salary_max = EXCLUDED.salary_max,
  job_types = EXCLUDED.job_types,
  experience_level = EXCLUDED.experience_level,
  skills = EXCLUDED.skills,
  industries = EXCLUDED.industries,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		profile.UserID,
		encodeStrings(profile.JobTitles),
		nullableString(profile.PreferredLocation),
		profile.SalaryMin,
		profile.SalaryMax,
		encodeStrings(profile.JobTypes),
		nullableString(profile.ExperienceLevel),
		encodeStrings(profile.Skills),
		encodeStrings(profile.Industries),
	)
	return err
}

func (r *PGRepo) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	const query = `
SELECT user_id, recency_filter, excluded_companies, excluded_industries,
       location_flexible, created_at, updated_at
FROM recommendation_preferences
WHERE user_id = $1
LIMIT 1`
	var prefs Preferences
	var excludedCompanies, excludedIndustries []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&prefs.UserID,
		&prefs.RecencyFilter,
		&excludedCompanies,
		&excludedIndustries,
		&prefs.LocationFlexible,
		&prefs.CreatedAt,
		&prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Preferences{}, ErrNotFound
		}
		return Preferences{}, err
	}
	if prefs.ExcludedCompanies, err = decodeStrings(excludedCompanies); err != nil {
		return Preferences{}, fmt.Errorf("decode excluded_companies: %w", err)
	}
	if prefs.ExcludedIndustries, err = decodeStrings(excludedIndustries); err != nil {
		return Preferences{}, fmt.Errorf("decode excluded_industries: %w", err)
	}
	return prefs, nil
}

func (r *PGRepo) UpsertPreferences(ctx context.Context, prefs Preferences) error {
	const query = `
INSERT INTO recommendation_preferences (
  user_id, recency_filter, excluded_companies, excluded_industries,
  location_flexible, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  recency_filter = EXCLUDED.recency_filter,
  excluded_companies = EXCLUDED.excluded_companies,
  excluded_industries = EXCLUDED.excluded_industries,
  location_flexible = EXCLUDED.location_flexible,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		prefs.UserID,
		prefs.RecencyFilter,
		encodeStrings(prefs.ExcludedCompanies),
		encodeStrings(prefs.ExcludedIndustries),
		prefs.LocationFlexible,
	)
	return err
}

func encodeStrings(values []string) []byte {
	if values == nil {
		values = []string{}
	}
	out, _ := json.Marshal(values)
	return out
}

func decodeStrings(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
